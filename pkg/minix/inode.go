// Copyright 2026 The minixfs Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package minix

import "github.com/pkg/errors"

// FileMode is an inode's mode field: the file type in the top bits and
// rwx permission bits below them.
type FileMode uint16

// File type values found in the masked top bits of a FileMode.
const (
	TypeMask      FileMode = 0170000
	TypeRegular   FileMode = 0100000
	TypeDirectory FileMode = 0040000
)

// IsDir reports whether the mode describes a directory.
func (m FileMode) IsDir() bool {
	return m&TypeMask == TypeDirectory
}

// IsRegular reports whether the mode describes a regular file.
func (m FileMode) IsRegular() bool {
	return m&TypeMask == TypeRegular
}

// String renders the mode the way ls does: a type character followed by
// rwx triplets for owner, group and other.
func (m FileMode) String() string {
	var b [10]byte
	b[0] = '-'
	if m.IsDir() {
		b[0] = 'd'
	}
	const bits = "rwxrwxrwx"
	for i := 0; i < len(bits); i++ {
		if m&(1<<uint(8-i)) != 0 {
			b[i+1] = bits[i]
		} else {
			b[i+1] = '-'
		}
	}
	return string(b[:])
}

// RawInode is the on-disk inode record, little-endian.
type RawInode struct {
	Mode        FileMode
	Links       uint16
	UID         uint16
	GID         uint16
	Size        uint32
	ATime       int32
	MTime       int32
	CTime       int32
	Zone        [DirectZones]uint32
	Indirect    uint32
	TwoIndirect uint32
	Unused      uint32
}

// Inode is an inode read from a session, bound to that session for
// follow-up reads: directory iteration, block resolution, file content.
type Inode struct {
	RawInode
	fs  *FileSystem
	num uint32
}

// Inode reads inode num from the inode table. Numbers are 1-based; 0 and
// numbers beyond the superblock's ninodes fail with ErrInvalidInode.
func (fs *FileSystem) Inode(num uint32) (*Inode, error) {
	if num == 0 || num > fs.sb.Ninodes {
		return nil, errors.Wrapf(ErrInvalidInode, "inode %d of %d", num, fs.sb.Ninodes)
	}
	in := &Inode{fs: fs, num: num}
	off := fs.inodesOff + int64(num-1)*InodeSize
	if err := fs.readObject(off, &in.RawInode); err != nil {
		return nil, errors.Wrapf(err, "minix: reading inode %d", num)
	}
	return in, nil
}

// Root reads the root directory inode.
func (fs *FileSystem) Root() (*Inode, error) {
	return fs.Inode(RootInode)
}

// Num returns the inode's number.
func (in *Inode) Num() uint32 {
	return in.num
}

// IsDir reports whether the inode is a directory.
func (in *Inode) IsDir() bool {
	return in.Mode.IsDir()
}

// IsRegular reports whether the inode is a regular file.
func (in *Inode) IsRegular() bool {
	return in.Mode.IsRegular()
}
