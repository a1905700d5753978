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

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Dirent is the on-disk directory entry record. Directory data blocks are
// a packed array of these; an entry with Ino == 0 is an empty slot.
type Dirent struct {
	Ino  uint32
	Name [60]byte
}

// Filename returns the entry's name: the bytes up to the first NUL, or
// the whole slot when the name occupies all 60 bytes.
func (d *Dirent) Filename() string {
	if i := bytes.IndexByte(d.Name[:], 0); i >= 0 {
		return string(d.Name[:i])
	}
	return string(d.Name[:])
}

var errStopIteration = errors.New("stop iteration")

// IterDirents calls cb for every valid entry of the directory, in
// block-then-slot order. The scan is best-effort over damaged metadata:
// hole blocks hold no entries, and a data block that cannot be read is
// skipped with a warning, losing only its own slots rather than the rest
// of the directory. A non-nil error from cb stops the iteration and is
// returned as-is.
func (in *Inode) IterDirents(cb func(name string, ino uint32) error) error {
	if !in.IsDir() {
		return errors.Wrapf(ErrNotDir, "inode %d", in.num)
	}
	fs := in.fs
	size := int64(in.Size)
	buf := make([]byte, fs.blockSize)
	for off := int64(0); off < size; off += fs.blockSize {
		n := fs.blockSize
		if rest := size - off; rest < n {
			n = rest
		}
		logical := uint32(off / fs.blockSize)
		phys := in.BlockAt(logical)
		if phys == 0 {
			continue
		}
		if err := fs.readAt(buf[:n], int64(phys)*fs.blockSize); err != nil {
			logrus.Warnf("skipping block %d of directory inode %d: %v", logical, in.num, err)
			continue
		}
		r := bytes.NewReader(buf[:n])
		var d Dirent
		for {
			if err := binary.Read(r, binary.LittleEndian, &d); err != nil {
				// End of block, or a ragged tail shorter than one
				// record; neither holds an entry.
				break
			}
			if d.Ino == 0 {
				continue
			}
			if err := cb(d.Filename(), d.Ino); err != nil {
				return err
			}
		}
	}
	return nil
}

// Lookup finds name in the directory and returns its inode number. The
// first matching entry wins. A name matches only when it equals the
// stored name exactly; stored names end at the first NUL or at the full
// 60 bytes, so components longer than 60 bytes never match.
func (in *Inode) Lookup(name string) (uint32, error) {
	var found uint32
	err := in.IterDirents(func(entry string, ino uint32) error {
		if entry == name {
			found = ino
			return errStopIteration
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopIteration) {
		return 0, err
	}
	if found == 0 {
		return 0, errors.Wrapf(ErrNotFound, "%q", name)
	}
	return found, nil
}
