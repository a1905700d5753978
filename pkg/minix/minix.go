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

// Package minix provides read-only access to MINIX version 3 filesystem
// images, optionally nested behind a PC partition table and one level of
// subpartitioning.
//
// The design principle of this package is that it only decodes what a
// caller asks for and never caches blocks, inodes or directory entries
// internally: every operation reads through the session's io.ReaderAt.
// Images opened from a file are mapped read-only and rely on the host
// kernel to cache pages transparently.
//
// A FileSystem and the Inodes handed out by it are safe for concurrent
// use only when the underlying device's ReadAt is; the package itself
// keeps no mutable state after Open/New returns.
package minix

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/minixfs/minixfs/pkg/cleanup"
	"github.com/minixfs/minixfs/pkg/mbr"
)

const (
	// SuperBlockOffset is the byte offset of the superblock from the
	// start of the filesystem.
	SuperBlockOffset = 1024

	// SuperBlockMagic identifies a MINIX v3 superblock.
	SuperBlockMagic = 0x4D5A

	// RootInode is the inode number of the root directory. Inode numbers
	// are 1-based; 0 marks an empty directory slot.
	RootInode = 1

	// InodeSize is the size of an on-disk inode record.
	InodeSize = 64

	// DirentSize is the size of an on-disk directory entry.
	DirentSize = 64

	// DirectZones is the number of direct zone pointers in an inode.
	DirectZones = 7

	// NoPartition skips a partition level in New and Open.
	NoPartition = -1
)

// SuperBlock is the on-disk MINIX v3 superblock, little-endian.
type SuperBlock struct {
	Ninodes     uint32
	Pad1        uint16
	IBlocks     int16
	ZBlocks     int16
	Firstdata   uint16
	LogZoneSize int16
	Pad2        int16
	MaxFile     uint32
	Zones       uint32
	Magic       int16
	Pad3        int16
	BlockSize   uint16
	Subversion  uint8
}

// Validate checks the magic and the geometry fields this package divides
// and shifts by.
func (sb *SuperBlock) Validate() error {
	if sb.Magic != SuperBlockMagic {
		return errors.Wrapf(ErrBadMagic, "0x%04x", uint16(sb.Magic))
	}
	if sb.BlockSize == 0 || sb.BlockSize%64 != 0 {
		return errors.Errorf("minix: unsupported block size %d", sb.BlockSize)
	}
	if sb.LogZoneSize < 0 || sb.LogZoneSize > 16 {
		return errors.Errorf("minix: unsupported log zone size %d", sb.LogZoneSize)
	}
	if sb.IBlocks < 0 || sb.ZBlocks < 0 {
		return errors.Errorf("minix: negative bitmap sizes (%d inode, %d zone)", sb.IBlocks, sb.ZBlocks)
	}
	return nil
}

// FileSystem is an open session against one MINIX filesystem within an
// image: the device, the filesystem's start offset on it, the validated
// superblock and the geometry derived from it. All reads by this package
// go through the session.
type FileSystem struct {
	dev   io.ReaderAt
	img   *Image // non-nil when the session owns the backing image
	start int64  // byte offset of the filesystem on dev
	sb    SuperBlock

	blockSize     int64
	zoneSize      int64
	blocksPerZone uint32
	ptrsPerBlock  uint32
	inodesOff     int64 // inode table offset, relative to start
}

// New opens the MINIX filesystem on dev. part selects a primary partition
// (0..3) and sub a subpartition inside it; pass NoPartition for either to
// skip that level. Partition entries must be typed MINIX (0x81). The
// caller keeps ownership of dev.
func New(dev io.ReaderAt, part, sub int) (*FileSystem, error) {
	start, err := locate(dev, part, sub)
	if err != nil {
		return nil, err
	}
	fs := &FileSystem{dev: dev, start: start}
	if err := fs.initSuperBlock(); err != nil {
		return nil, err
	}
	return fs, nil
}

// Open opens the image file at path and the MINIX filesystem inside it.
// The returned FileSystem owns the mapped image; Close releases it.
func Open(path string, part, sub int) (*FileSystem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	img, err := OpenImage(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	var cu cleanup.Cleanup
	defer cu.Clean()
	cu.Add(func() { img.Close() })

	fs, err := New(img, part, sub)
	if err != nil {
		return nil, err
	}
	fs.img = img
	cu.Release()
	return fs, nil
}

// Close releases the backing image when the session owns one. It is a
// no-op for sessions created over a caller-provided device.
func (fs *FileSystem) Close() error {
	if fs.img == nil {
		return nil
	}
	err := fs.img.Close()
	fs.img = nil
	return err
}

// locate resolves the filesystem's byte offset through up to two levels
// of partition tables.
func locate(dev io.ReaderAt, part, sub int) (int64, error) {
	if part == NoPartition {
		if sub != NoPartition {
			return 0, errors.New("minix: subpartition given without a partition")
		}
		return 0, nil
	}
	start, err := partitionStart(dev, 0, part)
	if err != nil {
		return 0, err
	}
	if sub == NoPartition {
		return start, nil
	}
	// The subpartition table lives in the primary partition's own leading
	// sector; its entries hold absolute LBAs.
	return partitionStart(dev, start, sub)
}

// partitionStart reads the partition table in the sector at sectorOff and
// returns the byte offset of entry n, which must be typed MINIX.
func partitionStart(dev io.ReaderAt, sectorOff int64, n int) (int64, error) {
	t, err := mbr.ReadTable(dev, sectorOff)
	if err != nil {
		return 0, err
	}
	e, err := t.Entry(n)
	if err != nil {
		return 0, err
	}
	if !e.IsMinix() {
		return 0, errors.Wrapf(ErrNotMinixPartition, "partition %d has type 0x%02x", n, e.Type)
	}
	return e.Start(), nil
}

func (fs *FileSystem) initSuperBlock() error {
	if err := fs.readObject(SuperBlockOffset, &fs.sb); err != nil {
		return errors.Wrap(err, "minix: reading superblock")
	}
	if err := fs.sb.Validate(); err != nil {
		return err
	}
	fs.blockSize = int64(fs.sb.BlockSize)
	fs.blocksPerZone = 1 << uint(fs.sb.LogZoneSize)
	fs.zoneSize = fs.blockSize << uint(fs.sb.LogZoneSize)
	fs.ptrsPerBlock = uint32(fs.blockSize / 4)
	fs.inodesOff = (2 + int64(fs.sb.IBlocks) + int64(fs.sb.ZBlocks)) * fs.blockSize
	return nil
}

// SuperBlock returns a copy of the session's validated superblock.
func (fs *FileSystem) SuperBlock() SuperBlock {
	return fs.sb
}

// Start returns the byte offset of the filesystem within the image.
func (fs *FileSystem) Start() int64 {
	return fs.start
}

// BlockSize returns the filesystem's block size in bytes.
func (fs *FileSystem) BlockSize() int64 {
	return fs.blockSize
}

// ZoneSize returns the filesystem's zone size in bytes.
func (fs *FileSystem) ZoneSize() int64 {
	return fs.zoneSize
}

// readAt reads exactly len(p) bytes at off, relative to the filesystem
// start. A short read is an error, never truncated data.
func (fs *FileSystem) readAt(p []byte, off int64) error {
	if _, err := fs.dev.ReadAt(p, fs.start+off); err != nil {
		return errors.Wrapf(err, "minix: reading %d bytes at offset %d", len(p), off)
	}
	return nil
}

// readObject decodes the little-endian record at off, relative to the
// filesystem start.
func (fs *FileSystem) readObject(off int64, v any) error {
	sr := io.NewSectionReader(fs.dev, fs.start+off, int64(binary.Size(v)))
	return binary.Read(sr, binary.LittleEndian, v)
}
