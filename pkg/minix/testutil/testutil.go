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

// Package testutil builds MINIX v3 filesystem images in memory for tests.
//
// A Builder assembles the metadata area (boot block, superblock, bitmaps,
// inode table) from a few knobs and lets tests place inodes and data
// blocks either by hand (SetInode, SetBlock) for hand-computed layouts or
// through small conveniences (AddFile, AddDirectory, Root). Builders
// panic on misuse; they run only under tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/minixfs/minixfs/pkg/mbr"
	"github.com/minixfs/minixfs/pkg/minix"
)

// DirEntry names one directory entry to install.
type DirEntry struct {
	Name string
	Ino  uint32
}

// Builder assembles a MINIX v3 filesystem image.
type Builder struct {
	BlockSize int // bytes per block, default 1024
	LogZone   int // log2 of blocks per zone, default 0
	Ninodes   int // inode table capacity, default 64
	IBlocks   int // inode bitmap blocks, default 1
	ZBlocks   int // zone bitmap blocks, default 1

	inodes  map[uint32]minix.RawInode
	blocks  map[uint32][]byte
	nextBlk uint32
	nextIno uint32
}

// NewBuilder returns a Builder with the default geometry: 1024-byte
// blocks, one block per zone, 64 inodes, one bitmap block each.
func NewBuilder() *Builder {
	return &Builder{
		BlockSize: 1024,
		Ninodes:   64,
		IBlocks:   1,
		ZBlocks:   1,
		inodes:    make(map[uint32]minix.RawInode),
		blocks:    make(map[uint32][]byte),
		nextIno:   minix.RootInode + 1,
	}
}

// FirstDataBlock returns the first block past the metadata area.
func (b *Builder) FirstDataBlock() uint32 {
	inodeBlocks := (b.Ninodes*minix.InodeSize + b.BlockSize - 1) / b.BlockSize
	return uint32(2 + b.IBlocks + b.ZBlocks + inodeBlocks)
}

// SetInode places a raw inode record at number num (1-based).
func (b *Builder) SetInode(num uint32, in minix.RawInode) {
	if num == 0 || num > uint32(b.Ninodes) {
		panic(fmt.Sprintf("testutil: inode %d outside table of %d", num, b.Ninodes))
	}
	b.inodes[num] = in
}

// SetBlock writes data into physical block n.
func (b *Builder) SetBlock(n uint32, data []byte) {
	if len(data) > b.BlockSize {
		panic(fmt.Sprintf("testutil: %d bytes exceed the %d-byte block size", len(data), b.BlockSize))
	}
	b.blocks[n] = append([]byte(nil), data...)
}

// AddBlock writes data into the next free data block and returns its
// physical block number. Allocation starts at the end of the metadata
// area; mixing AddBlock with SetBlock in that region is the test's
// responsibility.
func (b *Builder) AddBlock(data []byte) uint32 {
	if b.nextBlk == 0 {
		b.nextBlk = b.FirstDataBlock()
	}
	n := b.nextBlk
	b.nextBlk++
	b.SetBlock(n, data)
	return n
}

func (b *Builder) allocInode() uint32 {
	n := b.nextIno
	b.nextIno++
	if n > uint32(b.Ninodes) {
		panic(fmt.Sprintf("testutil: inode table of %d exhausted", b.Ninodes))
	}
	return n
}

// dataZones stores data in consecutive fresh blocks and returns the
// resulting direct zone pointers. Only the one-block-per-zone geometry
// can be populated this way; larger zones need hand placement.
func (b *Builder) dataZones(data []byte) [minix.DirectZones]uint32 {
	if b.LogZone != 0 {
		panic("testutil: automatic placement requires LogZone 0")
	}
	var zones [minix.DirectZones]uint32
	for i := 0; len(data) > 0; i++ {
		if i == len(zones) {
			panic("testutil: data exceeds the direct zones; place blocks by hand")
		}
		n := len(data)
		if n > b.BlockSize {
			n = b.BlockSize
		}
		zones[i] = b.AddBlock(data[:n])
		data = data[n:]
	}
	return zones
}

// AddFile stores data in fresh direct blocks under a new inode and
// returns the inode number.
func (b *Builder) AddFile(mode minix.FileMode, data []byte) uint32 {
	num := b.allocInode()
	b.SetInode(num, minix.RawInode{
		Mode:  mode,
		Links: 1,
		Size:  uint32(len(data)),
		Zone:  b.dataZones(data),
	})
	return num
}

// AddDirectory installs a new directory holding the given entries and
// returns its inode number.
func (b *Builder) AddDirectory(entries ...DirEntry) uint32 {
	num := b.allocInode()
	b.installDirectory(num, entries)
	return num
}

// Root installs the root directory (inode 1) with the given entries.
func (b *Builder) Root(entries ...DirEntry) {
	b.installDirectory(minix.RootInode, entries)
}

func (b *Builder) installDirectory(num uint32, entries []DirEntry) {
	var data []byte
	for _, e := range entries {
		data = append(data, DirentBytes(e.Ino, e.Name)...)
	}
	b.SetInode(num, minix.RawInode{
		Mode:  minix.TypeDirectory | 0755,
		Links: 2,
		Size:  uint32(len(data)),
		Zone:  b.dataZones(data),
	})
}

// DirentBytes encodes a single 64-byte directory entry.
func DirentBytes(ino uint32, name string) []byte {
	var d minix.Dirent
	d.Ino = ino
	if len(name) > len(d.Name) {
		panic(fmt.Sprintf("testutil: name %q exceeds 60 bytes", name))
	}
	copy(d.Name[:], name)
	return encode(&d)
}

// PointerBlock encodes zone pointers as the leading entries of an
// indirection block.
func PointerBlock(ptrs ...uint32) []byte {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, ptrs); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Bytes assembles the image.
func (b *Builder) Bytes() []byte {
	blocks := b.FirstDataBlock()
	for n := range b.blocks {
		if n+1 > blocks {
			blocks = n + 1
		}
	}
	bpz := uint32(1) << uint(b.LogZone)
	zones := (blocks + bpz - 1) / bpz

	sb := minix.SuperBlock{
		Ninodes:     uint32(b.Ninodes),
		IBlocks:     int16(b.IBlocks),
		ZBlocks:     int16(b.ZBlocks),
		Firstdata:   uint16((b.FirstDataBlock() + bpz - 1) / bpz),
		LogZoneSize: int16(b.LogZone),
		MaxFile:     0x7fffffff,
		Zones:       zones,
		Magic:       minix.SuperBlockMagic,
		BlockSize:   uint16(b.BlockSize),
		Subversion:  0,
	}

	img := make([]byte, int(blocks)*b.BlockSize)
	copy(img[minix.SuperBlockOffset:], encode(&sb))
	inodesOff := (2 + b.IBlocks + b.ZBlocks) * b.BlockSize
	for num, raw := range b.inodes {
		copy(img[inodesOff+int(num-1)*minix.InodeSize:], encode(&raw))
	}
	for n, data := range b.blocks {
		copy(img[int(n)*b.BlockSize:], data)
	}
	return img
}

// Reader returns the assembled image as an io.ReaderAt.
func (b *Builder) Reader() *bytes.Reader {
	return bytes.NewReader(b.Bytes())
}

func encode(v any) []byte {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// PartitionSector builds a 512-byte boot sector with the given table
// slots populated and the 0x55AA signature set.
func PartitionSector(slots map[int]mbr.Entry) []byte {
	sector := make([]byte, mbr.SectorSize)
	for n, e := range slots {
		if n < 0 || n > 3 {
			panic(fmt.Sprintf("testutil: partition slot %d outside 0..3", n))
		}
		copy(sector[mbr.TableOffset+16*n:], encode(&e))
	}
	sector[510] = 0x55
	sector[511] = 0xAA
	return sector
}

// Partitioned wraps a filesystem image behind a one-entry partition table
// so the filesystem starts at the given LBA.
func Partitioned(slot int, lba uint32, fsImage []byte) []byte {
	disk := make([]byte, int(lba)*mbr.SectorSize+len(fsImage))
	copy(disk, PartitionSector(map[int]mbr.Entry{slot: {
		Type:    mbr.TypeMinix,
		First:   lba,
		Sectors: uint32((len(fsImage) + mbr.SectorSize - 1) / mbr.SectorSize),
	}}))
	copy(disk[int(lba)*mbr.SectorSize:], fsImage)
	return disk
}
