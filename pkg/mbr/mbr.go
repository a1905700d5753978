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

// Package mbr decodes the classic PC boot-record partition table found in
// the leading sector of a disk image. MINIX images reuse the same 16-byte
// entry format for subpartitions, with the nested table living in the
// leading sector of the enclosing partition.
package mbr

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	// SectorSize is the size of an LBA sector. Entry.First counts these.
	SectorSize = 512

	// TableOffset is the byte offset of the partition table within its
	// boot sector.
	TableOffset = 0x1BE

	// TypeMinix is the partition type byte of a MINIX filesystem.
	TypeMinix = 0x81
)

var (
	// ErrBadSignature is returned when a boot sector does not end with
	// the 0x55 0xAA signature.
	ErrBadSignature = errors.New("mbr: bad boot sector signature")

	// ErrOutOfRange is returned for partition indexes outside 0..3.
	ErrOutOfRange = errors.New("mbr: partition index out of range")
)

// Entry is one 16-byte partition table slot. The CHS fields are carried
// for completeness; all arithmetic uses the LBA fields.
type Entry struct {
	Bootind   uint8
	StartHead uint8
	StartSec  uint8
	StartCyl  uint8
	Type      uint8
	EndHead   uint8
	EndSec    uint8
	EndCyl    uint8
	First     uint32 // LBA of the first sector
	Sectors   uint32 // length in sectors
}

// Start returns the byte offset of the partition's first sector on the
// underlying media.
func (e Entry) Start() int64 {
	return int64(e.First) * SectorSize
}

// IsMinix reports whether the entry is typed as a MINIX partition.
func (e Entry) IsMinix() bool {
	return e.Type == TypeMinix
}

// Table is a decoded boot-record partition table.
type Table struct {
	Entries [4]Entry
}

// ReadTable reads the 512-byte boot-record sector at byte offset off on
// dev and decodes the partition table inside it. The sector must carry
// the 0x55 0xAA signature in its last two bytes; ErrBadSignature is
// returned otherwise, regardless of table contents.
func ReadTable(dev io.ReaderAt, off int64) (*Table, error) {
	var sector [SectorSize]byte
	if _, err := dev.ReadAt(sector[:], off); err != nil {
		return nil, errors.Wrapf(err, "mbr: reading boot sector at offset %d", off)
	}
	if sector[510] != 0x55 || sector[511] != 0xAA {
		return nil, errors.Wrapf(ErrBadSignature, "0x%02x%02x", sector[510], sector[511])
	}
	var t Table
	r := bytes.NewReader(sector[TableOffset : TableOffset+64])
	if err := binary.Read(r, binary.LittleEndian, &t.Entries); err != nil {
		return nil, errors.Wrap(err, "mbr: decoding partition table")
	}
	return &t, nil
}

// Entry returns table slot n, or ErrOutOfRange if n is not in 0..3.
func (t *Table) Entry(n int) (Entry, error) {
	if n < 0 || n >= len(t.Entries) {
		return Entry{}, errors.Wrapf(ErrOutOfRange, "partition %d", n)
	}
	return t.Entries[n], nil
}

// DebugString returns a human-readable rendering of the table's slots,
// one line per slot. Callers supply their own heading.
func (t *Table) DebugString() string {
	var b strings.Builder
	b.WriteString("  slot  boot  type       first     sectors\n")
	for i, e := range t.Entries {
		fmt.Fprintf(&b, "  %4d  0x%02x  0x%02x  %10d  %10d\n",
			i, e.Bootind, e.Type, e.First, e.Sectors)
	}
	return b.String()
}
