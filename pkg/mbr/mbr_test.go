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

package mbr

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

// sector builds a 512-byte boot sector holding the given table slots and,
// unless broken is set, the 0x55 0xAA signature.
func sector(t *testing.T, slots map[int]Entry, broken bool) []byte {
	t.Helper()
	buf := make([]byte, SectorSize)
	for n, e := range slots {
		var w bytes.Buffer
		if err := binary.Write(&w, binary.LittleEndian, e); err != nil {
			t.Fatalf("encoding entry %d: %v", n, err)
		}
		copy(buf[TableOffset+16*n:], w.Bytes())
	}
	if !broken {
		buf[510] = 0x55
		buf[511] = 0xAA
	}
	return buf
}

func TestEntrySize(t *testing.T) {
	if got := binary.Size(Entry{}); got != 16 {
		t.Errorf("binary.Size(Entry{}) = %d, want 16", got)
	}
}

func TestReadTable(t *testing.T) {
	want := Entry{
		Bootind: 0x80,
		Type:    TypeMinix,
		First:   2,
		Sectors: 2048,
	}
	disk := sector(t, map[int]Entry{1: want}, false)

	table, err := ReadTable(bytes.NewReader(disk), 0)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	got, err := table.Entry(1)
	if err != nil {
		t.Fatalf("Entry(1): %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entry mismatch (-want +got):\n%s", diff)
	}
	if empty, err := table.Entry(0); err != nil || empty != (Entry{}) {
		t.Errorf("Entry(0) = %+v, %v, want zero entry", empty, err)
	}
}

func TestReadTableAtOffset(t *testing.T) {
	// A nested table living in the leading sector of a partition, the way
	// MINIX subpartitions are laid out.
	const partStart = 3 * SectorSize
	disk := make([]byte, partStart+SectorSize)
	copy(disk[partStart:], sector(t, map[int]Entry{0: {Type: TypeMinix, First: 5}}, false))

	table, err := ReadTable(bytes.NewReader(disk), partStart)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	e, err := table.Entry(0)
	if err != nil {
		t.Fatalf("Entry(0): %v", err)
	}
	if e.Start() != 5*SectorSize {
		t.Errorf("Start() = %d, want %d", e.Start(), 5*SectorSize)
	}
}

func TestReadTableBadSignature(t *testing.T) {
	// A valid-looking table must still be rejected when the signature is
	// missing.
	disk := sector(t, map[int]Entry{0: {Type: TypeMinix, First: 2}}, true)
	if _, err := ReadTable(bytes.NewReader(disk), 0); !errors.Is(err, ErrBadSignature) {
		t.Errorf("ReadTable = %v, want ErrBadSignature", err)
	}
}

func TestReadTableShortSector(t *testing.T) {
	disk := make([]byte, 100)
	if _, err := ReadTable(bytes.NewReader(disk), 0); err == nil {
		t.Error("ReadTable on a truncated sector succeeded, want error")
	}
}

func TestEntryOutOfRange(t *testing.T) {
	table, err := ReadTable(bytes.NewReader(sector(t, nil, false)), 0)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	for _, n := range []int{-1, 4, 100} {
		if _, err := table.Entry(n); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Entry(%d) = %v, want ErrOutOfRange", n, err)
		}
	}
}

func TestEntryStart(t *testing.T) {
	e := Entry{First: 2}
	if got := e.Start(); got != 1024 {
		t.Errorf("Start() = %d, want 1024", got)
	}
}
