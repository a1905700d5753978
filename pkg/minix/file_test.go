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

package minix_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/minixfs/minixfs/pkg/minix"
	"github.com/minixfs/minixfs/pkg/minix/testutil"
)

// readInode opens inode num and reads its full content.
func readInode(t *testing.T, fs *minix.FileSystem, num uint32) []byte {
	t.Helper()
	in, err := fs.Inode(num)
	if err != nil {
		t.Fatalf("Inode(%d) failed: %v", num, err)
	}
	data, err := io.ReadAll(in.Reader())
	if err != nil {
		t.Fatalf("reading inode %d failed: %v", num, err)
	}
	return data
}

func TestReadFile(t *testing.T) {
	content := []byte("The quick brown fox jumps over the lazy dog.\n")
	b := testutil.NewBuilder()
	b.Root()
	num := b.AddFile(minix.TypeRegular|0644, content)
	fs := newFS(t, b)

	if got := readInode(t, fs, num); !bytes.Equal(got, content) {
		t.Errorf("content = %q, want %q", got, content)
	}
}

// TestReadFileMultiBlock spans three blocks with a partial final block.
func TestReadFileMultiBlock(t *testing.T) {
	content := make([]byte, 3000)
	for i := range content {
		content[i] = byte(i % 251)
	}
	b := testutil.NewBuilder()
	b.Root()
	num := b.AddFile(minix.TypeRegular|0644, content)
	fs := newFS(t, b)

	got := readInode(t, fs, num)
	if len(got) != len(content) {
		t.Fatalf("read %d bytes, want %d", len(got), len(content))
	}
	if !bytes.Equal(got, content) {
		t.Error("multi-block content does not round-trip")
	}
}

func TestReadEmptyFile(t *testing.T) {
	b := testutil.NewBuilder()
	b.Root()
	num := b.AddFile(minix.TypeRegular|0644, nil)
	fs := newFS(t, b)

	if got := readInode(t, fs, num); len(got) != 0 {
		t.Errorf("read %d bytes from an empty file, want 0", len(got))
	}
}

// TestReadFileHole reads across an unmapped middle block: the stream
// keeps the file's full length and the hole reads as zeros.
func TestReadFileHole(t *testing.T) {
	b := testutil.NewBuilder()
	b.Root()
	blkA := b.AddBlock(bytes.Repeat([]byte{'a'}, 1024))
	blkC := b.AddBlock(bytes.Repeat([]byte{'c'}, 1024))
	b.SetInode(2, minix.RawInode{
		Mode: minix.TypeRegular | 0644,
		Size: 3 * 1024,
		Zone: [minix.DirectZones]uint32{blkA, 0, blkC},
	})
	fs := newFS(t, b)

	want := make([]byte, 3*1024)
	copy(want, bytes.Repeat([]byte{'a'}, 1024))
	copy(want[2*1024:], bytes.Repeat([]byte{'c'}, 1024))

	got := readInode(t, fs, 2)
	if len(got) != len(want) {
		t.Fatalf("read %d bytes, want %d", len(got), len(want))
	}
	if !bytes.Equal(got, want) {
		t.Error("hole does not read as zeros")
	}
}

// TestReadFileTrailingHole claims a size past the last mapped zone. The
// tail must arrive as zeros rather than truncating the stream.
func TestReadFileTrailingHole(t *testing.T) {
	b := testutil.NewBuilder()
	b.Root()
	blk := b.AddBlock(bytes.Repeat([]byte{'x'}, 1024))
	b.SetInode(2, minix.RawInode{
		Mode: minix.TypeRegular | 0644,
		Size: 2500,
		Zone: [minix.DirectZones]uint32{blk},
	})
	fs := newFS(t, b)

	got := readInode(t, fs, 2)
	if len(got) != 2500 {
		t.Fatalf("read %d bytes, want 2500", len(got))
	}
	if !bytes.Equal(got[:1024], bytes.Repeat([]byte{'x'}, 1024)) {
		t.Error("mapped prefix does not round-trip")
	}
	if !bytes.Equal(got[1024:], make([]byte, 2500-1024)) {
		t.Error("unmapped tail is not zeros")
	}
}

func TestReadAtBounds(t *testing.T) {
	content := []byte("0123456789abcdef")
	b := testutil.NewBuilder()
	b.Root()
	num := b.AddFile(minix.TypeRegular|0644, content)
	fs := newFS(t, b)
	in, err := fs.Inode(num)
	if err != nil {
		t.Fatalf("Inode(%d) failed: %v", num, err)
	}
	r := in.Reader()
	size := int64(len(content))

	buf := make([]byte, 8)
	n, err := r.ReadAt(buf, 4)
	if err != nil || n != 8 {
		t.Errorf("ReadAt mid-file = (%d, %v), want (8, nil)", n, err)
	}
	if got := string(buf); got != "456789ab" {
		t.Errorf("ReadAt mid-file read %q, want %q", got, "456789ab")
	}

	n, err = r.ReadAt(buf, size-5)
	if n != 5 || err != io.EOF {
		t.Errorf("ReadAt at the tail = (%d, %v), want (5, EOF)", n, err)
	}

	n, err = r.ReadAt(buf, size)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadAt past the end = (%d, %v), want (0, EOF)", n, err)
	}
}
