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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/minixfs/minixfs/pkg/minix"
	"github.com/minixfs/minixfs/pkg/minix/testutil"
)

// writeImage dumps content into a fresh file and returns its path.
func writeImage(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "disk.img")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestOpenImage(t *testing.T) {
	content := make([]byte, 4096)
	for i := range content {
		content[i] = byte(i % 251)
	}
	f, err := os.Open(writeImage(t, content))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	img, err := minix.OpenImage(f)
	if err != nil {
		f.Close()
		t.Fatalf("OpenImage failed: %v", err)
	}
	defer img.Close()

	if got, want := img.Size(), int64(len(content)); got != want {
		t.Errorf("Size() = %d, want %d", got, want)
	}
	b, err := img.BytesAt(100, 16)
	if err != nil {
		t.Fatalf("BytesAt(100, 16) failed: %v", err)
	}
	if !bytes.Equal(b, content[100:116]) {
		t.Errorf("BytesAt(100, 16) = %v, want %v", b, content[100:116])
	}

	p := make([]byte, 32)
	n, err := img.ReadAt(p, int64(len(content)-32))
	if err != nil {
		t.Fatalf("ReadAt failed: %v", err)
	}
	if n != 32 || !bytes.Equal(p, content[len(content)-32:]) {
		t.Errorf("ReadAt tail = %d bytes %v, want 32 bytes %v", n, p, content[len(content)-32:])
	}
}

func TestOpenImageEmpty(t *testing.T) {
	f, err := os.Open(writeImage(t, nil))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()
	if _, err := minix.OpenImage(f); err == nil {
		t.Fatal("OpenImage succeeded on an empty file, want error")
	}
}

// TestImageBounds checks that reads never cross the end of the mapping:
// an out-of-range request fails instead of returning short data.
func TestImageBounds(t *testing.T) {
	const size = 1024
	f, err := os.Open(writeImage(t, make([]byte, size)))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	img, err := minix.OpenImage(f)
	if err != nil {
		f.Close()
		t.Fatalf("OpenImage failed: %v", err)
	}
	defer img.Close()

	tests := []struct {
		name   string
		off, n int64
		wantOK bool
	}{
		{"negative offset", -1, 4, false},
		{"negative length", 0, -1, false},
		{"past the end", size, 1, false},
		{"crossing the end", size - 3, 4, false},
		{"whole image", 0, size, true},
		{"empty at the end", size, 0, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := img.BytesAt(test.off, test.n)
			if test.wantOK && err != nil {
				t.Errorf("BytesAt(%d, %d) failed: %v", test.off, test.n, err)
			}
			if !test.wantOK && err == nil {
				t.Errorf("BytesAt(%d, %d) succeeded, want error", test.off, test.n)
			}
		})
	}

	// ReadAt inherits the same strictness.
	if n, err := img.ReadAt(make([]byte, 8), size-4); err == nil {
		t.Errorf("ReadAt crossing the end returned %d bytes, want error", n)
	}
}

func TestOpen(t *testing.T) {
	b := testutil.NewBuilder()
	hello := b.AddFile(minix.TypeRegular|0644, []byte("hello\n"))
	b.Root(testutil.DirEntry{Name: "hello.txt", Ino: hello})

	fs, err := minix.Open(writeImage(t, b.Bytes()), minix.NoPartition, minix.NoPartition)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	in, err := fs.LookupPath("/hello.txt")
	if err != nil {
		t.Fatalf("LookupPath failed: %v", err)
	}
	if !in.IsRegular() {
		t.Errorf("mode = %s, want a regular file", in.Mode)
	}
	if err := fs.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	// Closing a closed session stays a no-op.
	if err := fs.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := minix.Open(filepath.Join(t.TempDir(), "nope.img"), minix.NoPartition, minix.NoPartition)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Open returned %v, want %v", err, os.ErrNotExist)
	}
}

func TestOpenBadImageClosesFile(t *testing.T) {
	// A readable file that is not a filesystem: Open must fail and must
	// not leak the mapping or the descriptor. The error path is enough to
	// exercise the cleanup; the leak itself would only show up under a
	// descriptor limit.
	path := writeImage(t, make([]byte, 64))
	if _, err := minix.Open(path, minix.NoPartition, minix.NoPartition); err == nil {
		t.Fatal("Open succeeded on junk, want error")
	}
}
