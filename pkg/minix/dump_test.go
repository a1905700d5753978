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
	"strings"
	"testing"

	"github.com/minixfs/minixfs/pkg/minix"
	"github.com/minixfs/minixfs/pkg/minix/testutil"
)

func TestSuperBlockDebugString(t *testing.T) {
	b := testutil.NewBuilder()
	b.Root()
	fs := newFS(t, b)
	sb := fs.SuperBlock()

	got := sb.DebugString()
	for _, want := range []string{
		"Superblock contents:",
		"ninodes",
		"64",
		"magic",
		"0x4d5a",
		"blocksize",
		"1024",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DebugString() missing %q:\n%s", want, got)
		}
	}
}

func TestInodeDebugString(t *testing.T) {
	b := testutil.NewBuilder()
	b.Root()
	num := b.AddFile(minix.TypeRegular|0644, []byte("x"))
	fs := newFS(t, b)
	in, err := fs.Inode(num)
	if err != nil {
		t.Fatalf("Inode(%d) failed: %v", num, err)
	}

	got := in.DebugString()
	for _, want := range []string{
		"Inode 2:",
		"-rw-r--r--",
		"size",
		"direct zones:",
		"two_indirect",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DebugString() missing %q:\n%s", want, got)
		}
	}
}
