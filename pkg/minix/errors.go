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

// Sentinel errors returned by this package. Callers match them with
// errors.Is; returned values usually wrap them with offending names,
// numbers or offsets.
var (
	// ErrBadMagic indicates a superblock whose magic is not 0x4D5A.
	ErrBadMagic = errors.New("minix: bad superblock magic")

	// ErrNotMinixPartition indicates a partition table entry whose type
	// byte is not the MINIX type (0x81).
	ErrNotMinixPartition = errors.New("minix: not a minix partition")

	// ErrInvalidInode indicates an inode number of 0 or beyond the
	// superblock's inode count.
	ErrInvalidInode = errors.New("minix: invalid inode number")

	// ErrNotFound indicates a path component with no matching directory
	// entry.
	ErrNotFound = errors.New("minix: no such file or directory")

	// ErrNotDir indicates a directory operation against a non-directory
	// inode, including descending through one during a path walk.
	ErrNotDir = errors.New("minix: not a directory")
)
