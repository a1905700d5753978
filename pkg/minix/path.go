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
	"strings"

	"github.com/pkg/errors"
)

// CanonicalPath returns path in canonical form: exactly one leading
// separator, no repeated separators and no trailing separator unless the
// result is the root. The empty path canonicalizes to the root.
// Canonicalization is idempotent.
//
// Unlike path.Clean, "." and ".." are not special: they name real
// directory entries and are looked up literally.
func CanonicalPath(path string) string {
	parts := make([]string, 0, strings.Count(path, "/")+1)
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return "/" + strings.Join(parts, "/")
}

// splitPath returns the components of a canonical path in walk order. The
// root has none.
func splitPath(canonical string) []string {
	if canonical == "/" {
		return nil
	}
	return strings.Split(canonical[1:], "/")
}

// LookupPath canonicalizes path and walks it component by component from
// the root directory, returning the inode of the final component. Every
// component except the last must be a directory (ErrNotDir otherwise);
// a component without a matching entry fails with ErrNotFound, as does a
// matched entry whose inode cannot be read.
func (fs *FileSystem) LookupPath(path string) (*Inode, error) {
	cur, err := fs.Root()
	if err != nil {
		return nil, err
	}
	components := splitPath(CanonicalPath(path))
	for i, name := range components {
		ino, err := cur.Lookup(name)
		if err != nil {
			return nil, err
		}
		next, err := fs.Inode(ino)
		if err != nil {
			return nil, errors.Wrapf(ErrNotFound, "%q: inode %d unreadable: %v", name, ino, err)
		}
		if i < len(components)-1 && !next.IsDir() {
			return nil, errors.Wrapf(ErrNotDir, "%q", name)
		}
		cur = next
	}
	return cur, nil
}
