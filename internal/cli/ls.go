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

package cli

import (
	"fmt"
	"io"
	"path"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/minixfs/minixfs/pkg/minix"
)

// List writes a listing of in to w. Directories print a header line with
// the path followed by one line per entry; anything else prints a single
// line for the target itself, named by the final path component.
//
// Each line is the permission string, the size right-justified in nine
// columns and the name:
//
//	drwxr-xr-x       128 .
//	-rw-r--r--       193 hello.txt
//
// displayPath must be canonical; the caller resolves in from it.
func List(w io.Writer, fs *minix.FileSystem, in *minix.Inode, displayPath string) error {
	if !in.IsDir() {
		name := path.Base(displayPath)
		if name == "/" {
			name = "."
		}
		return listLine(w, in.Mode, in.Size, name)
	}

	if _, err := fmt.Fprintf(w, "%s:\n", displayPath); err != nil {
		return errors.Wrap(err, "writing listing")
	}
	return in.IterDirents(func(name string, ino uint32) error {
		entry, err := fs.Inode(ino)
		if err != nil {
			// Keep listing; the rest of the directory may be intact.
			logrus.Warnf("skipping %s: %v", name, err)
			return nil
		}
		return listLine(w, entry.Mode, entry.Size, name)
	})
}

func listLine(w io.Writer, mode minix.FileMode, size uint32, name string) error {
	if _, err := fmt.Fprintf(w, "%s %9d %s\n", mode, size, name); err != nil {
		return errors.Wrap(err, "writing listing")
	}
	return nil
}
