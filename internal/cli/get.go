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
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/minixfs/minixfs/pkg/minix"
)

// Extract copies the regular file in to w. Holes arrive as zeros, so the
// output length always equals the inode's size.
func Extract(w io.Writer, in *minix.Inode, displayPath string) error {
	if !in.IsRegular() {
		return errors.Errorf("%s is not a regular file", displayPath)
	}
	logrus.Debugf("copying %d bytes from %s", in.Size, displayPath)
	n, err := io.Copy(w, in.Reader())
	if err != nil {
		return errors.Wrapf(err, "copying %s after %d bytes", displayPath, n)
	}
	return nil
}
