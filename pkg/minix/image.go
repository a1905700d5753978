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
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Image is a disk image mapped read-only into memory. It implements
// io.ReaderAt over the mapping with strict bounds: a read that does not
// fit inside the image fails instead of returning short data.
type Image struct {
	src   *os.File
	bytes []byte
}

// OpenImage maps the open image file src read-only. On success the Image
// takes ownership of src and Close releases both the mapping and the
// file; on error src stays with the caller.
func OpenImage(src *os.File) (*Image, error) {
	stat, err := src.Stat()
	if err != nil {
		return nil, err
	}
	if stat.Size() == 0 {
		return nil, errors.Errorf("minix: %s is empty", src.Name())
	}
	b, err := unix.Mmap(int(src.Fd()), 0, int(stat.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Wrapf(err, "minix: mapping %s", src.Name())
	}
	return &Image{src: src, bytes: b}, nil
}

// Close unmaps and closes the image.
func (i *Image) Close() error {
	err := unix.Munmap(i.bytes)
	i.bytes = nil
	if cerr := i.src.Close(); err == nil {
		err = cerr
	}
	return err
}

// Size returns the image size in bytes.
func (i *Image) Size() int64 {
	return int64(len(i.bytes))
}

// ReadAt implements io.ReaderAt.
func (i *Image) ReadAt(p []byte, off int64) (int, error) {
	b, err := i.BytesAt(off, int64(len(p)))
	if err != nil {
		return 0, err
	}
	return copy(p, b), nil
}

// BytesAt returns the image bytes in [off, off+n) without copying. The
// range must lie entirely inside the image.
func (i *Image) BytesAt(off, n int64) ([]byte, error) {
	if off < 0 || n < 0 || off > int64(len(i.bytes)) || int64(len(i.bytes))-off < n {
		return nil, errors.Wrapf(io.ErrUnexpectedEOF, "minix: range [%d, %d) outside image of %d bytes", off, off+n, len(i.bytes))
	}
	return i.bytes[off : off+n : off+n], nil
}
