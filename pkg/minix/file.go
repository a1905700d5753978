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

	"github.com/pkg/errors"
)

// fileReader serves an inode's content as an io.ReaderAt. Logical blocks
// resolve through BlockAt; holes read as zeros; reads clamp to the file
// size, truncating the final block to the remaining bytes.
type fileReader struct {
	in *Inode
}

// ReadAt implements io.ReaderAt.
func (r *fileReader) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errors.New("minix: negative read offset")
	}
	size := int64(r.in.Size)
	if off >= size {
		return 0, io.EOF
	}
	short := false
	if int64(len(p)) > size-off {
		p = p[:size-off]
		short = true
	}

	fs := r.in.fs
	done := 0
	for done < len(p) {
		cur := off + int64(done)
		logical := uint32(cur / fs.blockSize)
		within := cur % fs.blockSize
		n := int(fs.blockSize - within)
		if n > len(p)-done {
			n = len(p) - done
		}
		chunk := p[done : done+n]
		if phys := r.in.BlockAt(logical); phys == 0 {
			for i := range chunk {
				chunk[i] = 0
			}
		} else if err := fs.readAt(chunk, int64(phys)*fs.blockSize+within); err != nil {
			return done, err
		}
		done += n
	}
	if short {
		return done, io.EOF
	}
	return done, nil
}

// Reader returns a reader over the inode's full content. Holes read as
// zeros and the stream ends exactly at the inode's size.
func (in *Inode) Reader() *io.SectionReader {
	return io.NewSectionReader(&fileReader{in: in}, 0, int64(in.Size))
}
