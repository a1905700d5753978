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

import "encoding/binary"

// BlockAt maps a logical block index of the file to a physical block
// number within the filesystem. 0 means a hole: the logical block has no
// backing zone and reads as zeros.
//
// A logical block selects a zone (zone index = block / blocksPerZone):
// zone indexes 0..6 come from the inode's direct pointers, the next
// blockSize/4 from the single indirect zone and the rest from the double
// indirect zone. A zero pointer at any level is a hole. An unreadable
// indirection block degrades to a hole as well, as do indexes past the
// double-indirect range, so a caller can walk a file of any claimed size
// without aborting on damaged metadata.
func (in *Inode) BlockAt(logical uint32) uint32 {
	fs := in.fs
	zi := logical / fs.blocksPerZone
	boff := logical % fs.blocksPerZone
	ptrs := fs.ptrsPerBlock

	var zone uint32
	switch {
	case zi < DirectZones:
		zone = in.Zone[zi]
	case zi < DirectZones+ptrs:
		zone = fs.zonePointer(in.Indirect, zi-DirectZones)
	default:
		rest := zi - DirectZones - ptrs
		if rest/ptrs >= ptrs {
			return 0
		}
		first := fs.zonePointer(in.TwoIndirect, rest/ptrs)
		zone = fs.zonePointer(first, rest%ptrs)
	}
	if zone == 0 {
		return 0
	}
	return zone*fs.blocksPerZone + boff
}

// zonePointer reads pointer idx from the indirection block at the start
// of the given zone. A zero zone, an unreadable block or a short read all
// yield 0, a hole.
func (fs *FileSystem) zonePointer(zone uint32, idx uint32) uint32 {
	if zone == 0 {
		return 0
	}
	var buf [4]byte
	off := int64(zone)*fs.zoneSize + int64(idx)*4
	if err := fs.readAt(buf[:], off); err != nil {
		return 0
	}
	return binary.LittleEndian.Uint32(buf[:])
}
