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
	"fmt"
	"strings"
	"time"
)

// DebugString returns a multi-line dump of the superblock's stored fields
// for verbose diagnostics.
func (sb *SuperBlock) DebugString() string {
	var b strings.Builder
	b.WriteString("Superblock contents:\n")
	fmt.Fprintf(&b, "  ninodes       %10d\n", sb.Ninodes)
	fmt.Fprintf(&b, "  i_blocks      %10d\n", sb.IBlocks)
	fmt.Fprintf(&b, "  z_blocks      %10d\n", sb.ZBlocks)
	fmt.Fprintf(&b, "  firstdata     %10d\n", sb.Firstdata)
	if sb.LogZoneSize >= 0 && sb.LogZoneSize <= 16 {
		fmt.Fprintf(&b, "  log_zone_size %10d (zone size %d)\n",
			sb.LogZoneSize, int64(sb.BlockSize)<<uint(sb.LogZoneSize))
	} else {
		fmt.Fprintf(&b, "  log_zone_size %10d\n", sb.LogZoneSize)
	}
	fmt.Fprintf(&b, "  max_file      %10d\n", sb.MaxFile)
	fmt.Fprintf(&b, "  zones         %10d\n", sb.Zones)
	fmt.Fprintf(&b, "  magic             0x%04x\n", uint16(sb.Magic))
	fmt.Fprintf(&b, "  blocksize     %10d\n", sb.BlockSize)
	fmt.Fprintf(&b, "  subversion    %10d\n", sb.Subversion)
	return b.String()
}

// DebugString returns a multi-line dump of the inode's fields for verbose
// diagnostics.
func (in *Inode) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Inode %d:\n", in.num)
	fmt.Fprintf(&b, "  mode          0x%04x (%s)\n", uint16(in.Mode), in.Mode)
	fmt.Fprintf(&b, "  links         %10d\n", in.Links)
	fmt.Fprintf(&b, "  uid           %10d\n", in.UID)
	fmt.Fprintf(&b, "  gid           %10d\n", in.GID)
	fmt.Fprintf(&b, "  size          %10d\n", in.Size)
	fmt.Fprintf(&b, "  atime         %10d --- %s\n", in.ATime, dumpTime(in.ATime))
	fmt.Fprintf(&b, "  mtime         %10d --- %s\n", in.MTime, dumpTime(in.MTime))
	fmt.Fprintf(&b, "  ctime         %10d --- %s\n", in.CTime, dumpTime(in.CTime))
	b.WriteString("  direct zones:\n")
	for i, z := range in.Zone {
		fmt.Fprintf(&b, "    zone[%d]   %10d\n", i, z)
	}
	fmt.Fprintf(&b, "  indirect      %10d\n", in.Indirect)
	fmt.Fprintf(&b, "  two_indirect  %10d\n", in.TwoIndirect)
	return b.String()
}

func dumpTime(sec int32) string {
	return time.Unix(int64(sec), 0).Format(time.ANSIC)
}
