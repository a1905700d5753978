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

// Package cli carries the pieces shared by the image tools: session
// options, image opening with verbose diagnostics, directory listing and
// file extraction.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/minixfs/minixfs/pkg/cleanup"
	"github.com/minixfs/minixfs/pkg/mbr"
	"github.com/minixfs/minixfs/pkg/minix"
)

// Options selects the filesystem within an image and the diagnostic
// level. The zero value is not useful; use DefaultOptions.
type Options struct {
	// Partition selects a primary partition, minix.NoPartition for an
	// unpartitioned image.
	Partition int

	// Subpartition selects a subpartition within Partition. Requires
	// Partition to be set.
	Subpartition int

	// Verbose dumps the partition tables, the superblock and the target
	// inode to stderr.
	Verbose bool
}

// DefaultOptions addresses an unpartitioned image quietly.
func DefaultOptions() Options {
	return Options{Partition: minix.NoPartition, Subpartition: minix.NoPartition}
}

// Validate rejects option combinations the tools refuse up front.
func (o Options) Validate() error {
	if o.Subpartition != minix.NoPartition && o.Partition == minix.NoPartition {
		return errors.New("a subpartition requires a partition (-s needs -p)")
	}
	return nil
}

// Session is an open image with the selected filesystem inside it.
type Session struct {
	FS *minix.FileSystem

	img *minix.Image
}

// Open maps the image at path and opens the MINIX filesystem selected by
// the options. With Verbose set, the partition tables involved and the
// superblock are dumped to stderr on the way in.
func Open(path string, o Options) (*Session, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	img, err := minix.OpenImage(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	var cu cleanup.Cleanup
	defer cu.Clean()
	cu.Add(func() { img.Close() })

	if o.Verbose {
		o.dumpTables(os.Stderr, img)
	}
	fs, err := minix.New(img, o.Partition, o.Subpartition)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("%s: filesystem at byte offset %d", path, fs.Start())
	if o.Verbose {
		sb := fs.SuperBlock()
		fmt.Fprint(os.Stderr, sb.DebugString())
	}

	cu.Release()
	return &Session{FS: fs, img: img}, nil
}

// Close releases the mapped image.
func (s *Session) Close() error {
	return s.img.Close()
}

// DumpTables writes the partition tables the options select to w. It is
// a no-op for unpartitioned opens.
func (s *Session) DumpTables(w io.Writer, o Options) {
	o.dumpTables(w, s.img)
}

// dumpTables prints the partition tables the options walk through. Read
// failures are left for the subsequent open to report.
func (o Options) dumpTables(w io.Writer, dev io.ReaderAt) {
	if o.Partition == minix.NoPartition {
		return
	}
	t, err := mbr.ReadTable(dev, 0)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "Partition table:\n%s", t.DebugString())
	if o.Subpartition == minix.NoPartition {
		return
	}
	e, err := t.Entry(o.Partition)
	if err != nil || !e.IsMinix() {
		return
	}
	sub, err := mbr.ReadTable(dev, e.Start())
	if err != nil {
		return
	}
	fmt.Fprintf(w, "Subpartition table of partition %d:\n%s", o.Partition, sub.DebugString())
}

// DumpInode prints the inode's fields to stderr. The tools call it for
// the target of a verbose run.
func DumpInode(in *minix.Inode) {
	fmt.Fprint(os.Stderr, in.DebugString())
}
