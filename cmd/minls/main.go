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

// Binary minls lists a file or directory inside a MINIX v3 filesystem
// image.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/minixfs/minixfs/internal/cli"
	"github.com/minixfs/minixfs/pkg/minix"
)

const usageText = `usage: minls [ -v ] [ -p num [ -s num ] ] imagefile [ path ]
Options:
  -p num  select partition for filesystem (default: none)
  -s num  select subpartition for filesystem (default: none)
  -h      help (prints usage and exits)
  -v      verbose (prints the partition tables, superblock and
          target inode to stderr)
`

func main() {
	part := flag.Int("p", minix.NoPartition, "select partition for filesystem (default: none)")
	sub := flag.Int("s", minix.NoPartition, "select subpartition for filesystem (default: none)")
	verbose := flag.Bool("v", false, "verbose output on stderr")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usageText) }
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(1)
	}
	image := flag.Arg(0)
	target := "/"
	if flag.NArg() == 2 {
		target = flag.Arg(1)
	}

	s, err := cli.Open(image, cli.Options{
		Partition:    *part,
		Subpartition: *sub,
		Verbose:      *verbose,
	})
	if err != nil {
		logrus.Fatalf("minls: %v", err)
	}
	defer s.Close()

	canonical := minix.CanonicalPath(target)
	in, err := s.FS.LookupPath(canonical)
	if err != nil {
		logrus.Fatalf("minls: can't find %s: %v", canonical, err)
	}
	if *verbose {
		cli.DumpInode(in)
	}
	if err := cli.List(os.Stdout, s.FS, in, canonical); err != nil {
		logrus.Fatalf("minls: %v", err)
	}
}
