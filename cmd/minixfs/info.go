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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/minixfs/minixfs/internal/cli"
)

// infoCmd implements subcommands.Command for the "info" command.
type infoCmd struct {
	session sessionFlags
}

// Name implements subcommands.Command.Name.
func (*infoCmd) Name() string {
	return "info"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*infoCmd) Synopsis() string {
	return "print the filesystem's superblock and geometry"
}

// Usage implements subcommands.Command.Usage.
func (*infoCmd) Usage() string {
	return `info [-v] [-p num [-s num]] <imagefile>: print the filesystem's superblock and geometry
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (c *infoCmd) SetFlags(f *flag.FlagSet) {
	c.session.register(f)
}

// Execute implements subcommands.Command.Execute.
func (c *infoCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	o := c.session.options(args[0].(*config), f)

	s, err := cli.Open(f.Arg(0), o)
	if err != nil {
		logrus.Errorf("info: %v", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	s.DumpTables(os.Stdout, o)
	fmt.Fprintf(os.Stdout, "%s: filesystem at byte offset %d\n", f.Arg(0), s.FS.Start())
	fmt.Fprintf(os.Stdout, "block size %d, zone size %d\n", s.FS.BlockSize(), s.FS.ZoneSize())
	sb := s.FS.SuperBlock()
	fmt.Fprint(os.Stdout, sb.DebugString())
	return subcommands.ExitSuccess
}
