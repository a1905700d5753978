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
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/minixfs/minixfs/internal/cli"
	"github.com/minixfs/minixfs/pkg/minix"
)

// lsCmd implements subcommands.Command for the "ls" command.
type lsCmd struct {
	session sessionFlags
}

// Name implements subcommands.Command.Name.
func (*lsCmd) Name() string {
	return "ls"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*lsCmd) Synopsis() string {
	return "list a file or directory inside an image"
}

// Usage implements subcommands.Command.Usage.
func (*lsCmd) Usage() string {
	return `ls [-v] [-p num [-s num]] <imagefile> [path]: list a file or directory inside an image
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (c *lsCmd) SetFlags(f *flag.FlagSet) {
	c.session.register(f)
}

// Execute implements subcommands.Command.Execute.
func (c *lsCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 || f.NArg() > 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	o := c.session.options(args[0].(*config), f)

	target := "/"
	if f.NArg() == 2 {
		target = f.Arg(1)
	}
	s, err := cli.Open(f.Arg(0), o)
	if err != nil {
		logrus.Errorf("ls: %v", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	canonical := minix.CanonicalPath(target)
	in, err := s.FS.LookupPath(canonical)
	if err != nil {
		logrus.Errorf("ls: can't find %s: %v", canonical, err)
		return subcommands.ExitFailure
	}
	if o.Verbose {
		cli.DumpInode(in)
	}
	if err := cli.List(os.Stdout, s.FS, in, canonical); err != nil {
		logrus.Errorf("ls: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
