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
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/minixfs/minixfs/internal/cli"
	"github.com/minixfs/minixfs/pkg/minix"
)

// getCmd implements subcommands.Command for the "get" command.
type getCmd struct {
	session sessionFlags
}

// Name implements subcommands.Command.Name.
func (*getCmd) Name() string {
	return "get"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*getCmd) Synopsis() string {
	return "copy a regular file out of an image"
}

// Usage implements subcommands.Command.Usage.
func (*getCmd) Usage() string {
	return `get [-v] [-p num [-s num]] <imagefile> <srcpath> [dstpath]: copy a regular file out of an image, to dstpath or stdout
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (c *getCmd) SetFlags(f *flag.FlagSet) {
	c.session.register(f)
}

// Execute implements subcommands.Command.Execute.
func (c *getCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 || f.NArg() > 3 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	o := c.session.options(args[0].(*config), f)

	s, err := cli.Open(f.Arg(0), o)
	if err != nil {
		logrus.Errorf("get: %v", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	canonical := minix.CanonicalPath(f.Arg(1))
	in, err := s.FS.LookupPath(canonical)
	if err != nil {
		logrus.Errorf("get: can't find %s: %v", canonical, err)
		return subcommands.ExitFailure
	}
	if o.Verbose {
		cli.DumpInode(in)
	}

	var w io.Writer = os.Stdout
	if f.NArg() == 3 {
		dst, err := os.Create(f.Arg(2))
		if err != nil {
			logrus.Errorf("get: %v", err)
			return subcommands.ExitFailure
		}
		defer func() {
			if err := dst.Close(); err != nil {
				logrus.Errorf("get: closing %s: %v", dst.Name(), err)
			}
		}()
		w = dst
	}
	if err := cli.Extract(w, in, canonical); err != nil {
		logrus.Errorf("get: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
