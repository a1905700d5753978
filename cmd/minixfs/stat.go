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
	"github.com/minixfs/minixfs/pkg/minix"
)

// statCmd implements subcommands.Command for the "stat" command.
type statCmd struct {
	session sessionFlags
}

// Name implements subcommands.Command.Name.
func (*statCmd) Name() string {
	return "stat"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*statCmd) Synopsis() string {
	return "print the inode behind a path"
}

// Usage implements subcommands.Command.Usage.
func (*statCmd) Usage() string {
	return `stat [-v] [-p num [-s num]] <imagefile> <path>: print the inode behind a path
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (c *statCmd) SetFlags(f *flag.FlagSet) {
	c.session.register(f)
}

// Execute implements subcommands.Command.Execute.
func (c *statCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	o := c.session.options(args[0].(*config), f)

	s, err := cli.Open(f.Arg(0), o)
	if err != nil {
		logrus.Errorf("stat: %v", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	canonical := minix.CanonicalPath(f.Arg(1))
	in, err := s.FS.LookupPath(canonical)
	if err != nil {
		logrus.Errorf("stat: can't find %s: %v", canonical, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stdout, "%s\n%s", canonical, in.DebugString())
	return subcommands.ExitSuccess
}
