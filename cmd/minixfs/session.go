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
	"flag"

	"github.com/minixfs/minixfs/internal/cli"
	"github.com/minixfs/minixfs/pkg/minix"
)

// sessionFlags is the flag triple every verb carries to select the
// filesystem within an image.
type sessionFlags struct {
	partition    int
	subpartition int
	verbose      bool
}

func (s *sessionFlags) register(f *flag.FlagSet) {
	f.IntVar(&s.partition, "p", minix.NoPartition, "select partition for filesystem (default: none)")
	f.IntVar(&s.subpartition, "s", minix.NoPartition, "select subpartition for filesystem (default: none)")
	f.BoolVar(&s.verbose, "v", false, "dump filesystem metadata to stderr")
}

// options starts from the config defaults and overrides them with the
// flags explicitly set on f.
func (s *sessionFlags) options(conf *config, f *flag.FlagSet) cli.Options {
	o := conf.options()
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "p":
			o.Partition = s.partition
		case "s":
			o.Subpartition = s.subpartition
		case "v":
			o.Verbose = s.verbose
		}
	})
	return o
}
