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
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/minixfs/minixfs/internal/cli"
	"github.com/minixfs/minixfs/pkg/minix"
)

// config holds the session defaults a subcommand starts from. Flags given
// on the subcommand override these per run.
type config struct {
	// Partition is the default primary partition, -1 for none.
	Partition int `toml:"partition"`

	// Subpartition is the default subpartition, -1 for none.
	Subpartition int `toml:"subpartition"`

	// Verbose dumps filesystem metadata to stderr on every command.
	Verbose bool `toml:"verbose"`
}

func defaultConfig() *config {
	return &config{
		Partition:    minix.NoPartition,
		Subpartition: minix.NoPartition,
	}
}

// loadConfig reads defaults from a TOML file over the built-in ones. An
// empty path keeps the built-ins.
func loadConfig(path string) (*config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	if _, err := toml.DecodeFile(path, c); err != nil {
		return nil, errors.Wrapf(err, "loading config %s", path)
	}
	return c, nil
}

// options converts the defaults into session options.
func (c *config) options() cli.Options {
	return cli.Options{
		Partition:    c.Partition,
		Subpartition: c.Subpartition,
		Verbose:      c.Verbose,
	}
}
