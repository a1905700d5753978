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

// Binary minixfs is the multi-command front end for inspecting MINIX v3
// filesystem images: listing, extraction, inode and superblock dumps.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "", "TOML file with default session options")
	debug      = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(new(lsCmd), "")
	subcommands.Register(new(getCmd), "")
	subcommands.Register(new(statCmd), "")
	subcommands.Register(new(infoCmd), "")

	// All subcommands must be registered before flag parsing.
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	conf, err := loadConfig(*configPath)
	if err != nil {
		logrus.Fatalf("minixfs: %v", err)
	}
	os.Exit(int(subcommands.Execute(context.Background(), conf)))
}
