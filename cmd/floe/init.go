// Copyright (C) 2025 Floe Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/floeprotocol/floe-core/config"

	"github.com/jessevdk/go-flags"
)

// InitCmd describes the `floe init` command, it generates the minimal
// configuration required for the tooling to start.
type InitCmd struct {
	RootPath string `short:"r" long:"root-path" description:"Path of the root directory in which the configuration will be located"`
	Force    bool   `short:"f" long:"force" description:"Erase existing configuration at the specified path"`
}

var initCmd InitCmd

func Init(ctx context.Context, parser *flags.Parser) error {
	initCmd = InitCmd{
		RootPath: defaultRootPath(),
	}
	_, err := parser.AddCommand("init", "Generate the default configuration",
		"Generate the minimal configuration required for the floe tooling to start", &initCmd)
	return err
}

func (cmd *InitCmd) Execute(_ []string) error {
	if _, err := os.Stat(filepath.Join(cmd.RootPath, "config.toml")); err == nil && !cmd.Force {
		return fmt.Errorf("configuration already exists at %q, remove it first or re-run using -f", cmd.RootPath)
	}

	if err := config.Write(cmd.RootPath, config.NewDefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("configuration generated at %s\n", cmd.RootPath)
	return nil
}

func defaultRootPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".floe"
	}
	return filepath.Join(home, ".floe")
}
