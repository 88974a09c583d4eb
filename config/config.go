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

package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/floeprotocol/floe-core/core/fee"
	"github.com/floeprotocol/floe-core/core/monitor/price"
	"github.com/floeprotocol/floe-core/core/risk"
	"github.com/floeprotocol/floe-core/logging"
	"github.com/floeprotocol/floe-core/metrics"
	"github.com/floeprotocol/floe-core/oracle"
	"github.com/floeprotocol/floe-core/service"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const configFileName = "config.toml"

// Config ties together all other application configuration types.
type Config struct {
	Logging logging.Config `group:"Logging" namespace:"logging"`
	Risk    risk.Config    `group:"Risk" namespace:"risk"`
	Fee     fee.Config     `group:"Fee" namespace:"fee"`
	Price   price.Config   `group:"Price" namespace:"price"`
	Oracle  oracle.Config  `group:"Oracle" namespace:"oracle"`
	Service service.Config `group:"Service" namespace:"service"`
	Metrics metrics.Config `group:"Metrics" namespace:"metrics"`
}

// NewDefaultConfig returns a set of default configs for all packages, as
// specified at the per package config level.
func NewDefaultConfig() Config {
	return Config{
		Logging: logging.NewDefaultConfig(),
		Risk:    risk.NewDefaultConfig(),
		Fee:     fee.NewDefaultConfig(),
		Price:   price.NewDefaultConfig(),
		Oracle:  oracle.NewDefaultConfig(),
		Service: service.NewDefaultConfig(),
		Metrics: metrics.NewDefaultConfig(),
	}
}

// Read loads the configuration file found under the given root path, any
// field not present in the file keeps its default.
func Read(rootPath string) (*Config, error) {
	path := filepath.Join(rootPath, configFileName)
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read configuration at %s", path)
	}
	cfg := NewDefaultConfig()
	if _, err := toml.Decode(string(buf), &cfg); err != nil {
		return nil, errors.Wrapf(err, "unable to decode configuration at %s", path)
	}
	return &cfg, nil
}

// Write serialises the given configuration under the root path, creating
// the directory when needed. Used by the init command.
func Write(rootPath string, cfg Config) error {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return errors.Wrapf(err, "unable to create configuration directory %s", rootPath)
	}
	buf := &bytes.Buffer{}
	if err := toml.NewEncoder(buf).Encode(cfg); err != nil {
		return errors.Wrap(err, "unable to encode configuration")
	}
	path := filepath.Join(rootPath, configFileName)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "unable to write configuration at %s", path)
	}
	return nil
}
