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

package oracle

import (
	"time"

	"github.com/floeprotocol/floe-core/config/encoding"
	"github.com/floeprotocol/floe-core/logging"
)

const namedLogger = "oracle"

// Config represent the configuration of the oracle client.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	// Endpoint is the HTTP endpoint serving the exchange rate.
	Endpoint string `long:"endpoint"`

	// PollInterval is the periodic refresh interval.
	PollInterval encoding.Duration `long:"poll-interval"`

	// StalenessBound is the cache age beyond which Refresh forces a fetch
	// before a debt affecting operation proceeds.
	StalenessBound encoding.Duration `long:"staleness-bound"`

	// Retries bounds the exponential backoff retry attempts per fetch.
	Retries uint64 `long:"retries"`

	// RequestTimeout bounds a single HTTP fetch.
	RequestTimeout encoding.Duration `long:"request-timeout"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:          encoding.LogLevel{Level: logging.InfoLevel},
		Endpoint:       "http://127.0.0.1:8547/rate",
		PollInterval:   encoding.Duration{Duration: 300 * time.Second},
		StalenessBound: encoding.Duration{Duration: 30 * time.Second},
		Retries:        5,
		RequestTimeout: encoding.Duration{Duration: 5 * time.Second},
	}
}
