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

package price

import (
	"time"

	"github.com/floeprotocol/floe-core/config/encoding"
	"github.com/floeprotocol/floe-core/core/types"
	"github.com/floeprotocol/floe-core/libs/num"
	"github.com/floeprotocol/floe-core/logging"
)

// Config represent the configuration of the price monitoring engine.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	// Floor is the protocol wide minimum valid price, a quote at or below
	// it means the feed failed.
	Floor num.Decimal `long:"floor"`

	// FreshnessWindow is the age beyond which a quote is stale.
	FreshnessWindow encoding.Duration `long:"freshness-window"`

	// RefreshInterval is the periodic oracle poll interval, consumed by
	// the oracle client, carried here so both sides share one setting.
	RefreshInterval encoding.Duration `long:"refresh-interval"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:           encoding.LogLevel{Level: logging.InfoLevel},
		Floor:           num.MustDecimalFromString("0.01"),
		FreshnessWindow: encoding.Duration{Duration: 30 * time.Second},
		RefreshInterval: encoding.Duration{Duration: 300 * time.Second},
	}
}

// Engine classifies price quotes. Pure computation, the caller supplies
// the clock.
type Engine struct {
	Config
}

func NewEngine(config Config) *Engine {
	return &Engine{Config: config}
}

// CheckQuote classifies the health of a quote at the given instant. A non
// positive rate or a rate at or below the floor means the feed failed and
// the protocol goes read only. A quote past the freshness window is stale,
// it may still be displayed flagged but never authorizes new debt.
func (e *Engine) CheckQuote(q types.PriceQuote, now time.Time) types.PriceHealth {
	if !q.Rate.IsPositive() || q.Rate.LessThanOrEqual(e.Floor) {
		return types.PriceFailed
	}
	if q.Age(now) > e.FreshnessWindow.Get() {
		return types.PriceStale
	}
	return types.PriceHealthy
}
