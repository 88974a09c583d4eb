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

package types

import (
	"time"

	"github.com/floeprotocol/floe-core/libs/num"
)

// PriceQuote is one observation from the price oracle, the price of one
// collateral asset unit in stablecoin units.
type PriceQuote struct {
	Rate num.Decimal
	Time time.Time
}

// Age returns how long ago the quote was acquired relative to now.
func (q PriceQuote) Age(now time.Time) time.Duration {
	return now.Sub(q.Time)
}

// PriceHealth classifies the state of the price feed.
type PriceHealth int

const (
	// PriceHealthy means the quote is fresh and above the protocol floor.
	PriceHealthy PriceHealth = iota
	// PriceStale means the quote exceeded the freshness window. It may
	// still be displayed with a staleness flag but must never authorize a
	// debt increasing operation.
	PriceStale
	// PriceFailed means the feed is unusable, the quote is at or below the
	// protocol floor, non positive, or the oracle is unreachable.
	PriceFailed
)

func (h PriceHealth) String() string {
	switch h {
	case PriceHealthy:
		return "healthy"
	case PriceStale:
		return "stale"
	case PriceFailed:
		return "failed"
	default:
		return "unknown"
	}
}
