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

package price_test

import (
	"testing"
	"time"

	"github.com/floeprotocol/floe-core/core/monitor/price"
	"github.com/floeprotocol/floe-core/core/types"
	"github.com/floeprotocol/floe-core/libs/num"

	"github.com/stretchr/testify/assert"
)

func TestCheckQuote(t *testing.T) {
	e := price.NewEngine(price.NewDefaultConfig())
	now := time.Now()

	quote := func(rate string, age time.Duration) types.PriceQuote {
		return types.PriceQuote{Rate: num.MustDecimalFromString(rate), Time: now.Add(-age)}
	}

	// fresh, sensible quote
	assert.Equal(t, types.PriceHealthy, e.CheckQuote(quote("10", 0), now))
	assert.Equal(t, types.PriceHealthy, e.CheckQuote(quote("10", 30*time.Second), now))

	// past the 30s freshness window
	assert.Equal(t, types.PriceStale, e.CheckQuote(quote("10", 31*time.Second), now))
	assert.Equal(t, types.PriceStale, e.CheckQuote(quote("10", time.Hour), now))

	// at or below the 0.01 floor the feed is failed, fresh or not
	assert.Equal(t, types.PriceFailed, e.CheckQuote(quote("0.01", 0), now))
	assert.Equal(t, types.PriceFailed, e.CheckQuote(quote("0.009", 0), now))
	assert.Equal(t, types.PriceFailed, e.CheckQuote(quote("0", 0), now))
	assert.Equal(t, types.PriceFailed, e.CheckQuote(quote("-1", 0), now))

	// failed wins over stale
	assert.Equal(t, types.PriceFailed, e.CheckQuote(quote("0.005", time.Hour), now))

	// just above the floor is valid
	assert.Equal(t, types.PriceHealthy, e.CheckQuote(quote("0.011", 0), now))
}
