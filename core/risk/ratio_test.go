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

package risk

import (
	"testing"
	"time"

	"github.com/floeprotocol/floe-core/core/types"
	"github.com/floeprotocol/floe-core/libs/num"
	"github.com/floeprotocol/floe-core/logging"

	"github.com/stretchr/testify/require"
)

func testCollateralConfig() *types.CollateralConfig {
	return &types.CollateralConfig{
		Symbol:          "ICP",
		Decimals:        8,
		StableDecimals:  8,
		MinimumCR:       num.MustDecimalFromString("1.5"),
		LiquidationCR:   num.MustDecimalFromString("1.33"),
		InterestRateAPR: num.DecimalZero(),
		MinVaultDebt:    num.NewUint(100_000_000), // 1 stable unit
		LedgerFee:       num.NewUint(10_000),
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(logging.NewTestLogger(), NewDefaultConfig(), testCollateralConfig())
	require.NoError(t, err)
	return e
}

// units scales a whole unit count to smallest units at 8 decimals.
func units(n uint64) *num.Uint {
	return num.UintZero().Mul(num.NewUint(n), num.NewUint(100_000_000))
}

func quoteAt(rate string, ts time.Time) types.PriceQuote {
	return types.PriceQuote{Rate: num.MustDecimalFromString(rate), Time: ts}
}

func TestCollateralRatio(t *testing.T) {
	e := newTestEngine(t)
	now := time.Now()

	// collateral 10 units, price 10.0, debt 50 units
	// collateral_value = 100, ratio = 100/50 = 2.0
	v := &types.Vault{ID: 1, Owner: "alice", Collateral: units(10), Debt: units(50)}
	r, err := e.CollateralRatio(v, quoteAt("10", now))
	require.NoError(t, err)
	require.False(t, r.IsInfinite())
	require.True(t, r.Decimal().Equal(num.MustDecimalFromString("2")))

	// more debt, lower ratio
	v.Debt = units(80)
	r2, err := e.CollateralRatio(v, quoteAt("10", now))
	require.NoError(t, err)
	require.True(t, r2.Decimal().LessThan(r.Decimal()))

	// more collateral, higher ratio
	v.Collateral = units(20)
	r3, err := e.CollateralRatio(v, quoteAt("10", now))
	require.NoError(t, err)
	require.True(t, r3.Decimal().GreaterThan(r2.Decimal()))

	// higher price, higher ratio
	r4, err := e.CollateralRatio(v, quoteAt("12", now))
	require.NoError(t, err)
	require.True(t, r4.Decimal().GreaterThan(r3.Decimal()))
}

func TestCollateralRatioZeroDebt(t *testing.T) {
	e := newTestEngine(t)
	now := time.Now()

	v := &types.Vault{ID: 1, Owner: "alice", Collateral: units(10), Debt: num.UintZero()}
	r, err := e.CollateralRatio(v, quoteAt("10", now))
	require.NoError(t, err)
	require.True(t, r.IsInfinite())
	require.Equal(t, "∞", r.String())
}

func TestCollateralRatioInvalidInputs(t *testing.T) {
	e := newTestEngine(t)
	now := time.Now()

	// closed vault has no ratio
	closed := &types.Vault{ID: 1, Owner: "alice", Collateral: num.UintZero(), Debt: num.UintZero()}
	_, err := e.CollateralRatio(closed, quoteAt("10", now))
	require.ErrorIs(t, err, ErrInvalidInput)

	// non positive price
	v := &types.Vault{ID: 2, Owner: "bob", Collateral: units(10), Debt: units(50)}
	_, err = e.CollateralRatio(v, quoteAt("0", now))
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.CollateralRatio(nil, quoteAt("10", now))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCollateralRatioDeterminism(t *testing.T) {
	e := newTestEngine(t)
	now := time.Now()

	v := &types.Vault{ID: 1, Owner: "alice", Collateral: num.NewUint(333_333_333), Debt: num.NewUint(123_456_789)}
	q := quoteAt("7.77", now)

	first, err := e.CollateralRatio(v, q)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := e.CollateralRatio(v, q)
		require.NoError(t, err)
		require.Equal(t, first.String(), again.String())
	}
}

func TestSystemCR(t *testing.T) {
	e := newTestEngine(t)
	now := time.Now()

	// empty system has a ratio of zero by definition
	empty := types.AggregateVaults(nil)
	r, err := e.SystemCR(empty, quoteAt("10", now))
	require.NoError(t, err)
	require.False(t, r.IsInfinite())
	require.True(t, r.Decimal().IsZero())

	// collateral without debt is infinitely collateralized
	agg := types.AggregateVaults([]*types.Vault{
		{ID: 1, Owner: "alice", Collateral: units(10), Debt: num.UintZero()},
	})
	r, err = e.SystemCR(agg, quoteAt("10", now))
	require.NoError(t, err)
	require.True(t, r.IsInfinite())

	// 30 units collateral at 10.0 backing 200 units debt = 1.5
	agg = types.AggregateVaults([]*types.Vault{
		{ID: 1, Owner: "alice", Collateral: units(10), Debt: units(50)},
		{ID: 2, Owner: "bob", Collateral: units(20), Debt: units(150)},
	})
	r, err = e.SystemCR(agg, quoteAt("10", now))
	require.NoError(t, err)
	require.True(t, r.Decimal().Equal(num.MustDecimalFromString("1.5")))
}

func TestBorrowLimits(t *testing.T) {
	e := newTestEngine(t)
	now := time.Now()

	// collateral 10 units at 10.0 = 100 value, minimum CR 1.5
	// max_debt = 100/1.5 = 66.6666... units = 6_666_666_666 smallest (floored)
	v := &types.Vault{ID: 1, Owner: "alice", Collateral: units(10), Debt: units(50)}
	limits, err := e.BorrowLimits(v, quoteAt("10", now), nil, now)
	require.NoError(t, err)
	require.Equal(t, "6666666666", limits.MaxDebt.String())
	// headroom = 6_666_666_666 - 5_000_000_000
	require.Equal(t, "1666666666", limits.Headroom.String())

	// a vault over its max has no headroom, max debt is still reported
	v.Debt = units(70)
	limits, err = e.BorrowLimits(v, quoteAt("10", now), nil, now)
	require.NoError(t, err)
	require.Equal(t, "6666666666", limits.MaxDebt.String())
	require.True(t, limits.Headroom.IsZero())
}

func TestBorrowLimitsStalePrice(t *testing.T) {
	e := newTestEngine(t)
	now := time.Now()

	v := &types.Vault{ID: 1, Owner: "alice", Collateral: units(10), Debt: units(50)}
	old := quoteAt("10", now.Add(-31*time.Second))
	_, err := e.BorrowLimits(v, old, nil, now)
	require.ErrorIs(t, err, ErrStalePrice)

	// exactly on the freshness window is still acceptable
	edge := quoteAt("10", now.Add(-30*time.Second))
	_, err = e.BorrowLimits(v, edge, nil, now)
	require.NoError(t, err)
}

func TestBorrowLimitsBelowMinimumDeposit(t *testing.T) {
	e := newTestEngine(t)
	now := time.Now()

	// 0.1 unit of collateral at 10.0 = 1 value, max debt 0.66 units,
	// below the 1 unit minimum vault debt
	v := &types.Vault{ID: 1, Owner: "alice", Collateral: num.NewUint(10_000_000), Debt: num.UintZero()}
	_, err := e.BorrowLimits(v, quoteAt("10", now), nil, now)
	require.ErrorIs(t, err, ErrBelowMinimumDeposit)

	// the same deposit on an existing position is not an open
	v.Debt = units(1)
	_, err = e.BorrowLimits(v, quoteAt("10", now), nil, now)
	require.NoError(t, err)
}

func TestBorrowLimitsDebtCeiling(t *testing.T) {
	collateral := testCollateralConfig()
	// aggregate may only grow by 1 unit
	collateral.DebtCeiling = units(201)
	e, err := New(logging.NewTestLogger(), NewDefaultConfig(), collateral)
	require.NoError(t, err)
	now := time.Now()

	v := &types.Vault{ID: 1, Owner: "alice", Collateral: units(10), Debt: units(50)}
	agg := &types.SystemAggregate{TotalCollateral: units(30), TotalDebt: units(200)}

	limits, err := e.BorrowLimits(v, quoteAt("10", now), agg, now)
	require.NoError(t, err)
	// vault headroom would be 16.66 units, the ceiling caps it at 1
	require.Equal(t, units(1).String(), limits.Headroom.String())
}
