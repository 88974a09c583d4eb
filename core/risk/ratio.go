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
	"time"

	"github.com/floeprotocol/floe-core/core/types"
	"github.com/floeprotocol/floe-core/libs/num"
)

// Limits carries both borrow bounds for a vault. MaxDebt is the maximum
// total debt the collateral supports at the minimum collateral ratio,
// Headroom is the additional amount borrowable on top of the current debt.
// They are distinct named results, consumers must not conflate them.
type Limits struct {
	MaxDebt  *num.Uint
	Headroom *num.Uint
}

// CollateralRatio computes the ratio of collateral value to debt for the
// given vault at the given price. A vault with collateral and no debt has
// an infinite ratio. A closed vault (both zero) has no ratio and yields
// ErrInvalidInput.
func (e *Engine) CollateralRatio(v *types.Vault, q types.PriceQuote) (types.Ratio, error) {
	if v == nil || !q.Rate.IsPositive() {
		return types.Ratio{}, ErrInvalidInput
	}
	if v.IsClosed() {
		return types.Ratio{}, ErrInvalidInput
	}
	if v.Debt.IsZero() {
		return types.InfiniteRatio(), nil
	}
	value := e.collateralValue(v.Collateral, q.Rate)
	return types.NewRatio(value.Div(e.debtUnits(v.Debt))), nil
}

// SystemCR computes the protocol wide collateral ratio from the aggregate.
// With no outstanding debt the ratio is infinite when collateral remains,
// and zero for the empty system.
func (e *Engine) SystemCR(agg *types.SystemAggregate, q types.PriceQuote) (types.Ratio, error) {
	if agg == nil || !q.Rate.IsPositive() {
		return types.Ratio{}, ErrInvalidInput
	}
	if agg.TotalDebt.IsZero() {
		if agg.TotalCollateral.IsZero() {
			return types.NewRatio(num.DecimalZero()), nil
		}
		return types.InfiniteRatio(), nil
	}
	value := e.collateralValue(agg.TotalCollateral, q.Rate)
	return types.NewRatio(value.Div(e.debtUnits(agg.TotalDebt))), nil
}

// BorrowLimits computes the borrow bounds for a vault. This authorizes debt
// increasing operations, so the quote must be fresh relative to the caller
// supplied clock, and the remaining debt ceiling capacity caps the
// headroom when a ceiling is configured. For a vault without debt yet, a
// maximum debt below the minimum vault debt means the deposit cannot open
// a position at all.
func (e *Engine) BorrowLimits(v *types.Vault, q types.PriceQuote, agg *types.SystemAggregate, now time.Time) (*Limits, error) {
	if v == nil || !q.Rate.IsPositive() {
		return nil, ErrInvalidInput
	}
	if q.Age(now) > e.FreshnessWindow.Get() {
		return nil, ErrStalePrice
	}

	value := e.collateralValue(v.Collateral, q.Rate)
	// floor rounding keeps the authorized debt conservative
	maxDebt, _ := num.UintFromDecimal(value.Div(e.cfg.MinimumCR).Mul(e.stableFactor))

	if v.Debt.IsZero() && maxDebt.LT(e.cfg.MinVaultDebt) {
		return nil, ErrBelowMinimumDeposit
	}

	headroom := num.UintZero().Sub(maxDebt, v.Debt)
	if e.cfg.DebtCeiling != nil && agg != nil {
		remaining := num.UintZero().Sub(e.cfg.DebtCeiling, agg.TotalDebt)
		if remaining.LT(headroom) {
			headroom = remaining
		}
	}

	return &Limits{
		MaxDebt:  maxDebt,
		Headroom: headroom,
	}, nil
}
