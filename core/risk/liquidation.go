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
	"github.com/floeprotocol/floe-core/core/types"
	"github.com/floeprotocol/floe-core/libs/num"
)

// PartialLiquidationTarget solves for the smallest repay amount that
// restores a recovery zone vault to the recovery target ratio:
//
//	(collateral_value - repay*(1+bonus)) / (debt - repay) = target
//
// which rearranges to repay = (target*debt - collateral_value) / (target - (1+bonus)).
//
// The result is clamped so the repay never exceeds the outstanding debt
// and the seized collateral never exceeds what the vault holds. The repay
// amount is returned in stablecoin smallest units, rounded up so the
// target is actually reached.
//
// A vault already at or above the target yields ErrNoActionNeeded, the
// caller treats it as a no-op. Outside recovery mode there is nothing to
// solve either, full liquidation is handled by the general availability
// path.
func (e *Engine) PartialLiquidationTarget(v *types.Vault, q types.PriceQuote, mode types.ProtocolMode) (*num.Uint, error) {
	if v == nil || !q.Rate.IsPositive() || v.Debt.IsZero() {
		return nil, ErrInvalidInput
	}
	if mode != types.ModeRecovery {
		return nil, ErrNoActionNeeded
	}

	onePlusBonus := num.DecimalOne().Add(e.LiquidationBonus)
	target := e.RecoveryTargetCR
	// with target at or below 1+bonus the equation has no positive
	// solution, every repaid unit seizes more value than it restores
	if target.LessThanOrEqual(onePlusBonus) {
		return nil, ErrInvalidInput
	}

	value := e.collateralValue(v.Collateral, q.Rate)
	debt := e.debtUnits(v.Debt)

	numerator := target.Mul(debt).Sub(value)
	if !numerator.IsPositive() {
		// already at or above the target ratio
		return nil, ErrNoActionNeeded
	}
	repay := numerator.Div(target.Sub(onePlusBonus))

	// never seize more collateral than the vault holds
	maxByCollateral := value.Div(onePlusBonus)
	repay = num.MinD(repay, maxByCollateral)
	// never repay more than the outstanding debt
	repay = num.MinD(repay, debt)

	amount, _ := num.UintFromDecimal(repay.Mul(e.stableFactor).Ceil())
	if amount.GT(v.Debt) {
		amount = v.Debt.Clone()
	}
	return amount, nil
}
