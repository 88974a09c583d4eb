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

// CollateralBook is one collateral type's contribution to the protocol
// wide recovery threshold, its configuration and outstanding debt.
type CollateralBook struct {
	Config    *types.CollateralConfig
	TotalDebt *num.Uint
}

// effectiveLiquidationThreshold returns the ratio at or below which a
// vault is liquidatable. The zone widens in recovery mode, rising from the
// liquidation ratio to the minimum ratio.
func (e *Engine) effectiveLiquidationThreshold(mode types.ProtocolMode) num.Decimal {
	if mode == types.ModeRecovery {
		return e.cfg.MinimumCR
	}
	return e.cfg.LiquidationCR
}

// ClassifyHealth classifies a vault's ratio for display and liquidation
// eligibility. A ratio exactly on a threshold counts as the more severe
// class so a boundary vault never escapes liquidation through rounding.
func (e *Engine) ClassifyHealth(r types.Ratio, mode types.ProtocolMode) types.HealthClass {
	if r.AtOrBelow(e.effectiveLiquidationThreshold(mode)) {
		return types.VaultLiquidatable
	}
	if r.AtOrBelow(e.cfg.MinimumCR.Add(e.WarningBuffer)) {
		return types.VaultWarning
	}
	return types.VaultHealthy
}

// IsLiquidatable reports whether a vault at the given ratio may be
// liquidated under the given mode.
func (e *Engine) IsLiquidatable(r types.Ratio, mode types.ProtocolMode) bool {
	return r.AtOrBelow(e.effectiveLiquidationThreshold(mode))
}

// DeriveMode computes the protocol mode. This is a level triggered
// classifier re-evaluated on every price or aggregate update, it holds no
// memory and no hysteresis. Read only wins over everything: a failed feed
// or a system collateral ratio under 1 halts all state changing
// operations.
func (e *Engine) DeriveMode(sysCR types.Ratio, ph types.PriceHealth, recoveryThreshold num.Decimal) types.ProtocolMode {
	if ph == types.PriceFailed || sysCR.Below(num.DecimalOne()) {
		return types.ModeReadOnly
	}
	if sysCR.Below(recoveryThreshold) {
		return types.ModeRecovery
	}
	return types.ModeGeneralAvailability
}

// RecoveryThreshold computes the debt weighted average of the per
// collateral minimum ratios across all active collateral types. It is
// recomputed whenever the composition changes, never cached statically.
// With no outstanding debt anywhere the unweighted mean is used.
func RecoveryThreshold(books []CollateralBook) num.Decimal {
	if len(books) == 0 {
		return num.DecimalZero()
	}
	totalDebt := num.DecimalZero()
	weighted := num.DecimalZero()
	for _, b := range books {
		d := b.TotalDebt.ToDecimal()
		totalDebt = totalDebt.Add(d)
		weighted = weighted.Add(d.Mul(b.Config.MinimumCR))
	}
	if totalDebt.IsZero() {
		sum := num.DecimalZero()
		for _, b := range books {
			sum = sum.Add(b.Config.MinimumCR)
		}
		return sum.Div(num.DecimalFromInt64(int64(len(books))))
	}
	return weighted.Div(totalDebt)
}
