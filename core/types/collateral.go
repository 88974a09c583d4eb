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
	"errors"
	"fmt"

	"github.com/floeprotocol/floe-core/libs/num"
)

// ErrConfigurationInconsistent is returned when a collateral configuration
// violates one of its invariants. This is fatal at load, no computation may
// be served against an inconsistent configuration.
var ErrConfigurationInconsistent = errors.New("collateral configuration inconsistent")

// CollateralConfig holds the governance controlled parameters for one
// collateral type. Values are immutable within a protocol epoch.
type CollateralConfig struct {
	Symbol string
	// Decimals is the number of decimal places of the collateral asset,
	// amounts arrive scaled by 10^Decimals.
	Decimals uint32
	// StableDecimals is the number of decimal places of the stablecoin.
	StableDecimals uint32

	// MinimumCR is the collateral ratio required to open a vault or borrow.
	MinimumCR num.Decimal
	// LiquidationCR is the ratio at or below which liquidation is permitted
	// in general availability. Invariant: LiquidationCR < MinimumCR.
	LiquidationCR num.Decimal
	// InterestRateAPR is zero in the current protocol instance but remains
	// a governance configurable rational.
	InterestRateAPR num.Decimal

	// MinVaultDebt is the smallest permitted outstanding debt, in stablecoin
	// smallest units.
	MinVaultDebt *num.Uint
	// DebtCeiling bounds the aggregate debt for this collateral type, nil
	// means unlimited.
	DebtCeiling *num.Uint
	// LedgerFee is the network transfer fee, informational only.
	LedgerFee *num.Uint
}

// Validate checks the configuration invariants, returning an error wrapping
// ErrConfigurationInconsistent on the first violation found.
func (c *CollateralConfig) Validate() error {
	if c.Symbol == "" {
		return fmt.Errorf("%w: empty collateral symbol", ErrConfigurationInconsistent)
	}
	if !c.MinimumCR.IsPositive() {
		return fmt.Errorf("%w: minimum collateral ratio must be positive, got %s",
			ErrConfigurationInconsistent, c.MinimumCR)
	}
	if !c.LiquidationCR.IsPositive() {
		return fmt.Errorf("%w: liquidation collateral ratio must be positive, got %s",
			ErrConfigurationInconsistent, c.LiquidationCR)
	}
	if c.LiquidationCR.GreaterThanOrEqual(c.MinimumCR) {
		return fmt.Errorf("%w: liquidation ratio %s must be below minimum ratio %s",
			ErrConfigurationInconsistent, c.LiquidationCR, c.MinimumCR)
	}
	if c.InterestRateAPR.IsNegative() {
		return fmt.Errorf("%w: interest rate must not be negative, got %s",
			ErrConfigurationInconsistent, c.InterestRateAPR)
	}
	if c.MinVaultDebt == nil {
		return fmt.Errorf("%w: minimum vault debt not set", ErrConfigurationInconsistent)
	}
	return nil
}

// AssetFactor returns 10^Decimals as a decimal, used to convert collateral
// smallest-unit amounts into asset units.
func (c *CollateralConfig) AssetFactor() num.Decimal {
	return num.DecimalFromInt64(10).Pow(num.DecimalFromInt64(int64(c.Decimals)))
}

// StableFactor returns 10^StableDecimals as a decimal, used to convert debt
// smallest-unit amounts into stablecoin units.
func (c *CollateralConfig) StableFactor() num.Decimal {
	return num.DecimalFromInt64(10).Pow(num.DecimalFromInt64(int64(c.StableDecimals)))
}

func (c *CollateralConfig) Clone() *CollateralConfig {
	cpy := *c
	cpy.MinVaultDebt = c.MinVaultDebt.Clone()
	cpy.DebtCeiling = c.DebtCeiling.Clone()
	cpy.LedgerFee = c.LedgerFee.Clone()
	return &cpy
}
