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

package types_test

import (
	"testing"

	"github.com/floeprotocol/floe-core/core/types"
	"github.com/floeprotocol/floe-core/libs/num"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *types.CollateralConfig {
	return &types.CollateralConfig{
		Symbol:          "ICP",
		Decimals:        8,
		StableDecimals:  8,
		MinimumCR:       num.MustDecimalFromString("1.5"),
		LiquidationCR:   num.MustDecimalFromString("1.33"),
		InterestRateAPR: num.DecimalZero(),
		MinVaultDebt:    num.NewUint(100_000_000),
		LedgerFee:       num.NewUint(10_000),
	}
}

func TestCollateralConfigValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	c := validConfig()
	c.Symbol = ""
	require.ErrorIs(t, c.Validate(), types.ErrConfigurationInconsistent)

	// liquidation ratio must sit strictly below the minimum ratio
	c = validConfig()
	c.LiquidationCR = c.MinimumCR
	require.ErrorIs(t, c.Validate(), types.ErrConfigurationInconsistent)

	c = validConfig()
	c.LiquidationCR = num.MustDecimalFromString("1.6")
	require.ErrorIs(t, c.Validate(), types.ErrConfigurationInconsistent)

	c = validConfig()
	c.MinimumCR = num.DecimalZero()
	require.ErrorIs(t, c.Validate(), types.ErrConfigurationInconsistent)

	c = validConfig()
	c.InterestRateAPR = num.MustDecimalFromString("-0.01")
	require.ErrorIs(t, c.Validate(), types.ErrConfigurationInconsistent)

	c = validConfig()
	c.MinVaultDebt = nil
	require.ErrorIs(t, c.Validate(), types.ErrConfigurationInconsistent)
}

func TestCollateralConfigFactors(t *testing.T) {
	c := validConfig()
	assert.True(t, c.AssetFactor().Equal(num.MustDecimalFromString("100000000")))

	c.StableDecimals = 6
	assert.True(t, c.StableFactor().Equal(num.MustDecimalFromString("1000000")))
}

func TestCollateralConfigClone(t *testing.T) {
	c := validConfig()
	c.DebtCeiling = num.NewUint(1000)
	cpy := c.Clone()

	cpy.MinVaultDebt.AddSum(num.NewUint(1))
	cpy.DebtCeiling.AddSum(num.NewUint(1))
	assert.Equal(t, "100000000", c.MinVaultDebt.String())
	assert.Equal(t, "1000", c.DebtCeiling.String())

	// nil ceiling stays nil through a clone
	c.DebtCeiling = nil
	assert.Nil(t, c.Clone().DebtCeiling)
}

func TestVault(t *testing.T) {
	v := &types.Vault{ID: 7, Owner: "alice", Collateral: num.NewUint(10), Debt: num.NewUint(5)}
	assert.False(t, v.IsClosed())

	closed := &types.Vault{ID: 8, Owner: "bob", Collateral: num.UintZero(), Debt: num.UintZero()}
	assert.True(t, closed.IsClosed())

	cpy := v.Clone()
	cpy.Collateral.AddSum(num.NewUint(100))
	assert.Equal(t, "10", v.Collateral.String())
}

func TestRatio(t *testing.T) {
	r := types.NewRatio(num.MustDecimalFromString("1.5"))
	assert.False(t, r.IsInfinite())
	assert.Equal(t, "1.5", r.String())
	assert.True(t, r.AtOrBelow(num.MustDecimalFromString("1.5")))
	assert.False(t, r.Below(num.MustDecimalFromString("1.5")))
	assert.True(t, r.Below(num.MustDecimalFromString("1.6")))

	inf := types.InfiniteRatio()
	assert.True(t, inf.IsInfinite())
	assert.Equal(t, "∞", inf.String())
	// infinity clears any threshold
	assert.False(t, inf.AtOrBelow(num.MustDecimalFromString("1000000")))
	assert.False(t, inf.Below(num.MustDecimalFromString("1000000")))
}

func TestAggregateVaults(t *testing.T) {
	agg := types.AggregateVaults([]*types.Vault{
		{ID: 1, Owner: "alice", Collateral: num.NewUint(10), Debt: num.NewUint(5)},
		{ID: 2, Owner: "bob", Collateral: num.NewUint(20), Debt: num.NewUint(15)},
	})
	assert.Equal(t, "30", agg.TotalCollateral.String())
	assert.Equal(t, "20", agg.TotalDebt.String())

	empty := types.AggregateVaults(nil)
	assert.True(t, empty.TotalCollateral.IsZero())
	assert.True(t, empty.TotalDebt.IsZero())
}
