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
	"github.com/floeprotocol/floe-core/libs/num"
)

// SystemAggregate is the protocol wide totals for one collateral type. It
// is never stored independently, always recomputed as the sum over all
// vaults.
type SystemAggregate struct {
	TotalCollateral *num.Uint
	TotalDebt       *num.Uint
}

// AggregateVaults sums the given vault snapshots into a system aggregate.
func AggregateVaults(vaults []*Vault) *SystemAggregate {
	agg := &SystemAggregate{
		TotalCollateral: num.UintZero(),
		TotalDebt:       num.UintZero(),
	}
	for _, v := range vaults {
		agg.TotalCollateral.AddSum(v.Collateral)
		agg.TotalDebt.AddSum(v.Debt)
	}
	return agg
}

func (a *SystemAggregate) Clone() *SystemAggregate {
	return &SystemAggregate{
		TotalCollateral: a.TotalCollateral.Clone(),
		TotalDebt:       a.TotalDebt.Clone(),
	}
}
