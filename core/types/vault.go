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

// Vault is an immutable snapshot of a collateralized debt position.
// Amounts are expressed in the smallest unit of their respective asset,
// collateral in the collateral asset, debt in the stablecoin.
type Vault struct {
	// ID is unique, monotonically assigned by the backend and never reused.
	ID    uint64
	Owner string

	Collateral *num.Uint
	Debt       *num.Uint
}

func (v *Vault) Clone() *Vault {
	cpy := *v
	cpy.Collateral = v.Collateral.Clone()
	cpy.Debt = v.Debt.Clone()
	return &cpy
}

// IsClosed returns whether both collateral and debt reached zero, the
// degenerate state in which the position no longer has a collateral ratio.
func (v *Vault) IsClosed() bool {
	return v.Collateral.IsZero() && v.Debt.IsZero()
}
