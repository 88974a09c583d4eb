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

// Ratio is a collateral ratio. A vault with outstanding collateral and no
// debt has an infinite ratio, which is carried as an explicit flag rather
// than a numeric sentinel so threshold comparisons never overflow and
// formatting can render it as "∞".
type Ratio struct {
	value    num.Decimal
	infinite bool
}

// NewRatio returns a finite ratio with the given value.
func NewRatio(value num.Decimal) Ratio {
	return Ratio{value: value}
}

// InfiniteRatio returns the ratio of a debt free vault.
func InfiniteRatio() Ratio {
	return Ratio{infinite: true}
}

// IsInfinite reports whether the ratio is infinite.
func (r Ratio) IsInfinite() bool {
	return r.infinite
}

// Decimal returns the finite value of the ratio. Callers check IsInfinite
// first, the value is zero for an infinite ratio.
func (r Ratio) Decimal() num.Decimal {
	return r.value
}

// AtOrBelow reports whether the ratio is less than or equal to the given
// threshold. An infinite ratio is above every threshold.
func (r Ratio) AtOrBelow(threshold num.Decimal) bool {
	if r.infinite {
		return false
	}
	return r.value.LessThanOrEqual(threshold)
}

// Below reports whether the ratio is strictly less than the threshold.
func (r Ratio) Below(threshold num.Decimal) bool {
	if r.infinite {
		return false
	}
	return r.value.LessThan(threshold)
}

func (r Ratio) String() string {
	if r.infinite {
		return "∞"
	}
	return r.value.String()
}
