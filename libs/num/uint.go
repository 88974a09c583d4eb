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

package num

import (
	"math/big"

	"github.com/holiman/uint256"
)

// Uint is an unsigned 256 bit integer, the smallest-unit fixed point
// representation for collateral and debt amounts. All mutating methods use
// the receiver as the destination and return it, big.Int style, so
// expressions compose without intermediate allocations.
type Uint struct {
	u uint256.Int
}

// NewUint creates a new Uint with the value of the uint64 passed as a parameter.
func NewUint(val uint64) *Uint {
	return &Uint{*uint256.NewInt(val)}
}

// UintZero returns a new Uint set to zero.
func UintZero() *Uint {
	return NewUint(0)
}

// UintFromBig construct a new Uint with a big.Int,
// returns true if the big.Int is negative or overflows, in which case the
// result is set to zero.
func UintFromBig(b *big.Int) (*Uint, bool) {
	u, fail := uint256.FromBig(b)
	if fail || b.Sign() < 0 {
		return UintZero(), true
	}
	return &Uint{*u}, false
}

// UintFromDecimal returns a new Uint from a Decimal, the fractional part is
// truncated. Returns true if the decimal is negative or overflows 256 bits,
// in which case the result is set to zero.
func UintFromDecimal(d Decimal) (*Uint, bool) {
	if d.IsNegative() {
		return UintZero(), true
	}
	return UintFromBig(d.Floor().BigInt())
}

// UintFromString created a new Uint from a string interpreted using the
// given base. A big.Int is used to read the string, so all bases accepted by
// big.Int SetString are valid. Returns true on any parse failure, negative
// value or overflow, in which case the result is set to zero.
func UintFromString(str string, base int) (*Uint, bool) {
	b, ok := big.NewInt(0).SetString(str, base)
	if !ok {
		return UintZero(), true
	}
	return UintFromBig(b)
}

// MustUintFromString returns a base 10 Uint from the given string and panics
// if the string is not a valid unsigned integer. Reserved for static
// initialisation and tests.
func MustUintFromString(str string) *Uint {
	u, fail := UintFromString(str, 10)
	if fail {
		panic("num: invalid uint string " + str)
	}
	return u
}

// Sum just removes the need to write num.UintZero().AddSum(x, y, z).
func Sum(vals ...*Uint) *Uint {
	return UintZero().AddSum(vals...)
}

func (u *Uint) Clone() *Uint {
	if u == nil {
		return nil
	}
	return &Uint{u.u}
}

// Copy sets u to the value of x and returns u.
func (u *Uint) Copy(x *Uint) *Uint {
	u.u = x.u
	return u
}

// Add sets u to x+y and returns u.
func (u *Uint) Add(x, y *Uint) *Uint {
	u.u.Add(&x.u, &y.u)
	return u
}

// AddSum adds all the parameters to u and returns u.
func (u *Uint) AddSum(vals ...*Uint) *Uint {
	for _, x := range vals {
		u.u.Add(&u.u, &x.u)
	}
	return u
}

// Sub sets u to x-y and returns u, flooring at zero rather than wrapping
// when y > x. Amounts never go negative in this protocol, Delta reports the
// sign when a caller needs it.
func (u *Uint) Sub(x, y *Uint) *Uint {
	if y.u.Gt(&x.u) {
		u.u.Clear()
		return u
	}
	u.u.Sub(&x.u, &y.u)
	return u
}

// Delta sets u to the absolute difference of x and y and returns u along
// with a flag set to true when y > x.
func (u *Uint) Delta(x, y *Uint) (*Uint, bool) {
	if y.u.Gt(&x.u) {
		u.u.Sub(&y.u, &x.u)
		return u, true
	}
	u.u.Sub(&x.u, &y.u)
	return u, false
}

// Mul sets u to x*y and returns u.
func (u *Uint) Mul(x, y *Uint) *Uint {
	u.u.Mul(&x.u, &y.u)
	return u
}

// Div sets u to x/y (integer division) and returns u.
func (u *Uint) Div(x, y *Uint) *Uint {
	u.u.Div(&x.u, &y.u)
	return u
}

func (u *Uint) EQ(x *Uint) bool {
	return u.u.Eq(&x.u)
}

func (u *Uint) NEQ(x *Uint) bool {
	return !u.u.Eq(&x.u)
}

func (u *Uint) GT(x *Uint) bool {
	return u.u.Gt(&x.u)
}

func (u *Uint) GTE(x *Uint) bool {
	return !u.u.Lt(&x.u)
}

func (u *Uint) LT(x *Uint) bool {
	return u.u.Lt(&x.u)
}

func (u *Uint) LTE(x *Uint) bool {
	return !u.u.Gt(&x.u)
}

func (u *Uint) IsZero() bool {
	return u.u.IsZero()
}

func (u *Uint) ToDecimal() Decimal {
	return DecimalFromUint(u)
}

func (u *Uint) BigInt() *big.Int {
	return u.u.ToBig()
}

func (u *Uint) Uint64() uint64 {
	return u.u.Uint64()
}

func (u *Uint) String() string {
	return u.u.ToBig().String()
}
