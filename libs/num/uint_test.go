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

package num_test

import (
	"math/big"
	"testing"

	"github.com/floeprotocol/floe-core/libs/num"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUintSubFloorsAtZero(t *testing.T) {
	// 5 - 10 floors at zero instead of wrapping around
	got := num.UintZero().Sub(num.NewUint(5), num.NewUint(10))
	assert.True(t, got.IsZero())

	got = num.UintZero().Sub(num.NewUint(10), num.NewUint(5))
	assert.Equal(t, "5", got.String())
}

func TestUintDelta(t *testing.T) {
	d, neg := num.UintZero().Delta(num.NewUint(5), num.NewUint(10))
	assert.True(t, neg)
	assert.Equal(t, "5", d.String())

	d, neg = num.UintZero().Delta(num.NewUint(10), num.NewUint(5))
	assert.False(t, neg)
	assert.Equal(t, "5", d.String())
}

func TestUintFromDecimal(t *testing.T) {
	// fractional part is truncated
	u, fail := num.UintFromDecimal(num.MustDecimalFromString("12.9"))
	require.False(t, fail)
	assert.Equal(t, "12", u.String())

	// negative values fail and yield zero
	u, fail = num.UintFromDecimal(num.MustDecimalFromString("-1"))
	require.True(t, fail)
	assert.True(t, u.IsZero())
}

func TestUintFromBig(t *testing.T) {
	u, fail := num.UintFromBig(big.NewInt(42))
	require.False(t, fail)
	assert.Equal(t, "42", u.String())

	u, fail = num.UintFromBig(big.NewInt(-1))
	require.True(t, fail)
	assert.True(t, u.IsZero())
}

func TestUintFromString(t *testing.T) {
	u, fail := num.UintFromString("340282366920938463463374607431768211456", 10) // 2^128
	require.False(t, fail)
	assert.Equal(t, "340282366920938463463374607431768211456", u.String())

	_, fail = num.UintFromString("not a number", 10)
	assert.True(t, fail)

	require.Panics(t, func() { num.MustUintFromString("-5") })
}

func TestUintArithmeticIsDestinationStyle(t *testing.T) {
	x, y := num.NewUint(6), num.NewUint(7)
	dst := num.UintZero()

	require.Same(t, dst, dst.Mul(x, y))
	assert.Equal(t, "42", dst.String())
	// operands untouched
	assert.Equal(t, "6", x.String())
	assert.Equal(t, "7", y.String())

	assert.Equal(t, "13", num.Sum(x, y).String())
	assert.Equal(t, "2", num.UintZero().Div(num.NewUint(14), y).String())
}

func TestUintCompare(t *testing.T) {
	a, b := num.NewUint(5), num.NewUint(7)
	assert.True(t, a.LT(b))
	assert.True(t, a.LTE(b))
	assert.True(t, b.GT(a))
	assert.True(t, b.GTE(a))
	assert.True(t, a.NEQ(b))
	assert.True(t, a.EQ(a.Clone()))
	assert.True(t, a.LTE(a.Clone()))
	assert.True(t, a.GTE(a.Clone()))
}

func TestUintCloneIsIndependent(t *testing.T) {
	a := num.NewUint(10)
	b := a.Clone()
	b.AddSum(num.NewUint(5))
	assert.Equal(t, "10", a.String())
	assert.Equal(t, "15", b.String())

	var nilU *num.Uint
	assert.Nil(t, nilU.Clone())
}

func TestUintToDecimal(t *testing.T) {
	d := num.NewUint(123).ToDecimal()
	assert.True(t, d.Equal(num.DecimalFromInt64(123)))
}
