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

package encoding_test

import (
	"testing"
	"time"

	"github.com/floeprotocol/floe-core/config/encoding"
	"github.com/floeprotocol/floe-core/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration(t *testing.T) {
	var d encoding.Duration
	require.NoError(t, d.UnmarshalText([]byte("45s")))
	assert.Equal(t, 45*time.Second, d.Get())

	out, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "45s", string(out))

	require.Error(t, d.UnmarshalText([]byte("not a duration")))
}

func TestLogLevel(t *testing.T) {
	var l encoding.LogLevel
	require.NoError(t, l.UnmarshalText([]byte("debug")))
	assert.Equal(t, logging.DebugLevel, l.Get())

	out, err := l.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "debug", string(out))

	require.Error(t, l.UnmarshalText([]byte("shouty")))
}

func TestBool(t *testing.T) {
	var b encoding.Bool
	require.NoError(t, b.UnmarshalFlag("true"))
	assert.True(t, bool(b))
	require.NoError(t, b.UnmarshalFlag("false"))
	assert.False(t, bool(b))
	require.ErrorIs(t, b.UnmarshalFlag("maybe"), encoding.ErrCouldNotMarshalFlagToBool)
}
