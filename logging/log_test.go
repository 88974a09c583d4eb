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

package logging_test

import (
	"testing"

	"github.com/floeprotocol/floe-core/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	l, err := logging.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, logging.DebugLevel, l)

	l, err = logging.ParseLevel("info")
	require.NoError(t, err)
	assert.Equal(t, logging.InfoLevel, l)

	_, err = logging.ParseLevel("shouty")
	require.Error(t, err)
}

func TestLoggerLevels(t *testing.T) {
	log := logging.NewTestLogger()
	log.SetLevel(logging.DebugLevel)
	assert.Equal(t, logging.DebugLevel, log.GetLevel())
	assert.True(t, log.IsDebug())

	log.SetLevel(logging.InfoLevel)
	assert.False(t, log.IsDebug())
}

func TestLoggerNamed(t *testing.T) {
	log := logging.NewTestLogger()
	named := log.Named("risk")
	require.NotNil(t, named)
	// the parent keeps its own level
	named.SetLevel(logging.ErrorLevel)
	assert.NotEqual(t, logging.ErrorLevel, log.GetLevel())
}
