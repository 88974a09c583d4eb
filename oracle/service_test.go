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

package oracle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/floeprotocol/floe-core/core/types"
	"github.com/floeprotocol/floe-core/libs/num"
	"github.com/floeprotocol/floe-core/logging"
	"github.com/floeprotocol/floe-core/oracle"
	"github.com/floeprotocol/floe-core/oracle/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuote(rate string, ts time.Time) types.PriceQuote {
	return types.PriceQuote{Rate: num.MustDecimalFromString(rate), Time: ts}
}

func TestLatestBeforeFirstFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	source := mocks.NewMockSource(ctrl)

	svc := oracle.NewService(logging.NewTestLogger(), oracle.NewDefaultConfig(), source, "ICP")
	_, err := svc.Latest()
	require.ErrorIs(t, err, oracle.ErrNoQuote)
}

func TestRefreshUsesFreshCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	source := mocks.NewMockSource(ctrl)

	svc := oracle.NewService(logging.NewTestLogger(), oracle.NewDefaultConfig(), source, "ICP")

	// one fetch populates the cache, the second Refresh serves from it
	source.EXPECT().FetchQuote(gomock.Any(), "ICP").
		Return(testQuote("10", time.Now()), nil).
		Times(1)

	q, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, q.Rate.Equal(num.MustDecimalFromString("10")))

	q, err = svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, q.Rate.Equal(num.MustDecimalFromString("10")))

	q, err = svc.Latest()
	require.NoError(t, err)
	assert.True(t, q.Rate.Equal(num.MustDecimalFromString("10")))
}

func TestRefreshReplacesStaleCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	source := mocks.NewMockSource(ctrl)

	svc := oracle.NewService(logging.NewTestLogger(), oracle.NewDefaultConfig(), source, "ICP")

	// the first quote is already past the 30s staleness bound, the next
	// Refresh goes back to the source
	stale := testQuote("10", time.Now().Add(-time.Minute))
	fresh := testQuote("11", time.Now())
	gomock.InOrder(
		source.EXPECT().FetchQuote(gomock.Any(), "ICP").Return(stale, nil),
		source.EXPECT().FetchQuote(gomock.Any(), "ICP").Return(fresh, nil),
	)

	q, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, q.Rate.Equal(num.MustDecimalFromString("10")))

	q, err = svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, q.Rate.Equal(num.MustDecimalFromString("11")))
}

func TestRefreshFetchFailureKeepsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	source := mocks.NewMockSource(ctrl)

	cfg := oracle.NewDefaultConfig()
	// single attempt, no backoff waits in tests
	cfg.Retries = 0
	svc := oracle.NewService(logging.NewTestLogger(), cfg, source, "ICP")

	fetchErr := errors.New("endpoint down")
	source.EXPECT().FetchQuote(gomock.Any(), "ICP").Return(types.PriceQuote{}, fetchErr)

	_, err := svc.Refresh(context.Background())
	require.Error(t, err)

	_, err = svc.Latest()
	require.ErrorIs(t, err, oracle.ErrNoQuote)
}

func TestRefreshRetriesTransientFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	source := mocks.NewMockSource(ctrl)

	cfg := oracle.NewDefaultConfig()
	cfg.Retries = 2
	svc := oracle.NewService(logging.NewTestLogger(), cfg, source, "ICP")

	gomock.InOrder(
		source.EXPECT().FetchQuote(gomock.Any(), "ICP").
			Return(types.PriceQuote{}, errors.New("flaky")),
		source.EXPECT().FetchQuote(gomock.Any(), "ICP").
			Return(testQuote("10", time.Now()), nil),
	)

	q, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, q.Rate.Equal(num.MustDecimalFromString("10")))
}
