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

package oracle

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/floeprotocol/floe-core/core/types"
	"github.com/floeprotocol/floe-core/logging"
	"github.com/floeprotocol/floe-core/metrics"

	"github.com/cenkalti/backoff/v4"
)

// ErrNoQuote signals that no quote has been fetched yet.
var ErrNoQuote = errors.New("no quote available")

// Service polls the source on a fixed interval and caches the latest
// quote. All retry and timing policy lives here, the risk engine itself
// only ever sees explicit immutable quotes.
type Service struct {
	Config
	log    *logging.Logger
	source Source
	symbol string

	mu       sync.RWMutex
	latest   types.PriceQuote
	hasQuote bool
}

func NewService(log *logging.Logger, config Config, source Source, symbol string) *Service {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())
	return &Service{
		Config: config,
		log:    log,
		source: source,
		symbol: symbol,
	}
}

// Start polls until the context is cancelled. An initial fetch happens
// immediately so consumers do not wait a full interval for the first quote.
func (s *Service) Start(ctx context.Context) {
	if err := s.fetch(ctx); err != nil {
		s.log.Error("initial quote fetch failed", logging.Error(err))
	}
	ticker := time.NewTicker(s.PollInterval.Get())
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := s.fetch(ctx); err != nil {
				s.log.Error("periodic quote fetch failed", logging.Error(err))
			}
		case <-ctx.Done():
			return
		}
	}
}

// Latest returns the cached quote. ErrNoQuote before the first successful
// fetch.
func (s *Service) Latest() (types.PriceQuote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasQuote {
		return types.PriceQuote{}, ErrNoQuote
	}
	return s.latest, nil
}

// Refresh returns the cached quote, forcing a fetch first when the cache
// exceeds the staleness bound. Debt affecting callers use this instead of
// Latest.
func (s *Service) Refresh(ctx context.Context) (types.PriceQuote, error) {
	s.mu.RLock()
	fresh := s.hasQuote && time.Since(s.latest.Time) <= s.StalenessBound.Get()
	s.mu.RUnlock()

	if !fresh {
		if err := s.fetch(ctx); err != nil {
			return types.PriceQuote{}, err
		}
	}
	return s.Latest()
}

func (s *Service) fetch(ctx context.Context) error {
	var quote types.PriceQuote
	op := func() error {
		reqCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout.Get())
		defer cancel()
		q, err := s.source.FetchQuote(reqCtx, s.symbol)
		if err != nil {
			return err
		}
		quote = q
		return nil
	}
	err := backoff.Retry(
		op,
		backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.Retries), ctx),
	)
	if err != nil {
		metrics.QuoteCounterInc("failure")
		return err
	}
	metrics.QuoteCounterInc("success")

	s.mu.Lock()
	s.latest = quote
	s.hasQuote = true
	s.mu.Unlock()

	if s.log.IsDebug() {
		s.log.Debug("quote refreshed",
			logging.String("symbol", s.symbol),
			logging.Stringer("rate", quote.Rate),
			logging.Time("timestamp", quote.Time),
		)
	}
	return nil
}
