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
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/floeprotocol/floe-core/core/types"
	"github.com/floeprotocol/floe-core/libs/num"
)

// Source supplies price quotes for one collateral symbol.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/source_mock.go -package mocks github.com/floeprotocol/floe-core/oracle Source
type Source interface {
	FetchQuote(ctx context.Context, symbol string) (types.PriceQuote, error)
}

// HTTPSource fetches quotes from a JSON over HTTP rate endpoint.
type HTTPSource struct {
	endpoint string
	client   *http.Client
}

func NewHTTPSource(endpoint string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type rateResponse struct {
	Symbol    string `json:"symbol"`
	Rate      string `json:"rate"`
	Timestamp int64  `json:"timestamp"`
}

// FetchQuote requests the current rate for the given symbol. The rate is
// carried as a string on the wire and parsed as a decimal, never a float.
func (s *HTTPSource) FetchQuote(ctx context.Context, symbol string) (types.PriceQuote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?symbol="+symbol, nil)
	if err != nil {
		return types.PriceQuote{}, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return types.PriceQuote{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.PriceQuote{}, fmt.Errorf("rate endpoint returned status %d", resp.StatusCode)
	}

	rr := rateResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return types.PriceQuote{}, fmt.Errorf("could not decode rate response: %w", err)
	}
	rate, err := num.DecimalFromString(rr.Rate)
	if err != nil {
		return types.PriceQuote{}, fmt.Errorf("could not parse rate %q: %w", rr.Rate, err)
	}

	return types.PriceQuote{
		Rate: rate,
		Time: time.Unix(rr.Timestamp, 0),
	}, nil
}
