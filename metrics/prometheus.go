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

package metrics

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ErrInstrumentRegistration signals that a prometheus collector could not
// be registered.
var ErrInstrumentRegistration = errors.New("could not register instrument")

var (
	engineTime   *prometheus.CounterVec
	quoteCounter *prometheus.CounterVec
)

// Start enable metrics (given config).
func Start(conf Config) {
	if !conf.Enabled {
		return
	}
	if err := setupMetrics(); err != nil {
		panic("could not set up metrics")
	}
	http.Handle(conf.Path, promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", conf.Port), nil))
	}()
}

// EngineTimeCounterAdd is used to time a function. Call it, using defer, at
// the start of the function to be timed.
//
// e.g.
//
//	defer metrics.EngineTimeCounterAdd("service", "VaultRisk")()
//
// Note the extra "()" at the end of the above line - the returned function
// must be called.
func EngineTimeCounterAdd(labelValues ...string) func() {
	start := time.Now()
	return func() {
		// metrics may not be set up, tests don't use them
		if engineTime == nil {
			return
		}
		engineTime.WithLabelValues(labelValues...).Add(time.Since(start).Seconds())
	}
}

// QuoteCounterInc counts oracle quote fetches by outcome.
func QuoteCounterInc(labelValues ...string) {
	if quoteCounter == nil {
		return
	}
	quoteCounter.WithLabelValues(labelValues...).Inc()
}

func setupMetrics() error {
	est := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "floe",
			Name:      "engine_seconds_total",
			Help:      "Total time spent per engine per function",
		},
		[]string{"engine", "fn"},
	)
	if err := prometheus.Register(est); err != nil {
		return errors.Wrap(ErrInstrumentRegistration, err.Error())
	}
	engineTime = est

	qc := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "floe",
			Name:      "oracle_quotes_total",
			Help:      "Number of oracle quote fetches by outcome",
		},
		[]string{"outcome"},
	)
	if err := prometheus.Register(qc); err != nil {
		return errors.Wrap(ErrInstrumentRegistration, err.Error())
	}
	quoteCounter = qc

	return nil
}
