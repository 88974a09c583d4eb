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

package fee

import (
	"errors"
	"time"

	"github.com/floeprotocol/floe-core/core/types"
	"github.com/floeprotocol/floe-core/libs/num"
	"github.com/floeprotocol/floe-core/logging"
)

// ErrInvalidInput signals a negative volume or supply passed to a fee
// computation.
var ErrInvalidInput = errors.New("invalid input")

// DecayFn decays a redemption surcharge over elapsed time. The decay law
// is a governance parameter, it is injected, never hardcoded in the math.
type DecayFn func(rate num.Decimal, elapsed time.Duration) num.Decimal

// LinearDecay returns a decay function that reduces the surcharge by the
// given amount per second, flooring at zero.
func LinearDecay(perSecond num.Decimal) DecayFn {
	return func(rate num.Decimal, elapsed time.Duration) num.Decimal {
		if elapsed <= 0 {
			return rate
		}
		decayed := rate.Sub(perSecond.Mul(num.DecimalFromInt64(int64(elapsed / time.Second))))
		return num.MaxD(decayed, num.DecimalZero())
	}
}

// RateState is the redemption surcharge carried between fee computations.
// The engine stays pure, callers hold the state and thread it through.
type RateState struct {
	Rate      num.Decimal
	UpdatedAt time.Time
}

// Engine quotes fee rates. It only reports rates, the deduction itself is
// applied by the external issuance and redemption paths.
type Engine struct {
	Config
	log   *logging.Logger
	decay DecayFn
}

func New(log *logging.Logger, config Config, decay DecayFn) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())
	return &Engine{
		Config: config,
		log:    log,
		decay:  decay,
	}
}

// ReloadConf update the fee engine internal configuration.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.SetLevel(cfg.Level.Get())
	}
	e.Config = cfg
}

// BorrowingFee returns the one time rate deducted from minted debt. The
// fee is waived entirely in recovery mode to encourage recollateralizing
// the system.
func BorrowingFee(mode types.ProtocolMode, base num.Decimal) num.Decimal {
	if mode == types.ModeRecovery {
		return num.DecimalZero()
	}
	return base
}

// BorrowingFee returns the configured base rate under the given mode.
func (e *Engine) BorrowingFee(mode types.ProtocolMode) num.Decimal {
	return BorrowingFee(mode, e.BaseBorrowingFee)
}

// RedemptionFee quotes the redemption fee rate after a redemption of the
// given volume against the given total supply, and returns the surcharge
// state to carry into the next computation. The surcharge decays toward
// zero between redemptions and each redemption raises it by the redeemed
// supply fraction, the quoted rate is the floor plus the surcharge capped
// at the ceiling.
func (e *Engine) RedemptionFee(st RateState, volume, supply num.Decimal, now time.Time) (num.Decimal, RateState, error) {
	if volume.IsNegative() || supply.IsNegative() {
		return num.DecimalZero(), st, ErrInvalidInput
	}

	rate := e.decay(st.Rate, now.Sub(st.UpdatedAt))
	if volume.IsPositive() && supply.IsPositive() {
		rate = rate.Add(volume.Div(supply))
	}
	// the surcharge itself never carries more than what the ceiling allows
	rate = num.MinD(rate, e.RedemptionCeiling.Sub(e.RedemptionFloor))

	next := RateState{Rate: rate, UpdatedAt: now}
	fee := num.MinD(e.RedemptionFloor.Add(rate), e.RedemptionCeiling)
	return fee, next, nil
}
