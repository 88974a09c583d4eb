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

package risk

import (
	"errors"

	"github.com/floeprotocol/floe-core/core/types"
	"github.com/floeprotocol/floe-core/libs/num"
	"github.com/floeprotocol/floe-core/logging"
)

var (
	// ErrInvalidInput signals a negative or non finite input, a non
	// positive price, or a ratio query against a closed vault.
	ErrInvalidInput = errors.New("invalid input")
	// ErrBelowMinimumDeposit signals an operation that would create or
	// leave a vault below the minimum vault debt.
	ErrBelowMinimumDeposit = errors.New("below minimum deposit")
	// ErrNoActionNeeded signals a liquidation computation against a vault
	// that is already compliant. It is a no-op signal, not a failure.
	ErrNoActionNeeded = errors.New("no action needed")
	// ErrStalePrice signals a quote older than the freshness window was
	// presented to a debt increasing computation, the caller must refresh
	// before proceeding.
	ErrStalePrice = errors.New("stale price")
)

// Engine is the vault risk engine. It is a pure, side effect free
// computation library: every operation takes immutable snapshots as value
// inputs, reads no ambient state and no clock, and is therefore reentrant
// without locking. Every display and command surface goes through it so no
// consumer re-derives the formulas with divergent rounding.
type Engine struct {
	Config
	log *logging.Logger

	cfg          *types.CollateralConfig
	assetFactor  num.Decimal
	stableFactor num.Decimal
}

// New returns a risk engine for one collateral type. The collateral
// configuration is validated here, an inconsistent configuration is fatal
// and no computation is served against it.
func New(log *logging.Logger, config Config, collateral *types.CollateralConfig) (*Engine, error) {
	if err := collateral.Validate(); err != nil {
		return nil, err
	}
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	return &Engine{
		Config:       config,
		log:          log,
		cfg:          collateral.Clone(),
		assetFactor:  collateral.AssetFactor(),
		stableFactor: collateral.StableFactor(),
	}, nil
}

// ReloadConf update the risk engine internal configuration.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}
	e.Config = cfg
}

// CollateralConfig returns a copy of the collateral configuration the
// engine was built with.
func (e *Engine) CollateralConfig() *types.CollateralConfig {
	return e.cfg.Clone()
}

// collateralValue returns the value of the given collateral amount in
// stablecoin units (not smallest units) at the given rate.
func (e *Engine) collateralValue(collateral *num.Uint, rate num.Decimal) num.Decimal {
	return collateral.ToDecimal().Div(e.assetFactor).Mul(rate)
}

// debtUnits converts a debt amount from stablecoin smallest units to units.
func (e *Engine) debtUnits(debt *num.Uint) num.Decimal {
	return debt.ToDecimal().Div(e.stableFactor)
}
