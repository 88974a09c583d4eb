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

package service

import (
	"context"
	"errors"
	"time"

	"github.com/floeprotocol/floe-core/core/fee"
	"github.com/floeprotocol/floe-core/core/monitor/price"
	"github.com/floeprotocol/floe-core/core/risk"
	"github.com/floeprotocol/floe-core/core/types"
	"github.com/floeprotocol/floe-core/libs/num"
	"github.com/floeprotocol/floe-core/logging"
	"github.com/floeprotocol/floe-core/metrics"
)

// ErrVaultNotFound is returned when an owner has no vault with the
// requested id.
var ErrVaultNotFound = errors.New("vault not found")

// VaultStore supplies vault snapshots.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/vault_store_mock.go -package mocks github.com/floeprotocol/floe-core/service VaultStore
type VaultStore interface {
	GetByOwner(ctx context.Context, owner string) ([]*types.Vault, error)
	GetAll(ctx context.Context) ([]*types.Vault, error)
}

// PriceSource supplies the latest quote, Refresh forces a fetch when the
// cache is too old for a debt affecting operation.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/price_source_mock.go -package mocks github.com/floeprotocol/floe-core/service PriceSource
type PriceSource interface {
	Latest() (types.PriceQuote, error)
	Refresh(ctx context.Context) (types.PriceQuote, error)
}

// VaultRisk bundles everything a display surface renders for one vault.
// All values come from the one risk engine, surfaces never recompute them.
type VaultRisk struct {
	Vault  *types.Vault
	Ratio  types.Ratio
	Health types.HealthClass
}

// SystemStatus is the protocol wide snapshot for the parameters surfaces.
type SystemStatus struct {
	Aggregate    *types.SystemAggregate
	SystemCR     types.Ratio
	Mode         types.ProtocolMode
	PriceHealth  types.PriceHealth
	Price        types.PriceQuote
	BorrowingFee num.Decimal
}

// Svc is the single entry point for display and command surfaces. It
// gathers snapshots from the stores and runs them through the engines.
type Svc struct {
	Config
	log     *logging.Logger
	engine  *risk.Engine
	monitor *price.Engine
	fees    *fee.Engine
	vaults  VaultStore
	prices  PriceSource
}

func NewService(
	log *logging.Logger,
	c Config,
	engine *risk.Engine,
	monitor *price.Engine,
	fees *fee.Engine,
	vaults VaultStore,
	prices PriceSource,
) *Svc {
	log = log.Named(namedLogger)
	log.SetLevel(c.Level.Get())

	return &Svc{
		Config:  c,
		log:     log,
		engine:  engine,
		monitor: monitor,
		fees:    fees,
		vaults:  vaults,
		prices:  prices,
	}
}

// ReloadConf update the risk service internal configuration.
func (s *Svc) ReloadConf(cfg Config) {
	s.log.Info("reloading configuration")
	if s.log.GetLevel() != cfg.Level.Get() {
		s.log.Info("updating log level",
			logging.String("old", s.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		s.log.SetLevel(cfg.Level.Get())
	}
	s.Config = cfg
}

// SystemStatus recomputes the protocol wide state from the current vault
// set and the latest quote.
func (s *Svc) SystemStatus(ctx context.Context) (*SystemStatus, error) {
	defer metrics.EngineTimeCounterAdd("service", "SystemStatus")()

	vaults, err := s.vaults.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	quote, err := s.prices.Latest()
	if err != nil {
		return nil, err
	}

	agg := types.AggregateVaults(vaults)
	health := s.monitor.CheckQuote(quote, time.Now())
	sysCR, err := s.engine.SystemCR(agg, quote)
	if err != nil {
		return nil, err
	}
	threshold := risk.RecoveryThreshold([]risk.CollateralBook{
		{Config: s.engine.CollateralConfig(), TotalDebt: agg.TotalDebt},
	})
	mode := s.engine.DeriveMode(sysCR, health, threshold)

	return &SystemStatus{
		Aggregate:    agg,
		SystemCR:     sysCR,
		Mode:         mode,
		PriceHealth:  health,
		Price:        quote,
		BorrowingFee: s.fees.BorrowingFee(mode),
	}, nil
}

// VaultRisk returns the risk bundle for every vault of the given owner,
// classified under the current protocol mode.
func (s *Svc) VaultRisk(ctx context.Context, owner string) ([]*VaultRisk, error) {
	defer metrics.EngineTimeCounterAdd("service", "VaultRisk")()

	status, err := s.SystemStatus(ctx)
	if err != nil {
		return nil, err
	}
	vaults, err := s.vaults.GetByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	out := make([]*VaultRisk, 0, len(vaults))
	for _, v := range vaults {
		ratio, err := s.engine.CollateralRatio(v, status.Price)
		if err != nil {
			// closed vaults have no ratio, skip them rather than fail the
			// whole listing
			if errors.Is(err, risk.ErrInvalidInput) && v.IsClosed() {
				continue
			}
			return nil, err
		}
		out = append(out, &VaultRisk{
			Vault:  v,
			Ratio:  ratio,
			Health: s.engine.ClassifyHealth(ratio, status.Mode),
		})
	}
	return out, nil
}

// EstimateBorrow computes the borrow bounds for the owner's vault. This is
// a debt increasing path so the quote is refreshed when the cache exceeds
// the staleness bound, and the quoted fee rate rides along.
func (s *Svc) EstimateBorrow(ctx context.Context, owner string, vaultID uint64) (*risk.Limits, num.Decimal, error) {
	defer metrics.EngineTimeCounterAdd("service", "EstimateBorrow")()

	quote, err := s.prices.Refresh(ctx)
	if err != nil {
		return nil, num.DecimalZero(), err
	}
	vaults, err := s.vaults.GetByOwner(ctx, owner)
	if err != nil {
		return nil, num.DecimalZero(), err
	}
	var vault *types.Vault
	for _, v := range vaults {
		if v.ID == vaultID {
			vault = v
			break
		}
	}
	if vault == nil {
		return nil, num.DecimalZero(), ErrVaultNotFound
	}

	all, err := s.vaults.GetAll(ctx)
	if err != nil {
		return nil, num.DecimalZero(), err
	}
	agg := types.AggregateVaults(all)

	limits, err := s.engine.BorrowLimits(vault, quote, agg, time.Now())
	if err != nil {
		return nil, num.DecimalZero(), err
	}

	health := s.monitor.CheckQuote(quote, time.Now())
	sysCR, err := s.engine.SystemCR(agg, quote)
	if err != nil {
		return nil, num.DecimalZero(), err
	}
	threshold := risk.RecoveryThreshold([]risk.CollateralBook{
		{Config: s.engine.CollateralConfig(), TotalDebt: agg.TotalDebt},
	})
	mode := s.engine.DeriveMode(sysCR, health, threshold)

	return limits, s.fees.BorrowingFee(mode), nil
}
