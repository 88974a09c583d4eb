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

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/floeprotocol/floe-core/config"
	"github.com/floeprotocol/floe-core/core/fee"
	"github.com/floeprotocol/floe-core/core/monitor/price"
	"github.com/floeprotocol/floe-core/core/risk"
	"github.com/floeprotocol/floe-core/core/types"
	"github.com/floeprotocol/floe-core/libs/num"
	"github.com/floeprotocol/floe-core/logging"

	"github.com/BurntSushi/toml"
	"github.com/jessevdk/go-flags"
)

// CheckCmd describes the `floe check` command, it evaluates a protocol
// snapshot file offline: per vault ratio and health, system collateral
// ratio, mode and fee rates.
type CheckCmd struct {
	RootPath string `short:"r" long:"root-path" description:"Path of the root directory holding the configuration"`
	Snapshot string `short:"s" long:"snapshot" required:"true" description:"Path of the snapshot file to evaluate"`
}

var checkCmd CheckCmd

func Check(ctx context.Context, parser *flags.Parser) error {
	checkCmd = CheckCmd{
		RootPath: defaultRootPath(),
	}
	_, err := parser.AddCommand("check", "Evaluate a protocol snapshot",
		"Run the risk engine over a snapshot file and report vault health, system ratio and mode", &checkCmd)
	return err
}

// snapshotFile is the on disk format consumed by `floe check`. Amounts are
// carried as strings so they parse into fixed point, never floats.
type snapshotFile struct {
	Collateral struct {
		Symbol         string
		Decimals       uint32
		StableDecimals uint32
		MinimumCR      string
		LiquidationCR  string
		MinVaultDebt   string
		DebtCeiling    string
	}
	Price struct {
		Rate      string
		Timestamp int64
	}
	Vaults []struct {
		ID         uint64
		Owner      string
		Collateral string
		Debt       string
	}
}

func (cmd *CheckCmd) Execute(_ []string) error {
	log := logging.NewLoggerFromEnv("dev")
	defer log.AtExit()

	cfg, err := config.Read(cmd.RootPath)
	if err != nil {
		return err
	}

	buf, err := os.ReadFile(cmd.Snapshot)
	if err != nil {
		return err
	}
	snap := snapshotFile{}
	if _, err := toml.Decode(string(buf), &snap); err != nil {
		return fmt.Errorf("could not decode snapshot: %w", err)
	}

	collateral, err := collateralFromSnapshot(snap)
	if err != nil {
		return err
	}
	engine, err := risk.New(log, cfg.Risk, collateral)
	if err != nil {
		return err
	}
	monitor := price.NewEngine(cfg.Price)
	fees := fee.New(log, cfg.Fee, fee.LinearDecay(num.MustDecimalFromString("0.000001")))

	rate, err := num.DecimalFromString(snap.Price.Rate)
	if err != nil {
		return fmt.Errorf("could not parse price rate %q: %w", snap.Price.Rate, err)
	}
	quote := types.PriceQuote{Rate: rate, Time: time.Unix(snap.Price.Timestamp, 0)}

	vaults := make([]*types.Vault, 0, len(snap.Vaults))
	for _, v := range snap.Vaults {
		coll, fail := num.UintFromString(v.Collateral, 10)
		if fail {
			return fmt.Errorf("invalid collateral amount %q for vault %d", v.Collateral, v.ID)
		}
		debt, fail := num.UintFromString(v.Debt, 10)
		if fail {
			return fmt.Errorf("invalid debt amount %q for vault %d", v.Debt, v.ID)
		}
		vaults = append(vaults, &types.Vault{
			ID:         v.ID,
			Owner:      v.Owner,
			Collateral: coll,
			Debt:       debt,
		})
	}

	agg := types.AggregateVaults(vaults)
	health := monitor.CheckQuote(quote, time.Now())
	sysCR, err := engine.SystemCR(agg, quote)
	if err != nil {
		return err
	}
	threshold := risk.RecoveryThreshold([]risk.CollateralBook{
		{Config: collateral, TotalDebt: agg.TotalDebt},
	})
	mode := engine.DeriveMode(sysCR, health, threshold)

	fmt.Printf("collateral:    %s\n", collateral.Symbol)
	fmt.Printf("price:         %s (%s)\n", quote.Rate, health)
	fmt.Printf("system CR:     %s\n", sysCR)
	fmt.Printf("mode:          %s\n", mode)
	fmt.Printf("borrowing fee: %s\n", fees.BorrowingFee(mode))
	fmt.Println()

	for _, v := range vaults {
		if v.IsClosed() {
			fmt.Printf("vault %-6d %-24s closed\n", v.ID, v.Owner)
			continue
		}
		ratio, err := engine.CollateralRatio(v, quote)
		if err != nil {
			return err
		}
		fmt.Printf("vault %-6d %-24s ratio=%-12s health=%s\n",
			v.ID, v.Owner, ratio, engine.ClassifyHealth(ratio, mode))
	}
	return nil
}

func collateralFromSnapshot(snap snapshotFile) (*types.CollateralConfig, error) {
	minCR, err := num.DecimalFromString(snap.Collateral.MinimumCR)
	if err != nil {
		return nil, fmt.Errorf("invalid minimum CR: %w", err)
	}
	liqCR, err := num.DecimalFromString(snap.Collateral.LiquidationCR)
	if err != nil {
		return nil, fmt.Errorf("invalid liquidation CR: %w", err)
	}
	minDebt, fail := num.UintFromString(snap.Collateral.MinVaultDebt, 10)
	if fail {
		return nil, fmt.Errorf("invalid minimum vault debt %q", snap.Collateral.MinVaultDebt)
	}
	collateral := &types.CollateralConfig{
		Symbol:          snap.Collateral.Symbol,
		Decimals:        snap.Collateral.Decimals,
		StableDecimals:  snap.Collateral.StableDecimals,
		MinimumCR:       minCR,
		LiquidationCR:   liqCR,
		InterestRateAPR: num.DecimalZero(),
		MinVaultDebt:    minDebt,
		LedgerFee:       num.UintZero(),
	}
	if snap.Collateral.DebtCeiling != "" {
		ceiling, fail := num.UintFromString(snap.Collateral.DebtCeiling, 10)
		if fail {
			return nil, fmt.Errorf("invalid debt ceiling %q", snap.Collateral.DebtCeiling)
		}
		collateral.DebtCeiling = ceiling
	}
	return collateral, nil
}
