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
	"time"

	"github.com/floeprotocol/floe-core/config/encoding"
	"github.com/floeprotocol/floe-core/libs/num"
	"github.com/floeprotocol/floe-core/logging"
)

// namedLogger is the identifier for package and should ideally match the package name
// this is simply emitted as a hierarchical label e.g. 'api.grpc'.
const namedLogger = "risk"

// Config represent the configuration of the risk engine.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	// FreshnessWindow bounds the age of a price quote allowed to authorize
	// a debt increasing operation.
	FreshnessWindow encoding.Duration `long:"freshness-window"`

	// WarningBuffer is the margin above the minimum collateral ratio below
	// which a healthy vault is flagged as warning.
	WarningBuffer num.Decimal `long:"warning-buffer"`

	// LiquidationBonus is the fraction of the repaid value paid to the
	// liquidator on top of it, in collateral.
	LiquidationBonus num.Decimal `long:"liquidation-bonus"`

	// RecoveryTargetCR is the collateral ratio a partial liquidation in
	// recovery mode restores a vault to.
	RecoveryTargetCR num.Decimal `long:"recovery-target-cr"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:            encoding.LogLevel{Level: logging.InfoLevel},
		FreshnessWindow:  encoding.Duration{Duration: 30 * time.Second},
		WarningBuffer:    num.MustDecimalFromString("0.5"),
		LiquidationBonus: num.MustDecimalFromString("0.05"),
		RecoveryTargetCR: num.MustDecimalFromString("1.5"),
	}
}
