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
	"github.com/floeprotocol/floe-core/config/encoding"
	"github.com/floeprotocol/floe-core/libs/num"
	"github.com/floeprotocol/floe-core/logging"
)

const namedLogger = "fee"

// Config represent the configuration of the fee engine.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	// BaseBorrowingFee is the one time rate deducted from minted debt in
	// general availability, waived in recovery.
	BaseBorrowingFee num.Decimal `long:"base-borrowing-fee"`

	// RedemptionFloor and RedemptionCeiling bound the redemption fee rate.
	RedemptionFloor   num.Decimal `long:"redemption-floor"`
	RedemptionCeiling num.Decimal `long:"redemption-ceiling"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:             encoding.LogLevel{Level: logging.InfoLevel},
		BaseBorrowingFee:  num.MustDecimalFromString("0.005"),
		RedemptionFloor:   num.MustDecimalFromString("0.005"),
		RedemptionCeiling: num.MustDecimalFromString("0.05"),
	}
}
