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

package types

// ProtocolMode is the protocol wide operating mode. It has no persisted
// identity, it is a level triggered classification recomputed from the
// system aggregate and the price feed health on every update.
type ProtocolMode int

const (
	// ModeGeneralAvailability is normal operation, all operations allowed.
	ModeGeneralAvailability ProtocolMode = iota
	// ModeRecovery widens the liquidation zone and waives the borrowing
	// fee while the system collateral ratio sits below the recovery
	// threshold.
	ModeRecovery
	// ModeReadOnly halts all state changing operations, entered on a
	// failed price feed or deep system insolvency.
	ModeReadOnly
)

func (m ProtocolMode) String() string {
	switch m {
	case ModeGeneralAvailability:
		return "general-availability"
	case ModeRecovery:
		return "recovery"
	case ModeReadOnly:
		return "read-only"
	default:
		return "unknown"
	}
}

// HealthClass is the display classification of a vault.
type HealthClass int

const (
	VaultHealthy HealthClass = iota
	VaultWarning
	VaultLiquidatable
)

func (h HealthClass) String() string {
	switch h {
	case VaultHealthy:
		return "healthy"
	case VaultWarning:
		return "warning"
	case VaultLiquidatable:
		return "liquidatable"
	default:
		return "unknown"
	}
}
