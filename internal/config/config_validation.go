// SPDX-License-Identifier: Apache-2.0

package config

import "fmt"

const (
	minPasswordHashCost = 4
	maxPasswordHashCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Auth.SecretKey == "" {
		return ErrMissingSecretKey
	}

	if cfg.Auth.PasswordHashCost < minPasswordHashCost || cfg.Auth.PasswordHashCost > maxPasswordHashCost {
		return fmt.Errorf("%w: %d", ErrInvalidPasswordHashCost, cfg.Auth.PasswordHashCost)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
