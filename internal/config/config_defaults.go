// SPDX-License-Identifier: Apache-2.0

package config

import "time"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	defaultPort             = 3333
	defaultRequestTimeout   = 30 * time.Second
	defaultTokenDuration    = 24 * time.Hour
	defaultPasswordHashCost = 10
	defaultMaxOpenConns     = 10
	defaultLogLevel         = "info"
	defaultAdminName        = "Administrator"
)

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			Port:           defaultPort,
			RequestTimeout: defaultRequestTimeout,
		},
		Auth: Auth{
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: defaultPasswordHashCost,
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverPostgres,
				MaxOpenConns: defaultMaxOpenConns,
			},
		},
		Log: Log{
			Level: defaultLogLevel,
		},
		Admin: Admin{
			Name: defaultAdminName,
		},
	}
}
