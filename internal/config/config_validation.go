// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case DriverSQLite:
		if cfg.Storage.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case DriverMemory:
		// no DSN needed
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Session.IdleTimeout < 0 {
		return ErrInvalidSessionConfigs
	}

	return nil
}
