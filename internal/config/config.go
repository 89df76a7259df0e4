// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Storage driver names accepted by [Storage.Driver].
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// StructuredConfig is the top-level configuration container for the
// securevault application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// the insecure-fallback development switch.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the blob persistence substrate.
	Storage Storage `envPrefix:"STORAGE_"`

	// Session holds session lifecycle settings such as the idle auto-lock
	// interval.
	Session Session `envPrefix:"SESSION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// AllowInsecureFallback permits the non-biometric fallback login when
	// no usable sensor exists. Development builds only; release
	// configurations must leave it false. Per-action sensitive gating is
	// never subject to the fallback regardless of this switch.
	// Env: APP_ALLOW_INSECURE_FALLBACK
	AllowInsecureFallback bool `env:"ALLOW_INSECURE_FALLBACK"`
}

// Storage holds configuration for the blob persistence substrate.
type Storage struct {
	// Driver selects the blob store backend: "sqlite" (durable, default)
	// or "memory" (volatile, for development).
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the SQLite database file path used by the sqlite driver
	// (e.g. "vault.db").
	// Env: STORAGE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Passphrase, when non-empty, enables at-rest encryption of every
	// blob value with a key derived from it. Keep confidential.
	// Env: STORAGE_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`
}

// Session holds session lifecycle settings.
type Session struct {
	// IdleTimeout is the inactivity interval after which the session is
	// locked automatically (e.g. "30m"). Zero disables auto-lock.
	// Env: SESSION_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`
}

// GetConfig builds the final application configuration by merging, in
// precedence order: environment variables, command-line flags, the optional
// JSON file, and built-in defaults. The merged result is validated before
// being returned.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
