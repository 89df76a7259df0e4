package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-driver storage driver ("sqlite" or "memory")
//	-d database file path for the sqlite driver
//	-passphrase at-rest encryption passphrase (empty disables encryption)
//	-c/-config json file path with configs
//	-idle-timeout session auto-lock interval (e.g., "30m")
//	-insecure-fallback allow non-biometric fallback login (dev only)
func ParseFlags() *StructuredConfig {
	var storageDriver string
	var databaseDSN string
	var passphrase string
	var jsonConfigPath string
	var idleTimeout time.Duration
	var allowInsecureFallback bool

	flag.StringVar(&storageDriver, "driver", "", "Storage driver (sqlite or memory)")
	flag.StringVar(&databaseDSN, "d", "", "Database file path")
	flag.StringVar(&passphrase, "passphrase", "", "At-rest encryption passphrase")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&idleTimeout, "idle-timeout", 0, "Session auto-lock interval (e.g., 30m)")
	flag.BoolVar(&allowInsecureFallback, "insecure-fallback", false, "Allow non-biometric fallback login (dev only)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			AllowInsecureFallback: allowInsecureFallback,
		},
		Storage: Storage{
			Driver:     storageDriver,
			DSN:        databaseDSN,
			Passphrase: passphrase,
		},
		Session: Session{
			IdleTimeout: idleTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
