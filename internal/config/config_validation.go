// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks a merged server configuration. An empty configuration
// (nothing merged) is treated as valid so that partial configs can be built
// in tests; every field that is set must be consistent.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case "":
	case DriverSQLite, DriverPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: %s driver requires a DSN", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	case DriverBadger:
		if cfg.Storage.Badger.Dir == "" {
			return fmt.Errorf("%w: badger driver requires a directory", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	switch cfg.App.KeyScheme {
	case "", "identity":
	case "passphrase":
		if cfg.App.KeySalt == "" {
			return fmt.Errorf("%w: passphrase key scheme requires a key salt", ErrInvalidAppConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown key scheme %q", ErrInvalidAppConfigs, cfg.App.KeyScheme)
	}

	if cfg.App.MaxContentSize < 0 || cfg.Server.MaxBodySize < 0 {
		return fmt.Errorf("%w: size limits must not be negative", ErrInvalidAppConfigs)
	}

	if cfg.Workers.BadgerGCInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *StructuredConfig) validateClient() error {
	if cfg.Client.ServerAddress == "" || cfg.Client.RequestTimeout <= 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
