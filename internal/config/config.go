// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverBadger   = "badger"
)

// StructuredConfig is the top-level configuration container for the
// go-sse-keeper server and client.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, key scheme and content
	// limits.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the record store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and body limits for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background maintenance workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Client holds settings for the command-line client.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// KeyScheme selects how per-request keys are derived: "identity"
	// (client address + user agent) or "passphrase" (X-Vault-Passphrase
	// header stretched with Argon2id).
	// Env: APP_KEY_SCHEME
	KeyScheme string `env:"KEY_SCHEME"`

	// KeySalt is the deployment-wide Argon2id salt for the passphrase scheme.
	// Env: APP_KEY_SALT
	KeySalt string `env:"KEY_SALT"`

	// HashKey is the HMAC key used for request integrity checking (the
	// HashSHA256 header). Integrity checks are disabled when empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// MaxContentSize is the largest accepted file content in bytes. Larger
	// uploads are rejected.
	// Env: APP_MAX_CONTENT_SIZE
	MaxContentSize int64 `env:"MAX_CONTENT_SIZE"`

	// AllowedExtensions lists accepted upload file extensions without dot.
	// Env: APP_ALLOWED_EXTENSIONS (comma separated)
	AllowedExtensions []string `env:"ALLOWED_EXTENSIONS" envSeparator:","`
}

// Storage selects the record store backend.
type Storage struct {
	// Driver is one of "sqlite", "postgres" or "badger".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Badger holds the embedded key-value store settings.
	Badger Badger `envPrefix:"BADGER_"`
}

// DB holds connection settings for the relational database backends.
type DB struct {
	// DSN is the Data Source Name: a file path for SQLite or a connection
	// URI for PostgreSQL.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Badger holds settings for the Badger backend.
type Badger struct {
	// Dir is the directory holding the Badger files.
	// Env: STORAGE_BADGER_DIR
	Dir string `env:"DIR"`
}

// Server holds network and limit settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodySize caps the size of an upload request body in bytes.
	// Env: SERVER_MAX_BODY_SIZE
	MaxBodySize int64 `env:"MAX_BODY_SIZE"`

	// TrustProxy makes the server take the client address from
	// X-Forwarded-For / X-Real-IP. Enable only behind a trusted proxy.
	// Env: SERVER_TRUST_PROXY
	TrustProxy bool `env:"TRUST_PROXY"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// BadgerGCInterval is the period of Badger value-log garbage collection.
	// Env: WORKERS_BADGER_GC_INTERVAL
	BadgerGCInterval time.Duration `env:"BADGER_GC_INTERVAL"`
}

// Client holds settings for the command-line client.
type Client struct {
	// ServerAddress is the base URL of the server.
	// Env: CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout bounds each client request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent with every request. It is part of the identity key
	// signal, so it must stay stable between uploads and searches.
	// Env: CLIENT_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// Passphrase is sent as X-Vault-Passphrase for servers running the
	// passphrase key scheme. It is never read from the JSON file.
	// Env: CLIENT_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`
}

// GetStructuredConfig loads, merges and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (args, usually os.Args[1:])
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// GetClientConfig loads the configuration for the command-line client. Only
// defaults and environment are consulted; the client parses its own flags.
func GetClientConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateClient()
}
