// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress      = "0.0.0.0:5000"
	defaultRequestTimeout   = 30 * time.Second
	defaultMaxBodySize      = 1 << 20
	defaultMaxContentSize   = 2 << 20
	defaultSQLiteDSN        = "./sse_schema.db"
	defaultBadgerGCInterval = 10 * time.Minute
	defaultClientAddress    = "http://localhost:5000"
	defaultClientUserAgent  = "go-sse-keeper-client"
	defaultVersion          = "dev"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:           defaultVersion,
			KeyScheme:         "identity",
			MaxContentSize:    defaultMaxContentSize,
			AllowedExtensions: []string{"txt"},
		},
		Storage: Storage{
			Driver: DriverSQLite,
			DB:     DB{DSN: defaultSQLiteDSN},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			MaxBodySize:    defaultMaxBodySize,
		},
		Workers: Workers{
			BadgerGCInterval: defaultBadgerGCInterval,
		},
		Client: Client{
			ServerAddress:  defaultClientAddress,
			RequestTimeout: defaultRequestTimeout,
			UserAgent:      defaultClientUserAgent,
		},
	}
}
