// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a flag.Value accepting "host:port".
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses server command-line flags from args into a partial
// [StructuredConfig]. Unset flags leave zero values, so they do not override
// other sources when merged.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var storageDriver string
	var databaseDSN string
	var badgerDir string
	var jsonConfigPath string
	var keyScheme string
	var keySalt string
	var hashKey string
	var allowedExtensions string
	var maxContentSize int64
	var maxBodySize int64
	var requestTimeout time.Duration
	var badgerGCInterval time.Duration
	var trustProxy bool

	fs := flag.NewFlagSet("go-sse-keeper", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&storageDriver, "s", "", "Storage driver: sqlite, postgres or badger")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&badgerDir, "badger-dir", "", "Badger data directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&keyScheme, "key-scheme", "", "Key scheme: identity or passphrase")
	fs.StringVar(&keySalt, "key-salt", "", "Argon2id salt for the passphrase key scheme")
	fs.StringVar(&hashKey, "hash-key", "", "Request integrity hash key")
	fs.StringVar(&allowedExtensions, "ext", "", "Comma separated allowed upload extensions")
	fs.Int64Var(&maxContentSize, "max-content-size", 0, "Max file content size in bytes")
	fs.Int64Var(&maxBodySize, "max-body-size", 0, "Max request body size in bytes")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&badgerGCInterval, "badger-gc-interval", 0, "Badger value log GC interval")
	fs.BoolVar(&trustProxy, "trust-proxy", false, "Trust X-Forwarded-For / X-Real-IP")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			KeyScheme:         keyScheme,
			KeySalt:           keySalt,
			HashKey:           hashKey,
			MaxContentSize:    maxContentSize,
			AllowedExtensions: splitList(allowedExtensions),
		},
		Storage: Storage{
			Driver: storageDriver,
			DB: DB{
				DSN: databaseDSN,
			},
			Badger: Badger{
				Dir: badgerDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxBodySize:    maxBodySize,
			TrustProxy:     trustProxy,
		},
		Workers: Workers{
			BadgerGCInterval: badgerGCInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
