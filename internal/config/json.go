// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// accept both Go duration strings ("30s") and nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Version           string   `json:"version"`
		KeyScheme         string   `json:"key_scheme"`
		KeySalt           string   `json:"key_salt"`
		HashKey           string   `json:"hash_key"`
		MaxContentSize    int64    `json:"max_content_size"`
		AllowedExtensions []string `json:"allowed_extensions"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver string `json:"driver"`
		DB     struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Badger struct {
			Dir string `json:"dir"`
		} `json:"badger,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxBodySize    int64    `json:"max_body_size"`
		TrustProxy     bool     `json:"trust_proxy"`
	} `json:"server,omitempty"`

	Workers struct {
		BadgerGCInterval Duration `json:"badger_gc_interval"`
	} `json:"workers,omitempty"`

	Client struct {
		ServerAddress  string   `json:"server_address"`
		RequestTimeout Duration `json:"request_timeout"`
		UserAgent      string   `json:"user_agent"`
	} `json:"client,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:           jsonCfg.App.Version,
			KeyScheme:         jsonCfg.App.KeyScheme,
			KeySalt:           jsonCfg.App.KeySalt,
			HashKey:           jsonCfg.App.HashKey,
			MaxContentSize:    jsonCfg.App.MaxContentSize,
			AllowedExtensions: jsonCfg.App.AllowedExtensions,
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Badger: Badger{
				Dir: jsonCfg.Storage.Badger.Dir,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxBodySize:    jsonCfg.Server.MaxBodySize,
			TrustProxy:     jsonCfg.Server.TrustProxy,
		},
		Workers: Workers{
			BadgerGCInterval: time.Duration(jsonCfg.Workers.BadgerGCInterval),
		},
		Client: Client{
			ServerAddress:  jsonCfg.Client.ServerAddress,
			RequestTimeout: time.Duration(jsonCfg.Client.RequestTimeout),
			UserAgent:      jsonCfg.Client.UserAgent,
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from a JSON string or number.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
