// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the application configuration.
//
// Values are collected from built-in defaults, environment variables,
// command-line flags and an optional JSON file, merged in that order (later
// non-zero values win) and validated before use.
package config
