// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client application.
//
// It wires the cobra command tree, the server adapter and terminal output
// into a single process lifecycle.
package client
