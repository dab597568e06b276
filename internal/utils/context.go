// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application: type-safe context keys,
// HMAC request signing, JSON response writing, HTTP client initialization
// and trace-ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// IdentitySignalCtxKey is the key under which the identity middleware stores
// the per-request key-derivation signal.
var IdentitySignalCtxKey = contextKey("identitySignal")

// WithIdentitySignal returns a copy of ctx carrying signal.
func WithIdentitySignal(ctx context.Context, signal string) context.Context {
	return context.WithValue(ctx, IdentitySignalCtxKey, signal)
}

// GetIdentitySignalFromContext retrieves the key-derivation signal from ctx.
// ok is false when no signal was stored.
func GetIdentitySignalFromContext(ctx context.Context) (string, bool) {
	signal, ok := ctx.Value(IdentitySignalCtxKey).(string)
	return signal, ok
}
