// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	"github.com/MKhiriev/go-sse-keeper/internal/logger"
)

// badgerLogger routes Badger's internal log lines into zerolog.
type badgerLogger struct {
	logger *logger.Logger
}

func newBadgerLogger(log *logger.Logger) *badgerLogger {
	return &badgerLogger{logger: log}
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error().Str("component", "badger").Msgf(strings.TrimSuffix(format, "\n"), args...)
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn().Str("component", "badger").Msgf(strings.TrimSuffix(format, "\n"), args...)
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.logger.Info().Str("component", "badger").Msgf(strings.TrimSuffix(format, "\n"), args...)
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug().Str("component", "badger").Msgf(strings.TrimSuffix(format, "\n"), args...)
}
