// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sse-keeper/internal/logger"
	"github.com/MKhiriev/go-sse-keeper/internal/store"
)

// GCWorker periodically asks the storage to reclaim value-log space.
type GCWorker struct {
	collector store.GarbageCollector
	interval  time.Duration

	logger *logger.Logger
}

func NewGCWorker(collector store.GarbageCollector, interval time.Duration, logger *logger.Logger) *GCWorker {
	return &GCWorker{
		collector: collector,
		interval:  interval,
		logger:    logger,
	}
}

func (w *GCWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("gc worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("gc worker stopped")
			return
		case <-ticker.C:
			w.collect(ctx)
		}
	}
}

func (w *GCWorker) collect(ctx context.Context) {
	start := time.Now()

	rewritten, err := w.collector.CollectGarbage(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "*GCWorker.collect").Msg("garbage collection failed")
		return
	}

	w.logger.Debug().
		Int("rewritten", rewritten).
		Dur("duration", time.Since(start)).
		Msg("garbage collection finished")
}
