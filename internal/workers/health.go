// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/doc-vault/internal/logger"
)

const healthProbeTimeout = 5 * time.Second

// healthWorker probes pinger every interval and reports the result. On
// shutdown it reports not serving.
type healthWorker struct {
	pinger   Pinger
	reporter HealthReporter
	interval time.Duration
	logger   *logger.Logger
}

func NewHealthWorker(pinger Pinger, reporter HealthReporter, interval time.Duration, logger *logger.Logger) Worker {
	return &healthWorker{
		pinger:   pinger,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

func (w *healthWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	serving := w.probe(ctx)
	w.reporter.SetServing(serving)

	for {
		select {
		case <-ctx.Done():
			w.reporter.SetServing(false)
			return
		case <-ticker.C:
			now := w.probe(ctx)
			if now != serving {
				w.logger.Info().Bool("serving", now).Msg("health status changed")
			}
			serving = now
			w.reporter.SetServing(serving)
		}
	}
}

func (w *healthWorker) probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	if err := w.pinger.Ping(ctx); err != nil {
		w.logger.Warn().Err(err).Str("func", "*healthWorker.probe").Msg("dependency is unreachable")
		return false
	}
	return true
}
