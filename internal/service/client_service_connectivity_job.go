package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/doc-vault/internal/gate"
	"github.com/MKhiriev/doc-vault/internal/logger"
)

const defaultConnectivityInterval = 15 * time.Second

type connectivityWatcher struct {
	probe    gate.ConnectivityProbe
	interval time.Duration
	logger   *logger.Logger

	online atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConnectivityWatcher creates a watcher that runs probe.Check every
// interval (15s when interval is not positive). It is idle until Start.
func NewConnectivityWatcher(probe gate.ConnectivityProbe, interval time.Duration, logger *logger.Logger) ConnectivityWatcher {
	if interval <= 0 {
		interval = defaultConnectivityInterval
	}
	return &connectivityWatcher{probe: probe, interval: interval, logger: logger}
}

// Start stops any running job first. The first check runs immediately.
func (w *connectivityWatcher) Start(ctx context.Context, onChange func(online bool)) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		first := true
		for {
			online, err := w.probe.Check(jobCtx)
			if jobCtx.Err() != nil {
				return
			}
			if err != nil {
				w.logger.Debug().Err(err).Str("func", "*connectivityWatcher.Start").Msg("connectivity check failed")
				online = false
			}

			if prev := w.online.Swap(online); first || prev != online {
				first = false
				if onChange != nil {
					onChange(online)
				}
			}

			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
			}
		}
	}()
}

// Stop is a no-op when the job is not running.
func (w *connectivityWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *connectivityWatcher) Online() bool {
	return w.online.Load()
}
