package http

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/doc-vault/internal/app"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/internal/utils"
)

// rateLimiter is an in-memory sliding window limiter keyed by client
// address. A limit of zero or less disables it.
type rateLimiter struct {
	mu        sync.Mutex
	requests  map[string][]time.Time
	window    time.Duration
	maxReqs   int
	lastSweep time.Time

	now func() time.Time
}

func newRateLimiter(window time.Duration, maxReqs int) *rateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &rateLimiter{
		requests: make(map[string][]time.Time),
		window:   window,
		maxReqs:  maxReqs,
		now:      time.Now,
	}
}

// allow records a request for key. When the window is full it returns false
// and how long until the oldest request leaves it.
func (rl *rateLimiter) allow(key string) (bool, time.Duration) {
	if rl == nil || rl.maxReqs <= 0 {
		return true, 0
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	if now.Sub(rl.lastSweep) > rl.window {
		rl.sweep(cutoff)
		rl.lastSweep = now
	}

	reqs := inWindow(rl.requests[key], cutoff)
	if len(reqs) >= rl.maxReqs {
		rl.requests[key] = reqs
		return false, reqs[0].Sub(cutoff)
	}

	rl.requests[key] = append(reqs, now)
	return true, 0
}

// sweep drops keys without requests in the window. rl.mu must be held.
func (rl *rateLimiter) sweep(cutoff time.Time) {
	for key, reqs := range rl.requests {
		filtered := inWindow(reqs, cutoff)
		if len(filtered) == 0 {
			delete(rl.requests, key)
			continue
		}
		rl.requests[key] = filtered
	}
}

// inWindow returns the suffix of the sorted reqs newer than cutoff.
func inWindow(reqs []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(reqs) && !reqs[i].After(cutoff) {
		i++
	}
	return reqs[i:]
}

func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)

		ok, retryAfter := h.authLimiter.allow(key)
		if !ok {
			logger.FromRequest(r).Warn().Str("client", key).Msg("auth rate limit exceeded")

			seconds := int(retryAfter.Round(time.Second) / time.Second)
			w.Header().Set("Retry-After", strconv.Itoa(max(seconds, 1)))
			utils.WriteMessage(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientKey is the host part of RemoteAddr. middleware.RealIP has already
// replaced it with X-Forwarded-For / X-Real-IP when present.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
