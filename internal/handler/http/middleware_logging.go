package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/doc-vault/internal/app"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/internal/utils"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		event := log.Info()
		if lw.status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}

// withTimeout cancels the request context after the configured request
// timeout. Document and signature uploads get four times the budget.
// A handler that hits the deadline before writing gets 503.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		timeout := h.requestTimeout()
		if r.Method == http.MethodPost && isUploadPath(r.URL.Path) {
			timeout *= 4
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r.WithContext(ctx))

		if !lw.wroteHeader && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.WriteMessage(w, app.MsgRequestTimeout, http.StatusServiceUnavailable)
		}
	})
}
