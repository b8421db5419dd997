package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags the request logger with a trace id taken from the
// X-Trace-ID header, or a fresh UUID, and echoes it back to the caller.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > 64 {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			c = c.Str("trace_id", traceID)
			if ip := r.RemoteAddr; ip != "" {
				c = c.Str("remote_addr", ip)
			}
			if reqID := middleware.GetReqID(r.Context()); reqID != "" {
				c = c.Str("request_id", reqID)
			}
			return c
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
