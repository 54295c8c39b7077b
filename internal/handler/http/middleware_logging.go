package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/werlleyg/boilerplate-api/internal/logger"
)

// withLogging writes one access log entry per request. Server errors are
// logged at warn level; the error itself is logged by writeError.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := newResponseWriter(w)

		next.ServeHTTP(lw, r)

		level := zerolog.InfoLevel
		if lw.Status() >= http.StatusInternalServerError {
			level = zerolog.WarnLevel
		}

		logger.FromRequest(r).WithLevel(level).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("route", routePattern(r)).
			Str("remote_addr", r.RemoteAddr).
			Int("status", lw.Status()).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}
