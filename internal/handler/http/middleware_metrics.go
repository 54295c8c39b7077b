package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const (
	unmatchedRoute = "unmatched"
	otherMethod    = "other"
)

// withMetrics records request count, latency and in-flight requests. The
// route label is the chi route pattern, so ids in paths do not inflate
// cardinality.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		method := metricMethod(r.Method)

		done := h.metrics.TrackInFlight(method)
		defer done()

		mw := newResponseWriter(w)
		next.ServeHTTP(mw, r)

		h.metrics.ObserveRequest(method, routePattern(r), mw.Status(), time.Since(start))
	})
}

// routePattern returns the chi pattern matched by r, or "unmatched" before
// routing or when no route matched.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}

	return unmatchedRoute
}

// metricMethod maps r.Method onto the standard HTTP methods. Any other
// client-supplied token is reported as "other".
func metricMethod(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodOptions, http.MethodConnect, http.MethodTrace:
		return method
	default:
		return otherMethod
	}
}
