package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestSize(maxBodyBytes))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrRouteNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrMethodNotAllowed)
	})

	// service endpoints
	router.Get("/healthz", h.healthz)
	router.Get("/readyz", h.readyz)
	router.Get("/version", h.version)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/session", h.authenticate)
		r.Post("/users/create", h.createUser)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users", h.listUsers)
		r.Get("/users/{id}", h.showUser)
		r.Put("/users/update/{id}", h.updateUser)
		r.Delete("/users/delete/{id}", h.deleteUser)
	})

	return router
}
