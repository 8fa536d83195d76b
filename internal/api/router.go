package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// Dashboard screens, mirroring the navigation routes
	r.Get("/", s.handleOverviewScreen)
	r.Get("/statistics", s.handleStatisticsScreen)
	r.Get("/device/{id}", s.handleDeviceScreen)
	r.Post("/pop", s.handlePopScreen)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		// Device endpoints
		r.Route("/devices", func(r chi.Router) {
			r.Get("/", s.handleListDevices)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetDevice)
				r.Post("/power", s.handleSetPower)
				r.Put("/level", s.handleSetLevel)
				r.Get("/actions", s.handleDeviceActions)
			})
		})

		// Journal and power figure
		r.Get("/actions", s.handleListActions)
		r.Get("/power", s.handlePowerEstimate)
	})

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
