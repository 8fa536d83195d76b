package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/homedeck/internal/view"
)

// The screen handlers drive the navigation state machine: each request
// resolves a route to a rendered screen, exactly as the original
// dashboard's route changes did. An unknown device id falls back to
// the overview with a 200; navigation never errors.

// handleOverviewScreen renders the overview screen.
func (s *Server) handleOverviewScreen(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.views.Navigate(view.RouteOverview))
}

// handleStatisticsScreen renders the statistics screen.
func (s *Server) handleStatisticsScreen(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.views.Navigate(view.RouteStatistics))
}

// handleDeviceScreen renders the device detail screen, or the overview
// when the id is unknown.
func (s *Server) handleDeviceScreen(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	writeJSON(w, http.StatusOK, s.views.Navigate(view.RouteDevicePrefix+id))
}

// handlePopScreen leaves the current screen for the one beneath it.
func (s *Server) handlePopScreen(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.views.Pop())
}
