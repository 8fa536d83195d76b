package api

import (
	"fmt"
	"net/http"

	"github.com/nerrad567/homedeck/internal/power"
)

// handleListActions returns the full journal, newest first.
func (s *Server) handleListActions(w http.ResponseWriter, _ *http.Request) {
	entries := s.actions.Entries()
	writeJSON(w, http.StatusOK, map[string]any{
		"actions":  entries,
		"count":    len(entries),
		"capacity": s.actions.Capacity(),
	})
}

// handlePowerEstimate returns the current simulated power draw.
func (s *Server) handlePowerEstimate(w http.ResponseWriter, _ *http.Request) {
	watts := power.Estimate(s.registry.List())
	writeJSON(w, http.StatusOK, map[string]any{
		"power_watts": watts,
		"power_text":  fmt.Sprintf("Current simulated power: %d W", watts),
	})
}
