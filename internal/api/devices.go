package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/homedeck/internal/device"
	"github.com/nerrad567/homedeck/internal/power"
)

// handleListDevices returns all devices in seed order.
func (s *Server) handleListDevices(w http.ResponseWriter, _ *http.Request) {
	devices := s.registry.List()
	writeJSON(w, http.StatusOK, map[string]any{"devices": devices, "count": len(devices)})
}

// handleGetDevice returns a single device by ID.
func (s *Server) handleGetDevice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	dev, err := s.registry.Get(id)
	if err != nil {
		if errors.Is(err, device.ErrDeviceNotFound) {
			writeNotFound(w, "device not found")
			return
		}
		writeInternalError(w, "failed to get device")
		return
	}

	writeJSON(w, http.StatusOK, dev)
}

// PowerCommand switches an on/off device.
type PowerCommand struct {
	On   bool   `json:"on"`
	User string `json:"user,omitempty"`
}

// LevelCommand sets the level of a slider-controlled device.
type LevelCommand struct {
	Value float64 `json:"value"`
	User  string  `json:"user,omitempty"`
}

// commandResult is the response to a successful device command: the
// updated device, the journal entry it produced, and the recomputed
// power figure.
type commandResult struct {
	Device     *device.Device `json:"device"`
	Action     string         `json:"action"`
	PowerWatts int            `json:"power_watts"`
}

// handleSetPower switches a light or door. The change is applied
// synchronously, journalled, and reflected in the returned power figure.
func (s *Server) handleSetPower(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var cmd PowerCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	updated, err := s.registry.SetPower(id, cmd.On)
	if err != nil {
		s.writeDeviceError(w, err)
		return
	}

	action := device.PowerActionLabel(updated.Kind, cmd.On)
	s.actions.Append(id, action, s.userOrDefault(cmd.User))

	s.logger.Info("device command applied",
		"device_id", id,
		"action", action,
		"request_id", r.Context().Value(ctxKeyRequestID),
	)

	writeJSON(w, http.StatusOK, commandResult{
		Device:     updated,
		Action:     action,
		PowerWatts: power.Estimate(s.registry.List()),
	})
}

// handleSetLevel adjusts a thermostat setpoint or fan speed.
func (s *Server) handleSetLevel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var cmd LevelCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	updated, err := s.registry.SetLevel(id, cmd.Value)
	if err != nil {
		s.writeDeviceError(w, err)
		return
	}

	// Label with the stored value: fan speeds snap to whole steps.
	action := device.LevelActionLabel(updated.Kind, updated.LevelValue())
	s.actions.Append(id, action, s.userOrDefault(cmd.User))

	s.logger.Info("device command applied",
		"device_id", id,
		"action", action,
		"request_id", r.Context().Value(ctxKeyRequestID),
	)

	writeJSON(w, http.StatusOK, commandResult{
		Device:     updated,
		Action:     action,
		PowerWatts: power.Estimate(s.registry.List()),
	})
}

// handleDeviceActions returns the most recent journal entries for one device.
func (s *Server) handleDeviceActions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := s.registry.Get(id); err != nil {
		writeNotFound(w, "device not found")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeBadRequest(w, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	entries := s.actions.RecentFor(id, limit)
	writeJSON(w, http.StatusOK, map[string]any{"actions": entries, "count": len(entries)})
}

// userOrDefault falls back to the configured user label.
func (s *Server) userOrDefault(user string) string {
	if user == "" {
		return s.defaultUser
	}
	return user
}

// writeDeviceError maps device errors to HTTP responses.
func (s *Server) writeDeviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, device.ErrDeviceNotFound):
		writeNotFound(w, "device not found")
	case errors.Is(err, device.ErrCapabilityMismatch),
		errors.Is(err, device.ErrLevelOutOfRange):
		writeValidationError(w, err.Error())
	default:
		writeInternalError(w, "failed to update device")
	}
}
