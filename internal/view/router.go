package view

import (
	"fmt"
	"strings"
	"sync"

	"github.com/anggasct/fluo"

	"github.com/nerrad567/homedeck/internal/actionlog"
	"github.com/nerrad567/homedeck/internal/device"
	"github.com/nerrad567/homedeck/internal/power"
)

// Screen states of the dashboard.
const (
	StateOverview     = "overview"
	StateStatistics   = "statistics"
	StateDeviceDetail = "device_detail"
)

// Navigation routes.
const (
	RouteOverview     = "/"
	RouteStatistics   = "/statistics"
	RouteDevicePrefix = "/device/"
)

// Navigation events driving the state machine.
const (
	eventGoOverview   = "go_overview"
	eventGoStatistics = "go_statistics"
	eventGoDevice     = "go_device"
	eventPop          = "pop"
)

// ctxKeyDeviceID is the machine context key holding the device id
// while on the detail screen.
const ctxKeyDeviceID = "device_id"

// Screen is a rendered view: the resolved route plus exactly one
// populated view-model matching State.
type Screen struct {
	Route      string            `json:"route"`
	State      string            `json:"state"`
	Overview   *OverviewView     `json:"overview,omitempty"`
	Statistics *StatisticsView   `json:"statistics,omitempty"`
	Device     *DeviceDetailView `json:"device,omitempty"`
}

// Router resolves navigation requests to rendered screens.
//
// Navigation is a three-state machine (overview, statistics, device
// detail). A request for an unknown device id falls back to the
// overview rather than erroring; there is no navigation history beyond
// a single level, so Pop from the detail screen returns to overview.
//
// All methods are thread-safe.
type Router struct {
	mu       sync.Mutex
	machine  fluo.Machine
	registry *device.Registry
	log      *actionlog.Log
}

// NewRouter creates a router over the given registry and action log,
// starting on the overview screen.
func NewRouter(registry *device.Registry, log *actionlog.Log) (*Router, error) {
	definition := fluo.NewMachine().
		State(StateOverview).Initial().
		To(StateStatistics).On(eventGoStatistics).
		To(StateDeviceDetail).On(eventGoDevice).
		State(StateStatistics).
		To(StateOverview).On(eventGoOverview).
		To(StateOverview).On(eventPop).
		To(StateDeviceDetail).On(eventGoDevice).
		State(StateDeviceDetail).
		To(StateOverview).On(eventGoOverview).
		To(StateOverview).On(eventPop).
		To(StateStatistics).On(eventGoStatistics).
		ToSelf().On(eventGoDevice).
		Build()

	machine := definition.CreateInstance()
	if err := machine.Start(); err != nil {
		return nil, fmt.Errorf("starting navigation machine: %w", err)
	}

	return &Router{
		machine:  machine,
		registry: registry,
		log:      log,
	}, nil
}

// Navigate resolves a route string and returns the rendered screen.
//
// Recognised routes are "/", "/statistics", and "/device/{id}". A
// device route whose id is not registered resolves to the overview
// silently, as does any unrecognised route.
func (r *Router) Navigate(route string) Screen {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case route == RouteStatistics:
		r.machine.HandleEvent(eventGoStatistics, nil)

	case strings.HasPrefix(route, RouteDevicePrefix):
		id := strings.TrimPrefix(route, RouteDevicePrefix)
		if _, err := r.registry.Get(id); err != nil {
			// Unknown device: fall back to overview, no error surfaced.
			r.machine.HandleEvent(eventGoOverview, nil)
			break
		}
		r.machine.Context().Set(ctxKeyDeviceID, id)
		r.machine.HandleEvent(eventGoDevice, nil)

	default:
		r.machine.HandleEvent(eventGoOverview, nil)
	}

	return r.render()
}

// Pop leaves the current screen for the one beneath it. The stack is
// a single level deep, so this lands on the overview from anywhere.
func (r *Router) Pop() Screen {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.machine.HandleEvent(eventPop, nil)
	return r.render()
}

// Current renders the active screen without navigating.
func (r *Router) Current() Screen {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.render()
}

// render builds the view-model for the machine's current state.
// Callers must hold r.mu.
func (r *Router) render() Screen {
	switch r.machine.CurrentState() {
	case StateStatistics:
		watts := power.Estimate(r.registry.List())
		v := BuildStatistics(watts, r.log.Entries())
		return Screen{Route: RouteStatistics, State: StateStatistics, Statistics: &v}

	case StateDeviceDetail:
		if d := r.currentDevice(); d != nil {
			v := BuildDeviceDetail(d, r.log.RecentFor(d.ID, 0))
			return Screen{Route: RouteDevicePrefix + d.ID, State: StateDeviceDetail, Device: &v}
		}
		// Context lost or device gone: treat as overview.
		fallthrough

	default:
		v := BuildOverview(r.registry.List())
		return Screen{Route: RouteOverview, State: StateOverview, Overview: &v}
	}
}

// currentDevice resolves the device id stored in the machine context.
func (r *Router) currentDevice() *device.Device {
	raw, ok := r.machine.Context().Get(ctxKeyDeviceID)
	if !ok {
		return nil
	}
	id, ok := raw.(string)
	if !ok {
		return nil
	}
	d, err := r.registry.Get(id)
	if err != nil {
		return nil
	}
	return d
}
