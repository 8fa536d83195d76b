package device

import (
	"fmt"
	"math"
	"sync"
)

// Logger defines the logging interface used by the Registry.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Registry holds the fixed set of simulated devices for the process
// lifetime. It is constructed with its full device set at startup;
// there are no add or remove operations afterwards.
//
// All public methods are thread-safe. Mutations are synchronous and
// immediately visible to subsequent reads.
type Registry struct {
	mu      sync.RWMutex
	devices map[string]*Device
	order   []string // seed order, for stable listing
	logger  Logger
}

// NewRegistry creates a registry holding the given devices.
// Each device is validated and stored as an independent copy.
func NewRegistry(devices []*Device) (*Registry, error) {
	r := &Registry{
		devices: make(map[string]*Device, len(devices)),
		order:   make([]string, 0, len(devices)),
		logger:  noopLogger{},
	}

	for _, d := range devices {
		if err := ValidateDevice(d); err != nil {
			return nil, err
		}
		if _, exists := r.devices[d.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDeviceExists, d.ID)
		}
		r.devices[d.ID] = d.Clone()
		r.order = append(r.order, d.ID)
	}

	return r, nil
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.logger = logger
}

// Get retrieves a device by ID.
// Returns ErrDeviceNotFound if the device does not exist.
// The returned device is a copy; callers can safely modify it.
func (r *Registry) Get(id string) (*Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.devices[id]
	if !ok {
		return nil, ErrDeviceNotFound
	}
	return d.Clone(), nil
}

// List retrieves all devices in seed order.
// The returned devices are copies; callers can safely modify them.
func (r *Registry) List() []Device {
	r.mu.RLock()
	defer r.mu.RUnlock()

	devices := make([]Device, 0, len(r.order))
	for _, id := range r.order {
		devices = append(devices, *r.devices[id].Clone())
	}
	return devices
}

// SetPower sets the on/off state of a switched device.
//
// Returns ErrDeviceNotFound for unknown IDs and ErrCapabilityMismatch
// when the device is level-controlled; nothing mutates on error.
// The returned device is a copy reflecting the new state.
func (r *Registry) SetPower(id string, on bool) (*Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.devices[id]
	if !ok {
		return nil, ErrDeviceNotFound
	}
	if !d.Kind.Switched() {
		return nil, fmt.Errorf("%w: %s is not switched", ErrCapabilityMismatch, d.Kind)
	}

	d.Switch.On = on

	r.logger.Debug("device power updated", "id", id, "on", on)
	return d.Clone(), nil
}

// SetLevel sets the level of a level-controlled device.
//
// Fan levels are snapped to whole speed steps. Returns
// ErrDeviceNotFound for unknown IDs, ErrCapabilityMismatch for
// switched devices, and ErrLevelOutOfRange for values outside the
// kind's bounds; nothing mutates on error.
// The returned device is a copy reflecting the new state.
func (r *Registry) SetLevel(id string, value float64) (*Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.devices[id]
	if !ok {
		return nil, ErrDeviceNotFound
	}
	if !d.Kind.Levelled() {
		return nil, fmt.Errorf("%w: %s is not levelled", ErrCapabilityMismatch, d.Kind)
	}

	if d.Kind == KindFan {
		value = math.Round(value)
	}
	if err := validateLevel(d.Kind, value); err != nil {
		return nil, err
	}

	d.Level.Value = value

	r.logger.Debug("device level updated", "id", id, "value", value)
	return d.Clone(), nil
}

// Count returns the number of registered devices.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.devices)
}
