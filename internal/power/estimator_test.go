package power

import (
	"testing"

	"github.com/nerrad567/homedeck/internal/device"
)

// seededRegistry builds the standard four-device registry for tests.
func seededRegistry(t *testing.T) *device.Registry {
	t.Helper()
	registry, err := device.NewRegistry(device.Seed())
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return registry
}

func TestEstimate_SeededState(t *testing.T) {
	registry := seededRegistry(t)

	// Light off (0) + door (0) + thermostat at 22 (80 + 2*5 = 90) + fan 0 (0)
	if got := Estimate(registry.List()); got != 90 {
		t.Errorf("Estimate() = %d W for seeded state, want 90", got)
	}
}

func TestEstimate_LightOn(t *testing.T) {
	registry := seededRegistry(t)

	if _, err := registry.SetPower("light1", true); err != nil {
		t.Fatalf("SetPower() error = %v", err)
	}

	if got := Estimate(registry.List()); got != 100 {
		t.Errorf("Estimate() = %d W with light on, want 100", got)
	}
}

func TestEstimate_FanFullSpeed(t *testing.T) {
	registry := seededRegistry(t)

	if _, err := registry.SetPower("light1", true); err != nil {
		t.Fatalf("SetPower() error = %v", err)
	}
	if _, err := registry.SetLevel("fan1", 3); err != nil {
		t.Fatalf("SetLevel() error = %v", err)
	}

	// Fan at 3 adds 90 W on top of the 100 W light-on state.
	if got := Estimate(registry.List()); got != 190 {
		t.Errorf("Estimate() = %d W with light on and fan 3, want 190", got)
	}
}

func TestEstimate_ThermostatAbovePivot(t *testing.T) {
	registry := seededRegistry(t)

	if _, err := registry.SetLevel("thermo1", 30); err != nil {
		t.Fatalf("SetLevel() error = %v", err)
	}

	// 80 + (30-20)*5 = 130; light off, fan 0
	if got := Estimate(registry.List()); got != 130 {
		t.Errorf("Estimate() = %d W with setpoint 30, want 130", got)
	}
}

func TestEstimate_ThermostatBelowPivot(t *testing.T) {
	registry := seededRegistry(t)

	if _, err := registry.SetLevel("thermo1", 15); err != nil {
		t.Fatalf("SetLevel() error = %v", err)
	}

	// Below the pivot the thermostat sits at its base draw.
	if got := Estimate(registry.List()); got != 80 {
		t.Errorf("Estimate() = %d W with setpoint 15, want 80", got)
	}
}

func TestEstimate_DoorDrawsNothing(t *testing.T) {
	registry := seededRegistry(t)

	before := Estimate(registry.List())
	if _, err := registry.SetPower("door1", false); err != nil {
		t.Fatalf("SetPower() error = %v", err)
	}

	if got := Estimate(registry.List()); got != before {
		t.Errorf("Estimate() = %d W after unlocking door, want unchanged %d", got, before)
	}
}

func TestEstimate_IsPure(t *testing.T) {
	registry := seededRegistry(t)
	snapshot := registry.List()

	first := Estimate(snapshot)
	second := Estimate(snapshot)
	if first != second {
		t.Errorf("Estimate() not reproducible: %d then %d", first, second)
	}
}
