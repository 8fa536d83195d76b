package device

import (
	"errors"
	"testing"
)

func TestNewRegistry_Seed(t *testing.T) {
	registry, err := NewRegistry(Seed())
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	if registry.Count() != 4 {
		t.Errorf("Count() = %d, want 4", registry.Count())
	}

	// Seed order must be stable for the overview screen.
	ids := []string{"light1", "door1", "thermo1", "fan1"}
	devices := registry.List()
	if len(devices) != len(ids) {
		t.Fatalf("List() returned %d devices, want %d", len(devices), len(ids))
	}
	for i, id := range ids {
		if devices[i].ID != id {
			t.Errorf("List()[%d].ID = %q, want %q", i, devices[i].ID, id)
		}
	}
}

func TestNewRegistry_RejectsDuplicateID(t *testing.T) {
	devices := []*Device{
		{ID: "dup", Name: "One", Kind: KindLight, Switch: &SwitchState{}},
		{ID: "dup", Name: "Two", Kind: KindFan, Level: &LevelState{}},
	}

	_, err := NewRegistry(devices)
	if !errors.Is(err, ErrDeviceExists) {
		t.Errorf("NewRegistry() error = %v, want ErrDeviceExists", err)
	}
}

func TestNewRegistry_RejectsInvalidDevice(t *testing.T) {
	tests := []struct {
		name    string
		device  *Device
		wantErr error
	}{
		{
			name:    "missing id",
			device:  &Device{Name: "No ID", Kind: KindLight, Switch: &SwitchState{}},
			wantErr: ErrInvalidDevice,
		},
		{
			name:    "unknown kind",
			device:  &Device{ID: "x1", Name: "Mystery", Kind: Kind("toaster"), Switch: &SwitchState{}},
			wantErr: ErrInvalidKind,
		},
		{
			name:    "switched kind with level state",
			device:  &Device{ID: "x2", Name: "Bad Light", Kind: KindLight, Level: &LevelState{}},
			wantErr: ErrInvalidDevice,
		},
		{
			name:    "levelled kind with switch state",
			device:  &Device{ID: "x3", Name: "Bad Fan", Kind: KindFan, Switch: &SwitchState{}},
			wantErr: ErrInvalidDevice,
		},
		{
			name:    "thermostat setpoint out of range",
			device:  &Device{ID: "x4", Name: "Hot", Kind: KindThermostat, Level: &LevelState{Value: 45}},
			wantErr: ErrLevelOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry([]*Device{tt.device})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewRegistry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistry_Get(t *testing.T) {
	registry, err := NewRegistry(Seed())
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	t.Run("returns matching record for valid id", func(t *testing.T) {
		got, err := registry.Get("thermo1")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got.ID != "thermo1" {
			t.Errorf("ID = %q, want %q", got.ID, "thermo1")
		}
		if got.Kind != KindThermostat {
			t.Errorf("Kind = %q, want %q", got.Kind, KindThermostat)
		}
		if got.LevelValue() != 22 {
			t.Errorf("LevelValue() = %v, want 22", got.LevelValue())
		}
	})

	t.Run("returns ErrDeviceNotFound for unknown id", func(t *testing.T) {
		_, err := registry.Get("nonexistent")
		if !errors.Is(err, ErrDeviceNotFound) {
			t.Errorf("Get() error = %v, want ErrDeviceNotFound", err)
		}
	})

	t.Run("returned device is a copy", func(t *testing.T) {
		got, _ := registry.Get("light1")
		got.Switch.On = true

		again, _ := registry.Get("light1")
		if again.On() {
			t.Error("mutating a returned device must not affect the registry")
		}
	})
}

func TestRegistry_SetPower(t *testing.T) {
	registry, err := NewRegistry(Seed())
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	t.Run("toggles the light", func(t *testing.T) {
		updated, err := registry.SetPower("light1", true)
		if err != nil {
			t.Fatalf("SetPower() error = %v", err)
		}
		if !updated.On() {
			t.Error("updated.On() = false, want true")
		}

		// Immediately visible to subsequent reads
		got, _ := registry.Get("light1")
		if !got.On() {
			t.Error("Get() after SetPower shows stale state")
		}
	})

	t.Run("unlocks the door", func(t *testing.T) {
		updated, err := registry.SetPower("door1", false)
		if err != nil {
			t.Fatalf("SetPower() error = %v", err)
		}
		if updated.StateLabel() != "UNLOCKED" {
			t.Errorf("StateLabel() = %q, want %q", updated.StateLabel(), "UNLOCKED")
		}
	})

	t.Run("rejects levelled devices", func(t *testing.T) {
		_, err := registry.SetPower("thermo1", true)
		if !errors.Is(err, ErrCapabilityMismatch) {
			t.Errorf("SetPower() error = %v, want ErrCapabilityMismatch", err)
		}

		// Nothing mutated
		got, _ := registry.Get("thermo1")
		if got.LevelValue() != 22 {
			t.Errorf("thermostat setpoint changed to %v after rejected SetPower", got.LevelValue())
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := registry.SetPower("ghost", true)
		if !errors.Is(err, ErrDeviceNotFound) {
			t.Errorf("SetPower() error = %v, want ErrDeviceNotFound", err)
		}
	})
}

func TestRegistry_SetLevel(t *testing.T) {
	registry, err := NewRegistry(Seed())
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	t.Run("sets thermostat setpoint", func(t *testing.T) {
		updated, err := registry.SetLevel("thermo1", 26.5)
		if err != nil {
			t.Fatalf("SetLevel() error = %v", err)
		}
		if updated.LevelValue() != 26.5 {
			t.Errorf("LevelValue() = %v, want 26.5", updated.LevelValue())
		}
	})

	t.Run("snaps fan speed to whole steps", func(t *testing.T) {
		updated, err := registry.SetLevel("fan1", 2.4)
		if err != nil {
			t.Fatalf("SetLevel() error = %v", err)
		}
		if updated.LevelValue() != 2 {
			t.Errorf("LevelValue() = %v, want 2", updated.LevelValue())
		}
	})

	t.Run("rejects out-of-range values", func(t *testing.T) {
		tests := []struct {
			id    string
			value float64
		}{
			{id: "thermo1", value: 9.5},
			{id: "thermo1", value: 31},
			{id: "fan1", value: -1},
			{id: "fan1", value: 4},
		}
		for _, tt := range tests {
			if _, err := registry.SetLevel(tt.id, tt.value); !errors.Is(err, ErrLevelOutOfRange) {
				t.Errorf("SetLevel(%q, %v) error = %v, want ErrLevelOutOfRange", tt.id, tt.value, err)
			}
		}
	})

	t.Run("rejects switched devices", func(t *testing.T) {
		_, err := registry.SetLevel("door1", 1)
		if !errors.Is(err, ErrCapabilityMismatch) {
			t.Errorf("SetLevel() error = %v, want ErrCapabilityMismatch", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := registry.SetLevel("ghost", 1)
		if !errors.Is(err, ErrDeviceNotFound) {
			t.Errorf("SetLevel() error = %v, want ErrDeviceNotFound", err)
		}
	})
}

func TestRegistry_ListReturnsCopies(t *testing.T) {
	registry, err := NewRegistry(Seed())
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	devices := registry.List()
	devices[0].Switch.On = true

	got, _ := registry.Get(devices[0].ID)
	if got.On() {
		t.Error("mutating List() results must not affect the registry")
	}
}
