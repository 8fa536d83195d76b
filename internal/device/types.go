package device

import "fmt"

// Kind classifies the simulated devices on the dashboard.
type Kind string

// Kind constants.
const (
	KindLight      Kind = "light"
	KindDoor       Kind = "door"
	KindThermostat Kind = "thermostat"
	KindFan        Kind = "fan"
)

// AllKinds returns all valid kind values.
func AllKinds() []Kind {
	return []Kind{KindLight, KindDoor, KindThermostat, KindFan}
}

// Switched reports whether devices of this kind are operated on/off.
// Thermostats and fans are level-controlled instead.
func (k Kind) Switched() bool {
	return k == KindLight || k == KindDoor
}

// Levelled reports whether devices of this kind are operated by a level value.
func (k Kind) Levelled() bool {
	return k == KindThermostat || k == KindFan
}

// SwitchState is the state of an on/off device.
// For doors, On means locked.
type SwitchState struct {
	On bool `json:"on"`
}

// LevelState is the state of a level-controlled device.
// Thermostats hold a setpoint in °C; fans hold a speed step.
type LevelState struct {
	Value float64 `json:"value"`
}

// Device represents a simulated controllable entity.
//
// Exactly one of Switch or Level is set, matching the device's Kind:
// switched kinds (light, door) carry Switch, levelled kinds (thermostat,
// fan) carry Level. ValidateDevice enforces this pairing.
type Device struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind Kind   `json:"kind"`

	Switch *SwitchState `json:"switch,omitempty"`
	Level  *LevelState  `json:"level,omitempty"`
}

// Clone creates an independent copy of the Device.
// State pointers are duplicated so modifications to the copy do not
// affect the original.
func (d *Device) Clone() *Device {
	if d == nil {
		return nil
	}

	cpy := *d
	if d.Switch != nil {
		sw := *d.Switch
		cpy.Switch = &sw
	}
	if d.Level != nil {
		lv := *d.Level
		cpy.Level = &lv
	}
	return &cpy
}

// On reports the switch state for switched devices.
// Returns false for levelled devices.
func (d *Device) On() bool {
	return d.Switch != nil && d.Switch.On
}

// LevelValue returns the level for levelled devices.
// Returns 0 for switched devices.
func (d *Device) LevelValue() float64 {
	if d.Level == nil {
		return 0
	}
	return d.Level.Value
}

// StateLabel renders the device state the way the dashboard displays it:
// ON/OFF for lights, LOCKED/UNLOCKED for doors, a setpoint in °C for
// thermostats, and a whole-number speed for fans.
func (d *Device) StateLabel() string {
	switch d.Kind {
	case KindLight:
		if d.On() {
			return "ON"
		}
		return "OFF"
	case KindDoor:
		if d.On() {
			return "LOCKED"
		}
		return "UNLOCKED"
	case KindThermostat:
		return fmt.Sprintf("%.1f °C", d.LevelValue())
	case KindFan:
		return fmt.Sprintf("%d", int(d.LevelValue()))
	default:
		return "-"
	}
}

// PowerActionLabel describes a switch mutation for the action log.
// Doors lock and unlock; everything else turns on and off.
func PowerActionLabel(kind Kind, on bool) string {
	if kind == KindDoor {
		if on {
			return "Lock"
		}
		return "Unlock"
	}
	if on {
		return "Turn ON"
	}
	return "Turn OFF"
}

// LevelActionLabel describes a level mutation for the action log.
func LevelActionLabel(kind Kind, value float64) string {
	if kind == KindFan {
		return fmt.Sprintf("Set speed to %d", int(value))
	}
	return fmt.Sprintf("Set to %.1f °C", value)
}

// LevelBounds returns the permitted level range for a levelled kind.
// Thermostat setpoints span 10-30 °C; fan speeds span steps 0-3.
// ok is false for switched kinds, which have no level.
func LevelBounds(kind Kind) (min, max float64, ok bool) {
	switch kind {
	case KindThermostat:
		return 10, 30, true
	case KindFan:
		return 0, 3, true
	default:
		return 0, 0, false
	}
}
