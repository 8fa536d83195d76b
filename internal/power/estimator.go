// Package power computes the simulated power consumption figure shown
// on the statistics screen.
//
// The model is deliberately trivial and deterministic, a stand-in for
// real telemetry that must be exactly reproducible: a fixed draw for
// the light, a base-plus-setpoint curve for the thermostat, a linear
// draw per fan speed step, and nothing for the door lock.
package power

import "github.com/nerrad567/homedeck/internal/device"

// Model constants, in watts.
const (
	lightWatts          = 10 // light draw when on
	thermostatBaseWatts = 80 // thermostat draw at or below the pivot setpoint
	thermostatPivotTemp = 20 // setpoint above which draw increases
	wattsPerDegree      = 5  // extra draw per degree above the pivot
	wattsPerFanStep     = 30 // draw per fan speed step
)

// Estimate returns the simulated total draw in watts for the given
// device snapshot. It is a pure function: no caching, no side effects,
// recomputed on demand.
func Estimate(devices []device.Device) int {
	total := 0.0
	for i := range devices {
		total += contribution(&devices[i])
	}
	return int(total)
}

// contribution returns a single device's simulated draw in watts.
// Doors draw nothing in this model.
func contribution(d *device.Device) float64 {
	switch d.Kind {
	case device.KindLight:
		if d.On() {
			return lightWatts
		}
		return 0
	case device.KindThermostat:
		excess := d.LevelValue() - thermostatPivotTemp
		if excess < 0 {
			excess = 0
		}
		return thermostatBaseWatts + excess*wattsPerDegree
	case device.KindFan:
		return d.LevelValue() * wattsPerFanStep
	default:
		return 0
	}
}
