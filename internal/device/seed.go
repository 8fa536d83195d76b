package device

// Seed returns the four devices the dashboard manages: a light, a
// door lock, a thermostat, and a ceiling fan. The door starts locked,
// the thermostat at 22 °C, the fan stopped.
func Seed() []*Device {
	return []*Device{
		{
			ID:     "light1",
			Name:   "Living Room Light",
			Kind:   KindLight,
			Switch: &SwitchState{On: false},
		},
		{
			ID:     "door1",
			Name:   "Front Door",
			Kind:   KindDoor,
			Switch: &SwitchState{On: true},
		},
		{
			ID:    "thermo1",
			Name:  "Thermostat",
			Kind:  KindThermostat,
			Level: &LevelState{Value: 22},
		},
		{
			ID:    "fan1",
			Name:  "Ceiling Fan",
			Kind:  KindFan,
			Level: &LevelState{Value: 0},
		},
	}
}
