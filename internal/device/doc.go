// Package device provides the Device Registry for Homedeck.
//
// The registry is the catalogue of the simulated devices the dashboard
// controls. The set is fixed at construction: a light, a door lock, a
// thermostat, and a ceiling fan. Devices carry a tagged state variant
// (switched kinds hold a SwitchState, levelled kinds a LevelState) so
// a door with a setpoint or a fan with an on/off flag cannot be
// represented.
//
// # Usage
//
//	registry, err := device.NewRegistry(device.Seed())
//	if err != nil {
//	    return err
//	}
//	registry.SetLogger(log)
//
//	dev, _ := registry.Get("light1")
//	registry.SetPower("light1", true)
//	registry.SetLevel("thermo1", 24)
//
// Calling the setter that does not match a device's kind is rejected
// with ErrCapabilityMismatch and leaves the device untouched.
//
// # Thread Safety
//
// The Registry is safe for concurrent use. All operations are protected
// by a read-write mutex, and accessors return copies.
package device
