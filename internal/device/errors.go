package device

import "errors"

// Domain errors for the device package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, device.ErrDeviceNotFound) {
//	    // handle not found case
//	}
var (
	// ErrDeviceNotFound is returned when a device ID does not exist.
	ErrDeviceNotFound = errors.New("device: not found")

	// ErrDeviceExists is returned when seeding a registry with a duplicate ID.
	ErrDeviceExists = errors.New("device: already exists")

	// ErrInvalidDevice is returned when device validation fails.
	ErrInvalidDevice = errors.New("device: invalid")

	// ErrInvalidKind is returned when a kind value is not recognised.
	ErrInvalidKind = errors.New("device: invalid kind")

	// ErrCapabilityMismatch is returned when a setter does not match the
	// device's kind, e.g. a level change on a door lock.
	ErrCapabilityMismatch = errors.New("device: capability mismatch")

	// ErrLevelOutOfRange is returned when a level value falls outside the
	// bounds for the device's kind.
	ErrLevelOutOfRange = errors.New("device: level out of range")
)
