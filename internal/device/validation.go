package device

import "fmt"

// maxNameLength bounds device names for display purposes.
const maxNameLength = 100

// ValidateDevice checks that a device record is well-formed:
// non-empty ID and name, a recognised kind, and the state variant
// matching that kind (switch state for switched kinds, level state
// within bounds for levelled kinds).
func ValidateDevice(d *Device) error {
	if d == nil {
		return fmt.Errorf("%w: nil device", ErrInvalidDevice)
	}

	if d.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidDevice)
	}

	if d.Name == "" || len(d.Name) > maxNameLength {
		return fmt.Errorf("%w: name must be 1-%d characters", ErrInvalidDevice, maxNameLength)
	}

	if !validKind(d.Kind) {
		return fmt.Errorf("%w: %q", ErrInvalidKind, d.Kind)
	}

	switch {
	case d.Kind.Switched():
		if d.Switch == nil || d.Level != nil {
			return fmt.Errorf("%w: %s devices carry switch state only", ErrInvalidDevice, d.Kind)
		}
	case d.Kind.Levelled():
		if d.Level == nil || d.Switch != nil {
			return fmt.Errorf("%w: %s devices carry level state only", ErrInvalidDevice, d.Kind)
		}
		if err := validateLevel(d.Kind, d.Level.Value); err != nil {
			return err
		}
	}

	return nil
}

// validateLevel checks a level value against the bounds for the kind.
func validateLevel(kind Kind, value float64) error {
	min, max, ok := LevelBounds(kind)
	if !ok {
		return fmt.Errorf("%w: %s has no level", ErrCapabilityMismatch, kind)
	}
	if value < min || value > max {
		return fmt.Errorf("%w: %s level %.1f outside %.0f-%.0f", ErrLevelOutOfRange, kind, value, min, max)
	}
	return nil
}

// validKind reports whether k is a recognised kind value.
func validKind(k Kind) bool {
	for _, kind := range AllKinds() {
		if k == kind {
			return true
		}
	}
	return false
}
