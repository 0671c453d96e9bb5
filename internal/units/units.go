package units

import (
	"errors"
	"fmt"
	"strings"
)

// System is the unit system a client reports values in.
type System string

const (
	SystemMetric   System = "metric"   // kilograms / centimeters
	SystemImperial System = "imperial" // pounds / inches
)

// Kind selects the conversion factor for a measurement.
type Kind int

const (
	Weight Kind = iota
	Height
)

// ErrInvalidSystem is returned for any unit system other than metric/imperial.
// Handlers surface it as a 400 "invalid_unit_system" error.
var ErrInvalidSystem = errors.New("invalid unit system")

// Conversion factors into metric.
const (
	lbToKg = 0.453592
	inToCm = 2.54
)

// ParseSystem normalizes and validates a unit system string.
func ParseSystem(raw string) (System, error) {
	switch System(strings.ToLower(strings.TrimSpace(raw))) {
	case SystemMetric:
		return SystemMetric, nil
	case SystemImperial:
		return SystemImperial, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSystem, raw)
	}
}

func factor(kind Kind, system System) (float64, error) {
	switch system {
	case SystemMetric:
		return 1.0, nil
	case SystemImperial:
		if kind == Height {
			return inToCm, nil
		}
		return lbToKg, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSystem, system)
	}
}

// ToMetric converts a raw value into kilograms (weight) or centimeters (height).
// Metric input passes through unchanged.
func ToMetric(value float64, kind Kind, system System) (float64, error) {
	f, err := factor(kind, system)
	if err != nil {
		return 0, err
	}
	return value * f, nil
}

// FromMetric converts a metric value back into the caller's unit system.
// Divides by the same factor ToMetric multiplies by, so round-trips are exact
// up to floating precision.
func FromMetric(value float64, kind Kind, system System) (float64, error) {
	f, err := factor(kind, system)
	if err != nil {
		return 0, err
	}
	return value / f, nil
}
