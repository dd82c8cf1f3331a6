package models

import (
	"errors"
	"fmt"
	"strings"
)

// Unit is the unit system sent to the provider. The zero value means "not selected":
// the provider then answers in Kelvin.
type Unit string

const (
	UnitUnset    Unit = ""
	UnitImperial Unit = "imperial"
	UnitMetric   Unit = "metric"
)

var ErrUnknownUnit = errors.New("unknown unit")

func ParseUnit(s string) (Unit, error) {
	switch u := Unit(strings.ToLower(strings.TrimSpace(s))); u {
	case UnitUnset, UnitImperial, UnitMetric:
		return u, nil
	default:
		return UnitUnset, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

func (u Unit) Symbol() string {
	switch u {
	case UnitImperial:
		return "°F"
	case UnitMetric:
		return "°C"
	default:
		return "K"
	}
}

func (u Unit) SpeedUnit() string {
	if u == UnitImperial {
		return "mph"
	}
	return "m/s"
}

// Label is the human name shown in the unit picker.
func (u Unit) Label() string {
	switch u {
	case UnitImperial:
		return "Fahrenheit"
	case UnitMetric:
		return "Celsius"
	default:
		return "Kelvin"
	}
}
