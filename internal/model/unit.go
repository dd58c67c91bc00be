package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit is returned when a unit name is not one of the supported units.
var ErrUnknownUnit = errors.New("unknown unit")

// Unit is the linear measurement unit a session interprets values in.
type Unit string

const (
	Metric   Unit = "cm"   // Centimeters, gauge per 10 cm
	Imperial Unit = "inch" // Inches, gauge per 4 inch
)

// Units lists the supported units, default first.
var Units = []Unit{Metric, Imperial}

// GaugeLabel names the span the two gauge fields are counted over.
type GaugeLabel string

const (
	GaugePer10cm  GaugeLabel = "10cm"
	GaugePer4Inch GaugeLabel = "4inch"
)

// GaugeLabelFor returns the gauge span used for the given unit.
func GaugeLabelFor(u Unit) GaugeLabel {
	if u == Imperial {
		return GaugePer4Inch
	}
	return GaugePer10cm
}

// Symbol returns the short display suffix for linear values.
func (u Unit) Symbol() string {
	if u == Imperial {
		return "in"
	}
	return "cm"
}

// GaugeSpan returns the length, in the unit itself, that gauge counts cover.
func (u Unit) GaugeSpan() float64 {
	if u == Imperial {
		return 4
	}
	return 10
}

func (u Unit) String() string {
	return string(u)
}

// ParseUnit accepts the canonical names plus a few common spellings.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cm", "metric", "centimeter", "centimeters":
		return Metric, nil
	case "inch", "in", "inches", "imperial":
		return Imperial, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}
