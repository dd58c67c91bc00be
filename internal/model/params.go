package model

import (
	"math"
	"strconv"
	"strings"
)

// ParameterSet maps each measurement field to an optional non-negative value.
// The zero value is an empty set with every field unset.
type ParameterSet struct {
	values [fieldCount]float64
	set    [fieldCount]bool
}

// NewParameterSet returns an empty parameter set.
func NewParameterSet() ParameterSet {
	return ParameterSet{}
}

// Get returns the field's value and whether it is set.
func (p ParameterSet) Get(f MeasurementField) (float64, bool) {
	if !f.Valid() || !p.set[f] {
		return 0, false
	}
	return p.values[f], true
}

// Value returns the field's value, or 0 when the field is unset.
func (p ParameterSet) Value(f MeasurementField) float64 {
	v, _ := p.Get(f)
	return v
}

// IsSet reports whether the field holds a value.
func (p ParameterSet) IsSet(f MeasurementField) bool {
	_, ok := p.Get(f)
	return ok
}

// Set parses raw as a decimal and stores it. Text that is empty, not a
// number, not finite, or negative leaves the field unset; this is not an
// error. It reports whether a value was stored.
func (p *ParameterSet) Set(f MeasurementField, raw string) bool {
	if !f.Valid() {
		return false
	}
	v, ok := ParseMeasurement(raw)
	if !ok {
		p.Unset(f)
		return false
	}
	p.values[f] = v
	p.set[f] = true
	return true
}

// SetValue stores an already-typed value. Negative or non-finite values
// unset the field, same as Set.
func (p *ParameterSet) SetValue(f MeasurementField, v float64) {
	if !f.Valid() {
		return
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		p.Unset(f)
		return
	}
	p.values[f] = v
	p.set[f] = true
}

// Unset clears a single field.
func (p *ParameterSet) Unset(f MeasurementField) {
	if !f.Valid() {
		return
	}
	p.values[f] = 0
	p.set[f] = false
}

// ResetAll clears every field.
func (p *ParameterSet) ResetAll() {
	*p = ParameterSet{}
}

// Clone returns an independent copy.
func (p ParameterSet) Clone() ParameterSet {
	return p
}

// SetCount returns how many fields hold a value.
func (p ParameterSet) SetCount() int {
	n := 0
	for _, ok := range p.set {
		if ok {
			n++
		}
	}
	return n
}

// ParseMeasurement parses free-form user text as a non-negative decimal.
func ParseMeasurement(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	// -0 parses as non-negative; store it as plain zero.
	if v == 0 {
		v = 0
	}
	return v, true
}
