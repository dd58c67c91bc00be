package engine

import (
	"math"

	"github.com/piwi3910/knitgauge/internal/model"
)

// divergenceTolerance absorbs float noise from text round trips.
const divergenceTolerance = 1e-9

// FieldDivergence describes one field whose live value no longer matches
// the selected preset.
type FieldDivergence struct {
	Field  model.MeasurementField
	Preset float64
	Live   float64
	LiveOK bool // false when the live field is unset
}

// Delta returns Live - Preset, treating an unset live value as 0.
func (d FieldDivergence) Delta() float64 {
	return d.Live - d.Preset
}

// Divergence compares the live parameter set with the preset named by the
// selection marker. It returns nil when no preset is selected. The report is
// informational; the marker stays as it is.
func Divergence(sel model.SelectionState, catalog model.Catalog, params model.ParameterSet) []FieldDivergence {
	if !sel.HasPreset() {
		return nil
	}
	preset, ok := catalog.Lookup(sel.Size)
	if !ok {
		return nil
	}

	var diffs []FieldDivergence
	for _, f := range model.AllFields() {
		want, inPreset := preset.Values.Get(f)
		if !inPreset {
			continue
		}
		live, liveOK := params.Get(f)
		if liveOK && math.Abs(live-want) <= divergenceTolerance {
			continue
		}
		diffs = append(diffs, FieldDivergence{
			Field:  f,
			Preset: want,
			Live:   live,
			LiveOK: liveOK,
		})
	}
	return diffs
}

// MatchingPresets returns the catalog names whose every value equals the
// live set. Useful to tell the user a manual entry happens to be a
// standard size; it never changes the selection marker.
func MatchingPresets(catalog model.Catalog, params model.ParameterSet) []string {
	var names []string
	for _, p := range catalog.Presets() {
		sel := model.SelectionState{Size: p.Name}
		if len(Divergence(sel, catalog, params)) == 0 {
			names = append(names, p.Name)
		}
	}
	return names
}
