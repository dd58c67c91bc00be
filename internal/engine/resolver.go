// Package engine holds the measurement configuration logic: resolving size
// presets into a parameter set and assembling export payloads.
package engine

import "github.com/piwi3910/knitgauge/internal/model"

// ApplyPreset records name as the size selection and, unless it is the
// Custom marker, overwrites every preset field onto params. Gauge fields
// are never part of a preset and are left alone. Earlier manual edits to
// overwritten fields are discarded.
//
// name must be a catalog name or model.SizeCustom; anything else panics.
func ApplyPreset(sel *model.SelectionState, catalog model.Catalog, params *model.ParameterSet, name string) {
	if name != model.SizeCustom {
		// Look up before touching the marker so a bad name leaves state intact.
		preset := catalog.MustLookup(name)
		sel.Size = name
		for _, f := range model.AllFields() {
			if f.IsGauge() {
				continue
			}
			if v, ok := preset.Values.Get(f); ok {
				params.SetValue(f, v)
			}
		}
		return
	}
	sel.Size = model.SizeCustom
}
