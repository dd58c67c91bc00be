package engine

import "github.com/piwi3910/knitgauge/internal/model"

// BuildExportPayload packages the current selection and measurements for
// the renderer. Unset fields are exported as 0 so an incomplete set never
// blocks export. The payload carries no unit.
func BuildExportPayload(sel model.SelectionState, params model.ParameterSet) model.ExportPayload {
	measurements := make(map[string]float64, model.FieldCount)
	var missing []model.MeasurementField
	for _, f := range model.AllFields() {
		v, ok := params.Get(f)
		if !ok {
			v = 0.0
			missing = append(missing, f)
		}
		measurements[f.Key()] = v
	}

	payload := model.ExportPayload{
		GarmentType:  sel.Garment,
		Format:       sel.Format,
		Measurements: measurements,
	}
	return payload.WithMissing(missing)
}
