package model

// ExportPayload is the request handed to the external document renderer.
// Measurements carry raw numbers with no unit attached; the renderer is
// told the unit out of band.
type ExportPayload struct {
	GarmentType  GarmentType        `json:"garmentType"`
	Format       Format             `json:"format"`
	Measurements map[string]float64 `json:"measurements"`

	missing []MeasurementField
}

// PayloadEntry is one measurement in canonical field order.
type PayloadEntry struct {
	Field MeasurementField
	Value float64
}

// Entries returns the measurements in canonical field order.
func (p ExportPayload) Entries() []PayloadEntry {
	entries := make([]PayloadEntry, 0, FieldCount)
	for _, f := range AllFields() {
		entries = append(entries, PayloadEntry{Field: f, Value: p.Measurements[f.Key()]})
	}
	return entries
}

// Value returns the exported value of a field.
func (p ExportPayload) Value(f MeasurementField) float64 {
	return p.Measurements[f.Key()]
}

// Missing lists the fields that were unset when the payload was built and
// therefore exported as zero. It is empty for payloads decoded from JSON.
func (p ExportPayload) Missing() []MeasurementField {
	out := make([]MeasurementField, len(p.missing))
	copy(out, p.missing)
	return out
}

// WithMissing returns a copy of p recording which fields were unset.
func (p ExportPayload) WithMissing(fields []MeasurementField) ExportPayload {
	p.missing = append([]MeasurementField(nil), fields...)
	return p
}
