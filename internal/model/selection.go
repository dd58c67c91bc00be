package model

// SelectionState holds the user's current choices. The size marker is
// sticky: it records the last size picked and is not re-derived from the
// live measurement values.
type SelectionState struct {
	Garment GarmentType `json:"garment"`
	Size    string      `json:"size"`
	Unit    Unit        `json:"unit"`
	Format  Format      `json:"format"`
}

// DefaultSelection returns the state a new session starts in.
func DefaultSelection() SelectionState {
	return SelectionState{
		Garment: GarmentTypes[0],
		Size:    SizeNone,
		Unit:    Units[0],
		Format:  Formats[0],
	}
}

// HasPreset reports whether the marker names a catalog size.
func (s SelectionState) HasPreset() bool {
	return s.Size != SizeNone && s.Size != SizeCustom
}

// GaugeLabel returns the gauge span for the active unit.
func (s SelectionState) GaugeLabel() GaugeLabel {
	return GaugeLabelFor(s.Unit)
}
