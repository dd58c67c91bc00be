package model

import "strings"

// MeasurementField identifies one garment dimension or gauge count.
type MeasurementField int

const (
	WidthOfBody           MeasurementField = iota // Body width
	LengthOfBody                                  // Body length, shoulder to hem
	LengthOfRibbedHem                             // Ribbing at the bottom hem
	WidthOfNeck                                   // Neck opening width
	LengthOfShoulderDrop                          // Shoulder slope height
	LengthOfFrontNeckDrop                         // Front neckline depth
	LengthOfBackNeckDrop                          // Back neckline depth
	LengthOfSleeve                                // Sleeve length
	WidthOfSleeve                                 // Sleeve width at the armhole
	WidthOfCuff                                   // Sleeve width at the cuff
	LengthOfRibbedCuff                            // Ribbing at the cuff
	StitchesPerGauge                              // Stitches per gauge span
	RowsPerGauge                                  // Rows per gauge span

	fieldCount
)

// FieldCount is the number of measurement fields.
const FieldCount = int(fieldCount)

var fieldKeys = [fieldCount]string{
	WidthOfBody:           "width_of_body",
	LengthOfBody:          "length_of_body",
	LengthOfRibbedHem:     "length_of_ribbed_hem",
	WidthOfNeck:           "width_of_neck",
	LengthOfShoulderDrop:  "length_of_shoulder_drop",
	LengthOfFrontNeckDrop: "length_of_front_neck_drop",
	LengthOfBackNeckDrop:  "length_of_back_neck_drop",
	LengthOfSleeve:        "length_of_sleeve",
	WidthOfSleeve:         "width_of_sleeve",
	WidthOfCuff:           "width_of_cuff",
	LengthOfRibbedCuff:    "length_of_ribbed_cuff",
	StitchesPerGauge:      "stitches_per_gauge",
	RowsPerGauge:          "rows_per_gauge",
}

// AllFields returns every field in canonical order.
func AllFields() []MeasurementField {
	fields := make([]MeasurementField, fieldCount)
	for i := range fields {
		fields[i] = MeasurementField(i)
	}
	return fields
}

// Key returns the wire key used in export payloads.
func (f MeasurementField) Key() string {
	if !f.Valid() {
		return "unknown"
	}
	return fieldKeys[f]
}

func (f MeasurementField) String() string {
	return f.Key()
}

// Valid reports whether f is one of the defined fields.
func (f MeasurementField) Valid() bool {
	return f >= 0 && f < fieldCount
}

// IsGauge reports whether f is counted per gauge span rather than measured
// as a length. Gauge fields are never part of a size preset.
func (f MeasurementField) IsGauge() bool {
	return f == StitchesPerGauge || f == RowsPerGauge
}

// FieldByKey looks up a field by its wire key, case-insensitively.
func FieldByKey(key string) (MeasurementField, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for i, k := range fieldKeys {
		if k == key {
			return MeasurementField(i), true
		}
	}
	return 0, false
}
