// Package i18n maps typed string keys to display text per locale. A missing
// translation yields the key's own name, never an empty string.
package i18n

// Key identifies one display string.
type Key int

const (
	KeyAppTitle Key = iota
	KeyGauge
	KeyBody
	KeyNeckShoulder
	KeySleeve
	KeyGarmentType
	KeySize
	KeyUnit
	KeyFormat
	KeyExport
	KeyExportDone
	KeyMissingWarning
	KeyPresetDiverged
	KeyPresetMatch
	KeyValue

	// Measurement field labels, in model field order.
	KeyWidthOfBody
	KeyLengthOfBody
	KeyLengthOfRibbedHem
	KeyWidthOfNeck
	KeyLengthOfShoulderDrop
	KeyLengthOfFrontNeckDrop
	KeyLengthOfBackNeckDrop
	KeyLengthOfSleeve
	KeyWidthOfSleeve
	KeyWidthOfCuff
	KeyLengthOfRibbedCuff
	KeyStitchesPerGauge
	KeyRowsPerGauge

	KeyUnitCm
	KeyUnitInch
	KeyGaugePer10cm
	KeyGaugePer4Inch
	KeyFormatPDF
	KeyFormatSpreadsheet
	KeySizeCustom

	KeyGarmentCrew
	KeyGarmentVNeck
	KeyGarmentHigh
	KeyGarmentCardigan
	KeyGarmentRaglan
	KeyGarmentBoat
	KeyGarmentTurtle
	KeyGarmentOpen

	keyCount
)

var keyNames = [keyCount]string{
	KeyAppTitle:              "app_title",
	KeyGauge:                 "gauge",
	KeyBody:                  "body",
	KeyNeckShoulder:          "neck_shoulder",
	KeySleeve:                "sleeve",
	KeyGarmentType:           "garment_type",
	KeySize:                  "size",
	KeyUnit:                  "unit",
	KeyFormat:                "format",
	KeyExport:                "export",
	KeyExportDone:            "export_done",
	KeyMissingWarning:        "missing_warning",
	KeyPresetDiverged:        "preset_diverged",
	KeyPresetMatch:           "preset_match",
	KeyValue:                 "value",
	KeyWidthOfBody:           "width_of_body",
	KeyLengthOfBody:          "length_of_body",
	KeyLengthOfRibbedHem:     "length_of_ribbed_hem",
	KeyWidthOfNeck:           "width_of_neck",
	KeyLengthOfShoulderDrop:  "length_of_shoulder_drop",
	KeyLengthOfFrontNeckDrop: "length_of_front_neck_drop",
	KeyLengthOfBackNeckDrop:  "length_of_back_neck_drop",
	KeyLengthOfSleeve:        "length_of_sleeve",
	KeyWidthOfSleeve:         "width_of_sleeve",
	KeyWidthOfCuff:           "width_of_cuff",
	KeyLengthOfRibbedCuff:    "length_of_ribbed_cuff",
	KeyStitchesPerGauge:      "stitches_per_gauge",
	KeyRowsPerGauge:          "rows_per_gauge",
	KeyUnitCm:                "unit_cm",
	KeyUnitInch:              "unit_inch",
	KeyGaugePer10cm:          "gauge_per_10cm",
	KeyGaugePer4Inch:         "gauge_per_4inch",
	KeyFormatPDF:             "format_pdf",
	KeyFormatSpreadsheet:     "format_spreadsheet",
	KeySizeCustom:            "size_custom",
	KeyGarmentCrew:           "garment_crew",
	KeyGarmentVNeck:          "garment_v_neck",
	KeyGarmentHigh:           "garment_high",
	KeyGarmentCardigan:       "garment_cardigan",
	KeyGarmentRaglan:         "garment_raglan",
	KeyGarmentBoat:           "garment_boat",
	KeyGarmentTurtle:         "garment_turtle",
	KeyGarmentOpen:           "garment_open",
}

// String returns the stable key name.
func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown_key"
	}
	return keyNames[k]
}

// AllKeys returns every defined key.
func AllKeys() []Key {
	keys := make([]Key, keyCount)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}
