package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownGarment = errors.New("unknown garment type")
	ErrUnknownFormat  = errors.New("unknown export format")
)

// GarmentType selects the chart template the renderer uses. It never
// affects the measurement values.
type GarmentType string

const (
	GarmentCrew     GarmentType = "Crew"
	GarmentVNeck    GarmentType = "V-Neck"
	GarmentHigh     GarmentType = "High"
	GarmentCardigan GarmentType = "Cardigan"
	GarmentRaglan   GarmentType = "Raglan"
	GarmentBoat     GarmentType = "Boat"
	GarmentTurtle   GarmentType = "Turtle"
	GarmentOpen     GarmentType = "Open"
)

// GarmentTypes is the immutable garment catalog in display order.
var GarmentTypes = []GarmentType{
	GarmentCrew,
	GarmentVNeck,
	GarmentHigh,
	GarmentCardigan,
	GarmentRaglan,
	GarmentBoat,
	GarmentTurtle,
	GarmentOpen,
}

func (g GarmentType) String() string {
	return string(g)
}

// ParseGarmentType matches a garment identifier case-insensitively.
func ParseGarmentType(s string) (GarmentType, error) {
	s = strings.TrimSpace(s)
	for _, g := range GarmentTypes {
		if strings.EqualFold(string(g), s) {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGarment, s)
}

// Format is the output document kind requested from the renderer.
type Format string

const (
	FormatPDF         Format = "PDF"
	FormatSpreadsheet Format = "Spreadsheet"
)

// Formats lists the supported formats, default first.
var Formats = []Format{FormatPDF, FormatSpreadsheet}

func (f Format) String() string {
	return string(f)
}

// Extension returns the file extension for rendered output.
func (f Format) Extension() string {
	if f == FormatSpreadsheet {
		return ".xlsx"
	}
	return ".pdf"
}

// ParseFormat accepts the canonical names and file extensions.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "pdf":
		return FormatPDF, nil
	case "spreadsheet", "xlsx", "excel":
		return FormatSpreadsheet, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}
