package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/language"

	"github.com/piwi3910/knitgauge/internal/i18n"
	"github.com/piwi3910/knitgauge/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	rowHeight    = 7.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// Table column widths: label, value, unit.
var colWidths = []float64{90, 40, 50}

// ExportPDF writes a one-page measurement sheet for the payload.
func ExportPDF(path string, payload model.ExportPayload, opts Options) error {
	pdf, err := buildPDF(payload, opts)
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}

// WritePDF writes the measurement sheet to w.
func WritePDF(w io.Writer, payload model.ExportPayload, opts Options) error {
	pdf, err := buildPDF(payload, opts)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

func buildPDF(payload model.ExportPayload, opts Options) (*fpdf.Fpdf, error) {
	// The core fonts only cover Latin-1, so the sheet is always English.
	tr := i18n.New(language.English)
	unit := opts.unit()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle(tr.Text(i18n.KeyAppTitle), false)
	pdf.AddPage()

	renderHeader(pdf, tr, payload, opts)
	if err := renderPayloadLabel(pdf, payload, pageWidth-marginRight-qrSize, marginTop); err != nil {
		return nil, err
	}

	y := marginTop + headerHeight + 20
	for _, sec := range sections {
		y = renderSection(pdf, tr, sec, payload, unit, y)
		y += 4
	}

	if missing := payload.Missing(); len(missing) > 0 {
		renderMissing(pdf, tr, missing, y)
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(contentWidth, 4, "Generated by KnitGauge - sweater measurement sheet", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to build PDF: %w", err)
	}
	return pdf, nil
}

// renderHeader draws the title and the selection summary.
func renderHeader(pdf *fpdf.Fpdf, tr *i18n.Localizer, payload model.ExportPayload, opts Options) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth-qrSize, headerHeight, tr.Text(i18n.KeyAppTitle), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	items := []struct {
		label string
		value string
	}{
		{tr.Text(i18n.KeyGarmentType), tr.Garment(payload.GarmentType)},
		{tr.Text(i18n.KeySize), sizeOrDash(tr, opts.Size)},
		{tr.Text(i18n.KeyUnit), tr.Unit(opts.unit())},
	}
	y := marginTop + headerHeight
	for _, item := range items {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(30, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 5, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 5
	}
}

// renderSection draws one heading and its table. It returns the y position
// below the table.
func renderSection(pdf *fpdf.Fpdf, tr *i18n.Localizer, sec section, payload model.ExportPayload, unit model.Unit, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(contentWidth, 7, tr.Text(sec.title), "", 0, "L", false, 0, "")
	y += 8

	pdf.SetFont("Helvetica", "", 10)
	for i, f := range sec.fields {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		row := []string{tr.Field(f), formatValue(payload.Value(f)), unitLabel(tr, f, unit)}
		aligns := []string{"L", "R", "L"}
		x := marginLeft
		for j, cell := range row {
			pdf.SetXY(x, y)
			pdf.CellFormat(colWidths[j], rowHeight, cell, "1", 0, aligns[j], true, 0, "")
			x += colWidths[j]
		}
		y += rowHeight
	}
	return y
}

// renderMissing warns that zero values came from unset fields.
func renderMissing(pdf *fpdf.Fpdf, tr *i18n.Localizer, missing []model.MeasurementField, y float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(200, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(contentWidth, 6, tr.Text(i18n.KeyMissingWarning), "", 0, "L", false, 0, "")
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, f := range missing {
		if y > pageHeight-marginBottom-8 {
			break
		}
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(contentWidth-5, 5, "- "+tr.Field(f), "", 0, "L", false, 0, "")
		y += 5
	}
}

func sizeOrDash(tr *i18n.Localizer, size string) string {
	if size == model.SizeNone {
		return "-"
	}
	return tr.Size(size)
}
