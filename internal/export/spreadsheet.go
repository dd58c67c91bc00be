package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/knitgauge/internal/i18n"
	"github.com/piwi3910/knitgauge/internal/model"
)

const (
	infoSheet         = "info"
	measurementsSheet = "measurements"
)

// ExportSpreadsheet writes the payload to an XLSX workbook with an info
// sheet and a measurements sheet. Labels follow opts.Locale.
func ExportSpreadsheet(path string, payload model.ExportPayload, opts Options) error {
	f, err := buildWorkbook(payload, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// WriteSpreadsheet writes the workbook to w.
func WriteSpreadsheet(w io.Writer, payload model.ExportPayload, opts Options) error {
	f, err := buildWorkbook(payload, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func buildWorkbook(payload model.ExportPayload, opts Options) (*excelize.File, error) {
	tr := i18n.Parse(opts.Locale)
	unit := opts.unit()

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", infoSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name info sheet: %w", err)
	}
	if _, err := f.NewSheet(measurementsSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create measurements sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	info := [][]interface{}{
		{tr.Text(i18n.KeyGarmentType), tr.Garment(payload.GarmentType), string(payload.GarmentType)},
		{tr.Text(i18n.KeyFormat), tr.Format(payload.Format), string(payload.Format)},
		{tr.Text(i18n.KeyUnit), tr.Unit(unit), string(unit)},
		{tr.Text(i18n.KeySize), opts.Size, opts.Size},
	}
	if opts.SessionID != "" {
		info = append(info, []interface{}{"session", opts.SessionID, opts.SessionID})
	}
	if err := writeRows(f, infoSheet, info); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetColWidth(infoSheet, "A", "A", 20); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to size info column: %w", err)
	}

	rows := [][]interface{}{{"key", tr.Text(i18n.KeyValue), tr.Text(i18n.KeyUnit), ""}}
	for _, e := range payload.Entries() {
		rows = append(rows, []interface{}{e.Field.Key(), e.Value, unitLabel(tr, e.Field, unit), tr.Field(e.Field)})
	}
	if err := writeRows(f, measurementsSheet, rows); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetCellStyle(measurementsSheet, "A1", "D1", bold); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to style header: %w", err)
	}
	if err := f.SetColWidth(measurementsSheet, "A", "A", 28); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to size key column: %w", err)
	}
	if err := f.SetColWidth(measurementsSheet, "D", "D", 28); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to size label column: %w", err)
	}
	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}
