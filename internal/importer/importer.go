// Package importer reads measurement values from CSV and Excel files. Rows
// pair a field with a value; fields are matched by key, by their English or
// Japanese label, or by a short alias, ignoring case.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"

	"github.com/piwi3910/knitgauge/internal/i18n"
	"github.com/piwi3910/knitgauge/internal/model"
)

// ImportResult holds the values read from a file. Values only contains
// fields whose value parsed; rejected rows are reported in Errors.
type ImportResult struct {
	Values   model.ParameterSet
	Unit     model.Unit // empty when the file does not say
	Errors   []string
	Warnings []string
}

// Apply copies every imported value into params. Fields the file did not
// mention are left alone.
func (r ImportResult) Apply(params *model.ParameterSet) int {
	n := 0
	for _, f := range model.AllFields() {
		if v, ok := r.Values.Get(f); ok {
			params.SetValue(f, v)
			n++
		}
	}
	return n
}

// ColumnMapping maps column roles to their indices in the data.
type ColumnMapping struct {
	Field int
	Value int
	Unit  int
}

// headerAliases maps column roles to their accepted header names (all lowercase).
var headerAliases = map[string][]string{
	"field": {"field", "key", "name", "measurement", "item", "項目"},
	"value": {"value", "val", "amount", "値", "数値"},
	"unit":  {"unit", "units", "単位"},
}

// fieldAliases maps every accepted field spelling to its field.
var fieldAliases = buildFieldAliases()

func buildFieldAliases() map[string]model.MeasurementField {
	aliases := map[string]model.MeasurementField{
		"stitches": model.StitchesPerGauge,
		"sts":      model.StitchesPerGauge,
		"rows":     model.RowsPerGauge,
		"body_w":   model.WidthOfBody,
		"body_l":   model.LengthOfBody,
		"sleeve_l": model.LengthOfSleeve,
		"sleeve_w": model.WidthOfSleeve,
	}
	locales := []*i18n.Localizer{i18n.New(language.English), i18n.New(language.Japanese)}
	for _, f := range model.AllFields() {
		aliases[f.Key()] = f
		aliases[strings.ReplaceAll(f.Key(), "_", " ")] = f
		for _, l := range locales {
			aliases[strings.ToLower(l.Field(f))] = f
		}
	}
	return aliases
}

// LookupField resolves a field name as it may appear in an import file.
func LookupField(name string) (model.MeasurementField, bool) {
	f, ok := fieldAliases[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}

// DetectCSVDelimiter picks the delimiter that splits the data into the most
// consistent column count. It tries comma, semicolon, tab, and pipe.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping. Without
// a recognizable header it returns the positional mapping field, value,
// unit and false.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Field: -1, Value: -1, Unit: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "field":
					if mapping.Field == -1 {
						mapping.Field = i
					}
				case "value":
					if mapping.Value == -1 {
						mapping.Value = i
					}
				case "unit":
					if mapping.Unit == -1 {
						mapping.Unit = i
					}
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Field: 0, Value: 1, Unit: 2}, false
	}
	return mapping, true
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports measurement values from a CSV file, detecting the
// delimiter and header.
func ImportCSV(path string) ImportResult {
	result := ImportResult{Values: model.NewParameterSet()}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	var warnings []string
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	records, err := readCSV(bytes.NewReader(data), delimiter)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", warnings)
}

// ImportCSVFromReader imports values from a reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	records, err := readCSV(reader, delimiter)
	if err != nil {
		return ImportResult{
			Values: model.NewParameterSet(),
			Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)},
		}
	}
	return importFromRows(records, "Line", nil)
}

func readCSV(r io.Reader, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// ImportExcel imports values from an Excel workbook. A sheet named
// "measurements" is preferred, so exported spreadsheets read back in;
// otherwise the first sheet is used.
func ImportExcel(path string) ImportResult {
	result := ImportResult{Values: model.NewParameterSet()}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}
	sheet := sheets[0]
	for _, name := range sheets {
		if strings.EqualFold(name, "measurements") {
			sheet = name
			break
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// ImportFile dispatches on the file extension.
func ImportFile(path string) ImportResult {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm") {
		return ImportExcel(path)
	}
	return ImportCSV(path)
}

// importFromRows is the shared logic for CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Values:   model.NewParameterSet(),
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Field == -1 {
			missing = append(missing, "Field")
		}
		if mapping.Value == -1 {
			missing = append(missing, "Value")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	}

	seen := map[model.MeasurementField]string{}
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)

		name := getCell(row, mapping.Field)
		f, ok := LookupField(name)
		if !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: unknown field %q", rowLabel, name))
			continue
		}

		raw := getCell(row, mapping.Value)
		v, ok := model.ParseMeasurement(raw)
		if !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: invalid value %q for %s", rowLabel, raw, f.Key()))
			continue
		}

		if prev, dup := seen[f]; dup {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %s already set at %s, later value wins", rowLabel, f.Key(), prev))
		}
		seen[f] = rowLabel
		result.Values.SetValue(f, v)

		if !f.IsGauge() {
			noteUnit(&result, getCell(row, mapping.Unit), rowLabel)
		}
	}

	if len(seen) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
	}
	return result
}

// noteUnit records the unit named in a row. Cells that are not a unit name
// are ignored; a second, different unit is reported once per row.
func noteUnit(result *ImportResult, cell, rowLabel string) {
	if cell == "" {
		return
	}
	u, err := model.ParseUnit(cell)
	if err != nil {
		return
	}
	switch {
	case result.Unit == "":
		result.Unit = u
	case result.Unit != u:
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: unit %s differs from %s, values are not converted", rowLabel, u, result.Unit))
	}
}
