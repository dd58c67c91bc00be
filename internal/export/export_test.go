package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/knitgauge/internal/engine"
	"github.com/piwi3910/knitgauge/internal/model"
)

// menLPayload builds the payload for Men L with a full gauge.
func menLPayload(format model.Format) model.ExportPayload {
	sel := model.DefaultSelection()
	sel.Format = format
	params := model.NewParameterSet()
	engine.ApplyPreset(&sel, model.DefaultCatalog(), &params, "Men L")
	params.SetValue(model.StitchesPerGauge, 22)
	params.SetValue(model.RowsPerGauge, 30)
	return engine.BuildExportPayload(sel, params)
}

func TestExportPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.pdf")
	opts := Options{Unit: model.Metric, Size: "Men L"}

	require.NoError(t, ExportPDF(path, menLPayload(model.FormatPDF), opts))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output is not a PDF")
}

func TestWritePDFWithMissingFields(t *testing.T) {
	payload := engine.BuildExportPayload(model.DefaultSelection(), model.NewParameterSet())
	require.Len(t, payload.Missing(), model.FieldCount)

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, payload, Options{Unit: model.Imperial}))
	assert.Greater(t, buf.Len(), 1000)
}

func TestEncodePayloadQR(t *testing.T) {
	png, err := EncodePayloadQR(menLPayload(model.FormatPDF))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), "QR output is not a PNG")
}

func TestExportSpreadsheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.xlsx")
	payload := menLPayload(model.FormatSpreadsheet)
	require.NoError(t, ExportSpreadsheet(path, payload, Options{Unit: model.Metric, Size: "Men L", Locale: "ja"}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(measurementsSheet)
	require.NoError(t, err)
	require.Len(t, rows, model.FieldCount+1)
	assert.Equal(t, "key", rows[0][0])
	assert.Equal(t, []string{"width_of_body", "58", "cm", "身幅"}, rows[1])
	assert.Equal(t, "rows_per_gauge", rows[model.FieldCount][0])
	assert.Equal(t, "30", rows[model.FieldCount][1])

	info, err := f.GetRows(infoSheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(info), 4)
	assert.Equal(t, "Crew", info[0][2])
	assert.Equal(t, "Spreadsheet", info[1][2])
	assert.Equal(t, "Men L", info[3][2])
}

func TestExportDispatchesOnFormat(t *testing.T) {
	dir := t.TempDir()

	path, err := Export(dir, menLPayload(model.FormatSpreadsheet), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sweater-Crew.xlsx"), path)
	assert.FileExists(t, path)

	path, err = Export(filepath.Join(dir, "named.pdf"), menLPayload(model.FormatPDF), DefaultOptions())
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestExportCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sheets", "men")

	path, err := Export(dir, menLPayload(model.FormatSpreadsheet), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sweater-Crew.xlsx"), path)
	assert.DirExists(t, dir)
	assert.FileExists(t, path)
}

func TestExportUnknownFormat(t *testing.T) {
	payload := menLPayload(model.Format("Word"))
	_, err := Export(t.TempDir(), payload, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnknownFormat))
}
