package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/piwi3910/knitgauge/internal/engine"
	"github.com/piwi3910/knitgauge/internal/model"
)

func samplePayload() (model.SelectionState, model.ExportPayload) {
	sel := model.DefaultSelection()
	sel.Unit = model.Imperial
	params := model.NewParameterSet()
	engine.ApplyPreset(&sel, model.DefaultCatalog(), &params, "LADY M")
	return sel, engine.BuildExportPayload(sel, params)
}

func TestWriteAndReadPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "payload.json")
	sel, payload := samplePayload()
	env := NewEnvelope("session-1", sel, payload)

	if _, err := uuid.Parse(env.ID); err != nil {
		t.Fatalf("envelope ID is not a UUID: %v", err)
	}

	if err := WritePayload(path, env); err != nil {
		t.Fatalf("WritePayload failed: %v", err)
	}

	got, err := ReadPayload(path)
	if err != nil {
		t.Fatalf("ReadPayload failed: %v", err)
	}
	if got.Version != EnvelopeVersion || got.ID != env.ID || got.Session != "session-1" {
		t.Errorf("envelope header mismatch: %+v", got)
	}
	if got.Selection != sel {
		t.Errorf("selection mismatch: got %+v want %+v", got.Selection, sel)
	}
	if got.Payload.Value(model.WidthOfBody) != 47 {
		t.Errorf("expected width_of_body=47, got %v", got.Payload.Value(model.WidthOfBody))
	}
	if len(got.Payload.Measurements) != model.FieldCount {
		t.Errorf("expected %d measurements, got %d", model.FieldCount, len(got.Payload.Measurements))
	}
}

func TestPayloadJSONShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.json")
	sel, payload := samplePayload()
	if err := WritePayload(path, NewEnvelope("", sel, payload)); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"garmentType": "Crew"`, `"format": "PDF"`, `"stitches_per_gauge": 0`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("payload file missing %s", want)
		}
	}
	if strings.Contains(string(data), `"session"`) {
		t.Error("empty session should be omitted")
	}
}

func TestReadPayloadErrors(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"missing.json":   "",
		"garbage.json":   "{{{",
		"noversion.json": `{"payload":{"garmentType":"Crew","format":"PDF","measurements":{}}}`,
		"garment.json":   `{"version":"1.0.0","payload":{"garmentType":"Poncho","format":"PDF","measurements":{}}}`,
		"short.json":     `{"version":"1.0.0","payload":{"garmentType":"Crew","format":"PDF","measurements":{"width_of_body":1}}}`,
		"negative.json":  envelopeJSON("Crew", "PDF", "cm", -5),
		"unit.json":      envelopeJSON("Crew", "PDF", "furlong", 50),
		"format.json":    envelopeJSON("Crew", "Word", "cm", 50),
	}
	for name, content := range cases {
		path := filepath.Join(dir, name)
		if content != "" {
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
		}
		if _, err := ReadPayload(path); err == nil {
			t.Errorf("%s: expected error, got nil", name)
		}
	}
}

// envelopeJSON builds a payload file with every measurement present and
// width_of_body set to width.
func envelopeJSON(garment, format, unit string, width float64) string {
	measurements := map[string]float64{}
	for _, f := range model.AllFields() {
		measurements[f.Key()] = 1
	}
	measurements[model.WidthOfBody.Key()] = width
	data, err := json.Marshal(map[string]interface{}{
		"version":   EnvelopeVersion,
		"selection": map[string]string{"unit": unit},
		"payload": map[string]interface{}{
			"garmentType":  garment,
			"format":       format,
			"measurements": measurements,
		},
	})
	if err != nil {
		panic(err)
	}
	return string(data)
}

func TestReadPayloadCanonicalizesNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lower.json")
	if err := os.WriteFile(path, []byte(envelopeJSON("v-neck", "pdf", "INCH", 52)), 0644); err != nil {
		t.Fatal(err)
	}

	env, err := ReadPayload(path)
	if err != nil {
		t.Fatalf("ReadPayload failed: %v", err)
	}
	if env.Payload.Format != model.FormatPDF {
		t.Errorf("expected format %q, got %q", model.FormatPDF, env.Payload.Format)
	}
	if env.Payload.GarmentType != model.GarmentVNeck {
		t.Errorf("expected garment %q, got %q", model.GarmentVNeck, env.Payload.GarmentType)
	}
	if env.Selection.Unit != model.Imperial {
		t.Errorf("expected unit inch, got %q", env.Selection.Unit)
	}
	if env.Payload.Value(model.WidthOfBody) != 52 {
		t.Errorf("expected width_of_body=52, got %v", env.Payload.Value(model.WidthOfBody))
	}
}
