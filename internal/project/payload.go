package project

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/piwi3910/knitgauge/internal/model"
)

// EnvelopeVersion is written into every payload file.
const EnvelopeVersion = "1.0.0"

// PayloadEnvelope wraps an export payload with the context a renderer needs
// but the payload deliberately omits, such as the unit.
type PayloadEnvelope struct {
	Version   string               `json:"version"`
	ID        string               `json:"id"`
	CreatedAt string               `json:"created_at"`
	Session   string               `json:"session,omitempty"`
	Selection model.SelectionState `json:"selection"`
	Payload   model.ExportPayload  `json:"payload"`
}

// NewEnvelope stamps a payload with a fresh ID and the current time.
func NewEnvelope(sessionID string, sel model.SelectionState, payload model.ExportPayload) PayloadEnvelope {
	return PayloadEnvelope{
		Version:   EnvelopeVersion,
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Session:   sessionID,
		Selection: sel,
		Payload:   payload,
	}
}

// WritePayload writes the envelope as indented JSON, creating parent
// directories as needed.
func WritePayload(path string, env PayloadEnvelope) error {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create payload directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write payload file: %w", err)
	}
	return nil
}

// ReadPayload reads and validates a payload file written by WritePayload.
func ReadPayload(path string) (PayloadEnvelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PayloadEnvelope{}, fmt.Errorf("failed to read payload file: %w", err)
	}
	var env PayloadEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return PayloadEnvelope{}, fmt.Errorf("failed to parse payload file: %w", err)
	}
	if env.Version == "" {
		return PayloadEnvelope{}, fmt.Errorf("invalid payload file: missing version field")
	}
	if err := normalizePayload(&env.Payload); err != nil {
		return PayloadEnvelope{}, fmt.Errorf("invalid payload file: %w", err)
	}
	if env.Selection.Unit == "" {
		env.Selection.Unit = model.Metric
	}
	u, err := model.ParseUnit(string(env.Selection.Unit))
	if err != nil {
		return PayloadEnvelope{}, fmt.Errorf("invalid payload file: %w", err)
	}
	env.Selection.Unit = u
	env.Selection.Garment = env.Payload.GarmentType
	env.Selection.Format = env.Payload.Format
	return env, nil
}

// normalizePayload rewrites names to their canonical spelling and rejects
// anything a renderer could not take as-is.
func normalizePayload(p *model.ExportPayload) error {
	g, err := model.ParseGarmentType(string(p.GarmentType))
	if err != nil {
		return err
	}
	f, err := model.ParseFormat(string(p.Format))
	if err != nil {
		return err
	}
	if len(p.Measurements) != model.FieldCount {
		return fmt.Errorf("expected %d measurements, got %d", model.FieldCount, len(p.Measurements))
	}

	measurements := make(map[string]float64, model.FieldCount)
	for key, v := range p.Measurements {
		field, ok := model.FieldByKey(key)
		if !ok {
			return fmt.Errorf("unknown measurement %q", key)
		}
		if _, dup := measurements[field.Key()]; dup {
			return fmt.Errorf("duplicate measurement %q", key)
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("measurement %s must be a non-negative number, got %v", field.Key(), v)
		}
		measurements[field.Key()] = v
	}

	p.GarmentType = g
	p.Format = f
	p.Measurements = measurements
	return nil
}
