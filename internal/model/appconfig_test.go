package model

import "testing"

func TestDefaultAppConfigMatchesDefaultSelection(t *testing.T) {
	cfg := DefaultAppConfig()
	sel := DefaultSelection()

	if cfg.DefaultUnit != sel.Unit {
		t.Errorf("Unit mismatch: config=%s selection=%s", cfg.DefaultUnit, sel.Unit)
	}
	if cfg.DefaultGarment != sel.Garment {
		t.Errorf("Garment mismatch: config=%s selection=%s", cfg.DefaultGarment, sel.Garment)
	}
	if cfg.DefaultFormat != sel.Format {
		t.Errorf("Format mismatch: config=%s selection=%s", cfg.DefaultFormat, sel.Format)
	}
	if cfg.Locale != "en" {
		t.Errorf("expected default locale=en, got %s", cfg.Locale)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestApplyToSelection(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultUnit = Imperial
	cfg.DefaultGarment = GarmentRaglan
	cfg.DefaultFormat = FormatSpreadsheet

	s := DefaultSelection()
	cfg.ApplyToSelection(&s)

	if s.Unit != Imperial {
		t.Errorf("expected Unit=inch, got %s", s.Unit)
	}
	if s.Garment != GarmentRaglan {
		t.Errorf("expected Garment=Raglan, got %s", s.Garment)
	}
	if s.Format != FormatSpreadsheet {
		t.Errorf("expected Format=Spreadsheet, got %s", s.Format)
	}
	if s.Size != SizeNone {
		t.Errorf("config must not select a size, got %q", s.Size)
	}
}

func TestApplyToSelectionIgnoresInvalid(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultUnit = "furlong"
	cfg.DefaultGarment = "Poncho"

	s := DefaultSelection()
	cfg.ApplyToSelection(&s)

	if s.Unit != Metric {
		t.Errorf("invalid unit should keep Metric, got %s", s.Unit)
	}
	if s.Garment != GarmentCrew {
		t.Errorf("invalid garment should keep Crew, got %s", s.Garment)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown unit")
	}
}
