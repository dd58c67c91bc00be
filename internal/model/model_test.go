package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaugeLabelFor(t *testing.T) {
	assert.Equal(t, GaugePer10cm, GaugeLabelFor(Metric))
	assert.Equal(t, GaugePer4Inch, GaugeLabelFor(Imperial))
	assert.Equal(t, 10.0, Metric.GaugeSpan())
	assert.Equal(t, 4.0, Imperial.GaugeSpan())
	assert.Equal(t, "in", Imperial.Symbol())
}

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit(" Inches ")
	require.NoError(t, err)
	assert.Equal(t, Imperial, u)

	u, err = ParseUnit("cm")
	require.NoError(t, err)
	assert.Equal(t, Metric, u)

	_, err = ParseUnit("mm")
	assert.True(t, errors.Is(err, ErrUnknownUnit))
}

func TestFieldCatalog(t *testing.T) {
	fields := AllFields()
	require.Len(t, fields, 13)
	assert.Equal(t, WidthOfBody, fields[0])
	assert.Equal(t, RowsPerGauge, fields[12])

	seen := map[string]bool{}
	gauge := 0
	for _, f := range fields {
		assert.False(t, seen[f.Key()], "duplicate key %s", f.Key())
		seen[f.Key()] = true
		if f.IsGauge() {
			gauge++
		}
		back, ok := FieldByKey(f.Key())
		assert.True(t, ok)
		assert.Equal(t, f, back)
	}
	assert.Equal(t, 2, gauge)

	_, ok := FieldByKey("width_of_scarf")
	assert.False(t, ok)
	assert.Equal(t, "unknown", MeasurementField(99).Key())
}

func TestParameterSet_SetValidDecimals(t *testing.T) {
	cases := map[string]float64{
		"58":     58,
		"0":      0,
		"12.5":   12.5,
		" 7.25 ": 7.25,
		"1e1":    10,
		"-0":     0,
	}
	for _, f := range AllFields() {
		for raw, want := range cases {
			var p ParameterSet
			assert.True(t, p.Set(f, raw), "Set(%s, %q)", f, raw)
			got, ok := p.Get(f)
			assert.True(t, ok, "Get(%s) after %q", f, raw)
			assert.Equal(t, want, got, "Get(%s) after %q", f, raw)
		}
	}
}

func TestParameterSet_SetInvalidLeavesUnset(t *testing.T) {
	invalid := []string{"", "   ", "abc", "-1", "-0.01", "12cm", "NaN", "Inf", "-Inf", "1,5"}
	for _, f := range AllFields() {
		for _, raw := range invalid {
			var p ParameterSet
			p.SetValue(f, 42)
			assert.False(t, p.Set(f, raw), "Set(%s, %q) should fail", f, raw)
			_, ok := p.Get(f)
			assert.False(t, ok, "field %s should be unset after %q", f, raw)
			assert.Equal(t, 0.0, p.Value(f))
		}
	}
}

func TestParameterSet_ResetAllAndClone(t *testing.T) {
	var p ParameterSet
	p.Set(WidthOfBody, "50")
	p.Set(StitchesPerGauge, "22")
	assert.Equal(t, 2, p.SetCount())

	c := p.Clone()
	p.ResetAll()
	assert.Equal(t, 0, p.SetCount())
	assert.Equal(t, 2, c.SetCount(), "clone must be independent")
	assert.Equal(t, 22.0, c.Value(StitchesPerGauge))
}

func TestParameterSet_InvalidFieldIgnored(t *testing.T) {
	var p ParameterSet
	assert.False(t, p.Set(MeasurementField(-1), "5"))
	p.SetValue(MeasurementField(40), 5)
	assert.Equal(t, 0, p.SetCount())
}

func TestCatalog_Contents(t *testing.T) {
	c := DefaultCatalog()
	names := c.Names()
	require.Len(t, names, 9)
	assert.Equal(t, []string{
		"Men S", "Men M", "Men L",
		"LADY S", "LADY M", "LADY L",
		"KIDs S", "KIDs M", "KIDs L",
	}, names)

	for _, p := range c.Presets() {
		for _, f := range AllFields() {
			if f.IsGauge() {
				assert.False(t, p.Values.IsSet(f), "%s must not preset %s", p.Name, f)
			} else {
				assert.True(t, p.Values.IsSet(f), "%s must preset %s", p.Name, f)
			}
		}
	}

	for _, cat := range []Category{CategoryMen, CategoryLady, CategoryKids} {
		assert.Len(t, c.ByCategory(cat), 3)
	}
}

func TestCatalog_MenValues(t *testing.T) {
	c := DefaultCatalog()
	menL := c.MustLookup("Men L")
	assert.Equal(t, 58.0, menL.Values.Value(WidthOfBody))
	assert.Equal(t, 70.0, menL.Values.Value(LengthOfBody))
	assert.Equal(t, 54.0, c.MustLookup("Men M").Values.Value(WidthOfBody))
}

func TestCatalog_MustLookupUnknownPanics(t *testing.T) {
	c := DefaultCatalog()
	assert.Panics(t, func() { c.MustLookup("Men XXL") })
	assert.Panics(t, func() { c.MustLookup(SizeCustom) })
	_, ok := c.Lookup("Men XXL")
	assert.False(t, ok)
}

func TestCatalog_ResolveSizeName(t *testing.T) {
	c := DefaultCatalog()

	name, err := c.ResolveSizeName("men l")
	require.NoError(t, err)
	assert.Equal(t, "Men L", name)

	name, err = c.ResolveSizeName("custom")
	require.NoError(t, err)
	assert.Equal(t, SizeCustom, name)

	_, err = c.ResolveSizeName("Men XXL")
	assert.True(t, errors.Is(err, ErrUnknownPreset))
}

func TestDefaultSelection(t *testing.T) {
	s := DefaultSelection()
	assert.Equal(t, GarmentCrew, s.Garment)
	assert.Equal(t, SizeNone, s.Size)
	assert.Equal(t, Metric, s.Unit)
	assert.Equal(t, FormatPDF, s.Format)
	assert.False(t, s.HasPreset())
	assert.Equal(t, GaugePer10cm, s.GaugeLabel())

	s.Size = SizeCustom
	assert.False(t, s.HasPreset())
	s.Size = "Men M"
	assert.True(t, s.HasPreset())
}

func TestGarmentAndFormatCatalogs(t *testing.T) {
	require.Len(t, GarmentTypes, 8)
	g, err := ParseGarmentType("v-neck")
	require.NoError(t, err)
	assert.Equal(t, GarmentVNeck, g)
	_, err = ParseGarmentType("Poncho")
	assert.True(t, errors.Is(err, ErrUnknownGarment))

	f, err := ParseFormat(".xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatSpreadsheet, f)
	assert.Equal(t, ".xlsx", f.Extension())
	assert.Equal(t, ".pdf", FormatPDF.Extension())
	_, err = ParseFormat("docx")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}
