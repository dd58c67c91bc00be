package engine

import (
	"testing"

	"github.com/piwi3910/knitgauge/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPreset_MenL(t *testing.T) {
	sel := model.DefaultSelection()
	catalog := model.DefaultCatalog()
	var params model.ParameterSet
	params.Set(model.StitchesPerGauge, "22")
	params.Set(model.RowsPerGauge, "30")

	ApplyPreset(&sel, catalog, &params, "Men L")

	assert.Equal(t, "Men L", sel.Size)
	assert.Equal(t, 58.0, params.Value(model.WidthOfBody))
	assert.Equal(t, 70.0, params.Value(model.LengthOfBody))
	assert.Equal(t, 22.0, params.Value(model.StitchesPerGauge), "preset must not touch gauge")
	assert.Equal(t, 30.0, params.Value(model.RowsPerGauge), "preset must not touch gauge")
}

func TestApplyPreset_LeavesUnsetGaugeUnset(t *testing.T) {
	sel := model.DefaultSelection()
	var params model.ParameterSet

	ApplyPreset(&sel, model.DefaultCatalog(), &params, "KIDs S")

	assert.False(t, params.IsSet(model.StitchesPerGauge))
	assert.False(t, params.IsSet(model.RowsPerGauge))
	assert.Equal(t, 11, params.SetCount())
}

func TestApplyPreset_OverwritesManualEdits(t *testing.T) {
	sel := model.DefaultSelection()
	var params model.ParameterSet
	params.Set(model.WidthOfBody, "99")
	params.Set(model.LengthOfSleeve, "1")

	ApplyPreset(&sel, model.DefaultCatalog(), &params, "LADY M")

	assert.Equal(t, 47.0, params.Value(model.WidthOfBody))
	assert.Equal(t, 54.0, params.Value(model.LengthOfSleeve))
}

func TestApplyPreset_CustomNeverMutates(t *testing.T) {
	catalog := model.DefaultCatalog()
	states := []func(*model.ParameterSet){
		func(p *model.ParameterSet) {},
		func(p *model.ParameterSet) { p.Set(model.WidthOfBody, "12") },
		func(p *model.ParameterSet) {
			for _, f := range model.AllFields() {
				p.SetValue(f, float64(f)+1)
			}
		},
	}
	for i, prepare := range states {
		sel := model.DefaultSelection()
		var params model.ParameterSet
		prepare(&params)
		before := params.Clone()

		ApplyPreset(&sel, catalog, &params, model.SizeCustom)

		assert.Equal(t, before, params, "state %d mutated by Custom", i)
		assert.Equal(t, model.SizeCustom, sel.Size)
	}
}

func TestApplyPreset_CustomAfterPresetKeepsValues(t *testing.T) {
	sel := model.DefaultSelection()
	var params model.ParameterSet
	catalog := model.DefaultCatalog()

	ApplyPreset(&sel, catalog, &params, "Men M")
	ApplyPreset(&sel, catalog, &params, model.SizeCustom)

	assert.Equal(t, model.SizeCustom, sel.Size)
	assert.Equal(t, 54.0, params.Value(model.WidthOfBody))
}

func TestApplyPreset_MarkerIsSticky(t *testing.T) {
	sel := model.DefaultSelection()
	var params model.ParameterSet
	catalog := model.DefaultCatalog()

	ApplyPreset(&sel, catalog, &params, "Men M")
	params.Set(model.WidthOfBody, "60")

	assert.Equal(t, "Men M", sel.Size)
	assert.Equal(t, 60.0, params.Value(model.WidthOfBody))
	assert.Equal(t, 54.0, catalog.MustLookup("Men M").Values.Value(model.WidthOfBody))
}

func TestApplyPreset_Idempotent(t *testing.T) {
	catalog := model.DefaultCatalog()
	for _, name := range catalog.Names() {
		sel := model.DefaultSelection()
		var params model.ParameterSet
		params.Set(model.RowsPerGauge, "28")

		ApplyPreset(&sel, catalog, &params, name)
		once := params.Clone()
		ApplyPreset(&sel, catalog, &params, name)

		assert.Equal(t, once, params, "preset %s not idempotent", name)
	}
}

func TestApplyPreset_UnknownNamePanicsWithoutMutation(t *testing.T) {
	sel := model.DefaultSelection()
	var params model.ParameterSet
	params.Set(model.WidthOfBody, "40")

	assert.Panics(t, func() {
		ApplyPreset(&sel, model.DefaultCatalog(), &params, "Men XXL")
	})
	assert.Equal(t, model.SizeNone, sel.Size)
	assert.Equal(t, 40.0, params.Value(model.WidthOfBody))
}

func TestBuildExportPayload_EmptySet(t *testing.T) {
	sel := model.DefaultSelection()
	var params model.ParameterSet
	params.ResetAll()

	payload := BuildExportPayload(sel, params)

	assert.Equal(t, model.GarmentCrew, payload.GarmentType)
	assert.Equal(t, model.FormatPDF, payload.Format)
	require.Len(t, payload.Measurements, 13)
	for key, v := range payload.Measurements {
		assert.Equal(t, 0.0, v, "field %s", key)
	}
	assert.Len(t, payload.Missing(), 13)
}

func TestBuildExportPayload_RawValuesNoConversion(t *testing.T) {
	sel := model.DefaultSelection()
	sel.Garment = model.GarmentRaglan
	sel.Format = model.FormatSpreadsheet
	var params model.ParameterSet
	ApplyPreset(&sel, model.DefaultCatalog(), &params, "Men L")
	params.Set(model.StitchesPerGauge, "22")

	sel.Unit = model.Imperial
	payload := BuildExportPayload(sel, params)

	assert.Equal(t, model.GarmentRaglan, payload.GarmentType)
	assert.Equal(t, model.FormatSpreadsheet, payload.Format)
	assert.Equal(t, 58.0, payload.Value(model.WidthOfBody), "unit change must not rescale")
	assert.Equal(t, 22.0, payload.Value(model.StitchesPerGauge))
	assert.Equal(t, []model.MeasurementField{model.RowsPerGauge}, payload.Missing())

	entries := payload.Entries()
	require.Len(t, entries, 13)
	assert.Equal(t, model.WidthOfBody, entries[0].Field)
	assert.Equal(t, 58.0, entries[0].Value)
}

func TestDivergence(t *testing.T) {
	catalog := model.DefaultCatalog()
	sel := model.DefaultSelection()
	var params model.ParameterSet

	assert.Nil(t, Divergence(sel, catalog, params), "no preset selected")

	ApplyPreset(&sel, catalog, &params, "Men M")
	assert.Empty(t, Divergence(sel, catalog, params))

	params.Set(model.WidthOfBody, "60")
	params.Set(model.LengthOfSleeve, "oops")

	diffs := Divergence(sel, catalog, params)
	require.Len(t, diffs, 2)
	assert.Equal(t, model.WidthOfBody, diffs[0].Field)
	assert.Equal(t, 54.0, diffs[0].Preset)
	assert.Equal(t, 60.0, diffs[0].Live)
	assert.InDelta(t, 6.0, diffs[0].Delta(), 1e-9)
	assert.Equal(t, model.LengthOfSleeve, diffs[1].Field)
	assert.False(t, diffs[1].LiveOK)
	assert.Equal(t, "Men M", sel.Size, "report never moves the marker")
}

func TestMatchingPresets(t *testing.T) {
	catalog := model.DefaultCatalog()
	sel := model.DefaultSelection()
	var params model.ParameterSet

	assert.Empty(t, MatchingPresets(catalog, params))

	ApplyPreset(&sel, catalog, &params, "KIDs M")
	ApplyPreset(&sel, catalog, &params, model.SizeCustom)
	assert.Equal(t, []string{"KIDs M"}, MatchingPresets(catalog, params))
}
