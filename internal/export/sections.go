// Package export renders export payloads into documents. It lays the
// measurements out as a sheet; it does not compute knitting charts.
package export

import (
	"fmt"
	"strconv"

	"github.com/piwi3910/knitgauge/internal/i18n"
	"github.com/piwi3910/knitgauge/internal/model"
)

// Options carries context the payload itself does not: the unit the values
// were entered in, the size marker, and the locale for labels.
type Options struct {
	Unit      model.Unit
	Size      string
	Locale    string // BCP 47; empty means English
	SessionID string
}

// DefaultOptions returns options for metric values with English labels.
func DefaultOptions() Options {
	return Options{Unit: model.Metric, Locale: "en"}
}

func (o Options) unit() model.Unit {
	if o.Unit == "" {
		return model.Metric
	}
	return o.Unit
}

// section groups fields under one heading on the rendered sheet.
type section struct {
	title  i18n.Key
	fields []model.MeasurementField
}

var sections = []section{
	{i18n.KeyGauge, []model.MeasurementField{model.StitchesPerGauge, model.RowsPerGauge}},
	{i18n.KeyBody, []model.MeasurementField{model.WidthOfBody, model.LengthOfBody, model.LengthOfRibbedHem}},
	{i18n.KeyNeckShoulder, []model.MeasurementField{
		model.WidthOfNeck, model.LengthOfShoulderDrop, model.LengthOfFrontNeckDrop, model.LengthOfBackNeckDrop,
	}},
	{i18n.KeySleeve, []model.MeasurementField{
		model.LengthOfSleeve, model.WidthOfSleeve, model.WidthOfCuff, model.LengthOfRibbedCuff,
	}},
}

// unitLabel returns the suffix shown next to a field's value.
func unitLabel(tr *i18n.Localizer, f model.MeasurementField, u model.Unit) string {
	if f.IsGauge() {
		return tr.GaugeLabel(model.GaugeLabelFor(u))
	}
	return tr.Unit(u)
}

// formatValue prints a measurement without trailing zeros.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// outputName returns the default file name for a payload.
func outputName(p model.ExportPayload) string {
	return fmt.Sprintf("sweater-%s%s", p.GarmentType, p.Format.Extension())
}
