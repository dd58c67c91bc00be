package i18n

import (
	"golang.org/x/text/language"

	"github.com/piwi3910/knitgauge/internal/model"
)

var (
	supported = []language.Tag{language.English, language.Japanese}
	tables    = []map[Key]string{english, japanese}
	matcher   = language.NewMatcher(supported)
)

// Localizer resolves keys for one locale.
type Localizer struct {
	tag   language.Tag
	table map[Key]string
}

// New returns a Localizer for the closest supported locale. Locales with no
// reasonable match use English.
func New(tag language.Tag) *Localizer {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	return &Localizer{tag: supported[idx], table: tables[idx]}
}

// Parse builds a Localizer from a BCP 47 string such as "ja-JP". An
// unparsable string selects English.
func Parse(locale string) *Localizer {
	tag, err := language.Parse(locale)
	if err != nil {
		return New(language.English)
	}
	return New(tag)
}

// Tag returns the locale the Localizer actually serves.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Text returns the translation of k, or k's name when there is none.
func (l *Localizer) Text(k Key) string {
	if s, ok := l.table[k]; ok {
		return s
	}
	return k.String()
}

// Field returns the display label of a measurement field.
func (l *Localizer) Field(f model.MeasurementField) string {
	if !f.Valid() {
		return f.Key()
	}
	return l.Text(KeyWidthOfBody + Key(f))
}

// Unit returns the display name of a unit.
func (l *Localizer) Unit(u model.Unit) string {
	if u == model.Imperial {
		return l.Text(KeyUnitInch)
	}
	return l.Text(KeyUnitCm)
}

// GaugeLabel returns the display text of a gauge span.
func (l *Localizer) GaugeLabel(g model.GaugeLabel) string {
	if g == model.GaugePer4Inch {
		return l.Text(KeyGaugePer4Inch)
	}
	return l.Text(KeyGaugePer10cm)
}

// Format returns the display name of an output format.
func (l *Localizer) Format(f model.Format) string {
	if f == model.FormatSpreadsheet {
		return l.Text(KeyFormatSpreadsheet)
	}
	return l.Text(KeyFormatPDF)
}

var garmentKeys = map[model.GarmentType]Key{
	model.GarmentCrew:     KeyGarmentCrew,
	model.GarmentVNeck:    KeyGarmentVNeck,
	model.GarmentHigh:     KeyGarmentHigh,
	model.GarmentCardigan: KeyGarmentCardigan,
	model.GarmentRaglan:   KeyGarmentRaglan,
	model.GarmentBoat:     KeyGarmentBoat,
	model.GarmentTurtle:   KeyGarmentTurtle,
	model.GarmentOpen:     KeyGarmentOpen,
}

// Garment returns the display name of a garment type.
func (l *Localizer) Garment(g model.GarmentType) string {
	k, ok := garmentKeys[g]
	if !ok {
		return string(g)
	}
	return l.Text(k)
}

// Size returns the display name of a size marker. Catalog names are shown
// as they are; only the Custom marker is translated.
func (l *Localizer) Size(name string) string {
	if name == model.SizeCustom {
		return l.Text(KeySizeCustom)
	}
	return name
}
