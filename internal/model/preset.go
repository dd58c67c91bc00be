package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned by input boundaries that validate user-typed
// size names before they reach the resolver.
var ErrUnknownPreset = errors.New("unknown size preset")

// SizeCustom is the selection marker meaning no preset is active and all
// values are user-entered. It is a mode marker, not a value source.
const SizeCustom = "Custom"

// SizeNone is the marker of a fresh session before any size is chosen.
const SizeNone = ""

// Category groups presets by wearer.
type Category string

const (
	CategoryMen  Category = "Men"
	CategoryLady Category = "Lady"
	CategoryKids Category = "Kids"
)

// SizePreset is a named standard size. Values are in centimeters and cover
// every field except the two gauge fields.
type SizePreset struct {
	Name     string
	Category Category
	Values   ParameterSet
}

// Catalog is the read-only size preset table.
type Catalog struct {
	presets []SizePreset
	byName  map[string]int
}

// presetRow lists the 11 non-gauge values in field order.
type presetRow struct {
	name     string
	category Category
	values   [11]float64
}

var standardSizes = []presetRow{
	{"Men S", CategoryMen, [11]float64{50, 66, 6, 18, 2, 8, 2, 58, 19, 10, 6}},
	{"Men M", CategoryMen, [11]float64{54, 68, 6, 19, 2, 8, 2, 60, 20, 10, 6}},
	{"Men L", CategoryMen, [11]float64{58, 70, 6, 20, 2.5, 8.5, 2, 62, 21, 11, 6}},
	{"LADY S", CategoryLady, [11]float64{44, 56, 5, 17, 2, 7, 2, 52, 16, 9, 5}},
	{"LADY M", CategoryLady, [11]float64{47, 58, 5, 17.5, 2, 7.5, 2, 54, 17, 9, 5}},
	{"LADY L", CategoryLady, [11]float64{50, 60, 5, 18, 2, 8, 2, 55, 18, 10, 5}},
	{"KIDs S", CategoryKids, [11]float64{32, 38, 4, 13, 1, 5, 1.5, 32, 12, 7, 4}},
	{"KIDs M", CategoryKids, [11]float64{36, 43, 4, 14, 1.5, 5.5, 1.5, 37, 13, 7.5, 4}},
	{"KIDs L", CategoryKids, [11]float64{40, 48, 5, 15, 1.5, 6, 1.5, 42, 14, 8, 5}},
}

var defaultCatalog = buildCatalog(standardSizes)

func buildCatalog(rows []presetRow) Catalog {
	c := Catalog{
		presets: make([]SizePreset, 0, len(rows)),
		byName:  make(map[string]int, len(rows)),
	}
	for _, row := range rows {
		var values ParameterSet
		i := 0
		for _, f := range AllFields() {
			if f.IsGauge() {
				continue
			}
			values.SetValue(f, row.values[i])
			i++
		}
		c.byName[row.name] = len(c.presets)
		c.presets = append(c.presets, SizePreset{
			Name:     row.name,
			Category: row.category,
			Values:   values,
		})
	}
	return c
}

// DefaultCatalog returns the nine standard sizes.
func DefaultCatalog() Catalog {
	return defaultCatalog
}

// MustLookup returns the preset with the given name. The set of names is
// closed, so asking for anything else is a programming error and panics.
func (c Catalog) MustLookup(name string) SizePreset {
	p, ok := c.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("model: size preset %q is not in the catalog", name))
	}
	return p
}

// Lookup returns the preset with the given name, if present.
func (c Catalog) Lookup(name string) (SizePreset, bool) {
	i, ok := c.byName[name]
	if !ok {
		return SizePreset{}, false
	}
	return c.presets[i], true
}

// Names returns the preset names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.presets))
	for i, p := range c.presets {
		names[i] = p.Name
	}
	return names
}

// Presets returns a copy of every preset in catalog order.
func (c Catalog) Presets() []SizePreset {
	out := make([]SizePreset, len(c.presets))
	copy(out, c.presets)
	return out
}

// ByCategory returns the presets of one category in catalog order.
func (c Catalog) ByCategory(cat Category) []SizePreset {
	var out []SizePreset
	for _, p := range c.presets {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// ResolveSizeName maps user-typed text to a catalog name or SizeCustom.
// Matching ignores case and surrounding space, so "men l" finds "Men L".
func (c Catalog) ResolveSizeName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, SizeCustom) {
		return SizeCustom, nil
	}
	for _, p := range c.presets {
		if strings.EqualFold(p.Name, s) {
			return p.Name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}
