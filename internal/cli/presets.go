package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/knitgauge/internal/engine"
	"github.com/piwi3910/knitgauge/internal/model"
)

func newPresetsCmd(a *app) *cobra.Command {
	var category string
	var match []string

	cmd := &cobra.Command{
		Use:   "presets [size]",
		Short: "List the standard size presets, or show one in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := model.DefaultCatalog()
			if len(args) == 1 {
				return a.showPreset(cmd, catalog, args[0])
			}
			if len(match) > 0 {
				return a.matchPresets(cmd, catalog, match)
			}

			presets := catalog.Presets()
			if category != "" {
				presets = catalog.ByCategory(model.Category(category))
				if len(presets) == 0 {
					return fmt.Errorf("no presets in category %q", category)
				}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprint(tw, "size\tcategory")
			for _, f := range model.AllFields() {
				if !f.IsGauge() {
					fmt.Fprintf(tw, "\t%s", f.Key())
				}
			}
			fmt.Fprintln(tw)
			for _, p := range presets {
				fmt.Fprintf(tw, "%s\t%s", p.Name, p.Category)
				for _, f := range model.AllFields() {
					if !f.IsGauge() {
						fmt.Fprintf(tw, "\t%s", formatFloat(p.Values.Value(f)))
					}
				}
				fmt.Fprintln(tw)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list one category (Men, Lady, Kids)")
	cmd.Flags().StringArrayVar(&match, "match", nil, "list presets equal to these values, e.g. --match width_of_body=58 (repeatable)")
	return cmd
}

// showPreset prints one preset as localized label/value rows.
func (a *app) showPreset(cmd *cobra.Command, catalog model.Catalog, name string) error {
	resolved, err := catalog.ResolveSizeName(name)
	if err != nil {
		return err
	}
	if resolved == model.SizeCustom {
		return fmt.Errorf("%s has no values; it marks a manual configuration", model.SizeCustom)
	}
	preset := catalog.MustLookup(resolved)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", a.tr.Size(preset.Name), preset.Category)
	for _, f := range model.AllFields() {
		v, ok := preset.Values.Get(f)
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a.tr.Field(f), formatFloat(v), a.tr.Unit(model.Metric))
	}
	return tw.Flush()
}

// matchPresets prints the presets whose values equal the given ones. Only
// the fields named are compared.
func (a *app) matchPresets(cmd *cobra.Command, catalog model.Catalog, match []string) error {
	flags := sessionFlags{values: match}
	s, err := flags.build(a)
	if err != nil {
		return err
	}
	live := s.Params()

	var names []string
	for _, p := range catalog.Presets() {
		candidate := p.Values.Clone()
		for _, f := range model.AllFields() {
			if v, ok := live.Get(f); ok {
				candidate.SetValue(f, v)
			}
		}
		if matches(catalog, p.Name, candidate) {
			names = append(names, p.Name)
		}
	}
	for _, n := range names {
		fmt.Fprintln(cmd.OutOrStdout(), n)
	}
	return nil
}

func matches(catalog model.Catalog, name string, params model.ParameterSet) bool {
	sel := model.SelectionState{Size: name}
	return len(engine.Divergence(sel, catalog, params)) == 0
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
