package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/knitgauge/internal/engine"
	"github.com/piwi3910/knitgauge/internal/export"
	"github.com/piwi3910/knitgauge/internal/i18n"
	"github.com/piwi3910/knitgauge/internal/importer"
	"github.com/piwi3910/knitgauge/internal/model"
	"github.com/piwi3910/knitgauge/internal/project"
	"github.com/piwi3910/knitgauge/internal/session"
)

// sessionFlags are the flags that describe one configuration.
type sessionFlags struct {
	garment string
	size    string
	unit    string
	format  string
	values  []string
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.garment, "garment", "g", "", "garment type (Crew, V-Neck, High, Cardigan, Raglan, Boat, Turtle, Open)")
	cmd.Flags().StringVarP(&f.size, "size", "s", "", `size preset, e.g. "Men L", or Custom`)
	cmd.Flags().StringVarP(&f.unit, "unit", "u", "", "unit the values are in (cm or inch)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format (pdf or spreadsheet)")
	cmd.Flags().StringArrayVar(&f.values, "set", nil, "set a measurement, e.g. --set stitches_per_gauge=22 (repeatable)")
}

// build starts a session from the config defaults and applies the flags.
// Names are validated here so the core never sees an unknown preset.
func (f *sessionFlags) build(a *app) (*session.Session, error) {
	s := session.New(a.cfg, a.logger)

	if f.unit != "" {
		u, err := model.ParseUnit(f.unit)
		if err != nil {
			return nil, err
		}
		s.SetUnit(u)
	}
	if f.garment != "" {
		g, err := model.ParseGarmentType(f.garment)
		if err != nil {
			return nil, err
		}
		s.SetGarment(g)
	}
	if f.format != "" {
		fm, err := model.ParseFormat(f.format)
		if err != nil {
			return nil, err
		}
		s.SetFormat(fm)
	}
	if f.size != "" {
		name, err := s.Catalog().ResolveSizeName(f.size)
		if err != nil {
			return nil, err
		}
		if name == model.SizeCustom {
			s.StartCustom()
		} else {
			s.ApplyPreset(name)
		}
	}
	for _, kv := range f.values {
		key, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("--set %q: expected field=value", kv)
		}
		field, ok := importer.LookupField(key)
		if !ok {
			return nil, fmt.Errorf("--set %q: unknown field %q", kv, key)
		}
		s.Set(field, raw)
	}
	return s, nil
}

// options returns the renderer options for a session.
func (a *app) options(s *session.Session) export.Options {
	sel := s.Selection()
	return export.Options{
		Unit:      sel.Unit,
		Size:      sel.Size,
		Locale:    a.cfg.Locale,
		SessionID: s.ID(),
	}
}

// render writes the session's payload with the reference renderer and
// reports the result.
func (a *app) render(cmd *cobra.Command, s *session.Session, out string) error {
	payload := s.Payload()
	if out == "" {
		out = a.cfg.OutputDir
	}
	path, err := export.Export(out, payload, a.options(s))
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", payload.Format, err)
	}
	a.logger.Infow("render written", "path", path, "format", payload.Format)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s: %s\n", a.tr.Text(i18n.KeyExportDone), path)
	a.notices(cmd.ErrOrStderr(), s, payload)
	return nil
}

// notices prints the missing-field and preset-divergence warnings.
func (a *app) notices(w io.Writer, s *session.Session, payload model.ExportPayload) {
	if missing := payload.Missing(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, f := range missing {
			names[i] = a.tr.Field(f)
		}
		fmt.Fprintf(w, "%s: %s\n", a.tr.Text(i18n.KeyMissingWarning), strings.Join(names, ", "))
	}
	for _, d := range s.Divergence() {
		if !d.LiveOK {
			continue
		}
		fmt.Fprintf(w, "%s: %s %s -> %s\n", a.tr.Text(i18n.KeyPresetDiverged),
			a.tr.Field(d.Field), formatFloat(d.Preset), formatFloat(d.Live))
	}
	if !s.Selection().HasPreset() {
		for _, name := range engine.MatchingPresets(s.Catalog(), s.Params()) {
			fmt.Fprintf(w, "%s: %s\n", a.tr.Text(i18n.KeyPresetMatch), a.tr.Size(name))
		}
	}
}

// printPayload builds the payload once, writes its envelope, and prints the
// notices for it.
func (a *app) printPayload(cmd *cobra.Command, s *session.Session, out string) error {
	payload := s.Payload()
	if err := writeEnvelope(cmd.OutOrStdout(), s, payload, out); err != nil {
		return err
	}
	a.notices(cmd.ErrOrStderr(), s, payload)
	return nil
}

// writeEnvelope prints or saves a payload envelope for s.
func writeEnvelope(w io.Writer, s *session.Session, payload model.ExportPayload, out string) error {
	env := project.NewEnvelope(s.ID(), s.Selection(), payload)
	if out != "" {
		return project.WritePayload(out, env)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}
