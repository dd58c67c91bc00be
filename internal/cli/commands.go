package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/piwi3910/knitgauge/internal/export"
	"github.com/piwi3910/knitgauge/internal/importer"
	"github.com/piwi3910/knitgauge/internal/model"
	"github.com/piwi3910/knitgauge/internal/project"
	"github.com/piwi3910/knitgauge/internal/session"
)

func newPayloadCmd(a *app) *cobra.Command {
	var flags sessionFlags
	var out string

	cmd := &cobra.Command{
		Use:   "payload",
		Short: "Build an export payload and print it or write it to a file",
		Example: `  knitgauge payload --size "Men L" --set stitches_per_gauge=22 --set rows_per_gauge=30
  knitgauge payload -s "LADY M" -g Raglan -o lady-m.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.build(a)
			if err != nil {
				return err
			}
			return a.printPayload(cmd, s, out)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the payload envelope here instead of stdout")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var flags sessionFlags
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Build a payload and render it as a measurement sheet",
		Example: `  knitgauge export --size "KIDs M" --format spreadsheet --out ./sheets
  knitgauge export --size Custom --set width_of_body=52 --set length_of_body=64`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.build(a)
			if err != nil {
				return err
			}
			return a.render(cmd, s, out)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file or directory (default: output_dir from config)")
	return cmd
}

func newRenderCmd(a *app) *cobra.Command {
	var out, format string

	cmd := &cobra.Command{
		Use:   "render <payload.json>",
		Short: "Render a payload file written by the payload command",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := project.ReadPayload(args[0])
			if err != nil {
				return err
			}
			if format != "" {
				f, err := model.ParseFormat(format)
				if err != nil {
					return err
				}
				env.Payload.Format = f
			}
			if out == "" {
				out = a.cfg.OutputDir
			}

			opts := export.Options{
				Unit:      env.Selection.Unit,
				Size:      env.Selection.Size,
				Locale:    a.cfg.Locale,
				SessionID: env.Session,
			}
			path, err := export.Export(out, env.Payload, opts)
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", args[0], err)
			}
			a.logger.Infow("render written", "path", path, "payload", env.ID)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file or directory (default: output_dir from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "override the payload's format")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	var flags sessionFlags
	var out string
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "import <file.csv|file.xlsx>",
		Short: "Load measurements from a CSV or Excel file and render them",
		Long: "Reads field,value rows (keys, English or Japanese labels) and applies them on top of " +
			"the flags. Fields the file does not mention keep their flag or preset values.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.build(a)
			if err != nil {
				return err
			}
			if err := a.importInto(cmd, s, args[0], importer.ImportFile(args[0]), flags.unit == ""); err != nil {
				return err
			}
			if printOnly {
				return a.printPayload(cmd, s, out)
			}
			return a.render(cmd, s, out)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file or directory")
	cmd.Flags().BoolVar(&printOnly, "print", false, "print the payload envelope instead of rendering")
	return cmd
}

// importInto merges the result of reading path into s. Row errors are
// reported; the import fails only when nothing usable was read.
func (a *app) importInto(cmd *cobra.Command, s *session.Session, path string, res importer.ImportResult, adoptUnit bool) error {
	errw := cmd.ErrOrStderr()
	for _, w := range res.Warnings {
		fmt.Fprintln(errw, "warning:", w)
	}
	for _, e := range res.Errors {
		fmt.Fprintln(errw, "error:", e)
	}
	if res.Values.SetCount() == 0 {
		return fmt.Errorf("no measurements imported from %s", path)
	}
	if adoptUnit && res.Unit != "" {
		s.SetUnit(res.Unit)
	}
	n := s.Merge(res.Values, "Import "+filepath.Base(path))
	a.logger.Infow("measurements imported", "file", path, "fields", n, "errors", len(res.Errors))
	return nil
}
