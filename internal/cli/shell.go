package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/knitgauge/internal/i18n"
	"github.com/piwi3910/knitgauge/internal/importer"
	"github.com/piwi3910/knitgauge/internal/model"
	"github.com/piwi3910/knitgauge/internal/session"
)

const shellHelp = `commands:
  set <field>=<value>   set a measurement (key or label)
  size <name>           apply a size preset, or Custom
  garment|unit|format <name>
  reset                 clear every measurement
  undo, redo            step through the session's changes
  show                  print the current configuration
  payload [file]        print or save the payload envelope
  export [path]         render the measurement sheet
  quit`

func newShellCmd(a *app) *cobra.Command {
	var flags sessionFlags

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Edit one session line by line, with undo and redo",
		Long:  "Reads one command per line from stdin and applies it to a single session.\n\n" + shellHelp,
		Example: `  printf 'size Men L\nset width_of_body=61\nundo\nexport sheet.pdf\n' | knitgauge shell
  knitgauge shell --unit inch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.build(a)
			if err != nil {
				return err
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				quit, err := a.shellLine(cmd, s, line)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
				}
				if quit {
					return nil
				}
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("failed to read commands: %w", err)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// shellLine runs one shell command against s and reports whether the shell
// should exit.
func (a *app) shellLine(cmd *cobra.Command, s *session.Session, line string) (bool, error) {
	verb, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	w := cmd.OutOrStdout()

	switch strings.ToLower(verb) {
	case "set":
		key, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return false, fmt.Errorf("set %q: expected field=value", arg)
		}
		field, ok := importer.LookupField(strings.TrimSpace(key))
		if !ok {
			return false, fmt.Errorf("set %q: unknown field %q", arg, key)
		}
		s.Set(field, strings.TrimSpace(raw))
	case "size":
		name, err := s.Catalog().ResolveSizeName(arg)
		if err != nil {
			return false, err
		}
		if name == model.SizeCustom {
			s.StartCustom()
		} else {
			s.ApplyPreset(name)
		}
	case "garment":
		g, err := model.ParseGarmentType(arg)
		if err != nil {
			return false, err
		}
		s.SetGarment(g)
	case "unit":
		u, err := model.ParseUnit(arg)
		if err != nil {
			return false, err
		}
		s.SetUnit(u)
	case "format":
		f, err := model.ParseFormat(arg)
		if err != nil {
			return false, err
		}
		s.SetFormat(f)
	case "reset":
		s.ResetAll()
	case "undo":
		label, _ := s.UndoLabel()
		if !s.Undo() {
			fmt.Fprintln(w, "nothing to undo")
			return false, nil
		}
		fmt.Fprintln(w, "undid:", label)
	case "redo":
		label, _ := s.RedoLabel()
		if !s.Redo() {
			fmt.Fprintln(w, "nothing to redo")
			return false, nil
		}
		fmt.Fprintln(w, "redid:", label)
	case "show":
		return false, a.showSession(w, s)
	case "payload":
		return false, a.printPayload(cmd, s, arg)
	case "export":
		return false, a.render(cmd, s, arg)
	case "help":
		fmt.Fprintln(w, shellHelp)
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q (try help)", verb)
	}
	return false, nil
}

// showSession prints the selection and every field, "-" marking unset ones.
func (a *app) showSession(w io.Writer, s *session.Session) error {
	sel := s.Selection()
	size := sel.Size
	if size == model.SizeNone {
		size = "-"
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", a.tr.Text(i18n.KeySize), a.tr.Size(size))
	fmt.Fprintf(tw, "%s\t%s\n", a.tr.Text(i18n.KeyGarmentType), a.tr.Garment(sel.Garment))
	fmt.Fprintf(tw, "%s\t%s\n", a.tr.Text(i18n.KeyFormat), a.tr.Format(sel.Format))
	for _, f := range model.AllFields() {
		value := "-"
		if v, ok := s.Get(f); ok {
			value = formatFloat(v)
		}
		unit := a.tr.Unit(sel.Unit)
		if f.IsGauge() {
			unit = a.tr.GaugeLabel(sel.GaugeLabel())
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a.tr.Field(f), value, unit)
	}
	return tw.Flush()
}
