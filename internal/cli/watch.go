package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/piwi3910/knitgauge/internal/importer"
	"github.com/piwi3910/knitgauge/internal/session"
)

func newWatchCmd(a *app) *cobra.Command {
	var flags sessionFlags
	var out string

	cmd := &cobra.Command{
		Use:   "watch <file.csv|file.xlsx>",
		Short: "Re-render whenever a measurements file is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// Bad flags fail the command before anything is watched.
			s, err := flags.build(a)
			if err != nil {
				return err
			}

			w, err := importer.NewWatcher(args[0])
			if err != nil {
				return fmt.Errorf("failed to create watcher: %w", err)
			}
			if err := w.Start(); err != nil {
				return fmt.Errorf("failed to watch %s: %w", args[0], err)
			}
			defer w.Stop()

			pass := func(s *session.Session, res importer.ImportResult) {
				if err := a.importInto(cmd, s, w.File, res, flags.unit == ""); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
					return
				}
				if err := a.render(cmd, s, out); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
				}
			}

			pass(s, importer.ImportFile(w.File))
			a.logger.Infow("watching", "file", w.File)

			for {
				select {
				case <-ctx.Done():
					return nil
				case change, ok := <-w.Changes:
					if !ok {
						return nil
					}
					// Each pass starts from the flags so edits removed from
					// the file do not linger. The watcher already read it.
					s, err := flags.build(a)
					if err != nil {
						return err
					}
					pass(s, change.Result)
				}
			}
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file or directory")
	return cmd
}
