// Package cli is the knitgauge command line. Each command drives one
// session from flags and hands its payload to a renderer.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/knitgauge/internal/i18n"
	"github.com/piwi3910/knitgauge/internal/log"
	"github.com/piwi3910/knitgauge/internal/model"
	"github.com/piwi3910/knitgauge/internal/project"
)

// app is the state shared by every command after config has loaded.
type app struct {
	cfgFile string
	cfg     model.AppConfig
	logger  *zap.SugaredLogger
	tr      *i18n.Localizer
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "knitgauge",
		Short: "Sweater measurement configurator",
		Long: "knitgauge collects sweater measurements, fills them from standard size presets, " +
			"and hands them to a renderer as a PDF or spreadsheet measurement sheet.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default ~/.knitgauge/config.toml)")
	root.PersistentFlags().Bool("debug", false, "debug logging")
	root.PersistentFlags().String("locale", "", "display locale, e.g. en or ja")

	root.AddCommand(
		newPresetsCmd(a),
		newPayloadCmd(a),
		newExportCmd(a),
		newRenderCmd(a),
		newImportCmd(a),
		newWatchCmd(a),
		newShellCmd(a),
		newConfigCmd(a),
	)
	return root
}

// init loads the config file, then environment, then flags, in rising
// priority, and builds the logger and localizer from the result.
func (a *app) init(cmd *cobra.Command) error {
	v := project.NewViper()

	path := a.configPath()
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	for _, name := range []string{"debug", "locale"} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			if err := v.BindPFlag(name, f); err != nil {
				return fmt.Errorf("failed to bind --%s: %w", name, err)
			}
		}
	}

	cfg, err := project.DecodeAppConfig(v)
	if err != nil {
		return err
	}
	logger, err := log.New(cfg.Debug)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.tr = i18n.Parse(cfg.Locale)
	a.logger.Debugw("config loaded", "path", path, "locale", a.tr.Tag().String())
	return nil
}

func (a *app) configPath() string {
	if a.cfgFile != "" {
		return a.cfgFile
	}
	return project.DefaultConfigPath()
}
