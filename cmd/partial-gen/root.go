package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"partial-generator/internal/config"
	"partial-generator/internal/logging"
)

// app holds state shared by all subcommands once flags are parsed.
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string

	cfg    *config.Config
	logger zerolog.Logger
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "partial-gen",
		Short: "Generate partial record types with per-field presence",
		Long: `partial-gen generates, for a record type, a partial form in which every
field may be absent, together with a field enumeration, conversions to and
from the full record, apply, merge and completeness checks.

Sources:
  partial-gen gen --pkg ./models --type Account   # from Go structs
  partial-gen schema -f models.yaml               # from a YAML schema file

Tooling:
  partial-gen inspect --pkg . --type Account      # show the derived schema
  partial-gen watch -f models.yaml                # regenerate on change`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(errOut)
		},
	}

	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: json or console")

	rootCmd.AddCommand(
		newGenCmd(a),
		newSchemaCmd(a),
		newInspectCmd(a),
		newWatchCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// setup loads the config file and builds the logger; flags override the file.
func (a *app) setup(errOut io.Writer) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	logger, err := logging.New(errOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger

	a.logger.Debug().Str("config", a.cfgFile).Msg("configuration loaded")

	return nil
}
