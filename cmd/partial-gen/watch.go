package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"partial-generator/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	var file, output string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate from a YAML schema file whenever it changes",
		Long: `Generate once, then regenerate every time the schema file is written.
Errors are logged and watching continues. Stop with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			regenerate := func() error {
				return a.generateSchemaFile(cmd, file, output)
			}

			if err := regenerate(); err != nil {
				a.logger.Error().Err(err).Msg("initial generation failed")
			}

			w := watch.New(file, a.logger, regenerate)
			if err := w.Start(); err != nil {
				return err
			}
			defer w.Stop()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			<-ctx.Done()

			a.logger.Info().Msg("stopping watcher")

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "schema file path")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory (default: schema file directory)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
