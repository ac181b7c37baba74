package main

import (
	"github.com/spf13/cobra"
)

func newSchemaCmd(a *app) *cobra.Command {
	var file, output string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Generate records and partial types from a YAML schema file",
		Long: `Read a YAML schema file and write, per record, a file declaring the
record struct and its partial form.

Examples:
  partial-gen schema -f models.yaml
  partial-gen schema -f models.yaml -o ./models`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generateSchemaFile(cmd, file, output)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "schema file path")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory (default: schema file directory)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
