package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"partial-generator/internal/analyze"
	"partial-generator/internal/diagnostic"
	"partial-generator/internal/schemafile"
	"partial-generator/schema"
)

type inspectOptions struct {
	pkg   string
	types []string
	names string
	dump  bool
	yaml  bool
	json  bool
}

func newInspectCmd(a *app) *cobra.Command {
	var opts inspectOptions

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the schema derived from Go struct types",
		Long: `Show the fields, variants and types partial-gen derives from struct
types, along with any schema warnings.

Examples:
  partial-gen inspect --pkg . --type Account
  partial-gen inspect --pkg . --type Account --yaml > account.yaml
  partial-gen inspect --pkg . --type Account --json
  partial-gen inspect --pkg . --type Account --dump`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInspect(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.pkg, "pkg", ".", "package pattern to load")
	cmd.Flags().StringSliceVarP(&opts.types, "type", "t", nil, "struct type name (repeatable)")
	cmd.Flags().StringVar(&opts.names, "names", "", "field name source: go, json or tag")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "print a full dump of the schema values")
	cmd.Flags().BoolVar(&opts.yaml, "yaml", false, "print the schema as a YAML schema file")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the schema as JSON")
	cmd.MarkFlagsMutuallyExclusive("dump", "yaml", "json")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func (a *app) runInspect(out io.Writer, opts inspectOptions) error {
	names := a.cfg.NameSource
	if opts.names != "" {
		ns, err := analyze.ParseNameSource(opts.names)
		if err != nil {
			return err
		}

		names = ns
	}

	records, err := analyze.NewAnalyzer(names).LoadRecords(opts.pkg, opts.types...)
	if err != nil {
		return fmt.Errorf("loading records: %w", err)
	}

	switch {
	case opts.dump:
		spew.Fdump(out, records)
		return nil

	case opts.yaml:
		data, err := schemafile.Marshal(schemafile.FromRecords(records[0].PkgName, records))
		if err != nil {
			return err
		}

		_, err = out.Write(data)

		return err

	case opts.json:
		data, err := gojson.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(out, string(data))

		return err
	}

	for i, rs := range records {
		if i > 0 {
			fmt.Fprintln(out)
		}

		printRecord(out, rs)
	}

	diags := diagnostic.CheckRecords(records)
	for _, d := range append(diags.Errors, diags.Warnings...) {
		fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
	}

	return nil
}

func printRecord(out io.Writer, rs *schema.RecordSchema) {
	fmt.Fprintf(out, "%s (%d fields)\n", rs, len(rs.Fields))

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  NAME\tVARIANT\tGO FIELD\tTYPE")

	for _, f := range rs.Fields {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", f.Name, f.Variant(), f.StructField(), f.Type.Expr)
	}

	tw.Flush()
}
