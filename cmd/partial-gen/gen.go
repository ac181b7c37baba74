package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"partial-generator/internal/analyze"
	"partial-generator/internal/gen"
	"partial-generator/internal/schemafile"
	"partial-generator/schema"
)

type genOptions struct {
	pkg     string
	types   []string
	output  string
	names   string
	pkgName string
}

func newGenCmd(a *app) *cobra.Command {
	var opts genOptions

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate partial types for Go struct types",
		Long: `Load Go packages, read the fields of the named struct types and write
one <record>_partial.go file per type. Without an output directory each
file is written into the package that declares its type.

Examples:
  partial-gen gen --pkg . --type Account
  partial-gen gen --pkg ./models --type Account --type Settings --names json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGen(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.pkg, "pkg", ".", "package pattern to load")
	cmd.Flags().StringSliceVarP(&opts.types, "type", "t", nil, "struct type name (repeatable)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: package directory)")
	cmd.Flags().StringVar(&opts.names, "names", "", "field name source: go, json or tag")
	cmd.Flags().StringVar(&opts.pkgName, "package", "", "package clause of generated files")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func (a *app) runGen(cmd *cobra.Command, opts genOptions) error {
	names := a.cfg.NameSource
	if opts.names != "" {
		ns, err := analyze.ParseNameSource(opts.names)
		if err != nil {
			return err
		}

		names = ns
	}

	analyzer := analyze.NewAnalyzer(names)

	records, err := analyzer.LoadRecords(opts.pkg, opts.types...)
	if err != nil {
		return fmt.Errorf("loading records: %w", err)
	}

	gc := a.cfg.GeneratorConfig()
	if opts.pkgName != "" {
		gc.PackageName = opts.pkgName
	}

	if opts.output != "" || a.cfg.OutputDir != "" {
		if opts.output != "" {
			gc.OutputDir = opts.output
		}

		return a.generate(cmd, gc, records)
	}

	// Nothing is written unless every package can be generated.
	d := gen.NewGenerator(gc).Check(records)
	if err := d.Error(); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	for _, group := range groupByPackage(records) {
		pkgConfig := gc
		if dir := analyzer.PackageDir(group[0].PkgPath); dir != "" {
			pkgConfig.OutputDir = dir
		}

		if err := a.generate(cmd, pkgConfig, group); err != nil {
			return err
		}
	}

	return nil
}

// groupByPackage splits records by package path, keeping first-seen order.
func groupByPackage(records []*schema.RecordSchema) [][]*schema.RecordSchema {
	var groups [][]*schema.RecordSchema

	index := make(map[string]int)

	for _, rs := range records {
		i, ok := index[rs.PkgPath]
		if !ok {
			i = len(groups)
			index[rs.PkgPath] = i
			groups = append(groups, nil)
		}

		groups[i] = append(groups[i], rs)
	}

	return groups
}

// generateSchemaFile generates declared records and their partials from a
// YAML schema file. Output goes next to the file unless outDir is set.
func (a *app) generateSchemaFile(cmd *cobra.Command, path, outDir string) error {
	f, err := schemafile.LoadFile(path)
	if err != nil {
		return err
	}

	records, err := f.Schemas()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	gc := a.cfg.GeneratorConfig()

	switch {
	case outDir != "":
		gc.OutputDir = outDir
	case a.cfg.OutputDir == "":
		gc.OutputDir = filepath.Dir(path)
	}

	return a.generate(cmd, gc, records)
}

func (a *app) generate(cmd *cobra.Command, gc gen.GeneratorConfig, records []*schema.RecordSchema) error {
	files, err := gen.NewGenerator(gc).WithLogger(a.logger).Generate(records)
	if err != nil {
		return err
	}

	written, err := gen.WriteFiles(files, gc.OutputDir)
	if err != nil {
		return err
	}

	for _, path := range written {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}

	a.logger.Info().
		Int("records", len(records)).
		Int("written", len(written)).
		Str("dir", gc.OutputDir).
		Msg("generation complete")

	return nil
}
