package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/apidoc/pkg/distribution"
	apperr "github.com/matzehuels/apidoc/pkg/errors"
	"github.com/matzehuels/apidoc/pkg/export"
)

// selectionName names the filter built from the command line.
const selectionName = "selection"

// selectionOpts holds the flags selecting which artifacts are exported.
type selectionOpts struct {
	bundles      []string // bundle ids, prefixes or patterns
	packages     []string // package names
	javaPackages []string // operation class prefixes
	mode         string   // prefix, exact or glob
	references   bool     // also select what the selection contributes to
}

func (o *selectionOpts) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&o.bundles, "bundle", nil, "select bundles (repeatable, comma-separated)")
	cmd.Flags().StringSliceVar(&o.packages, "package", nil, "select packages (repeatable, comma-separated)")
	cmd.Flags().StringSliceVar(&o.javaPackages, "java-package", nil, "select operations by Java package prefix")
	cmd.Flags().StringVar(&o.mode, "mode", "", "selection match mode: prefix (default), exact, glob")
	cmd.Flags().BoolVar(&o.references, "references", false, "also select the components and extension points the selection contributes to")
}

// filter compiles the selection against d. Flags replace the [filter]
// section of the config as a whole. An empty selection selects everything
// and returns a nil filter.
func (o *selectionOpts) filter(d distribution.Distribution, defaults FilterConfig) (distribution.Filter, error) {
	sel := distribution.Selection{
		Bundles:      o.bundles,
		Packages:     o.packages,
		JavaPackages: o.javaPackages,
	}
	modeName := o.mode
	if sel.IsEmpty() {
		sel = defaults.selection()
		if modeName == "" {
			modeName = defaults.Mode
		}
	}
	mode, err := distribution.ParseMatchMode(modeName)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "--mode")
	}
	sel.Mode = mode

	if sel.IsEmpty() {
		if o.references {
			return nil, apperr.New(apperr.ErrCodeInvalidInput, "--references needs a selection (--bundle, --package or --java-package)")
		}
		return nil, nil
	}

	pf, err := distribution.NewPersistFilter(selectionName, sel)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "compile selection")
	}
	if !o.references {
		return pf, nil
	}
	refs := distribution.NewReferenceFilter(selectionName+distribution.ReferenceSuffix, distribution.SelectBundles(d, pf))
	return distribution.AnyOf(selectionName, pf, refs), nil
}

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	selectionOpts
	exporter string   // registered exporter name
	output   string   // output file or directory, stdout when empty
	pretty   bool     // indent JSON output
	props    []string // extra k=v exporter properties
	noCache  bool     // bypass the SVG render cache
}

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{exporter: export.JSONGraph}

	cmd := &cobra.Command{
		Use:   "export [snapshot.json]",
		Short: "Run an exporter over a distribution snapshot",
		Long: `Export loads a distribution snapshot and runs one registered exporter over it.

Without --out the result is written to stdout. When --out names a directory,
the exporter's default filename is used inside it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd, args[0], &opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.exporter, "exporter", "e", opts.exporter, "exporter name (see 'apidoc exporters')")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "output file or directory (default stdout)")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent JSON output")
	cmd.Flags().StringArrayVar(&opts.props, "prop", nil, "exporter property as key=value (repeatable)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the SVG render cache")

	return cmd
}

func (c *CLI) runExport(cmd *cobra.Command, path string, opts *exportOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	props, err := parseProps(opts.props)
	if err != nil {
		return err
	}
	if opts.pretty {
		props[export.PropPretty] = "true"
	}

	reg, cfg, err := c.newRegistry(opts.noCache)
	if err != nil {
		return err
	}
	exp, err := reg.Resolve(opts.exporter)
	if err != nil {
		return err
	}

	prog := startStep(logger)
	snap, err := distribution.LoadFile(path)
	if err != nil {
		return err
	}
	logger.Debug("Loaded snapshot", "name", snap.Name(), "version", snap.Version(), "bundles", len(snap.Bundles()))

	f, err := opts.filter(snap, cfg.Filter)
	if err != nil {
		return err
	}

	out, err := writeOutput(ctx, cmd.OutOrStdout(), opts.output, exp.Descriptor().Filename, func(ctx context.Context, w io.Writer) error {
		return export.Run(ctx, exp, w, snap, f, props)
	})
	if err != nil {
		return err
	}
	prog.done("Exported snapshot", "exporter", opts.exporter)

	if out != "" {
		printSuccess(cmd.OutOrStdout(), "Exported %s", StyleHighlight.Render(exp.Descriptor().Title))
		printFile(cmd.OutOrStdout(), out)
	}
	return nil
}

// writeOutput runs write against stdout when output is empty, and against a
// new file otherwise. An existing directory receives defaultName. A file
// whose write fails is removed. It returns the written path, or "" for
// stdout.
func writeOutput(ctx context.Context, stdout io.Writer, output, defaultName string, write func(context.Context, io.Writer) error) (string, error) {
	if output == "" {
		return "", write(ctx, stdout)
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		output = filepath.Join(output, defaultName)
	}

	file, err := os.Create(output)
	if err != nil {
		return "", apperr.Wrap(apperr.ErrCodeIO, err, "create %s", output)
	}
	if err := write(ctx, file); err != nil {
		file.Close()
		os.Remove(output)
		return "", err
	}
	if err := file.Close(); err != nil {
		os.Remove(output)
		return "", apperr.Wrap(apperr.ErrCodeIO, err, "close %s", output)
	}
	return output, nil
}

// parseProps parses key=value pairs. Later keys win.
func parseProps(pairs []string) (export.Properties, error) {
	props := export.Properties{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, apperr.New(apperr.ErrCodeInvalidInput, "invalid --prop %q (want key=value)", pair)
		}
		props[key] = value
	}
	return props, nil
}
