package cli

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/apidoc/pkg/distribution"
	apperr "github.com/matzehuels/apidoc/pkg/errors"
	"github.com/matzehuels/apidoc/pkg/export"
	"github.com/matzehuels/apidoc/pkg/stats"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

// statsExporters maps a --format value to its exporter.
var statsExporters = map[string]string{
	formatJSON: export.JSONContributionStats,
	formatCSV:  export.CSVContributionStats,
}

// statsOpts holds the command-line flags for the stats command.
type statsOpts struct {
	selectionOpts
	format string
	output string
	pretty bool
}

// statsCommand creates the stats command, a shortcut for the contribution
// stats exporters that also prints a per code type summary.
func (c *CLI) statsCommand() *cobra.Command {
	opts := statsOpts{format: formatJSON}

	cmd := &cobra.Command{
		Use:   "stats [snapshot.json]",
		Short: "Export contribution statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStats(cmd, args[0], &opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: json (default), csv")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "output file or directory (default stdout)")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent JSON output")

	return cmd
}

func (c *CLI) runStats(cmd *cobra.Command, path string, opts *statsOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	name, ok := statsExporters[strings.ToLower(opts.format)]
	if !ok {
		return apperr.New(apperr.ErrCodeExporterNotFound, "unknown stats format %q (want json or csv)", opts.format)
	}

	reg, cfg, err := c.newRegistry(true)
	if err != nil {
		return err
	}
	exp, err := reg.Resolve(name)
	if err != nil {
		return err
	}

	prog := startStep(logger)
	snap, err := distribution.LoadFile(path)
	if err != nil {
		return err
	}
	f, err := opts.filter(snap, cfg.Filter)
	if err != nil {
		return err
	}

	props := export.Properties{}
	if opts.pretty {
		props[export.PropPretty] = "true"
	}
	desc := exp.Descriptor()
	out, err := writeOutput(ctx, cmd.OutOrStdout(), opts.output, desc.Filename, func(ctx context.Context, w io.Writer) error {
		return export.Run(ctx, exp, w, snap, f, props)
	})
	if err != nil {
		return err
	}
	prog.done("Computed contribution stats", "format", opts.format)

	status := cmd.ErrOrStderr()
	if out != "" {
		status = cmd.OutOrStdout()
		printSuccess(status, "Exported %s", StyleHighlight.Render(desc.Title))
		printFile(status, out)
	}

	counts := stats.CountByCodeType(stats.Compute(snap, f, stats.ClassifierFrom(props, desc.Properties)))
	labels := make([]string, 0, len(counts))
	values := make([]int, 0, len(counts))
	for _, ct := range stats.CodeTypes() {
		labels = append(labels, strings.ToLower(string(ct)))
		values = append(values, counts[ct])
	}
	printCounts(status, labels, values)
	return nil
}
