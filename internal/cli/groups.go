package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/apidoc/pkg/distribution"
	"github.com/matzehuels/apidoc/pkg/group"
)

// groupsCommand creates the groups command. Given several snapshots it
// prints the forest of the latest version only, unless --all is set.
func (c *CLI) groupsCommand() *cobra.Command {
	var all, bundles bool

	cmd := &cobra.Command{
		Use:   "groups [snapshot.json]...",
		Short: "Print the bundle group forest of a distribution",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := startStep(logger)

			snaps := make([]distribution.Distribution, 0, len(args))
			for _, path := range args {
				snap, err := distribution.LoadFile(path)
				if err != nil {
					return err
				}
				logger.Debug("Loaded snapshot", "file", path, "version", snap.Version())
				snaps = append(snaps, snap)
			}
			if !all {
				snaps = []distribution.Distribution{distribution.Latest(snaps)}
			}

			w := cmd.OutOrStdout()
			for i, d := range snaps {
				if i > 0 {
					printNewline(w)
				}
				res := group.Extract(group.FromBundles(d.Bundles()), d.Version())
				printInfo(w, "%s %s", StyleTitle.Render(d.Name()), StyleDim.Render(d.Version()))
				printGroupTree(w, res, bundles)
				printCounts(w, []string{"root groups", "groups", "bundles"},
					[]int{len(res.Roots()), len(res.Groups()), len(d.Bundles())})
			}
			prog.done("Extracted groups", "snapshots", len(snaps))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "print every snapshot instead of the latest version")
	cmd.Flags().BoolVar(&bundles, "bundles", false, "list bundles under their group")

	return cmd
}
