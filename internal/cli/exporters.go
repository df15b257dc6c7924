package cli

import (
	"github.com/spf13/cobra"
)

// exportersCommand creates the exporters command, listing the effective
// registry after config overrides.
func (c *CLI) exportersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exporters",
		Short: "List the available exporters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, cfg, err := c.newRegistry(true)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if path := cfg.Path(); path != "" {
				printKeyValue(w, "config", path)
				printNewline(w)
			}
			printExporters(w, reg.Descriptors())
			return nil
		},
	}
}
