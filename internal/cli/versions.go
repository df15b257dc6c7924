package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/apidoc/pkg/errors"
	"github.com/matzehuels/apidoc/pkg/version"
)

// versionsCommand creates the versions command, which sorts distribution
// versions from oldest to latest.
func (c *CLI) versionsCommand() *cobra.Command {
	var check, latest bool

	cmd := &cobra.Command{
		Use:   "versions [version]...",
		Short: "Sort distribution versions (reads stdin without arguments)",
		Example: `  apidoc versions 10.10 9.10-HF01 2021.1 11.1-SNAPSHOT
  printf '1.0\n1.0-SNAPSHOT\n' | apidoc versions --latest`,
		RunE: func(cmd *cobra.Command, args []string) error {
			versions := args
			if len(versions) == 0 {
				var err error
				if versions, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			if check {
				var invalid int
				for _, v := range versions {
					if !version.IsVersion(v) {
						printWarning(cmd.ErrOrStderr(), "not a version: %q", v)
						invalid++
					}
				}
				if invalid > 0 {
					return apperr.New(apperr.ErrCodeInvalidInput, "%d of %d entries are not versions", invalid, len(versions))
				}
			}

			w := cmd.OutOrStdout()
			if latest {
				if len(versions) > 0 {
					fmt.Fprintln(w, version.Latest(versions))
				}
				return nil
			}
			version.Sort(versions)
			for _, v := range versions {
				fmt.Fprintln(w, v)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "fail on entries that are not versions")
	cmd.Flags().BoolVar(&latest, "latest", false, "print only the latest version")

	return cmd
}

// readLines returns the non-blank trimmed lines of r.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeIO, err, "read versions")
	}
	return out, nil
}
