package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/apidoc/pkg/cache"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the SVG render cache",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				dir, err := cacheDir()
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), dir)
				return nil
			},
		},
		&cobra.Command{
			Use:   "info",
			Short: "Show the cache directory, entry count and size",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, _ []string) error { return runCacheInfo(cmd) },
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove all cached SVG renders",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, _ []string) error { return runCacheClear(cmd) },
		},
	)
	return cmd
}

// openExistingCache opens the cache directory without creating it. A nil
// cache with a nil error means nothing has been cached yet.
func openExistingCache() (*cache.FileCache, string, error) {
	dir, err := cacheDir()
	if err != nil {
		return nil, "", fmt.Errorf("get cache dir: %w", err)
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, dir, nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, dir, err
	}
	return fc, dir, nil
}

func runCacheInfo(cmd *cobra.Command) error {
	fc, dir, err := openExistingCache()
	if err != nil {
		return err
	}
	var (
		count int
		size  int64
	)
	if fc != nil {
		if count, size, err = fc.Usage(); err != nil {
			return err
		}
	}

	w := cmd.OutOrStdout()
	printKeyValue(w, "Directory", dir)
	printKeyValue(w, "Entries", strconv.Itoa(count))
	printKeyValue(w, "Size", formatBytes(size))
	return nil
}

func runCacheClear(cmd *cobra.Command) error {
	w := cmd.OutOrStdout()
	fc, dir, err := openExistingCache()
	if err != nil {
		return err
	}
	if fc == nil {
		printInfo(w, "Cache is empty")
		return nil
	}

	n, err := fc.Clear()
	if err != nil {
		return err
	}
	printSuccess(w, "Cleared %d cached entries", n)
	printDetail(w, "Directory: %s", dir)
	return nil
}

// formatBytes renders a byte count with a binary unit, e.g. "1.5 KiB".
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
