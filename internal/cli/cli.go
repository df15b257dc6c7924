// Package cli implements the apidoc command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/apidoc/pkg/buildinfo"
	"github.com/matzehuels/apidoc/pkg/cache"
	"github.com/matzehuels/apidoc/pkg/export"
	"github.com/matzehuels/apidoc/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "apidoc"

	// configFile is the configuration file name looked up in the config dirs.
	configFile = "apidoc.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "apidoc exports dependency graphs and statistics of a platform distribution",
		Long:         `apidoc reads an introspected distribution snapshot (bundles, components, services, extension points, contributions, operations and packages) and exports it as graphs, contribution statistics or a namespace group forest.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			hooks := logHooks{logger: c.Logger}
			observability.SetExportHooks(hooks)
			observability.SetCacheHooks(hooks)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/apidoc/apidoc.toml)")

	root.AddCommand(c.exportCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.groupsCommand())
	root.AddCommand(c.versionsCommand())
	root.AddCommand(c.exportersCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// =============================================================================
// Registry Factory
// =============================================================================

// newRegistry loads the configuration and builds the exporter registry.
// SVG renders are cached on disk unless noCache is set.
func (c *CLI) newRegistry(noCache bool) (*export.Registry, *Config, error) {
	cfg, err := loadConfig(c.configPath, c.Logger)
	if err != nil {
		return nil, nil, err
	}
	store, err := newCache(noCache)
	if err != nil {
		return nil, nil, err
	}
	reg, err := export.NewRegistry(cfg.overrides(), export.WithCache(store, 0))
	if err != nil {
		return nil, nil, err
	}
	return reg, cfg, nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/apidoc/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configCandidates returns the default config file locations, most specific
// first.
func configCandidates() []string {
	var out []string
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		out = append(out, filepath.Join(configHome, appName, configFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		out = append(out, filepath.Join(home, ".config", appName, configFile))
	}
	return out
}
