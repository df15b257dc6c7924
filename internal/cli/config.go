package cli

import (
	"errors"
	"io/fs"
	"maps"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/apidoc/pkg/distribution"
	apperr "github.com/matzehuels/apidoc/pkg/errors"
	"github.com/matzehuels/apidoc/pkg/export"
	"github.com/matzehuels/apidoc/pkg/stats"
)

// Config is the apidoc.toml file:
//
//	[exporters.jsonGraph]
//	title = "Platform graph"
//	[exporters.jsonGraph.properties]
//	pretty = "true"
//
//	[stats]
//	java = ["org.nuxeo.ecm.core.event.EventServiceComponent--listener"]
//
//	[filter]
//	bundles = ["org.nuxeo.ecm.platform"]
//	mode = "prefix"
type Config struct {
	Exporters map[string]ExporterConfig `toml:"exporters"`
	Stats     StatsConfig               `toml:"stats"`
	Filter    FilterConfig              `toml:"filter"`

	// path is the file the config was read from, empty for defaults.
	path string
}

// ExporterConfig overrides a built-in exporter descriptor.
type ExporterConfig struct {
	Title       string            `toml:"title"`
	Description string            `toml:"description"`
	Filename    string            `toml:"filename"`
	Mimetype    string            `toml:"mimetype"`
	Properties  map[string]string `toml:"properties"`
}

// StatsConfig lists the extension points classified as Java, Java-like and
// scripting by the contribution stats exporters.
type StatsConfig struct {
	Java      []string `toml:"java"`
	JavaLike  []string `toml:"javalike"`
	Scripting []string `toml:"scripting"`
}

// FilterConfig is the default selection of the export and stats commands.
type FilterConfig struct {
	Bundles      []string `toml:"bundles"`
	Packages     []string `toml:"packages"`
	JavaPackages []string `toml:"java_packages"`
	Mode         string   `toml:"mode"`
}

// loadConfig reads the config file at path, or the first default location
// that exists. A missing default file yields an empty config; a missing
// explicit file is an error.
func loadConfig(path string, logger *log.Logger) (*Config, error) {
	candidates := configCandidates()
	if path != "" {
		candidates = []string{path}
	}

	for _, p := range candidates {
		cfg := &Config{path: p}
		md, err := toml.DecodeFile(p, cfg)
		if errors.Is(err, fs.ErrNotExist) {
			if path != "" {
				return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "config %s", path)
			}
			continue
		}
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "parse config %s", p)
		}
		for _, key := range md.Undecoded() {
			logger.Warn("Unknown config key", "key", key.String(), "file", p)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		logger.Debug("Loaded config", "file", p)
		return cfg, nil
	}
	return &Config{}, nil
}

// validate checks exporter names, filenames and the filter mode.
func (cfg *Config) validate() error {
	for _, name := range slices.Sorted(maps.Keys(cfg.Exporters)) {
		if err := apperr.ValidateExporterName(name); err != nil {
			return err
		}
		if fn := cfg.Exporters[name].Filename; fn != "" {
			if err := apperr.ValidateFilename(fn); err != nil {
				return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "exporter %s", name)
			}
		}
	}
	if _, err := distribution.ParseMatchMode(cfg.Filter.Mode); err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "[filter] mode")
	}
	return nil
}

// overrides turns the config into registry descriptor overrides. The [stats]
// lists are added to the properties of both stats exporters, on top of the
// exporter's configured or default properties.
func (cfg *Config) overrides() map[string]export.Descriptor {
	out := make(map[string]export.Descriptor, len(cfg.Exporters))
	for name, ec := range cfg.Exporters {
		d := export.Descriptor{
			Title:       ec.Title,
			Description: ec.Description,
			Filename:    ec.Filename,
			Mimetype:    ec.Mimetype,
		}
		if ec.Properties != nil {
			d.Properties = export.Properties(maps.Clone(ec.Properties))
		}
		out[name] = d
	}

	statsProps := cfg.Stats.properties()
	if len(statsProps) == 0 {
		return out
	}
	defaults := make(map[string]export.Properties)
	for _, d := range export.DefaultDescriptors() {
		defaults[d.Name] = d.Properties
	}
	for _, name := range []string{export.JSONContributionStats, export.CSVContributionStats} {
		d := out[name]
		props := d.Properties
		if props == nil {
			props = defaults[name].Clone()
		}
		if props == nil {
			props = export.Properties{}
		}
		maps.Copy(props, statsProps)
		d.Properties = props
		out[name] = d
	}
	return out
}

func (sc StatsConfig) properties() export.Properties {
	props := export.Properties{}
	set := func(key string, ids []string) {
		if len(ids) > 0 {
			props[key] = strings.Join(ids, ",")
		}
	}
	set(stats.PropJavaTypes, sc.Java)
	set(stats.PropJavaLikeTypes, sc.JavaLike)
	set(stats.PropScriptingTypes, sc.Scripting)
	return props
}

// selection returns the configured default selection.
func (fc FilterConfig) selection() distribution.Selection {
	mode, _ := distribution.ParseMatchMode(fc.Mode)
	return distribution.Selection{
		Bundles:      slices.Clone(fc.Bundles),
		Packages:     slices.Clone(fc.Packages),
		JavaPackages: slices.Clone(fc.JavaPackages),
		Mode:         mode,
	}
}

// Path returns the file the config was read from, or "" for defaults.
func (cfg *Config) Path() string { return cfg.path }

