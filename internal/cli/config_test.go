package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/apidoc/pkg/distribution"
	apperr "github.com/matzehuels/apidoc/pkg/errors"
	"github.com/matzehuels/apidoc/pkg/export"
	"github.com/matzehuels/apidoc/pkg/stats"
)

func quietLogger() *log.Logger {
	return newLogger(io.Discard, log.InfoLevel)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// isolateConfig points the default config locations at empty directories.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[exporters.jsonGraph]
title = "Platform graph"
filename = "platform.json"

[exporters.jsonGraph.properties]
pretty = "true"

[stats]
java = ["a--b", "c--d"]
scripting = ["e--f"]

[filter]
bundles = ["org.nuxeo.ecm.platform"]
mode = "exact"
`)

	cfg, err := loadConfig(path, quietLogger())
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
	if got := cfg.Exporters[export.JSONGraph].Title; got != "Platform graph" {
		t.Errorf("title = %q, want %q", got, "Platform graph")
	}
	if len(cfg.Stats.Java) != 2 || len(cfg.Stats.Scripting) != 1 || len(cfg.Stats.JavaLike) != 0 {
		t.Errorf("stats = %+v", cfg.Stats)
	}

	sel := cfg.Filter.selection()
	if sel.Mode != distribution.MatchExact || len(sel.Bundles) != 1 {
		t.Errorf("selection() = %+v", sel)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	isolateConfig(t)

	cfg, err := loadConfig("", quietLogger())
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Path() != "" || len(cfg.Exporters) != 0 {
		t.Errorf("loadConfig() = %+v, want defaults", cfg)
	}
	if got := cfg.overrides(); len(got) != 0 {
		t.Errorf("overrides() = %v, want none", got)
	}
}

func TestLoadConfigDefaultLocation(t *testing.T) {
	isolateConfig(t)
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, []byte("[filter]\nmode = \"glob\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig("", quietLogger())
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    apperr.Code
	}{
		{"syntax", "[exporters\n", apperr.ErrCodeInvalidConfig},
		{"exporter name", "[exporters.\"json graph\"]\ntitle = \"x\"\n", apperr.ErrCodeInvalidConfig},
		{"filename", "[exporters.jsonGraph]\nfilename = \"../graph.json\"\n", apperr.ErrCodeInvalidConfig},
		{"mode", "[filter]\nmode = \"regex\"\n", apperr.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.content), quietLogger())
			if !apperr.Is(err, tt.want) {
				t.Errorf("loadConfig() error = %v, want code %s", err, tt.want)
			}
		})
	}

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"), quietLogger())
		if !apperr.Is(err, apperr.ErrCodeFileNotFound) {
			t.Errorf("loadConfig() error = %v, want FILE_NOT_FOUND", err)
		}
	})
}

func TestConfigOverrides(t *testing.T) {
	cfg := &Config{
		Exporters: map[string]ExporterConfig{
			export.JSONGraph:            {Title: "Graph"},
			export.CSVContributionStats: {Properties: map[string]string{stats.PropJavaLikeTypes: "x--y"}},
		},
		Stats: StatsConfig{Java: []string{"a--b", "c--d"}},
	}

	got := cfg.overrides()

	if got[export.JSONGraph].Title != "Graph" || got[export.JSONGraph].Properties != nil {
		t.Errorf("jsonGraph override = %+v", got[export.JSONGraph])
	}

	// Configured properties are kept and extended.
	csv := got[export.CSVContributionStats].Properties
	if csv[stats.PropJavaTypes] != "a--b,c--d" || csv[stats.PropJavaLikeTypes] != "x--y" {
		t.Errorf("csv properties = %v", csv)
	}
	if _, ok := csv[stats.PropScriptingTypes]; ok {
		t.Errorf("csv properties = %v, scripting should stay unset", csv)
	}

	// Unconfigured stats exporters start from their defaults.
	js := got[export.JSONContributionStats].Properties
	if js[stats.PropJavaTypes] != "a--b,c--d" {
		t.Errorf("json properties = %v", js)
	}
	if js[stats.PropScriptingTypes] == "" {
		t.Errorf("json properties = %v, want default scripting types", js)
	}

	// The registry accepts the merged overrides.
	reg, err := export.NewRegistry(got)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	e, _ := reg.Get(export.JSONContributionStats)
	if e.Descriptor().Properties[stats.PropJavaTypes] != "a--b,c--d" {
		t.Errorf("registry descriptor = %+v", e.Descriptor())
	}
}

func TestConfigUnknownExporter(t *testing.T) {
	isolateConfig(t)
	path := writeConfig(t, "[exporters.pdfGraph]\ntitle = \"PDF\"\n")

	c := New(io.Discard, LogInfo)
	c.configPath = path
	if _, _, err := c.newRegistry(true); !apperr.Is(err, apperr.ErrCodeExporterNotFound) {
		t.Errorf("newRegistry() error = %v, want EXPORTER_NOT_FOUND", err)
	}
}
