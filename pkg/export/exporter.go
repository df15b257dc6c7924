package export

import (
	"context"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/apidoc/pkg/cache"
	"github.com/matzehuels/apidoc/pkg/distribution"
	apperr "github.com/matzehuels/apidoc/pkg/errors"
	"github.com/matzehuels/apidoc/pkg/stats"
)

// Exporter writes one document for a distribution.
type Exporter interface {
	Descriptor() Descriptor
	// Export writes the document to w. A nil filter selects everything.
	// props are per-call properties and take precedence over the
	// descriptor's own.
	Export(ctx context.Context, w io.Writer, d distribution.Distribution, f distribution.Filter, props Properties) error
}

// Exporter names.
const (
	JSONGraph             = "jsonGraph"
	DOTGraph              = "dotGraph"
	SVGGraph              = "svgGraph"
	JSONContributionStats = "jsonContributionStats"
	CSVContributionStats  = "csvContributionStats"
)

// codeTypeDefaults classify the contributions of well-known extension
// points for the stats exporters.
var codeTypeDefaults = Properties{
	stats.PropJavaTypes: strings.Join([]string{
		"org.nuxeo.ecm.core.event.EventServiceComponent--listener",
		"org.nuxeo.ecm.core.work.service--queues",
		"org.nuxeo.runtime.stream.service--logConfig",
	}, ","),
	stats.PropJavaLikeTypes: strings.Join([]string{
		"org.nuxeo.ecm.core.operation.OperationServiceComponent--chains",
		"org.nuxeo.ecm.platform.routing.service--routeModelImporter",
	}, ","),
	stats.PropScriptingTypes: strings.Join([]string{
		"org.nuxeo.automation.scripting.internals.AutomationScriptingComponent--operation",
	}, ","),
}

type builtin struct {
	desc  Descriptor
	build func(Descriptor, *options) Exporter
}

var builtins = []builtin{
	{
		desc: Descriptor{
			Name:        JSONGraph,
			Title:       "Basic Graph",
			Description: "Complete graph, with dependencies, without a layout",
			Filename:    "graph.json",
			Mimetype:    "application/json",
		},
		build: func(d Descriptor, _ *options) Exporter { return &jsonGraphExporter{desc: d} },
	},
	{
		desc: Descriptor{
			Name:        DOTGraph,
			Title:       "DOT Graph",
			Description: "Complete Graph exported in DOT format",
			Filename:    "graph.dot",
			Mimetype:    "text/vnd.graphviz",
		},
		build: func(d Descriptor, _ *options) Exporter { return &dotGraphExporter{desc: d} },
	},
	{
		desc: Descriptor{
			Name:        SVGGraph,
			Title:       "SVG Graph",
			Description: "Complete Graph laid out by Graphviz, as SVG",
			Filename:    "graph.svg",
			Mimetype:    "image/svg+xml",
		},
		build: func(d Descriptor, o *options) Exporter {
			return &svgGraphExporter{desc: d, cache: o.cache, ttl: o.ttl}
		},
	},
	{
		desc: Descriptor{
			Name:        JSONContributionStats,
			Title:       "Json Contribution Stats",
			Description: "Json statistics for contributions",
			Filename:    "contribution_stats.json",
			Mimetype:    "application/json",
			Properties:  codeTypeDefaults,
		},
		build: func(d Descriptor, _ *options) Exporter { return &jsonStatsExporter{desc: d} },
	},
	{
		desc: Descriptor{
			Name:        CSVContributionStats,
			Title:       "CSV Contribution Stats",
			Description: "CSV statistics for contributions",
			Filename:    "contribution_stats.csv",
			Mimetype:    "text/csv",
			Properties:  codeTypeDefaults,
		},
		build: func(d Descriptor, _ *options) Exporter { return &csvStatsExporter{desc: d} },
	},
}

// DefaultDescriptors returns the descriptors of the built-in exporters.
func DefaultDescriptors() []Descriptor {
	out := make([]Descriptor, len(builtins))
	for i, b := range builtins {
		out[i] = b.desc.Merge(Descriptor{})
	}
	return out
}

// Option configures a [Registry].
type Option func(*options)

type options struct {
	cache cache.Cache
	ttl   time.Duration
}

// WithCache stores rendered SVG output in c. Entries are keyed by the hash
// of the DOT source and expire after ttl; zero keeps them forever.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(o *options) {
		o.cache = c
		o.ttl = ttl
	}
}

// Registry is an immutable set of exporters, keyed by name.
type Registry struct {
	exporters map[string]Exporter
}

// NewRegistry builds the built-in exporters, applying overrides by name with
// [Descriptor.Merge]. An override for an unknown exporter is an
// EXPORTER_NOT_FOUND error.
func NewRegistry(overrides map[string]Descriptor, opts ...Option) (*Registry, error) {
	o := &options{cache: cache.NewNullCache()}
	for _, opt := range opts {
		opt(o)
	}

	known := make(map[string]bool, len(builtins))
	r := &Registry{exporters: make(map[string]Exporter, len(builtins))}
	for _, b := range builtins {
		known[b.desc.Name] = true
		desc := b.desc.Merge(Descriptor{})
		if override, ok := overrides[b.desc.Name]; ok {
			desc = desc.Merge(override)
		}
		r.exporters[desc.Name] = b.build(desc, o)
	}

	for _, name := range slices.Sorted(maps.Keys(overrides)) {
		if !known[name] {
			return nil, apperr.New(apperr.ErrCodeExporterNotFound,
				"cannot configure unknown exporter %q (available: %s)", name, strings.Join(r.Names(), ", "))
		}
	}
	return r, nil
}

// Get returns the named exporter.
func (r *Registry) Get(name string) (Exporter, bool) {
	e, ok := r.exporters[name]
	return e, ok
}

// Resolve returns the named exporter, or an EXPORTER_NOT_FOUND error
// listing the available names.
func (r *Registry) Resolve(name string) (Exporter, error) {
	if e, ok := r.exporters[name]; ok {
		return e, nil
	}
	return nil, apperr.New(apperr.ErrCodeExporterNotFound,
		"unknown exporter %q (available: %s)", name, strings.Join(r.Names(), ", "))
}

// Names returns the exporter names, sorted.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.exporters))
}

// Descriptors returns the effective descriptors, sorted by name.
func (r *Registry) Descriptors() []Descriptor {
	names := r.Names()
	out := make([]Descriptor, len(names))
	for i, name := range names {
		out[i] = r.exporters[name].Descriptor()
	}
	return out
}
