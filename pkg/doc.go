// Package pkg provides the core libraries of apidoc, which documents the
// content of a platform distribution.
//
// # Overview
//
// apidoc reads an introspected distribution (bundles, components, services,
// extension points, contributions, operations and packages) and derives
// documents from it: dependency graphs, contribution statistics and a
// namespace forest grouping bundles by Maven coordinates. The pkg directory
// is organized into three main areas:
//
//  1. Model - the distribution and its version strings
//  2. Engines - graph building, grouping and statistics
//  3. Infrastructure - export registry, caching, errors and hooks
//
// # Architecture
//
// The typical data flow through apidoc:
//
//	snapshot.json
//	     ↓
//	[distribution] package (load, index, select with filters)
//	     ↓
//	[export] package (registry of exporters)
//	     ↓          ↓           ↓
//	[graph]      [stats]     [group]
//	     ↓          ↓           ↓
//	JSON/DOT/SVG  JSON/CSV   group forest
//
// # Quick Start
//
// Export the default graph of a distribution as DOT:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/matzehuels/apidoc/pkg/distribution"
//	    "github.com/matzehuels/apidoc/pkg/export"
//	)
//
//	snap, _ := distribution.LoadFile("snapshot.json")
//	reg, _ := export.NewRegistry(nil)
//	e, _ := reg.Resolve(export.DOTGraph)
//	_ = export.Run(context.Background(), e, os.Stdout, snap, nil, nil)
//
// # Main Packages
//
// ## Model
//
// [distribution] - Bundles and what they declare, the [distribution.Distribution]
// read interface, the JSON snapshot loader, and the filters selecting the
// artifacts of an export pass.
//
// [version] - Comparison of distribution version strings such as
// "11.2-SNAPSHOT", "10.10-HF01" or "2021.1".
//
// ## Engines
//
// [graph] - Typed nodes and edges with weights and categories, and their JSON
// document format.
//
// [group] - Extraction of a bundle group forest from Maven coordinates.
//
// [stats] - Per-contribution statistics and their JSON and CSV writers.
//
// ## Infrastructure
//
// [export] - The exporter registry, the default graph builder and the
// JSON, DOT, SVG and statistics exporters.
//
// [cache] - File and null caches for SVG renders.
//
// [errors] - Coded errors and input validation.
//
// [observability] - Hooks reporting export runs and cache events.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/group/...    # Specific package
//	go test -run Example       # Examples only
//	go test -short ./pkg/...   # Skip Graphviz renders
//
// [distribution]: https://pkg.go.dev/github.com/matzehuels/apidoc/pkg/distribution
// [version]: https://pkg.go.dev/github.com/matzehuels/apidoc/pkg/version
// [graph]: https://pkg.go.dev/github.com/matzehuels/apidoc/pkg/graph
// [group]: https://pkg.go.dev/github.com/matzehuels/apidoc/pkg/group
// [stats]: https://pkg.go.dev/github.com/matzehuels/apidoc/pkg/stats
// [export]: https://pkg.go.dev/github.com/matzehuels/apidoc/pkg/export
// [cache]: https://pkg.go.dev/github.com/matzehuels/apidoc/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/apidoc/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/apidoc/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/apidoc/pkg/buildinfo
package pkg
