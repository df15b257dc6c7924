// Package export turns a distribution into downloadable documents.
//
// # Exporters
//
// An [Exporter] writes one document for a distribution, optionally
// restricted by a [distribution.Filter]. The built-in exporters are:
//
//   - jsonGraph: the default graph as JSON ([graph.Document])
//   - dotGraph: the default graph in Graphviz DOT format
//   - svgGraph: the DOT graph laid out by Graphviz, as SVG
//   - jsonContributionStats: per-contribution statistics as JSON
//   - csvContributionStats: the same statistics as CSV
//
// Each exporter is described by a [Descriptor] (title, filename, mimetype and
// default properties). A [Registry] is built once from the built-in
// descriptors merged with user overrides, and is read-only afterwards.
//
// # Default graph
//
// [BuildGraph] creates one node per accepted bundle, component, service,
// extension point, contribution and package, linked by CONTAINS, REQUIRES,
// SOFT_REQUIRES and REFERENCES edges. Endpoints that are not part of the
// selection are added as reference nodes, and bundles with no requirement
// are attached to the org.nuxeo.runtime.root pseudo bundle. Node weights
// grow with the number of relations that hit them.
//
// # Properties
//
// Exporters read [Properties] from two places: the per-call properties and
// the exporter's own defaults. The graph and stats JSON exporters pretty-print
// when either has pretty=true.
package export
