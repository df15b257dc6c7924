// Package graph provides the typed node/edge model of a distribution graph.
//
// Every introspected artifact becomes a [Node] whose ID is the artifact id
// namespaced by its [NodeType] tag, so that a component and a bundle sharing
// the same raw id never collide:
//
//	graph.NodeBundle.Prefix("org.nuxeo.runtime")    // "NXBundle-org.nuxeo.runtime"
//	graph.NodeComponent.Prefix("org.nuxeo.runtime") // "NXComponent-org.nuxeo.runtime"
//
// Relations are [Edge] values typed by [EdgeType]. CONTAINS and REQUIRES are
// directed; SOFT_REQUIRES and REFERENCES are not.
//
// # Categories
//
// [NodeCategory] places an artifact in a platform layer (RUNTIME, CORE,
// PLATFORM, STUDIO). It is guessed from naming conventions by
// [GuessCategory] and [GuessBundleCategory], an approximation rather than
// declared metadata.
//
// # Filtered Copies
//
// [Graph.Copy] produces an independent graph restricted to a [Predicate]:
//
//	bundles := g.Copy(graph.TypeFilter(graph.NodeBundle))
//
// # Serialization
//
// [Document] is the JSON wire format used by the graph exporters; see
// [WriteDocument] and [ReadDocument].
package graph
