package export

import (
	"strconv"

	"github.com/matzehuels/apidoc/pkg/distribution"
	"github.com/matzehuels/apidoc/pkg/graph"
)

const (
	defaultNodeWeight = 1
	defaultEdgeWeight = 1
)

// rootBundleNodeID is the node of the pseudo bundle every isolated bundle
// requires.
var rootBundleNodeID = graph.NodeBundle.Prefix(distribution.RootBundleID)

// BuildGraph introspects d into the default graph. Only artifacts accepted
// by f become nodes; a nil filter accepts everything. Components of a
// rejected bundle are skipped with it.
//
// Every node's weight is one plus the number of times it is hit: a component
// is hit by each of its services, extension points and contributions, a
// contribution hits its target extension point and target component, and a
// package is hit by each of its bundles.
func BuildGraph(d distribution.Distribution, f distribution.Filter) *graph.Graph {
	b := &builder{g: graph.New(), hits: make(map[string]int)}

	var isolated []string
	for _, bundle := range d.Bundles() {
		if !distribution.Accepts(f, bundle) {
			continue
		}
		if len(bundle.Requirements) == 0 {
			isolated = append(isolated, graph.NodeBundle.Prefix(bundle.ID))
		}
		b.addBundle(bundle, f)
	}

	if !b.g.HasNode(rootBundleNodeID) {
		b.setNode(rootBundleNodeID, distribution.RootBundleID, graph.NodeBundle, graph.CategoryRuntime, nil)
	}

	// Edges may point outside the selection: add those endpoints as
	// reference nodes. Required bundles found this way are orphans.
	var orphans []string
	for _, e := range b.g.Edges() {
		if !b.g.HasNode(e.Source) {
			b.addMissing(e.Source)
		}
		if !b.g.HasNode(e.Target) {
			if b.addMissing(e.Target) == graph.NodeBundle && e.Type == graph.EdgeRequires {
				orphans = append(orphans, e.Target)
			}
		}
	}
	for _, id := range append(orphans, isolated...) {
		if id != rootBundleNodeID {
			b.edge(id, rootBundleNodeID, graph.EdgeRequires)
		}
	}

	for _, pkg := range d.Packages() {
		if !distribution.Accepts(f, pkg) {
			continue
		}
		b.addPackage(d, pkg)
	}

	for id, n := range b.hits {
		b.g.AddWeight(id, n)
	}
	return b.g
}

type builder struct {
	g    *graph.Graph
	hits map[string]int
}

func (b *builder) addBundle(bundle *distribution.Bundle, f distribution.Filter) {
	cat := graph.GuessBundleCategory(bundle.GroupID, bundle.ArtifactID, bundle.ID)
	bundleID := b.setNode(graph.NodeBundle.Prefix(bundle.ID), bundle.ID, graph.NodeBundle, cat, bundle.MinResolutionOrder)
	for _, req := range bundle.Requirements {
		b.edge(bundleID, graph.NodeBundle.Prefix(req), graph.EdgeRequires)
	}

	for _, comp := range bundle.Components {
		if !distribution.Accepts(f, comp) {
			continue
		}
		order := comp.ResolutionOrder
		compID := b.setNode(graph.NodeComponent.Prefix(comp.ID), comp.ID, graph.NodeComponent, cat, order)
		b.edge(bundleID, compID, graph.EdgeContains)

		for _, svc := range comp.Services {
			if !distribution.Accepts(f, svc) || svc.Overridden {
				continue
			}
			id := b.setNode(graph.NodeService.Prefix(svc.ID), svc.ID, graph.NodeService, cat, order)
			b.edge(compID, id, graph.EdgeContains)
			b.hit(compID)
		}
		for _, xp := range comp.ExtensionPoints {
			if !distribution.Accepts(f, xp) {
				continue
			}
			id := b.setNode(graph.NodeExtensionPoint.Prefix(xp.ID), xp.ID, graph.NodeExtensionPoint, cat, order)
			b.edge(compID, id, graph.EdgeContains)
			b.hit(compID)
		}
		for _, contrib := range comp.Extensions {
			if !distribution.Accepts(f, contrib) {
				continue
			}
			id := b.setNode(graph.NodeContribution.Prefix(contrib.ID), contrib.ID, graph.NodeContribution, cat, order)
			b.edge(compID, id, graph.EdgeContains)
			b.hit(compID)

			xpID := graph.NodeExtensionPoint.Prefix(contrib.ExtensionPoint)
			b.edge(id, xpID, graph.EdgeReferences)
			b.hit(xpID)
			b.hit(graph.NodeComponent.Prefix(contrib.TargetComponentName()))
		}
		for _, req := range comp.Requirements {
			b.edge(compID, graph.NodeComponent.Prefix(req), graph.EdgeSoftRequires)
		}
	}
}

// addPackage links a package to its bundles, adding reference nodes for
// bundles outside the graph. The package index is the smallest resolution
// order among its known bundles.
func (b *builder) addPackage(d distribution.Distribution, pkg *distribution.Package) {
	var index *int64
	for _, bid := range pkg.Bundles {
		bundle, ok := d.Bundle(bid)
		if !ok || bundle.MinResolutionOrder == nil {
			continue
		}
		if index == nil || *bundle.MinResolutionOrder < *index {
			index = bundle.MinResolutionOrder
		}
	}

	id := b.setNode(graph.NodePackage.Prefix(pkg.ID), pkg.ID, graph.NodePackage, graph.CategoryPlatform, index)
	for _, bid := range pkg.Bundles {
		target := graph.NodeBundle.Prefix(bid)
		if !b.g.HasNode(target) {
			b.addMissing(target)
		}
		b.edge(id, target, graph.EdgeContains)
		b.hit(id)
	}
}

// addMissing adds a reference node whose type and category are guessed
// from its id, and returns the type.
func (b *builder) addMissing(id string) graph.NodeType {
	t := graph.GuessNodeType(id)
	label := t.Unprefix(id)
	b.setNode(id, label, t, graph.GuessCategory(label), nil)
	return t
}

// setNode adds or replaces a node and returns its id. Replacing keeps the
// position of the first occurrence.
func (b *builder) setNode(id, label string, t graph.NodeType, cat graph.NodeCategory, index *int64) string {
	attrs := map[string]string{graph.AttrCategory: cat.String()}
	if index != nil {
		attrs[graph.AttrIndex] = strconv.FormatInt(*index, 10)
	}
	// Prefixed ids are never empty, so SetNode cannot fail.
	_ = b.g.SetNode(graph.Node{
		ID:         id,
		Label:      label,
		Type:       t,
		Weight:     defaultNodeWeight,
		Attributes: attrs,
	})
	return id
}

func (b *builder) edge(source, target string, t graph.EdgeType) {
	b.g.AddEdge(graph.Edge{Source: source, Target: target, Type: t, Weight: defaultEdgeWeight})
}

func (b *builder) hit(id string) {
	b.hits[id]++
}
