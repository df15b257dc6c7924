// Package group arranges bundles into a forest of namespace groups.
//
// Every bundle starts in the group named after its Maven group id. Groups
// are then refined using the dotted bundle ids:
//
//  1. Relocation. When at least two bundles of a group share a namespace
//     that is itself another group's Maven group id, they move to that group.
//     This fixes artifacts published under a neighbouring group id, such as
//     "org.nuxeo.connect.update" released under "org.nuxeo.ecm.platform".
//  2. Split. Within each group, bundles sharing a namespace one segment
//     deeper than their common prefix with the group form a sub-group,
//     provided there are at least two of them and the namespace is not
//     already a group. Sub-groups are split the same way, recursively.
//
// A namespace with a single bundle never becomes a group, so the forest only
// materializes real branching points. Each group has at most one parent and
// a group is never its own ancestor.
//
// The result depends only on the content of the input: roots, sub-groups and
// member lists are all sorted by id.
package group

import (
	"maps"
	"slices"
	"strings"

	"github.com/gammazero/deque"

	"github.com/matzehuels/apidoc/pkg/distribution"
)

// Prefix is prepended to a namespace to form a group id.
const Prefix = "grp:"

// Coordinates are the Maven coordinates of a bundle.
type Coordinates struct {
	GroupID    string
	ArtifactID string
}

// Group is a namespace node of the forest.
type Group struct {
	ID        string   // "grp:" + Name
	Name      string   // dotted namespace, e.g. "org.nuxeo.ecm.platform"
	Version   string   // distribution version the group was extracted for
	BundleIDs []string // bundles directly in this namespace, sorted
	SubGroups []*Group // child groups, sorted by ID
	ParentIDs []string // the parent group ID, empty for roots

	parent *Group
}

// Parent returns the parent group, or nil for a root.
func (g *Group) Parent() *Group { return g.parent }

// Path returns the slash-separated ids from the root down to g, e.g.
// "/grp:org.nuxeo.ecm.platform/grp:org.nuxeo.apidoc".
func (g *Group) Path() string {
	var ids []string
	for cur := g; cur != nil; cur = cur.parent {
		ids = append(ids, cur.ID)
	}
	slices.Reverse(ids)
	return "/" + strings.Join(ids, "/")
}

// Result is an extracted group forest.
type Result struct {
	roots    []*Group
	groups   map[string]*Group
	byBundle map[string]*Group
}

// Roots returns the parentless groups, sorted by ID.
func (r *Result) Roots() []*Group { return slices.Clone(r.roots) }

// Groups returns every group keyed by ID.
func (r *Result) Groups() map[string]*Group { return maps.Clone(r.groups) }

// Group returns the group with the given ID.
func (r *Result) Group(id string) (*Group, bool) {
	g, ok := r.groups[id]
	return g, ok
}

// IDs returns all group IDs, sorted.
func (r *Result) IDs() []string { return slices.Sorted(maps.Keys(r.groups)) }

// GroupOf returns the group a bundle is a member of.
func (r *Result) GroupOf(bundleID string) (*Group, bool) {
	g, ok := r.byBundle[bundleID]
	return g, ok
}

// Walk visits the forest breadth-first, roots first. Returning false from
// fn stops the walk.
func (r *Result) Walk(fn func(g *Group, depth int) bool) {
	walk(r.roots, fn)
}

// TotalBundles counts the bundles of g and of all its descendants.
func TotalBundles(g *Group) int {
	total := 0
	walk([]*Group{g}, func(cur *Group, _ int) bool {
		total += len(cur.BundleIDs)
		return true
	})
	return total
}

type walkItem struct {
	group *Group
	depth int
}

func walk(start []*Group, fn func(*Group, int) bool) {
	var queue deque.Deque[walkItem]
	for _, g := range start {
		queue.PushBack(walkItem{g, 0})
	}
	for queue.Len() > 0 {
		it := queue.PopFront()
		if !fn(it.group, it.depth) {
			return
		}
		for _, sub := range it.group.SubGroups {
			queue.PushBack(walkItem{sub, it.depth + 1})
		}
	}
}

// FromBundles collects the coordinates of the given bundles, keyed by id.
func FromBundles(bundles []*distribution.Bundle) map[string]Coordinates {
	out := make(map[string]Coordinates, len(bundles))
	for _, b := range bundles {
		out[b.ID] = Coordinates{GroupID: b.GroupID, ArtifactID: b.ArtifactID}
	}
	return out
}
