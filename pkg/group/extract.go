package group

import (
	"maps"
	"slices"
	"strings"
)

// node is the mutable working form of a group.
type node struct {
	ns      string
	members []string
	subs    []*node
	parent  *node
}

type cluster struct {
	key     string
	members []string
}

type extractor struct {
	nodes map[string]*node
	roots []*node
}

// Extract builds the group forest of the given bundles, keyed by bundle id.
// A bundle with a blank group id is seeded into its own parent namespace:
// "org.nuxeo.foo.bar" goes to "org.nuxeo.foo", and a single-segment id to a
// namespace of its own.
func Extract(bundles map[string]Coordinates, version string) *Result {
	x := &extractor{nodes: make(map[string]*node)}
	for _, id := range slices.Sorted(maps.Keys(bundles)) {
		ns := seedNamespace(id, bundles[id].GroupID)
		n, ok := x.nodes[ns]
		if !ok {
			n = &node{ns: ns}
			x.nodes[ns] = n
			x.roots = append(x.roots, n)
		}
		n.members = append(n.members, id)
	}
	sortNodes(x.roots)

	x.relocate()
	x.dropEmptyRoots()
	for _, root := range x.roots {
		x.split(root)
	}
	return x.result(version)
}

func seedNamespace(bundleID, groupID string) string {
	if g := strings.TrimSpace(groupID); g != "" {
		return g
	}
	if i := strings.LastIndexByte(bundleID, '.'); i > 0 {
		return bundleID[:i]
	}
	return bundleID
}

// relocate moves clusters whose namespace is another root's group id into
// that root, until nothing moves. A cluster only moves to a strictly more
// specific namespace, so the loop terminates.
func (x *extractor) relocate() {
	for changed := true; changed; {
		changed = false
		for _, root := range x.roots {
			for _, c := range clusters(root.ns, root.members) {
				target, ok := x.nodes[c.key]
				if !ok || target == root {
					continue
				}
				move(root, target, c.members)
				changed = true
			}
		}
	}
}

// dropEmptyRoots forgets roots whose bundles all moved away.
func (x *extractor) dropEmptyRoots() {
	x.roots = slices.DeleteFunc(x.roots, func(n *node) bool {
		if len(n.members) > 0 {
			return false
		}
		delete(x.nodes, n.ns)
		return true
	})
}

// split creates sub-groups for the clusters of n that do not collide with
// an existing group, then recurses into them.
func (x *extractor) split(n *node) {
	for _, c := range clusters(n.ns, n.members) {
		if _, exists := x.nodes[c.key]; exists {
			continue
		}
		sub := &node{ns: c.key, parent: n}
		x.nodes[c.key] = sub
		n.subs = append(n.subs, sub)
		move(n, sub, c.members)
	}
	sortNodes(n.subs)
	for _, sub := range n.subs {
		x.split(sub)
	}
}

func move(from, to *node, members []string) {
	from.members = slices.DeleteFunc(from.members, func(m string) bool {
		return slices.Contains(members, m)
	})
	to.members = append(to.members, members...)
}

// clusters groups the members of namespace ns by cluster key, keeping the
// keys shared by at least two members and different from ns. Clusters are
// sorted by key.
func clusters(ns string, members []string) []cluster {
	byKey := make(map[string][]string)
	for _, m := range members {
		if key := clusterKey(m, ns); key != ns {
			byKey[key] = append(byKey[key], m)
		}
	}
	var out []cluster
	for _, key := range slices.Sorted(maps.Keys(byKey)) {
		if ms := byKey[key]; len(ms) >= 2 {
			out = append(out, cluster{key: key, members: ms})
		}
	}
	return out
}

// clusterKey is the namespace formed by the segments id shares with ns plus
// the next segment of id. Ids equal to ns, or prefixing it, map to ns.
//
//	clusterKey("org.nuxeo.ecm.directory.api", "org.nuxeo.ecm.platform") = "org.nuxeo.ecm.directory"
//	clusterKey("org.nuxeo.ecm.platform.api", "org.nuxeo.ecm.platform")  = "org.nuxeo.ecm.platform.api"
func clusterKey(id, ns string) string {
	idSegs := strings.Split(id, ".")
	nsSegs := strings.Split(ns, ".")
	common := 0
	for common < len(idSegs) && common < len(nsSegs) && idSegs[common] == nsSegs[common] {
		common++
	}
	if common == len(idSegs) {
		return ns
	}
	return strings.Join(idSegs[:common+1], ".")
}

func sortNodes(nodes []*node) {
	slices.SortFunc(nodes, func(a, b *node) int { return strings.Compare(a.ns, b.ns) })
}

func (x *extractor) result(version string) *Result {
	r := &Result{
		groups:   make(map[string]*Group, len(x.nodes)),
		byBundle: make(map[string]*Group),
	}
	var convert func(n *node, parent *Group) *Group
	convert = func(n *node, parent *Group) *Group {
		g := &Group{
			ID:        Prefix + n.ns,
			Name:      n.ns,
			Version:   version,
			BundleIDs: slices.Sorted(slices.Values(n.members)),
			SubGroups: []*Group{},
			ParentIDs: []string{},
			parent:    parent,
		}
		if g.BundleIDs == nil {
			g.BundleIDs = []string{}
		}
		if parent != nil {
			g.ParentIDs = append(g.ParentIDs, parent.ID)
		}
		r.groups[g.ID] = g
		for _, id := range g.BundleIDs {
			r.byBundle[id] = g
		}
		for _, sub := range n.subs {
			g.SubGroups = append(g.SubGroups, convert(sub, g))
		}
		return g
	}
	for _, root := range x.roots {
		r.roots = append(r.roots, convert(root, nil))
	}
	return r
}
