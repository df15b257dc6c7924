package group

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/apidoc/pkg/distribution"
)

// nuxeoBundles mirrors a slice of a real platform where some artifacts are
// published under a neighbouring Maven group id.
func nuxeoBundles() map[string]Coordinates {
	platform := "org.nuxeo.ecm.platform"
	runtime := "org.nuxeo.runtime"
	core := "org.nuxeo.ecm.core"
	list := []struct{ id, groupID string }{
		{"org.nuxeo.common", "org.nuxeo.common"},
		{"org.nuxeo.connect.client", "org.nuxeo.connect"},
		{"org.nuxeo.connect.client.wrapper", platform},
		{"org.nuxeo.connect.update", platform},
		{"org.nuxeo.connect.standalone", runtime},
		{"org.nuxeo.launcher.commons", runtime},
		{"org.nuxeo.osgi", runtime},
		{"org.nuxeo.runtime", runtime},
		{"org.nuxeo.runtime.cluster", runtime},
		{"org.nuxeo.ecm.core", core},
		{"org.nuxeo.ecm.core.api", core},
		{"org.nuxeo.ecm.core.bulk", core},
		{"org.nuxeo.ecm.core.io", core},
		{"org.nuxeo.ecm.platform.el", core},
		{"org.nuxeo.ecm.permissions", platform},
		{"org.nuxeo.ecm.platform", platform},
		{"org.nuxeo.ecm.platform.api", platform},
		{"org.nuxeo.ecm.platform.restapi.io", platform},
		{"org.nuxeo.ecm.platform.restapi.server", platform},
		{"org.nuxeo.mail", platform},
		{"org.nuxeo.ecm.directory", platform},
		{"org.nuxeo.ecm.directory.api", platform},
		{"org.nuxeo.ecm.directory.sql", platform},
		{"org.nuxeo.ecm.directory.types.contrib", platform},
		{"org.nuxeo.ecm.relations", platform},
		{"org.nuxeo.ecm.relations.api", platform},
		{"org.nuxeo.ecm.relations.core.listener", platform},
		{"org.nuxeo.ecm.relations.io", platform},
		{"org.nuxeo.apidoc.core", platform},
		{"org.nuxeo.apidoc.repo", platform},
		{"org.nuxeo.apidoc.webengine", platform},
	}
	out := make(map[string]Coordinates, len(list))
	for _, b := range list {
		artifact := "nuxeo-" + strings.ReplaceAll(strings.TrimPrefix(b.id, "org.nuxeo."), ".", "-")
		out[b.id] = Coordinates{GroupID: b.groupID, ArtifactID: artifact}
	}
	return out
}

func groupIDs(groups []*Group) []string {
	ids := make([]string, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}
	return ids
}

func TestExtract(t *testing.T) {
	r := Extract(nuxeoBundles(), "11.1")

	wantRoots := []string{
		"grp:org.nuxeo.common",
		"grp:org.nuxeo.connect",
		"grp:org.nuxeo.ecm.core",
		"grp:org.nuxeo.ecm.platform",
		"grp:org.nuxeo.runtime",
	}
	if got := groupIDs(r.Roots()); !slices.Equal(got, wantRoots) {
		t.Fatalf("Roots() = %v, want %v", got, wantRoots)
	}
	if got := len(r.Groups()); got != 10 {
		t.Errorf("len(Groups()) = %d, want 10: %v", got, r.IDs())
	}

	tests := []struct {
		id      string
		bundles []string
		subs    []string
		parent  string
	}{
		{
			id:      "grp:org.nuxeo.common",
			bundles: []string{"org.nuxeo.common"},
		},
		{
			id:      "grp:org.nuxeo.connect",
			bundles: []string{"org.nuxeo.connect.update"},
			subs:    []string{"grp:org.nuxeo.connect.client"},
		},
		{
			id:      "grp:org.nuxeo.connect.client",
			bundles: []string{"org.nuxeo.connect.client", "org.nuxeo.connect.client.wrapper"},
			parent:  "grp:org.nuxeo.connect",
		},
		{
			id:      "grp:org.nuxeo.ecm.core",
			bundles: []string{
				"org.nuxeo.ecm.core", "org.nuxeo.ecm.core.api", "org.nuxeo.ecm.core.bulk",
				"org.nuxeo.ecm.core.io", "org.nuxeo.ecm.platform.el",
			},
		},
		{
			id:      "grp:org.nuxeo.ecm.platform",
			bundles: []string{
				"org.nuxeo.ecm.permissions", "org.nuxeo.ecm.platform", "org.nuxeo.ecm.platform.api",
				"org.nuxeo.mail",
			},
			subs: []string{
				"grp:org.nuxeo.apidoc", "grp:org.nuxeo.ecm.directory",
				"grp:org.nuxeo.ecm.platform.restapi", "grp:org.nuxeo.ecm.relations",
			},
		},
		{
			id:      "grp:org.nuxeo.apidoc",
			bundles: []string{"org.nuxeo.apidoc.core", "org.nuxeo.apidoc.repo", "org.nuxeo.apidoc.webengine"},
			parent:  "grp:org.nuxeo.ecm.platform",
		},
		{
			id:      "grp:org.nuxeo.ecm.directory",
			bundles: []string{
				"org.nuxeo.ecm.directory", "org.nuxeo.ecm.directory.api", "org.nuxeo.ecm.directory.sql",
				"org.nuxeo.ecm.directory.types.contrib",
			},
			parent: "grp:org.nuxeo.ecm.platform",
		},
		{
			id:      "grp:org.nuxeo.ecm.platform.restapi",
			bundles: []string{"org.nuxeo.ecm.platform.restapi.io", "org.nuxeo.ecm.platform.restapi.server"},
			parent:  "grp:org.nuxeo.ecm.platform",
		},
		{
			id:      "grp:org.nuxeo.ecm.relations",
			bundles: []string{
				"org.nuxeo.ecm.relations", "org.nuxeo.ecm.relations.api", "org.nuxeo.ecm.relations.core.listener",
				"org.nuxeo.ecm.relations.io",
			},
			parent: "grp:org.nuxeo.ecm.platform",
		},
		{
			id:      "grp:org.nuxeo.runtime",
			bundles: []string{
				"org.nuxeo.connect.standalone", "org.nuxeo.launcher.commons", "org.nuxeo.osgi",
				"org.nuxeo.runtime", "org.nuxeo.runtime.cluster",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			g, ok := r.Group(tt.id)
			if !ok {
				t.Fatalf("Group(%q) not found", tt.id)
			}
			if !slices.Equal(g.BundleIDs, tt.bundles) {
				t.Errorf("BundleIDs = %v, want %v", g.BundleIDs, tt.bundles)
			}
			if got := groupIDs(g.SubGroups); !slices.Equal(got, tt.subs) && (len(got) > 0 || len(tt.subs) > 0) {
				t.Errorf("SubGroups = %v, want %v", got, tt.subs)
			}
			var wantParents []string
			if tt.parent != "" {
				wantParents = []string{tt.parent}
			}
			if !slices.Equal(g.ParentIDs, wantParents) && (len(g.ParentIDs) > 0 || len(wantParents) > 0) {
				t.Errorf("ParentIDs = %v, want %v", g.ParentIDs, wantParents)
			}
			if g.Version != "11.1" {
				t.Errorf("Version = %q, want 11.1", g.Version)
			}
			if g.Name != strings.TrimPrefix(tt.id, Prefix) {
				t.Errorf("Name = %q, want %q", g.Name, strings.TrimPrefix(tt.id, Prefix))
			}
		})
	}
}

func TestExtractIsOrderIndependent(t *testing.T) {
	bundles := nuxeoBundles()
	want := snapshot(Extract(bundles, ""))

	rng := rand.New(rand.NewSource(42))
	ids := make([]string, 0, len(bundles))
	for id := range bundles {
		ids = append(ids, id)
	}
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(ids), func(a, b int) { ids[a], ids[b] = ids[b], ids[a] })
		shuffled := make(map[string]Coordinates, len(ids))
		for _, id := range ids {
			shuffled[id] = bundles[id]
		}
		if got := snapshot(Extract(shuffled, "")); got != want {
			t.Fatalf("permutation %d changed the forest:\n%s\nwant:\n%s", i, got, want)
		}
	}
}

// snapshot renders the forest as one line per group, depth first.
func snapshot(r *Result) string {
	var sb strings.Builder
	var visit func(g *Group)
	visit = func(g *Group) {
		sb.WriteString(g.Path())
		sb.WriteString(" ")
		sb.WriteString(strings.Join(g.BundleIDs, ","))
		sb.WriteString("\n")
		for _, sub := range g.SubGroups {
			visit(sub)
		}
	}
	for _, root := range r.Roots() {
		visit(root)
	}
	return sb.String()
}

func TestExtractInvariants(t *testing.T) {
	bundles := nuxeoBundles()
	r := Extract(bundles, "")

	seen := make(map[string]string)
	for id, g := range r.Groups() {
		for _, b := range g.BundleIDs {
			if other, dup := seen[b]; dup {
				t.Errorf("bundle %s is in both %s and %s", b, other, id)
			}
			seen[b] = id
		}
		if len(g.ParentIDs) > 1 {
			t.Errorf("%s has %d parents", id, len(g.ParentIDs))
		}
		for cur := g.Parent(); cur != nil; cur = cur.Parent() {
			if cur == g {
				t.Fatalf("%s is its own ancestor", id)
			}
		}
	}
	if len(seen) != len(bundles) {
		t.Errorf("%d bundles grouped, want %d", len(seen), len(bundles))
	}
	for b := range bundles {
		g, ok := r.GroupOf(b)
		if !ok || seen[b] != g.ID {
			t.Errorf("GroupOf(%s) = %v, want %s", b, g, seen[b])
		}
	}
}

func TestExtractBlankGroupID(t *testing.T) {
	r := Extract(map[string]Coordinates{
		"org.acme.foo": {},
		"org.acme.bar": {GroupID: "  "},
		"standalone":   {},
	}, "")

	want := []string{"grp:org.acme", "grp:standalone"}
	if got := groupIDs(r.Roots()); !slices.Equal(got, want) {
		t.Fatalf("Roots() = %v, want %v", got, want)
	}
	g, _ := r.Group("grp:org.acme")
	if !slices.Equal(g.BundleIDs, []string{"org.acme.bar", "org.acme.foo"}) {
		t.Errorf("BundleIDs = %v", g.BundleIDs)
	}
}

func TestExtractDropsEmptiedRoot(t *testing.T) {
	r := Extract(map[string]Coordinates{
		"org.nuxeo.ecm.a": {GroupID: "org.nuxeo.foo"},
		"org.nuxeo.ecm.b": {GroupID: "org.nuxeo.foo"},
		"org.nuxeo.ecm.c": {GroupID: "org.nuxeo.ecm"},
	}, "")

	if got, want := groupIDs(r.Roots()), []string{"grp:org.nuxeo.ecm"}; !slices.Equal(got, want) {
		t.Fatalf("Roots() = %v, want %v", got, want)
	}
	if _, ok := r.Group("grp:org.nuxeo.foo"); ok {
		t.Error("emptied group grp:org.nuxeo.foo is still listed")
	}
	r.Walk(func(g *Group, _ int) bool {
		if len(g.BundleIDs) == 0 && len(g.SubGroups) == 0 {
			t.Errorf("group %s has no bundles and no sub-groups", g.ID)
		}
		return true
	})
}

func TestExtractEmpty(t *testing.T) {
	r := Extract(nil, "")
	if len(r.Roots()) != 0 || len(r.Groups()) != 0 {
		t.Errorf("Extract(nil) = %v roots, %v groups", r.Roots(), r.IDs())
	}
}

func TestClusterKey(t *testing.T) {
	tests := []struct {
		id, ns, want string
	}{
		{"org.nuxeo.ecm.platform", "org.nuxeo.ecm.platform", "org.nuxeo.ecm.platform"},
		{"org.nuxeo.ecm", "org.nuxeo.ecm.platform", "org.nuxeo.ecm.platform"},
		{"org.nuxeo.ecm.platform.api", "org.nuxeo.ecm.platform", "org.nuxeo.ecm.platform.api"},
		{"org.nuxeo.ecm.directory.api", "org.nuxeo.ecm.platform", "org.nuxeo.ecm.directory"},
		{"org.nuxeo.connect.update", "org.nuxeo.ecm.platform", "org.nuxeo.connect"},
		{"com.acme", "org.nuxeo", "com"},
	}
	for _, tt := range tests {
		if got := clusterKey(tt.id, tt.ns); got != tt.want {
			t.Errorf("clusterKey(%q, %q) = %q, want %q", tt.id, tt.ns, got, tt.want)
		}
	}
}

func TestWalk(t *testing.T) {
	r := Extract(nuxeoBundles(), "")

	var order []string
	maxDepth := 0
	r.Walk(func(g *Group, depth int) bool {
		order = append(order, g.ID)
		maxDepth = max(maxDepth, depth)
		return true
	})
	if len(order) != 10 {
		t.Errorf("Walk visited %d groups, want 10", len(order))
	}
	if !slices.Equal(order[:5], groupIDs(r.Roots())) {
		t.Errorf("Walk did not start with the roots: %v", order[:5])
	}
	if maxDepth != 1 {
		t.Errorf("max depth = %d, want 1", maxDepth)
	}

	visited := 0
	r.Walk(func(*Group, int) bool {
		visited++
		return visited < 3
	})
	if visited != 3 {
		t.Errorf("Walk did not stop early: visited %d", visited)
	}
}

func TestTotalBundles(t *testing.T) {
	r := Extract(nuxeoBundles(), "")
	g, _ := r.Group("grp:org.nuxeo.ecm.platform")
	if got := TotalBundles(g); got != 4+3+4+2+4 {
		t.Errorf("TotalBundles() = %d, want 17", got)
	}
}

func TestPath(t *testing.T) {
	r := Extract(nuxeoBundles(), "")
	g, _ := r.Group("grp:org.nuxeo.apidoc")
	if got, want := g.Path(), "/grp:org.nuxeo.ecm.platform/grp:org.nuxeo.apidoc"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestFromBundles(t *testing.T) {
	got := FromBundles([]*distribution.Bundle{
		{ID: "org.nuxeo.runtime", GroupID: "org.nuxeo.runtime", ArtifactID: "nuxeo-runtime"},
	})
	want := Coordinates{GroupID: "org.nuxeo.runtime", ArtifactID: "nuxeo-runtime"}
	if got["org.nuxeo.runtime"] != want {
		t.Errorf("FromBundles() = %v, want %v", got, want)
	}
}
