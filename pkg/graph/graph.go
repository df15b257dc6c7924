package graph

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] and [Graph.SetNode]
	// when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownEndpoint is returned by [Graph.Validate] when an edge
	// references a node that is not part of the graph.
	ErrUnknownEndpoint = errors.New("unknown edge endpoint")
)

// Node attribute keys set by the default graph builder.
const (
	AttrCategory = "category"
	AttrIndex    = "index"
)

// Node is a typed artifact reference. Identity is the ID, which carries the
// type tag (see [NodeType.Prefix]).
type Node struct {
	ID         string            `json:"id"`
	Label      string            `json:"label"`
	Type       NodeType          `json:"type"`
	Weight     int               `json:"weight"`
	Attributes map[string]string `json:"attributes"`
}

// Attribute returns the attribute value or def when it is unset.
func (n Node) Attribute(key, def string) string {
	if v, ok := n.Attributes[key]; ok {
		return v
	}
	return def
}

// Category returns the category attribute, or CategoryPlatform when it is
// missing or unknown.
func (n Node) Category() NodeCategory {
	c, _ := ParseCategory(n.Attributes[AttrCategory])
	return c
}

// clone returns a copy that shares no mutable state with n.
func (n Node) clone() Node {
	n.Attributes = maps.Clone(n.Attributes)
	if n.Attributes == nil {
		n.Attributes = map[string]string{}
	}
	return n
}

// Edge relates two node IDs. Edges are not unique: the same pair may be
// linked several times, by different relation types.
type Edge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Type   EdgeType `json:"value"`
	Weight int      `json:"weight"`
}

// Predicate selects nodes. A nil Predicate accepts every node.
type Predicate func(Node) bool

// TypeFilter returns a predicate accepting nodes of the given types.
func TypeFilter(types ...NodeType) Predicate {
	return func(n Node) bool { return slices.Contains(types, n.Type) }
}

// Graph is an insertion-ordered set of nodes keyed by ID plus an ordered list
// of edges.
//
// Edges are not checked against the node set when added; call
// [Graph.Validate] to verify that every endpoint resolves.
//
// The zero value is not usable - use New. Graph is not safe for concurrent
// mutation.
type Graph struct {
	nodes []*Node
	index map[string]int
	edges []Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{index: make(map[string]int)}
}

// AddNode appends a node. It returns ErrInvalidNodeID for an empty ID and
// ErrDuplicateNodeID when the ID is already taken.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, ok := g.index[n.ID]; ok {
		return ErrDuplicateNodeID
	}
	g.append(n)
	return nil
}

// SetNode adds n, or replaces the node with the same ID in place, keeping
// its position in the insertion order.
func (g *Graph) SetNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if i, ok := g.index[n.ID]; ok {
		n = n.clone()
		g.nodes[i] = &n
		return nil
	}
	g.append(n)
	return nil
}

func (g *Graph) append(n Node) {
	n = n.clone()
	g.index[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, &n)
}

// AddEdge appends an edge.
func (g *Graph) AddEdge(e Edge) {
	g.edges = append(g.edges, e)
}

// Node returns a copy of the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i].clone(), true
}

// HasNode reports whether id is part of the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]
	return ok
}

// AddWeight increases the weight of node id by delta. It reports whether
// the node exists.
func (g *Graph) AddWeight(id string, delta int) bool {
	i, ok := g.index[id]
	if !ok {
		return false
	}
	g.nodes[i].Weight += delta
	return true
}

// Nodes returns copies of the nodes in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.clone()
	}
	return out
}

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Validate checks that every edge endpoint resolves to a node.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		if !g.HasNode(e.Source) || !g.HasNode(e.Target) {
			return ErrUnknownEndpoint
		}
	}
	return nil
}

// Copy returns a graph restricted to the nodes accepted by keep. Edges are
// kept when both endpoints are accepted; with a non-nil keep, an edge with an
// unresolved endpoint is dropped. The copy shares no mutable state with g.
func (g *Graph) Copy(keep Predicate) *Graph {
	out := New()
	accepted := make(map[string]bool, len(g.nodes))
	for _, n := range g.nodes {
		if keep == nil || keep(n.clone()) {
			out.append(*n)
			accepted[n.ID] = true
		}
	}
	for _, e := range g.edges {
		if keep == nil || (accepted[e.Source] && accepted[e.Target]) {
			out.edges = append(out.edges, e)
		}
	}
	return out
}
