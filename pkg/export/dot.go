package export

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/apidoc/pkg/distribution"
	"github.com/matzehuels/apidoc/pkg/graph"
)

type dotGraphExporter struct {
	desc Descriptor
}

func (e *dotGraphExporter) Descriptor() Descriptor { return e.desc.Merge(Descriptor{}) }

func (e *dotGraphExporter) Export(_ context.Context, w io.Writer, d distribution.Distribution, f distribution.Filter, _ Properties) error {
	return newDOT(BuildGraph(d, f), nil).write(w)
}

// dotGraph is the DOT rendering of a graph: vertices are numbered from 1 in
// insertion order, and edges refer to those numbers.
type dotGraph struct {
	vertices []dotVertex
	edges    []dotEdge
}

type dotVertex struct {
	id   int
	node graph.Node
}

type dotEdge struct {
	from, to int
	typ      graph.EdgeType
}

// newDOT copies the nodes of g accepted by keep, and the edges between them.
// A nil keep accepts every node. Edges with an endpoint missing from g are
// dropped.
func newDOT(g *graph.Graph, keep graph.Predicate) *dotGraph {
	sub := g.Copy(keep)
	dg := &dotGraph{}
	ids := make(map[string]int, sub.NodeCount())
	for i, n := range sub.Nodes() {
		ids[n.ID] = i + 1
		dg.vertices = append(dg.vertices, dotVertex{id: i + 1, node: n})
	}
	for _, e := range sub.Edges() {
		from, okFrom := ids[e.Source]
		to, okTo := ids[e.Target]
		if !okFrom || !okTo {
			continue
		}
		dg.edges = append(dg.edges, dotEdge{from: from, to: to, typ: e.Type})
	}
	return dg
}

// write emits the graph, e.g.
//
//	digraph G {
//	  1 [ label="org.nuxeo.runtime" weight="2" type="BUNDLE" category="RUNTIME" ];
//	  2 [ label="org.nuxeo.runtime.root" weight="1" type="BUNDLE" category="RUNTIME" ];
//	  1 -> 2 [ label="REQUIRES" ];
//	}
//
// Edges of undirected types carry dir="none".
func (dg *dotGraph) write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	for _, v := range dg.vertices {
		fmt.Fprintf(bw, "  %d [ label=%s weight=\"%d\" type=%s", v.id, dotQuote(v.node.Label), v.node.Weight, dotQuote(v.node.Type.String()))
		for _, k := range slices.Sorted(maps.Keys(v.node.Attributes)) {
			fmt.Fprintf(bw, " %s=%s", dotID(k), dotQuote(v.node.Attributes[k]))
		}
		fmt.Fprintln(bw, " ];")
	}
	for _, e := range dg.edges {
		fmt.Fprintf(bw, "  %d -> %d [ label=%s", e.from, e.to, dotQuote(e.typ.String()))
		if !e.typ.Directed() {
			fmt.Fprint(bw, ` dir="none"`)
		}
		fmt.Fprintln(bw, " ];")
	}
	fmt.Fprintln(bw, "}")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	return nil
}

// dotID quotes attribute names that are not plain identifiers.
func dotID(s string) string {
	for i, r := range s {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (i > 0 && r >= '0' && r <= '9') {
			continue
		}
		return dotQuote(s)
	}
	if s == "" {
		return `""`
	}
	return s
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// dotQuote returns s as a DOT double-quoted string. Only backslashes and
// double quotes are escaped; every other character is written as is.
func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}
