package graph_test

import (
	"fmt"
	"os"

	"github.com/matzehuels/apidoc/pkg/graph"
)

func ExampleGraph_Copy() {
	g := graph.New()
	_ = g.AddNode(graph.Node{ID: graph.NodeBundle.Prefix("app"), Label: "app", Type: graph.NodeBundle})
	_ = g.AddNode(graph.Node{ID: graph.NodeComponent.Prefix("svc"), Label: "svc", Type: graph.NodeComponent})
	g.AddEdge(graph.Edge{Source: "NXBundle-app", Target: "NXComponent-svc", Type: graph.EdgeContains})

	bundles := g.Copy(graph.TypeFilter(graph.NodeBundle))
	fmt.Println("source:", g.NodeCount(), "nodes,", g.EdgeCount(), "edges")
	fmt.Println("copy:", bundles.NodeCount(), "nodes,", bundles.EdgeCount(), "edges")
	// Output:
	// source: 2 nodes, 1 edges
	// copy: 1 nodes, 0 edges
}

func ExampleWriteDocument() {
	g := graph.New()
	_ = g.AddNode(graph.Node{
		ID:         graph.NodeBundle.Prefix("org.nuxeo.runtime"),
		Label:      "org.nuxeo.runtime",
		Type:       graph.NodeBundle,
		Weight:     1,
		Attributes: map[string]string{graph.AttrCategory: "RUNTIME"},
	})

	doc := graph.NewDocument("jsonGraph", "Basic Graph", "Complete graph", nil, g)
	_ = graph.WriteDocument(os.Stdout, doc, true)
	// Output:
	// {
	//   "name": "jsonGraph",
	//   "title": "Basic Graph",
	//   "description": "Complete graph",
	//   "type": "BASIC",
	//   "nodes": [
	//     {
	//       "id": "NXBundle-org.nuxeo.runtime",
	//       "label": "org.nuxeo.runtime",
	//       "type": "BUNDLE",
	//       "weight": 1,
	//       "attributes": {
	//         "category": "RUNTIME"
	//       }
	//     }
	//   ],
	//   "edges": []
	// }
}
