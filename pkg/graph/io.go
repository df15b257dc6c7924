package graph

import (
	"encoding/json"
	"fmt"
	"io"
)

// TypeBasic is the document type of a graph exported without layout.
const TypeBasic = "BASIC"

// Document is the JSON wire format of an exported graph:
//
//	{
//	  "name": "jsonGraph",
//	  "title": "Basic Graph",
//	  "description": "...",
//	  "type": "BASIC",
//	  "properties": {"pretty": "true"},
//	  "nodes": [{"id": "NXBundle-org.nuxeo.runtime", "label": "org.nuxeo.runtime", ...}],
//	  "edges": [{"source": "...", "target": "...", "value": "REQUIRES", "weight": 1}]
//	}
//
// Properties is omitted when empty. Map keys are written sorted, so identical
// graphs always encode to identical bytes.
type Document struct {
	Name        string            `json:"name"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Type        string            `json:"type"`
	Properties  map[string]string `json:"properties,omitempty"`
	Nodes       []Node            `json:"nodes"`
	Edges       []Edge            `json:"edges"`
}

// NewDocument wraps g with the given header fields.
func NewDocument(name, title, description string, props map[string]string, g *Graph) *Document {
	return &Document{
		Name:        name,
		Title:       title,
		Description: description,
		Type:        TypeBasic,
		Properties:  props,
		Nodes:       g.Nodes(),
		Edges:       g.Edges(),
	}
}

// Graph rebuilds the graph held by the document.
func (d *Document) Graph() (*Graph, error) {
	g := New()
	for _, n := range d.Nodes {
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("node %q: %w", n.ID, err)
		}
	}
	for _, e := range d.Edges {
		g.AddEdge(e)
	}
	return g, nil
}

// WriteDocument encodes d to w, indented with two spaces when pretty is set.
func WriteDocument(w io.Writer, d *Document, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	return nil
}

// ReadDocument decodes a document written by [WriteDocument].
func ReadDocument(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode graph: %w", err)
	}
	return &d, nil
}
