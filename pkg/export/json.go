package export

import (
	"context"
	"io"

	"github.com/matzehuels/apidoc/pkg/distribution"
	"github.com/matzehuels/apidoc/pkg/graph"
)

type jsonGraphExporter struct {
	desc Descriptor
}

func (e *jsonGraphExporter) Descriptor() Descriptor { return e.desc.Merge(Descriptor{}) }

// Export writes the default graph as a [graph.Document]. The descriptor's
// properties are embedded when non-empty.
func (e *jsonGraphExporter) Export(_ context.Context, w io.Writer, d distribution.Distribution, f distribution.Filter, props Properties) error {
	var embedded map[string]string
	if len(e.desc.Properties) > 0 {
		embedded = e.desc.Properties
	}
	doc := graph.NewDocument(e.desc.Name, e.desc.Title, e.desc.Description, embedded, BuildGraph(d, f))
	return graph.WriteDocument(w, doc, pretty(props, e.desc.Properties))
}

// pretty reports whether either property set asks for indented output.
func pretty(call, own Properties) bool {
	return call.Bool(PropPretty) || own.Bool(PropPretty)
}
