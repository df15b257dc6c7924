package export

import (
	"context"
	"io"

	"github.com/matzehuels/apidoc/pkg/distribution"
	"github.com/matzehuels/apidoc/pkg/stats"
)

type jsonStatsExporter struct {
	desc Descriptor
}

func (e *jsonStatsExporter) Descriptor() Descriptor { return e.desc.Merge(Descriptor{}) }

func (e *jsonStatsExporter) Export(_ context.Context, w io.Writer, d distribution.Distribution, f distribution.Filter, props Properties) error {
	s := stats.Compute(d, f, stats.ClassifierFrom(props, e.desc.Properties))
	return stats.WriteJSON(w, s, pretty(props, e.desc.Properties))
}

type csvStatsExporter struct {
	desc Descriptor
}

func (e *csvStatsExporter) Descriptor() Descriptor { return e.desc.Merge(Descriptor{}) }

func (e *csvStatsExporter) Export(_ context.Context, w io.Writer, d distribution.Distribution, f distribution.Filter, props Properties) error {
	return stats.WriteCSV(w, stats.Compute(d, f, stats.ClassifierFrom(props, e.desc.Properties)))
}
