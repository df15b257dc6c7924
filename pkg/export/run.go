package export

import (
	"context"
	"io"
	"time"

	"github.com/matzehuels/apidoc/pkg/distribution"
	"github.com/matzehuels/apidoc/pkg/observability"
)

// Run exports d through e, reporting the run to the registered
// [observability.ExportHooks].
func Run(ctx context.Context, e Exporter, w io.Writer, d distribution.Distribution, f distribution.Filter, props Properties) error {
	name := e.Descriptor().Name
	hooks := observability.Export()
	hooks.OnExportStart(ctx, name)

	start := time.Now()
	cw := &countingWriter{w: w}
	err := e.Export(ctx, cw, d, f, props)
	hooks.OnExportComplete(ctx, name, cw.n, time.Since(start), err)
	return err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
