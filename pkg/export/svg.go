package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/apidoc/pkg/cache"
	"github.com/matzehuels/apidoc/pkg/distribution"
	"github.com/matzehuels/apidoc/pkg/observability"
)

const svgKeyType = "svg"

type svgGraphExporter struct {
	desc  Descriptor
	cache cache.Cache
	ttl   time.Duration
}

func (e *svgGraphExporter) Descriptor() Descriptor { return e.desc.Merge(Descriptor{}) }

// Export lays out the DOT graph with Graphviz. Renders are cached by the
// hash of the DOT source; cache failures only cost a new render.
func (e *svgGraphExporter) Export(ctx context.Context, w io.Writer, d distribution.Distribution, f distribution.Filter, _ Properties) error {
	var dot bytes.Buffer
	if err := newDOT(BuildGraph(d, f), nil).write(&dot); err != nil {
		return err
	}

	hooks := observability.Cache()
	key := cache.Key(svgKeyType, dot.String())
	svg, hit, err := e.cache.Get(ctx, key)
	if err != nil || !hit {
		hooks.OnCacheMiss(ctx, svgKeyType)
		if svg, err = RenderSVG(ctx, dot.Bytes()); err != nil {
			return err
		}
		if e.cache.Set(ctx, key, svg, e.ttl) == nil {
			hooks.OnCacheSet(ctx, svgKeyType, len(svg))
		}
	} else {
		hooks.OnCacheHit(ctx, svgKeyType)
	}

	if _, err := w.Write(svg); err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	return nil
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot []byte) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
