package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := logHooks{logger: newLogger(&buf, log.DebugLevel)}
	ctx := context.Background()

	h.OnExportStart(ctx, "svgGraph")
	h.OnCacheMiss(ctx, "svg")
	h.OnCacheSet(ctx, "svg", 512)
	h.OnExportComplete(ctx, "svgGraph", 512, 3*time.Millisecond, nil)
	h.OnCacheHit(ctx, "svg")
	h.OnExportComplete(ctx, "svgGraph", 0, time.Millisecond, errors.New("boom"))

	out := buf.String()
	for _, want := range []string{"Export started", "Cache miss", "Cache set", "Export complete", "Cache hit", "Export failed", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	h := logHooks{logger: newLogger(&buf, log.InfoLevel)}
	h.OnCacheHit(context.Background(), "svg")
	if buf.Len() != 0 {
		t.Errorf("debug events should not log at info level, got %q", buf.String())
	}
}
