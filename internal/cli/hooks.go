package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/apidoc/pkg/observability"
)

// logHooks reports export and cache events as debug logs.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.ExportHooks = logHooks{}
	_ observability.CacheHooks  = logHooks{}
)

func (h logHooks) OnExportStart(_ context.Context, exporter string) {
	h.logger.Debug("Export started", "exporter", exporter)
}

func (h logHooks) OnExportComplete(_ context.Context, exporter string, written int64, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Export failed", "exporter", exporter, "err", err)
		return
	}
	h.logger.Debug("Export complete", "exporter", exporter, "bytes", written, "duration", duration.Round(time.Millisecond))
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("Cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("Cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("Cache set", "type", keyType, "bytes", size)
}
