package observability

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by writing debug-level
// structured log lines. It also counts cache hits and misses so the CLI
// can print a summary.
type LogHooks struct {
	logger *log.Logger
	hits   atomic.Int64
	misses atomic.Int64
}

// NewLogHooks returns hooks that log to l. A nil l discards output.
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &LogHooks{logger: l}
}

// CacheStats returns the counted hits and misses.
func (h *LogHooks) CacheStats() (hits, misses int64) {
	return h.hits.Load(), h.misses.Load()
}

func (h *LogHooks) OnLayoutStart(_ context.Context, scene string, width, height float64) {
	h.logger.Debug("layout start", "scene", scene, "width", width, "height", height)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, scene string, instructions int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("layout failed", "scene", scene, "err", err, "took", d)
		return
	}
	h.logger.Debug("layout done", "scene", scene, "instructions", instructions, "took", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, scene string, formats []string) {
	h.logger.Debug("render start", "scene", scene, "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, scene string, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "scene", scene, "formats", formats, "err", err, "took", d)
		return
	}
	h.logger.Debug("render done", "scene", scene, "formats", formats, "took", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.hits.Add(1)
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.misses.Add(1)
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string) {
	h.logger.Debug("request", "method", method, "route", route)
}

func (h *LogHooks) OnResponse(_ context.Context, method, route string, status, bytes int, d time.Duration) {
	h.logger.Debug("response", "method", method, "route", route, "status", status, "bytes", bytes, "took", d)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ ServerHooks   = (*LogHooks)(nil)
)
