package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/prismview/pkg/cache"
	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/observability"
	"github.com/matzehuels/prismview/pkg/render/draw"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the per-entry cache TTLs when positive.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// A nil keyer selects the DefaultKeyer, a nil cache disables caching and
// a nil logger discards output.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete layout → render pipeline with caching. For
// hierarchy runs only the render stage applies.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	if opts.IsHierarchy() {
		start := time.Now()
		artifacts, hit, err := r.RenderHierarchyWithCacheInfo(ctx, opts)
		if err != nil {
			return nil, err
		}
		result.Artifacts = artifacts
		result.Stats.RenderTime = time.Since(start)
		result.CacheInfo.RenderHit = hit
		return result, nil
	}

	// Stage 1: Layout
	start := time.Now()
	f, frameHit, err := r.GenerateFrameWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Frame = f
	result.Stats.Stats = f.Stats()
	result.Stats.LayoutTime = time.Since(start)
	result.CacheInfo.FrameHit = frameHit

	opts.Logger.Info("computed frame",
		"scene", opts.Scene,
		"instructions", len(f.Instructions),
		"cached", frameHit,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	start = time.Now()
	artifacts, hash, renderHit, err := r.renderWithCacheInfo(ctx, f, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.FrameHash = hash
	result.Stats.RenderTime = time.Since(start)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateFrameWithCacheInfo builds a frame with caching and reports
// whether it came from the cache.
func (r *Runner) GenerateFrameWithCacheInfo(ctx context.Context, opts Options) (draw.Frame, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return draw.Frame{}, false, err
	}
	key := r.Keyer.FrameKey(opts.FrameKeyOpts())

	if !opts.Refresh {
		if data, hit := r.lookup(ctx, key, "frame", opts.Logger); hit {
			if f, err := draw.UnmarshalFrame(data); err == nil {
				return f, true, nil
			}
			// undecodable entries are recomputed and overwritten
		}
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.Scene, opts.Width, opts.Height)
	start := time.Now()
	f, err := GenerateFrame(opts)
	hooks.OnLayoutComplete(ctx, opts.Scene, len(f.Instructions), time.Since(start), err)
	if err != nil {
		return draw.Frame{}, false, err
	}

	if data, err := draw.MarshalFrame(f); err == nil {
		r.store(ctx, key, "frame", data, r.ttl(cache.TTLFrame), opts.Logger)
	}
	return f, false, nil
}

// GenerateFrame is GenerateFrameWithCacheInfo without the cache flag.
func (r *Runner) GenerateFrame(ctx context.Context, opts Options) (draw.Frame, error) {
	f, _, err := r.GenerateFrameWithCacheInfo(ctx, opts)
	return f, err
}

// RenderWithCacheInfo renders f with caching and reports whether every
// artifact came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, f draw.Frame, opts Options) (map[string][]byte, bool, error) {
	artifacts, _, hit, err := r.renderWithCacheInfo(ctx, f, opts)
	return artifacts, hit, err
}

// Render is RenderWithCacheInfo without the cache flag.
func (r *Runner) Render(ctx context.Context, f draw.Frame, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, f, opts)
	return artifacts, err
}

func (r *Runner) renderWithCacheInfo(ctx context.Context, f draw.Frame, opts Options) (map[string][]byte, string, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, "", false, err
	}
	if opts.Scene == "" {
		opts.Scene = f.Scene
	}
	if err := f.Validate(); err != nil {
		return nil, "", false, err
	}
	if opts.wantsRaster() {
		if err := errors.ValidateCanvas(float64(f.Viewport.Width), float64(f.Viewport.Height), opts.Scale); err != nil {
			return nil, "", false, err
		}
	}

	frameData, err := draw.MarshalFrame(f)
	if err != nil {
		return nil, "", false, err
	}
	hash := cache.Hash(frameData)
	keyFor := func(format string) string {
		return r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
	}

	if !opts.Refresh {
		if artifacts, ok := r.lookupAll(ctx, opts.Formats, keyFor, "artifact", opts.Logger); ok {
			return artifacts, hash, true, nil
		}
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Scene, opts.Formats)
	start := time.Now()
	artifacts, err := RenderFrame(ctx, f, opts)
	hooks.OnRenderComplete(ctx, opts.Scene, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, "", false, err
	}

	for format, data := range artifacts {
		r.store(ctx, keyFor(format), "artifact", data, r.ttl(cache.TTLArtifact), opts.Logger)
	}
	return artifacts, hash, false, nil
}

// RenderHierarchyWithCacheInfo renders the node-link diagram of the
// scene's color hierarchy with caching.
func (r *Runner) RenderHierarchyWithCacheInfo(ctx context.Context, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	opts.VizType = VizTypeHierarchy
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	keyFor := func(format string) string {
		return r.Keyer.HierarchyKey(opts.Scene, opts.ArtifactKeyOpts(format))
	}

	if !opts.Refresh {
		if artifacts, ok := r.lookupAll(ctx, opts.Formats, keyFor, "hierarchy", opts.Logger); ok {
			return artifacts, true, nil
		}
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Scene, opts.Formats)
	start := time.Now()
	artifacts, err := RenderHierarchy(ctx, opts)
	hooks.OnRenderComplete(ctx, opts.Scene, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range artifacts {
		r.store(ctx, keyFor(format), "hierarchy", data, r.ttl(cache.TTLHierarchy), opts.Logger)
	}
	return artifacts, false, nil
}

// RenderHierarchy is RenderHierarchyWithCacheInfo without the cache flag.
func (r *Runner) RenderHierarchy(ctx context.Context, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderHierarchyWithCacheInfo(ctx, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// lookup reads one key. Backend errors are logged and treated as misses.
func (r *Runner) lookup(ctx context.Context, key, keyType string, l *log.Logger) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		l.Warn("cache read failed", "type", keyType, "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

// lookupAll succeeds only when every format is cached.
func (r *Runner) lookupAll(ctx context.Context, formats []string, keyFor func(string) string, keyType string, l *log.Logger) (map[string][]byte, bool) {
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		data, hit := r.lookup(ctx, keyFor(format), keyType, l)
		if !hit {
			return nil, false
		}
		artifacts[format] = data
	}
	return artifacts, true
}

// store writes one key. Failures are logged, never returned.
func (r *Runner) store(ctx context.Context, key, keyType string, data []byte, ttl time.Duration, l *log.Logger) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		l.Warn("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

func (r *Runner) ttl(def time.Duration) time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return def
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
