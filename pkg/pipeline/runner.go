package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/thangdevalone/meeting-layout-grid/pkg/cache"
	"github.com/thangdevalone/meeting-layout-grid/pkg/frame"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout"
	"github.com/thangdevalone/meeting-layout-grid/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete compute → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Compute
	computeStart := time.Now()
	f, computeHit, err := r.ComputeWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}
	result.Frame = f
	result.Stats.ComputeTime = time.Since(computeStart)
	result.Stats.Tiles = len(f.Tiles)
	result.CacheInfo.ComputeHit = computeHit

	if frameData, err := frame.Marshal(f); err == nil {
		result.FrameHash = cache.Hash(frameData)
	}

	r.Logger.Info("computed layout",
		"mode", f.Mode,
		"tiles", len(f.Tiles),
		"grid", fmt.Sprintf("%dx%d", f.Cols, f.Rows),
		"duration", result.Stats.ComputeTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, f, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeWithCacheInfo runs the layout engine with caching and returns cache
// hit info.
func (r *Runner) ComputeWithCacheInfo(ctx context.Context, opts Options) (frame.Frame, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return frame.Frame{}, false, err
	}

	optionsHash, err := opts.OptionsHash()
	if err != nil {
		return frame.Frame{}, false, err
	}
	cacheKey := r.Keyer.FrameKey(optionsHash)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := frame.Unmarshal(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "frame")
				return cached, true, nil // Cache hit
			}
			// Corrupt entry, fall through to recompute
		}
	}
	observability.Cache().OnCacheMiss(ctx, "frame")

	computeStart := time.Now()
	observability.Pipeline().OnComputeStart(ctx, opts.Layout.Count)
	res, err := layout.Compute(opts.Layout)
	observability.Pipeline().OnComputeComplete(ctx, opts.Layout.Count, time.Since(computeStart), err)
	if err != nil {
		return frame.Frame{}, false, err
	}
	f, err := res.Export()
	if err != nil {
		return frame.Frame{}, false, err
	}

	if data, err := frame.Marshal(f); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLFrame)
		observability.Cache().OnCacheSet(ctx, "frame", len(data))
	}

	return f, false, nil // Cache miss
}

// Compute is a convenience wrapper that discards the cache hit info.
func (r *Runner) Compute(ctx context.Context, opts Options) (frame.Frame, error) {
	f, _, err := r.ComputeWithCacheInfo(ctx, opts)
	return f, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit
// info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, f frame.Frame, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	frameData, err := frame.Marshal(f)
	if err != nil {
		return nil, false, fmt.Errorf("serialize frame for cache key: %w", err)
	}
	frameHash := cache.Hash(frameData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(frameHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil // All artifacts from cache
		}
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	rendered, err := renderFrame(f, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(frameHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, f frame.Frame, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, f, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
