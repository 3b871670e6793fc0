package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stairforge/pkg/cache"
	"github.com/matzehuels/stairforge/pkg/observability"
	"github.com/matzehuels/stairforge/pkg/scene"
	"github.com/matzehuels/stairforge/pkg/stair"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
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

// Execute runs the complete generate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Generate
	generateStart := time.Now()
	layout, layoutHit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Layout = layout
	result.Stats.GenerateTime = time.Since(generateStart)
	result.Stats.StepCount = len(layout.Steps())
	result.Stats.PrimitiveCount = len(layout.Primitives)
	result.CacheInfo.LayoutHit = layoutHit

	// Compute layout hash for cache keys and API responses
	if layoutData, err := scene.MarshalLayout(layout); err == nil {
		result.LayoutHash = cache.Hash(layoutData)
	}

	r.Logger.Info("generated layout",
		"steps", result.Stats.StepCount,
		"primitives", result.Stats.PrimitiveCount,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, layout, opts)
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

// GenerateWithCacheInfo generates a layout with caching and returns cache hit info.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (scene.Layout, bool, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return scene.Layout{}, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from the canonical parameter encoding
	paramsData, err := json.Marshal(opts.Params)
	if err != nil {
		return scene.Layout{}, false, fmt.Errorf("serialize parameters for cache key: %w", err)
	}
	cacheKey := r.Keyer.LayoutKey(cache.Hash(paramsData))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := scene.UnmarshalLayout(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to regenerate
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	// Generate
	start := time.Now()
	observability.Generator().OnGenerateStart(ctx, opts.Params.StepCount)
	layout, err := stair.Generate(opts.Params)
	observability.Generator().OnGenerateComplete(ctx, opts.Params.StepCount, len(layout.Primitives), time.Since(start), err)
	if err != nil {
		return scene.Layout{}, false, err
	}

	// Cache the result
	if data, err := scene.MarshalLayout(layout); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return layout, false, nil // Cache miss
}

// Generate is a convenience wrapper that calls GenerateWithCacheInfo and discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, opts Options) (scene.Layout, error) {
	layout, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return layout, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, layout scene.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from layout data
	layoutData, err := scene.MarshalLayout(layout)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
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
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	// Render all formats
	start := time.Now()
	observability.Generator().OnRenderStart(ctx, opts.Formats)
	rendered, err := renderFromLayout(layout, opts)
	observability.Generator().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, layout scene.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, layout, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
