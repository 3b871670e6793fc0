// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about layout generation, cache operations,
// and API requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGeneratorHooks(&myGeneratorHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Generator().OnGenerateStart(ctx, stepCount)
//	// ... generate ...
//	observability.Generator().OnGenerateComplete(ctx, stepCount, primitives, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Generator Hooks
// =============================================================================

// GeneratorHooks receives events from the generate → render pipeline.
type GeneratorHooks interface {
	// Generate events
	OnGenerateStart(ctx context.Context, stepCount int)
	OnGenerateComplete(ctx context.Context, stepCount, primitiveCount int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Server Hooks
// =============================================================================

// ServerHooks receives events from the HTTP API.
type ServerHooks interface {
	// OnRequest records an incoming API request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed API request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGeneratorHooks is a no-op implementation of GeneratorHooks.
type NoopGeneratorHooks struct{}

func (NoopGeneratorHooks) OnGenerateStart(context.Context, int) {}
func (NoopGeneratorHooks) OnGenerateComplete(context.Context, int, int, time.Duration, error) {
}
func (NoopGeneratorHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopGeneratorHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopServerHooks is a no-op implementation of ServerHooks.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string)                     {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	generatorHooks GeneratorHooks = NoopGeneratorHooks{}
	cacheHooks     CacheHooks     = NoopCacheHooks{}
	serverHooks    ServerHooks    = NoopServerHooks{}
	hooksMu        sync.RWMutex
)

// SetGeneratorHooks registers custom generator hooks.
// This should be called once at application startup before any pipeline operations.
func SetGeneratorHooks(h GeneratorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generatorHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetServerHooks registers custom server hooks.
// This should be called once at application startup before the API starts serving.
func SetServerHooks(h ServerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serverHooks = h
	}
}

// Generator returns the registered generator hooks.
func Generator() GeneratorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generatorHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Server returns the registered server hooks.
func Server() ServerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serverHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generatorHooks = NoopGeneratorHooks{}
	cacheHooks = NoopCacheHooks{}
	serverHooks = NoopServerHooks{}
}
