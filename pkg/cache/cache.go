// Package cache provides content-addressed caching for generated layouts
// and rendered artifacts.
//
// Because the generator is a pure function, a layout is fully determined by
// the hash of its parameters and an artifact by the hash of its layout plus
// the render options. The pipeline exploits that: keys are derived with a
// [Keyer], values are stored in any [Cache] backend.
//
// Backends:
//   - [FileCache]: sharded JSON files for CLI usage
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: caching disabled
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry class. Layouts and artifacts are pure function
// results, so the TTLs only bound disk/redis growth, not staleness.
const (
	TTLLayout   = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the storage interface for cached entries.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration; a
	// negative TTL stores an already-expired entry, so the next Get
	// misses.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts are the render options that participate in artifact keys.
// Two renders of the same layout with different options must never collide.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	View     string  `json:"view,omitempty"`
	Scale    float64 `json:"scale,omitempty"`
	Labels   bool    `json:"labels,omitempty"`
	Detailed bool    `json:"detailed,omitempty"`
}

// Keyer derives cache keys for the pipeline's two cacheable stages.
type Keyer interface {
	// LayoutKey derives the key for a generated layout from the
	// parameter hash.
	LayoutKey(paramsHash string) string

	// ArtifactKey derives the key for a rendered artifact from the
	// layout hash and render options.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key derivation: a short class prefix plus a
// SHA-256 over the identifying inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey implements Keyer.
func (k *DefaultKeyer) LayoutKey(paramsHash string) string {
	return "layout:" + paramsHash
}

// ArtifactKey implements Keyer.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
