package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// The server uses this to give different users separate cache namespaces
// while sharing one Redis instance.
//
// Example usage:
//
//	userKeyer := NewScopedKeyer(NewDefaultKeyer(), "user:abc123:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(paramsHash string) string {
	return k.prefix + k.inner.LayoutKey(paramsHash)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
