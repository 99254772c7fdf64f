package cache

// ScopedKeyer wraps a Keyer with a prefix so several deployments can share
// one Redis instance:
//
//	k := NewScopedKeyer(NewDefaultKeyer(), "showcase:prod:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// HTTPKey generates a prefixed key for HTTP response caching.
func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// ReposKey generates a prefixed key for repository listings.
func (k *ScopedKeyer) ReposKey(owner string, perPage int) string {
	return k.prefix + k.inner.ReposKey(owner, perPage)
}

// ReadmeKey generates a prefixed key for READMEs.
func (k *ScopedKeyer) ReadmeKey(owner, repo string) string {
	return k.prefix + k.inner.ReadmeKey(owner, repo)
}
