// Package cache stores GitHub API responses between showcase runs.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per key under the XDG cache directory (CLI default)
//   - [RedisCache]: a shared Redis instance, for several `showcase serve` replicas
//   - [NullCache]: caching disabled (--no-cache, tests)
//
// Keys are produced by a [Keyer] so every backend sees the same key space:
//
//	k := cache.NewDefaultKeyer()
//	key := k.ReadmeKey("octocat", "hello-world")
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Default TTLs. Repository listings change more often than READMEs.
const (
	TTLRepos  = time.Hour
	TTLReadme = 24 * time.Hour
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the stored bytes and true on a hit. A miss or an expired
	// entry returns (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// DefaultDir returns the per-user cache directory for showcase,
// e.g. ~/.cache/showcase on Linux.
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "showcase"), nil
}
