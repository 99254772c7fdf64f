package cache

import "strings"

// Keyer generates cache keys. Implementations must be deterministic: the
// same inputs always yield the same key.
type Keyer interface {
	// HTTPKey is used for raw HTTP response bodies.
	HTTPKey(namespace, key string) string

	// ReposKey is used for an owner's repository listing.
	ReposKey(owner string, perPage int) string

	// ReadmeKey is used for a decoded README.
	ReadmeKey(owner, repo string) string
}

// DefaultKeyer produces readable keys with a short type prefix. Owner and
// repository names are lowercased since GitHub treats them case-insensitively.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// HTTPKey returns "http:<namespace>:<key>".
func (DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// ReposKey returns a key derived from owner and page size.
func (DefaultKeyer) ReposKey(owner string, perPage int) string {
	return hashKey("repos", strings.ToLower(owner), perPage)
}

// ReadmeKey returns a key derived from owner and repository name.
func (DefaultKeyer) ReadmeKey(owner, repo string) string {
	return hashKey("readme", strings.ToLower(owner), strings.ToLower(repo))
}

var _ Keyer = DefaultKeyer{}
