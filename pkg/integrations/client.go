package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/showcase/pkg/buildinfo"
	"github.com/matzehuels/showcase/pkg/cache"
	"github.com/matzehuels/showcase/pkg/observability"
)

// Client provides shared HTTP functionality for API clients.
// It handles response caching, observability hooks and common request headers.
// Requests are attempted exactly once.
type Client struct {
	http      *http.Client
	cache     cache.Cache
	namespace string
	ttl       time.Duration
	headers   map[string]string
}

// NewClient creates a Client with the given cache and default headers.
// namespace prefixes keys in observability events; ttl is the default entry
// lifetime used by [Client.Cached]. Pass nil for headers if no default
// headers are needed. A nil cache disables caching.
func NewClient(c cache.Cache, namespace string, ttl time.Duration, headers map[string]string) *Client {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Client{
		http:      NewHTTPClient(0),
		cache:     c,
		namespace: namespace,
		ttl:       ttl,
		headers:   headers,
	}
}

// SetTimeout bounds every request made through the client. Zero disables the
// timeout; cancellation through the request context still applies.
func (c *Client) SetTimeout(d time.Duration) {
	c.http.Timeout = d
}

// Cached retrieves a value from cache or executes fetch and caches the result
// with the client's default TTL. See [Client.CachedFor].
func (c *Client) Cached(ctx context.Context, key string, refresh bool, v any, fetch func() error) error {
	return c.CachedFor(ctx, key, c.ttl, refresh, v, fetch)
}

// CachedFor retrieves a value from cache or executes fetch and caches the
// result for ttl. If refresh is true, the cache is bypassed and fetch is
// always called. The fetch function should populate v; only successful
// results are stored.
func (c *Client) CachedFor(ctx context.Context, key string, ttl time.Duration, refresh bool, v any, fetch func() error) error {
	hooks := observability.Cache()
	keyType := keyType(key)

	if !refresh {
		if data, ok, err := c.cache.Get(ctx, key); err == nil && ok {
			if json.Unmarshal(data, v) == nil {
				hooks.OnCacheHit(ctx, keyType)
				return nil
			}
		}
		hooks.OnCacheMiss(ctx, keyType)
	}

	if err := fetch(); err != nil {
		return err
	}

	if data, err := json.Marshal(v); err == nil {
		if c.cache.Set(ctx, key, data, ttl) == nil {
			hooks.OnCacheSet(ctx, keyType, len(data))
		}
	}
	return nil
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	return c.GetWithHeaders(ctx, url, nil, v)
}

// GetWithHeaders performs an HTTP GET with additional headers merged with defaults.
// Request-specific headers override client defaults for the same key.
func (c *Client) GetWithHeaders(ctx context.Context, url string, headers map[string]string, v any) error {
	body, err := c.doRequest(ctx, url, headers)
	if err != nil {
		return err
	}
	defer body.Close()
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, url string, headers map[string]string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", buildinfo.UserAgent())
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	if code == http.StatusOK {
		return nil
	}
	return &StatusError{StatusCode: code}
}

// keyType returns the key's prefix up to the first colon, e.g. "readme".
func keyType(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
