// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries emit events through the registered hooks; the defaults are no-ops
// so nothing is paid unless a consumer registers an implementation at startup:
//
//	observability.SetPipelineHooks(observability.NewLogHooks(logger))
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnFetchStart(ctx, owner)
//	repos, err := client.ListRepos(ctx, owner, 100)
//	observability.Pipeline().OnFetchComplete(ctx, owner, len(repos), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the project pipeline.
type PipelineHooks interface {
	// Fetch events
	OnFetchStart(ctx context.Context, owner string)
	OnFetchComplete(ctx context.Context, owner string, repoCount int, duration time.Duration, err error)

	// OnEnrich is called once per project after its README lookup.
	OnEnrich(ctx context.Context, project string, duration time.Duration, err error)

	// OnCategorize reports bucket sizes.
	OnCategorize(ctx context.Context, featured, other, archived int)

	// OnFallback is called when the pipeline degrades to the fallback list.
	OnFallback(ctx context.Context, owner string, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// ContactHooks receives events from the contact form.
type ContactHooks interface {
	// OnSubmit records a stored (err == nil) or rejected submission.
	OnSubmit(ctx context.Context, store string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnFetchStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnFetchComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnEnrich(context.Context, string, time.Duration, error)             {}
func (NoopPipelineHooks) OnCategorize(context.Context, int, int, int)                        {}
func (NoopPipelineHooks) OnFallback(context.Context, string, error)                          {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// NoopContactHooks is a no-op implementation of ContactHooks.
type NoopContactHooks struct{}

func (NoopContactHooks) OnSubmit(context.Context, string, time.Duration, error) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	httpHooks     HTTPHooks     = NoopHTTPHooks{}
	contactHooks  ContactHooks  = NoopContactHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. Nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks. Nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// SetContactHooks registers custom contact hooks. Nil is ignored.
func SetContactHooks(h ContactHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		contactHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Contact returns the registered contact hooks.
func Contact() ContactHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return contactHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
	contactHooks = NoopContactHooks{}
}
