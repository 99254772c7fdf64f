package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. Errors are
// logged at warn level. It implements all hook interfaces and is what
// `showcase --verbose` registers.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks creates hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

// Register installs h as every hook category.
func (h *LogHooks) Register() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
	SetContactHooks(h)
}

func (h *LogHooks) OnFetchStart(_ context.Context, owner string) {
	h.logger.Debug("fetching repositories", "owner", owner)
}

func (h *LogHooks) OnFetchComplete(_ context.Context, owner string, n int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("repository fetch failed", "owner", owner, "error", err, "duration", d)
		return
	}
	h.logger.Debug("fetched repositories", "owner", owner, "count", n, "duration", d)
}

func (h *LogHooks) OnEnrich(_ context.Context, project string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("readme unavailable", "project", project, "error", err)
		return
	}
	h.logger.Debug("enriched", "project", project, "duration", d)
}

func (h *LogHooks) OnCategorize(_ context.Context, featured, other, archived int) {
	h.logger.Debug("categorized", "featured", featured, "other", other, "archived", archived)
}

func (h *LogHooks) OnFallback(_ context.Context, owner string, err error) {
	h.logger.Warn("using fallback projects", "owner", owner, "error", err)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "host", host, "path", path, "status", status, "duration", d)
}

func (h *LogHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Warn("request failed", "method", method, "host", host, "path", path, "error", err)
}

func (h *LogHooks) OnSubmit(_ context.Context, store string, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("contact submission failed", "store", store, "error", err)
		return
	}
	h.logger.Debug("contact submission stored", "store", store, "duration", d)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
	_ ContactHooks  = (*LogHooks)(nil)
)
