package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnFetchStart(ctx, "octocat")
	p.OnFetchComplete(ctx, "octocat", 12, time.Second, nil)
	p.OnEnrich(ctx, "hello-world", time.Millisecond, nil)
	p.OnCategorize(ctx, 3, 8, 1)
	p.OnFallback(ctx, "octocat", errors.New("403"))

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "repos")
	c.OnCacheMiss(ctx, "readme")
	c.OnCacheSet(ctx, "readme", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "api.github.com", "/users/octocat/repos")
	h.OnResponse(ctx, "GET", "api.github.com", "/users/octocat/repos", 200, time.Second)
	h.OnError(ctx, "GET", "api.github.com", "/users/octocat/repos", nil)

	NoopContactHooks{}.OnSubmit(ctx, "memory", time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}
	if _, ok := Contact().(NoopContactHooks); !ok {
		t.Error("Contact() should return NoopContactHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
}

func TestLogHooks(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	NewLogHooks(logger).Register()

	ctx := context.Background()
	Pipeline().OnFetchComplete(ctx, "octocat", 7, time.Second, nil)
	Pipeline().OnFallback(ctx, "octocat", errors.New("GitHub API error: 403"))
	Cache().OnCacheHit(ctx, "readme")
	Contact().OnSubmit(ctx, "sqlite", time.Millisecond, nil)

	out := buf.String()
	for _, want := range []string{"fetched repositories", "count=7", "using fallback projects", "cache hit", "contact submission stored"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
