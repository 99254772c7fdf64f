package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if _, hit, _ := c.Get(ctx, "missing"); hit {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set(ctx, "repos", []byte(`[{"name":"a"}]`), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "repos")
	if err != nil || !hit {
		t.Fatalf("Get = hit %v, err %v", hit, err)
	}
	if string(data) != `[{"name":"a"}]` {
		t.Errorf("Get = %s", data)
	}

	if err := c.Delete(ctx, "repos"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "repos"); hit {
		t.Error("expected miss after Delete")
	}
	if err := c.Delete(ctx, "repos"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expected expired entry to miss")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, hit, err := c.Get(ctx, "k")
	if err != nil || hit {
		t.Errorf("Get on corrupt entry = hit %v, err %v", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear removed %d entries, want 3", n)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("expected miss after Clear")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	if got := k.HTTPKey("github", "/users/octocat/repos"); got != "http:github:/users/octocat/repos" {
		t.Errorf("HTTPKey = %s", got)
	}

	if k.ReposKey("Octocat", 100) != k.ReposKey("octocat", 100) {
		t.Error("ReposKey should ignore owner case")
	}
	if k.ReposKey("octocat", 100) == k.ReposKey("octocat", 30) {
		t.Error("ReposKey should depend on page size")
	}
	if !strings.HasPrefix(k.ReposKey("octocat", 100), "repos:") {
		t.Error("ReposKey should carry the repos prefix")
	}

	if k.ReadmeKey("octocat", "a") == k.ReadmeKey("octocat", "b") {
		t.Error("ReadmeKey should depend on repository")
	}
	if !strings.HasPrefix(k.ReadmeKey("octocat", "a"), "readme:") {
		t.Error("ReadmeKey should carry the readme prefix")
	}
}

func TestScopedKeyer(t *testing.T) {
	base := NewDefaultKeyer()
	scoped := NewScopedKeyer(nil, "tenant:")

	if got, want := scoped.ReadmeKey("o", "r"), "tenant:"+base.ReadmeKey("o", "r"); got != want {
		t.Errorf("ReadmeKey = %s, want %s", got, want)
	}
	if got, want := scoped.ReposKey("o", 100), "tenant:"+base.ReposKey("o", 100); got != want {
		t.Errorf("ReposKey = %s, want %s", got, want)
	}
	if got := scoped.HTTPKey("ns", "k"); got != "tenant:http:ns:k" {
		t.Errorf("HTTPKey = %s", got)
	}
}
