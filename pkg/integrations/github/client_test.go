package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matzehuels/showcase/pkg/cache"
	"github.com/matzehuels/showcase/pkg/integrations"
)

func testClient(t *testing.T, serverURL, token string) *Client {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewClient(Options{BaseURL: serverURL, Token: token, Cache: c})
}

func TestClient_ListRepos(t *testing.T) {
	var gotAuth, gotAccept, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/octocat/repos" {
			http.NotFound(w, r)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "name": "hello-world", "full_name": "octocat/hello-world",
			 "description": null, "stargazers_count": 42, "fork": false,
			 "created_at": "2024-01-02T03:04:05Z", "default_branch": "main"},
			{"id": 2, "name": "forked", "fork": true}
		]`))
	}))
	defer server.Close()

	c := testClient(t, server.URL, "secret")

	repos, err := c.ListRepos(context.Background(), "octocat", 0, true)
	if err != nil {
		t.Fatalf("ListRepos() error: %v", err)
	}
	if len(repos) != 2 {
		t.Fatalf("got %d repos, want 2", len(repos))
	}
	if repos[0].Stars != 42 || repos[0].Description != "" || repos[0].CreatedAt != "2024-01-02T03:04:05Z" {
		t.Errorf("unexpected first repo: %+v", repos[0])
	}
	if !repos[1].Fork {
		t.Error("fork flag not decoded")
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotAccept != "application/vnd.github.v3+json" {
		t.Errorf("Accept = %q", gotAccept)
	}
	if gotQuery != "per_page=100" {
		t.Errorf("query = %q, want per_page=100", gotQuery)
	}
}

func TestClient_ListReposNoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("unexpected Authorization header %q", auth)
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	repos, err := testClient(t, server.URL, "").ListRepos(context.Background(), "octocat", 100, true)
	if err != nil {
		t.Fatalf("ListRepos() error: %v", err)
	}
	if len(repos) != 0 {
		t.Errorf("got %d repos, want 0", len(repos))
	}
}

func TestClient_ListReposForbidden(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := testClient(t, server.URL, "").ListRepos(context.Background(), "octocat", 100, false)

	var se *integrations.StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusForbidden {
		t.Fatalf("ListRepos() error = %v, want StatusError 403", err)
	}
	if calls != 1 {
		t.Errorf("list endpoint called %d times, want 1", calls)
	}
}

func TestClient_ListReposCached(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`[{"name": "a"}]`))
	}))
	defer server.Close()

	c := testClient(t, server.URL, "")
	for i := 0; i < 2; i++ {
		if _, err := c.ListRepos(context.Background(), "octocat", 100, false); err != nil {
			t.Fatal(err)
		}
	}
	if calls != 1 {
		t.Errorf("list endpoint called %d times, want 1", calls)
	}
}

func TestClient_FetchReadme(t *testing.T) {
	text := "# Título\n\nUn proyecto con descripción en español y emoji ✨ que supera veinte caracteres.\n"
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	// GitHub wraps base64 content at 60 characters.
	var wrapped strings.Builder
	for i := 0; i < len(encoded); i += 60 {
		end := min(i+60, len(encoded))
		wrapped.WriteString(encoded[i:end])
		wrapped.WriteString("\n")
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/octocat/hello-world/readme":
			json.NewEncoder(w).Encode(contentResponse{Content: wrapped.String(), Encoding: "base64"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := testClient(t, server.URL, "")

	got, err := c.FetchReadme(context.Background(), "octocat", "hello-world", true)
	if err != nil {
		t.Fatalf("FetchReadme() error: %v", err)
	}
	if got != text {
		t.Errorf("FetchReadme() = %q, want %q", got, text)
	}

	_, err = c.FetchReadme(context.Background(), "octocat", "no-readme", true)
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("FetchReadme() error = %v, want ErrNotFound", err)
	}
}

func TestDecodeContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		encoding string
		want     string
		wantErr  bool
	}{
		{"base64", base64.StdEncoding.EncodeToString([]byte("héllo")), "base64", "héllo", false},
		{"plain", "hello", "", "hello", false},
		{"invalid utf8", base64.StdEncoding.EncodeToString([]byte{'a', 0xff, 'b'}), "base64", "a\uFFFDb", false},
		{"bad base64", "!!!", "base64", "", true},
		{"unknown encoding", "x", "gzip", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeContent(tt.content, tt.encoding)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeContent() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("DecodeContent() = %q, want %q", got, tt.want)
			}
		})
	}
}
