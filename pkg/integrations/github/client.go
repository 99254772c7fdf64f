package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/matzehuels/showcase/pkg/cache"
	"github.com/matzehuels/showcase/pkg/integrations"
)

// DefaultBaseURL is the public GitHub REST API.
const DefaultBaseURL = "https://api.github.com"

// DefaultPageSize is the largest page the list endpoint accepts.
const DefaultPageSize = 100

// Options configures a Client. The zero value talks to the public API
// without authentication or caching.
type Options struct {
	BaseURL string        // API root, DefaultBaseURL if empty
	Token   string        // Optional bearer token
	Cache   cache.Cache   // Response cache, NullCache if nil
	Keyer   cache.Keyer   // Cache key scheme, DefaultKeyer if nil
	Timeout time.Duration // Per-request timeout, none if zero
}

// Client provides access to the GitHub API for listing repositories and
// fetching READMEs.
type Client struct {
	*integrations.Client
	baseURL string
	keyer   cache.Keyer
}

// NewClient creates a GitHub API client.
func NewClient(opts Options) *Client {
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if opts.Token != "" {
		headers["Authorization"] = "Bearer " + opts.Token
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Keyer == nil {
		opts.Keyer = cache.NewDefaultKeyer()
	}

	client := integrations.NewClient(opts.Cache, "github", cache.TTLRepos, headers)
	client.SetTimeout(opts.Timeout)

	return &Client{
		Client:  client,
		baseURL: strings.TrimSuffix(opts.BaseURL, "/"),
		keyer:   opts.Keyer,
	}
}

// ListRepos returns the repositories owned by owner, first page only.
// A non-200 response is returned as an [integrations.StatusError].
// If refresh is true, cached data is bypassed.
func (c *Client) ListRepos(ctx context.Context, owner string, perPage int, refresh bool) ([]Repo, error) {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}

	var repos []Repo
	err := c.CachedFor(ctx, c.keyer.ReposKey(owner, perPage), cache.TTLRepos, refresh, &repos, func() error {
		u := fmt.Sprintf("%s/users/%s/repos?per_page=%d", c.baseURL, url.PathEscape(owner), perPage)
		return c.Get(ctx, u, &repos)
	})
	if err != nil {
		return nil, err
	}
	return repos, nil
}
