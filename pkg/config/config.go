// Package config loads the curated showcase configuration: which account to
// list, how projects are categorized and ordered, per-project overrides,
// and the settings of the contact store, cache and HTTP server.
//
// Configuration is read from TOML:
//
//	owner    = "octocat"
//	featured = ["hello-world", "spoon-knife"]
//	hidden   = ["scratch"]
//
//	[overrides.hello-world]
//	display_name       = "Hello World"
//	custom_description = "The classic first repository."
//	tags               = ["Go", "CLI"]
//	highlight          = true
//
//	[display]
//	sort_other_by = "stars"
//	sort_order    = "desc"
//
// A loaded Config is treated as immutable: the pipeline reads it but never
// writes to it, and the accessors return copies.
package config

import (
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/showcase/pkg/project"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "showcase.toml"

// Defaults for settings that are not curated content.
const (
	DefaultAPIURL          = "https://api.github.com"
	DefaultRawURLTemplate  = "https://raw.githubusercontent.com/{owner}/{repo}/{branch}/{path}"
	DefaultPageSize        = 100
	DefaultProjectsPerPage = 6
	DefaultAddr            = ":8080"
	DefaultRefresh         = 10 * time.Minute
	DefaultMongoDatabase   = "portfolio"
	DefaultCollection      = "contacts"
)

// Sort keys for the "other" bucket.
const (
	SortCreated = "created"
	SortUpdated = "updated"
	SortStars   = "stars"
	SortName    = "name"
)

// Sort orders.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Contact store backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreMongo  = "mongo"
)

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Config is the complete showcase configuration.
type Config struct {
	Owner          string   `toml:"owner"`
	Token          string   `toml:"token,omitempty"`
	APIURL         string   `toml:"api_url"`
	RawURLTemplate string   `toml:"raw_url_template"`
	PageSize       int      `toml:"page_size"`
	Concurrency    int      `toml:"concurrency"`
	HTTPTimeout    Duration `toml:"http_timeout"`

	Featured  []string            `toml:"featured"`
	Archived  []string            `toml:"archived"`
	Hidden    []string            `toml:"hidden"`
	Overrides map[string]Override `toml:"overrides"`

	Display  Display    `toml:"display"`
	Fallback []Fallback `toml:"fallback"`
	Contact  Contact    `toml:"contact"`
	Server   Server     `toml:"server"`
	Cache    Cache      `toml:"cache"`

	// overrideOrder holds override names in declaration order.
	overrideOrder []string
}

// Override is curated metadata for one project, keyed by exact name.
// Every field is optional.
type Override struct {
	DisplayName       string   `toml:"display_name,omitempty"`
	CustomDescription string   `toml:"custom_description,omitempty"`
	Tags              []string `toml:"tags,omitempty"`
	Highlight         bool     `toml:"highlight,omitempty"`
	Featured          bool     `toml:"featured,omitempty"`
	LiveURL           string   `toml:"live_url,omitempty"`
	IsLocalProject    bool     `toml:"is_local_project,omitempty"`
	LocalMediaPath    string   `toml:"local_media_path,omitempty"`
}

// Display holds presentation settings consumed by the browser and the API.
type Display struct {
	ShowArchived    bool   `toml:"show_archived"`
	DefaultTab      string `toml:"default_tab"`
	ProjectsPerPage int    `toml:"projects_per_page"`
	SortOtherBy     string `toml:"sort_other_by"`
	SortOrder       string `toml:"sort_order"`
}

// Tabs returns the categories shown to visitors. Hidden projects are never
// shown; archived ones only with ShowArchived.
func (d Display) Tabs() []project.Category {
	if d.ShowArchived {
		return []project.Category{project.Featured, project.Other, project.Archived}
	}
	return []project.Category{project.Featured, project.Other}
}

// Fallback is a static project shown when the repository list is
// unavailable.
type Fallback struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	HTMLURL     string `toml:"html_url"`
	Homepage    string `toml:"homepage,omitempty"`
	Language    string `toml:"language,omitempty"`
	Stars       int    `toml:"stars,omitempty"`
	Forks       int    `toml:"forks,omitempty"`
	Image       string `toml:"image,omitempty"`
	Readme      string `toml:"readme,omitempty"`
}

// Contact configures where contact-form submissions are stored.
type Contact struct {
	Store      string `toml:"store"`
	SQLitePath string `toml:"sqlite_path,omitempty"`
	MongoURI   string `toml:"mongo_uri,omitempty"`
	Database   string `toml:"database,omitempty"`
	Collection string `toml:"collection"`
}

// Server configures `showcase serve`.
type Server struct {
	Addr            string   `toml:"addr"`
	RefreshInterval Duration `toml:"refresh_interval"`
}

// Cache configures the API response cache.
type Cache struct {
	Backend  string `toml:"backend"`
	Dir      string `toml:"dir,omitempty"`
	RedisURL string `toml:"redis_url,omitempty"`
	Prefix   string `toml:"prefix,omitempty"`
}

// Override returns a copy of the override for name.
func (c *Config) Override(name string) (Override, bool) {
	o, ok := c.Overrides[name]
	if !ok {
		return Override{}, false
	}
	o.Tags = slices.Clone(o.Tags)
	return o, true
}

// OverrideNames returns override names in declaration order. Configs built
// in code without Load fall back to sorted order.
func (c *Config) OverrideNames() []string {
	if len(c.overrideOrder) == len(c.Overrides) {
		return slices.Clone(c.overrideOrder)
	}
	names := make([]string, 0, len(c.Overrides))
	for name := range c.Overrides {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LocalProjects returns the names of overrides flagged as local projects,
// in declaration order.
func (c *Config) LocalProjects() []string {
	var names []string
	for _, name := range c.OverrideNames() {
		if c.Overrides[name].IsLocalProject {
			names = append(names, name)
		}
	}
	return names
}

// SetOverrideOrder fixes the declaration order for configs built in code.
// Names without an override are ignored.
func (c *Config) SetOverrideOrder(names ...string) {
	c.overrideOrder = nil
	for _, n := range names {
		if _, ok := c.Overrides[n]; ok {
			c.overrideOrder = append(c.overrideOrder, n)
		}
	}
}

// RawURL fills the raw-content template for a file in a repository.
// A leading "./" or "/" on path is dropped.
func (c *Config) RawURL(owner, repo, branch, path string) string {
	tmpl := c.RawURLTemplate
	if tmpl == "" {
		tmpl = DefaultRawURLTemplate
	}
	path = strings.TrimPrefix(strings.TrimPrefix(path, "./"), "/")
	return strings.NewReplacer(
		"{owner}", owner,
		"{repo}", repo,
		"{branch}", branch,
		"{path}", path,
	).Replace(tmpl)
}
