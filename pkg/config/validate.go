package config

import (
	"slices"
	"strings"

	"github.com/matzehuels/showcase/pkg/errors"
)

var (
	validSortKeys   = []string{SortCreated, SortUpdated, SortStars, SortName}
	validSortOrders = []string{OrderAsc, OrderDesc}
	validTabs       = []string{"featured", "other", "archived"}
	validStores     = []string{StoreMemory, StoreSQLite, StoreMongo}
	validBackends   = []string{CacheFile, CacheRedis, CacheNone}
)

// Validate checks the configuration and returns the first problem found as
// an INVALID_CONFIG error. Call SetDefaults first for configs built in code.
func (c *Config) Validate() error {
	if err := errors.ValidateOwner(c.Owner); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "owner")
	}
	if err := errors.ValidateURL(c.APIURL); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "api_url")
	}
	if !strings.Contains(c.RawURLTemplate, "{path}") {
		return errors.New(errors.ErrCodeInvalidConfig, "raw_url_template must contain {path}")
	}
	if c.PageSize < 1 || c.PageSize > 100 {
		return errors.New(errors.ErrCodeInvalidConfig, "page_size must be between 1 and 100, got %d", c.PageSize)
	}
	if c.Concurrency < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "concurrency cannot be negative")
	}

	for list, names := range map[string][]string{"featured": c.Featured, "archived": c.Archived, "hidden": c.Hidden} {
		for _, name := range names {
			if err := errors.ValidateProjectName(name); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s list", list)
			}
		}
	}
	for name, o := range c.Overrides {
		if err := errors.ValidateProjectName(name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "overrides")
		}
		if o.LiveURL != "" {
			if err := errors.ValidateURL(o.LiveURL); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidConfig, err, "overrides.%s.live_url", name)
			}
		}
	}

	d := c.Display
	if !slices.Contains(validSortKeys, d.SortOtherBy) {
		return errors.New(errors.ErrCodeInvalidConfig, "display.sort_other_by must be one of %v, got %q", validSortKeys, d.SortOtherBy)
	}
	if !slices.Contains(validSortOrders, d.SortOrder) {
		return errors.New(errors.ErrCodeInvalidConfig, "display.sort_order must be asc or desc, got %q", d.SortOrder)
	}
	if !slices.Contains(validTabs, d.DefaultTab) {
		return errors.New(errors.ErrCodeInvalidConfig, "display.default_tab must be one of %v, got %q", validTabs, d.DefaultTab)
	}
	if d.DefaultTab == "archived" && !d.ShowArchived {
		return errors.New(errors.ErrCodeInvalidConfig, "display.default_tab is archived but show_archived is false")
	}
	if d.ProjectsPerPage < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "display.projects_per_page must be positive")
	}

	for i, f := range c.Fallback {
		if f.Name == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "fallback[%d] needs a name", i)
		}
	}

	if !slices.Contains(validStores, c.Contact.Store) {
		return errors.New(errors.ErrCodeInvalidConfig, "contact.store must be one of %v, got %q", validStores, c.Contact.Store)
	}
	if c.Contact.Store == StoreSQLite && c.Contact.SQLitePath == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "contact.sqlite_path is required for the sqlite store")
	}
	if c.Contact.Store == StoreMongo && c.Contact.MongoURI == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "contact.mongo_uri (or %s) is required for the mongo store", EnvMongoURI)
	}

	if !slices.Contains(validBackends, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.backend must be one of %v, got %q", validBackends, c.Cache.Backend)
	}
	if c.Cache.Backend == CacheRedis && c.Cache.RedisURL == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_url (or %s) is required for the redis backend", EnvRedisURL)
	}
	return nil
}
