package config

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/matzehuels/showcase/pkg/errors"
)

// Environment variables that override file values.
const (
	EnvToken    = "GITHUB_TOKEN"
	EnvOwner    = "SHOWCASE_OWNER"
	EnvMongoURI = "SHOWCASE_MONGO_URI"
	EnvRedisURL = "SHOWCASE_REDIS_URL"
)

// Load reads the TOML file at path, applies defaults and environment
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// LoadOrDefault is Load, except that a missing file yields [Default].
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		cfg = Default()
		cfg.ApplyEnv()
		return cfg, cfg.Validate()
	}
	return cfg, err
}

// Parse decodes TOML from r. Unknown keys are rejected so typos in
// override names or settings surface immediately.
func Parse(r io.Reader) (*Config, error) {
	var cfg Config
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}

	seen := make(map[string]bool)
	for _, key := range md.Keys() {
		if len(key) >= 2 && key[0] == "overrides" && !seen[key[1]] {
			seen[key[1]] = true
			cfg.overrideOrder = append(cfg.overrideOrder, key[1])
		}
	}

	cfg.SetDefaults()
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDotenv loads KEY=value pairs from the given files (".env" if none)
// into the process environment. Missing files are ignored and existing
// variables are not overwritten.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); stderrors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", p)
		}
	}
	return nil
}

// ApplyEnv copies set environment variables over file values.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvToken); v != "" {
		c.Token = v
	}
	if v := os.Getenv(EnvOwner); v != "" {
		c.Owner = v
	}
	if v := os.Getenv(EnvMongoURI); v != "" {
		c.Contact.MongoURI = v
	}
	if v := os.Getenv(EnvRedisURL); v != "" {
		c.Cache.RedisURL = v
	}
}

// SetDefaults fills unset non-curated settings. It is idempotent.
func (c *Config) SetDefaults() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.RawURLTemplate == "" {
		c.RawURLTemplate = DefaultRawURLTemplate
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.Overrides == nil {
		c.Overrides = map[string]Override{}
	}

	d := &c.Display
	if d.DefaultTab == "" {
		d.DefaultTab = "featured"
	}
	if d.ProjectsPerPage == 0 {
		d.ProjectsPerPage = DefaultProjectsPerPage
	}
	if d.SortOtherBy == "" {
		d.SortOtherBy = SortCreated
	}
	if d.SortOrder == "" {
		d.SortOrder = OrderDesc
	}

	if c.Contact.Store == "" {
		c.Contact.Store = StoreMemory
	}
	if c.Contact.Database == "" {
		c.Contact.Database = DefaultMongoDatabase
	}
	if c.Contact.Collection == "" {
		c.Contact.Collection = DefaultCollection
	}

	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.RefreshInterval.Duration == 0 {
		c.Server.RefreshInterval.Duration = DefaultRefresh
	}

	if c.Cache.Backend == "" {
		c.Cache.Backend = CacheFile
	}
}

// Encode writes the configuration as TOML. Secrets are omitted.
func (c *Config) Encode(w io.Writer) error {
	out := *c
	out.Token = ""
	out.Contact.MongoURI = redact(out.Contact.MongoURI)
	out.Cache.RedisURL = redact(out.Cache.RedisURL)
	return toml.NewEncoder(w).Encode(out)
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "<set>"
}
