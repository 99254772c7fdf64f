package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/showcase/pkg/buildinfo"
	"github.com/matzehuels/showcase/pkg/cache"
	"github.com/matzehuels/showcase/pkg/config"
	"github.com/matzehuels/showcase/pkg/integrations/github"
	"github.com/matzehuels/showcase/pkg/observability"
	"github.com/matzehuels/showcase/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "showcase"

	// dotenvFile is loaded before the config so secrets can live outside it.
	dotenvFile = ".env"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output; tests replace it.
	Out io.Writer

	// Global flags
	configPath string
	verbose    bool
	noCache    bool
	refresh    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Showcase curates a GitHub account into a project portfolio",
		Long:         `Showcase lists an account's repositories, derives descriptions and preview images from their READMEs, applies curated overrides and sorts the result into featured, other and archived projects.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
				observability.NewLogHooks(c.Logger).Register()
			}
			if err := config.LoadDotenv(dotenvFile); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", config.DefaultPath, "config file (built-in defaults if missing)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.BoolVar(&c.noCache, "no-cache", false, "disable the API response cache")
	flags.BoolVar(&c.refresh, "refresh", false, "ignore cached API responses")

	// Register all subcommands
	root.AddCommand(c.projectsCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.contactCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config & Runner Factory
// =============================================================================

// loadConfig reads the config file named by --config.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(c.configPath)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded config", "path", c.configPath, "owner", cfg.Owner)
	return cfg, nil
}

// newRunner creates a pipeline runner backed by the GitHub API. The returned
// cache must be closed by the caller.
func (c *CLI) newRunner(ctx context.Context, cfg *config.Config) (*pipeline.Runner, cache.Cache, error) {
	cc, err := c.newCache(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	var keyer cache.Keyer
	if cfg.Cache.Prefix != "" {
		keyer = cache.NewScopedKeyer(nil, cfg.Cache.Prefix)
	}
	client := github.NewClient(github.Options{
		BaseURL: cfg.APIURL,
		Token:   cfg.Token,
		Cache:   cc,
		Keyer:   keyer,
		Timeout: cfg.HTTPTimeout.Duration,
	})
	return pipeline.NewRunner(client, cfg, c.Logger), cc, nil
}

// runOptions returns per-run options from the global flags.
func (c *CLI) runOptions() pipeline.Options {
	return pipeline.Options{Refresh: c.refresh}
}

// newCache creates the response cache selected by the config, or a
// NullCache with --no-cache. A file cache that cannot be created falls back
// to no caching.
func (c *CLI) newCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}

	switch cfg.Cache.Backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheRedis:
		rc, err := cache.NewRedisCache(ctx, cfg.Cache.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return rc, nil
	default:
		dir, err := cacheDir(cfg)
		if err != nil {
			c.Logger.Warn("cache disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			c.Logger.Warn("cache disabled", "dir", dir, "err", err)
			return cache.NewNullCache(), nil
		}
		return fc, nil
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the file cache directory: cache.dir from the config, or
// the user cache directory (~/.cache/showcase on Linux).
func cacheDir(cfg *config.Config) (string, error) {
	if cfg != nil && cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	return cache.DefaultDir()
}
