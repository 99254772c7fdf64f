// Package pipeline turns an account's repositories into the categorized
// project listing shown by the CLI and served by the HTTP API.
//
// # Stages
//
//  1. Fetch: list the owner's repositories, drop forks, prepend local
//     projects synthesized from configuration
//  2. Enrich: derive a description and preview image for every project from
//     its README, concurrently and with per-project failure isolation
//  3. Merge: apply curated overrides (display name, description, tags, flags)
//  4. Categorize: partition into featured / other / archived / hidden and
//     order each bucket
//
// Merge and Categorize are pure functions of their inputs and the config.
//
// # Usage
//
//	client := github.NewClient(github.Options{Token: cfg.Token, Cache: c})
//	runner := pipeline.NewRunner(client, cfg, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{})
//	if err != nil {
//	    return err // only cancellation ends up here
//	}
//	if result.Degraded {
//	    logger.Warn("showing fallback projects", "reason", result.Warning)
//	}
//
// A failed repository listing never surfaces as an error from Execute: the
// result is marked Degraded and built from the configured fallback projects.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/showcase/pkg/config"
	"github.com/matzehuels/showcase/pkg/project"
)

// Options contains per-run settings. Zero values fall back to the config.
type Options struct {
	Owner       string      `json:"owner,omitempty"`
	PageSize    int         `json:"page_size,omitempty"`
	Concurrency int         `json:"concurrency,omitempty"` // 0 means one goroutine per project
	Refresh     bool        `json:"refresh,omitempty"`     // Bypass the response cache
	Logger      *log.Logger `json:"-"`
}

// SetDefaults fills unset options from cfg. It is idempotent.
func (o *Options) SetDefaults(cfg *config.Config) {
	if o.Owner == "" {
		o.Owner = cfg.Owner
	}
	if o.PageSize == 0 {
		o.PageSize = cfg.PageSize
	}
	if o.Concurrency == 0 {
		o.Concurrency = cfg.Concurrency
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Buckets is the categorized project listing.
	Buckets project.Buckets `json:"projects"`

	// Stats summarizes Buckets.
	Stats project.Stats `json:"stats"`

	// Degraded is set when the repository listing failed and Buckets was
	// built from the fallback projects.
	Degraded bool `json:"degraded"`

	// Warning is a user-facing explanation of a degraded result.
	Warning string `json:"warning,omitempty"`

	// FetchErr is the listing failure behind a degraded result.
	FetchErr error `json:"-"`

	// EnrichFailures counts projects whose README could not be used.
	EnrichFailures int `json:"enrich_failures"`

	// Timings contains per-stage durations.
	Timings Timings `json:"-"`

	// GeneratedAt is when the run finished.
	GeneratedAt time.Time `json:"generated_at"`
}

// Timings contains pipeline execution statistics.
type Timings struct {
	FetchTime      time.Duration
	EnrichTime     time.Duration
	CategorizeTime time.Duration
}
