package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/showcase/pkg/config"
	"github.com/matzehuels/showcase/pkg/errors"
	"github.com/matzehuels/showcase/pkg/observability"
	"github.com/matzehuels/showcase/pkg/project"
)

// Runner executes the pipeline against a Source with a fixed configuration.
//
// The Runner is stateless apart from its dependencies: it doesn't store
// results, and multiple goroutines can use the same Runner concurrently.
type Runner struct {
	Source Source
	Config *config.Config
	Logger *log.Logger

	// Now returns the current time; local project timestamps use it.
	Now func() time.Time
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(src Source, cfg *config.Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Source: src,
		Config: cfg,
		Logger: logger,
		Now:    time.Now,
	}
}

// Execute runs fetch → enrich → merge → categorize.
//
// A failed repository listing does not produce an error: the result is
// marked Degraded and built from the configured fallback projects (empty
// if there are none). The only error returned is the context's, when the
// run is cancelled.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	opts.SetDefaults(r.Config)
	hooks := observability.Pipeline()
	result := &Result{}

	// Stage 1: Fetch
	fetchStart := time.Now()
	hooks.OnFetchStart(ctx, opts.Owner)
	repos, err := Fetch(ctx, r.Source, r.Config, opts, r.Now())
	result.Timings.FetchTime = time.Since(fetchStart)
	hooks.OnFetchComplete(ctx, opts.Owner, len(repos), result.Timings.FetchTime, err)

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		hooks.OnFallback(ctx, opts.Owner, err)
		r.Logger.Warn("repository list unavailable, using fallback projects",
			"owner", opts.Owner,
			"err", err,
			"fallback", len(r.Config.Fallback))
		return r.degraded(err), nil
	}

	r.Logger.Info("fetched repositories",
		"owner", opts.Owner,
		"projects", len(repos),
		"duration", result.Timings.FetchTime)

	// Stage 2: Enrich
	enrichStart := time.Now()
	projects, failures := Enrich(ctx, r.Source, r.Config, repos, opts)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result.EnrichFailures = failures
	result.Timings.EnrichTime = time.Since(enrichStart)

	r.Logger.Info("enriched projects",
		"projects", len(projects),
		"failures", failures,
		"duration", result.Timings.EnrichTime)

	// Stage 3+4: Merge and categorize
	categorizeStart := time.Now()
	result.Buckets = Categorize(Merge(projects, r.Config), r.Config)
	result.Stats = project.ComputeStats(result.Buckets)
	result.Timings.CategorizeTime = time.Since(categorizeStart)
	result.GeneratedAt = r.Now()

	hooks.OnCategorize(ctx, len(result.Buckets.Featured), len(result.Buckets.Other), len(result.Buckets.Archived))
	return result, nil
}

// degraded builds the result shown when the repository list is unavailable.
func (r *Runner) degraded(err error) *Result {
	b := Categorize(Merge(FallbackProjects(r.Config), r.Config), r.Config)
	return &Result{
		Buckets:     b,
		Stats:       project.ComputeStats(b),
		Degraded:    true,
		Warning:     warning(err),
		FetchErr:    err,
		GeneratedAt: r.Now(),
	}
}

// FallbackProjects converts the configured fallback entries to projects.
func FallbackProjects(cfg *config.Config) []project.Project {
	out := make([]project.Project, 0, len(cfg.Fallback))
	for i, f := range cfg.Fallback {
		p := project.New(project.Repository{
			ID:          fmt.Sprintf("fallback-%d", i+1),
			Name:        f.Name,
			FullName:    cfg.Owner + "/" + f.Name,
			Description: f.Description,
			Homepage:    f.Homepage,
			HTMLURL:     f.HTMLURL,
			Stars:       f.Stars,
			Forks:       f.Forks,
			Language:    f.Language,
		})
		p.Readme = firstNonEmpty(f.Readme, firstNonEmpty(f.Description, NoDescription))
		p.Image = f.Image
		out = append(out, p)
	}
	return out
}

// warning turns a listing failure into a message for end users.
func warning(err error) string {
	switch {
	case errors.Is(err, errors.ErrCodeRateLimited):
		return "GitHub rate limit reached; showing saved projects. Set GITHUB_TOKEN to raise the limit."
	case errors.Is(err, errors.ErrCodeUnauthorized):
		return "GitHub rejected the access token; showing saved projects."
	case errors.Is(err, errors.ErrCodeNotFound):
		return "GitHub account not found; showing saved projects."
	case errors.Is(err, errors.ErrCodeNetwork):
		return "GitHub is unreachable; showing saved projects."
	default:
		return "Projects could not be loaded from GitHub; showing saved projects."
	}
}
