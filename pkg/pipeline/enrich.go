package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/showcase/pkg/config"
	"github.com/matzehuels/showcase/pkg/observability"
	"github.com/matzehuels/showcase/pkg/project"
	"github.com/matzehuels/showcase/pkg/readme"
)

// NoDescription is used when a repository has neither a description nor
// usable README prose.
const NoDescription = "No description available"

// Enrich derives a description and preview image for every repository.
// Projects are enriched concurrently, at most opts.Concurrency at a time
// (unbounded if zero). A failure affects only its own project, which keeps
// its existing description and the generated preview image. The output is
// in input order; failures reports how many READMEs could not be used.
func Enrich(ctx context.Context, src Source, cfg *config.Config, repos []project.Repository, opts Options) (out []project.Project, failures int) {
	out = make([]project.Project, len(repos))
	errs := make([]error, len(repos))

	var g errgroup.Group
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for i, r := range repos {
		g.Go(func() error {
			start := time.Now()
			out[i], errs[i] = enrichOne(ctx, src, cfg, r, opts)
			if !r.Local {
				observability.Pipeline().OnEnrich(ctx, r.Name, time.Since(start), errs[i])
			}
			return nil
		})
	}
	_ = g.Wait()

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	for i, err := range errs {
		if err != nil {
			failures++
			logger.Warn("could not enrich project", "project", repos[i].Name, "err", err)
		}
	}
	return out, failures
}

func enrichOne(ctx context.Context, src Source, cfg *config.Config, r project.Repository, opts Options) (project.Project, error) {
	p := project.New(r)

	description := r.Description
	if description == "" {
		description = NoDescription
	}

	if r.Local {
		o, _ := cfg.Override(r.Name)
		p.Readme = description
		if o.CustomDescription != "" {
			p.Readme = o.CustomDescription
		}
		p.Image = readme.LocalImage(o.LocalMediaPath)
		return p, nil
	}

	p.Readme = description
	p.Image = readme.DefaultImage(r.FullName)

	text, err := src.FetchReadme(ctx, opts.Owner, r.Name, opts.Refresh)
	if err != nil {
		return p, err
	}

	if d, ok := readme.Description(text); ok {
		p.Readme = d
	}
	resolve := func(path string) string {
		return cfg.RawURL(opts.Owner, r.Name, r.DefaultBranch, path)
	}
	if img := readme.Image(text, resolve); img != "" {
		p.Image = img
	}
	return p, nil
}
