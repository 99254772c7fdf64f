// Package pkg provides the core libraries for the showcase project portfolio.
//
// # Overview
//
// Showcase turns a GitHub account into a curated portfolio: repositories are
// listed, described from their READMEs, decorated with hand-written overrides
// and sorted into featured, other, archived and hidden projects. The pkg
// directory is organized into four main areas:
//
//  1. [project] and [readme] - Domain types and README extraction
//  2. [pipeline] - Orchestration (fetch → enrich → merge → categorize)
//  3. [integrations] - The GitHub API client
//  4. [cache], [contact], [config] - Infrastructure
//
// # Architecture
//
// The typical data flow through showcase:
//
//	GitHub repository listing (+ local projects from config)
//	         ↓
//	    [pipeline] fetch stage (drop forks, append local projects)
//	         ↓
//	    [pipeline] enrich stage (README → description + preview image)
//	         ↓
//	    [pipeline] merge stage (config overrides)
//	         ↓
//	    [pipeline] categorize stage (featured / other / archived / hidden)
//	         ↓
//	    CLI tables, terminal browser or JSON API
//
// # Quick Start
//
//	cfg, _ := config.LoadOrDefault("showcase.toml")
//	client := github.NewClient(github.Options{Token: cfg.Token})
//	result, err := pipeline.NewRunner(client, cfg, logger).Execute(ctx, pipeline.Options{})
//	for _, p := range result.Buckets.Get(project.Featured) {
//	    fmt.Println(p.Title(), p.Readme)
//	}
//
// If the repository listing fails the result is marked Degraded and built
// from the configured fallback projects instead of returning an error.
//
// # Main Packages
//
// [project] - Repository and Project records, categories, paging and
// summary stats.
//
// [readme] - Description and preview image extraction from README markdown.
//
// [pipeline] - The four-stage pipeline shared by the CLI and the HTTP API.
//
// [integrations] - Shared HTTP client with caching and error classification.
// The GitHub client lives in [integrations/github].
//
// [cache] - Response caches: file (CLI), Redis (shared deployments) and a
// null cache for --no-cache.
//
// [contact] - Contact form validation and storage in memory, SQLite or
// MongoDB.
//
// [config] - TOML configuration, .env loading and validation.
//
// [observability] - Hooks for pipeline, HTTP and contact events.
//
// [errors] - Coded errors shared by every package.
//
// # Testing
//
// Run tests:
//
//	go test ./...                        # All tests
//	go test ./pkg/pipeline/...           # Specific package
//	go test -run Example ./...           # Examples only
//	go test -tags integration ./pkg/...  # Include Redis and MongoDB tests
//
// [project]: https://pkg.go.dev/github.com/matzehuels/showcase/pkg/project
// [readme]: https://pkg.go.dev/github.com/matzehuels/showcase/pkg/readme
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/showcase/pkg/pipeline
// [integrations]: https://pkg.go.dev/github.com/matzehuels/showcase/pkg/integrations
// [integrations/github]: https://pkg.go.dev/github.com/matzehuels/showcase/pkg/integrations/github
// [cache]: https://pkg.go.dev/github.com/matzehuels/showcase/pkg/cache
// [contact]: https://pkg.go.dev/github.com/matzehuels/showcase/pkg/contact
// [config]: https://pkg.go.dev/github.com/matzehuels/showcase/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/showcase/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/showcase/pkg/errors
package pkg
