// Package github provides an HTTP client for the GitHub REST API.
//
// Only two endpoints are used: the repository list of an account and the
// README of a repository.
//
//	client := github.NewClient(github.Options{Token: os.Getenv("GITHUB_TOKEN")})
//
//	repos, err := client.ListRepos(ctx, "octocat", github.DefaultPageSize, false)
//	if err != nil {
//	    var se *integrations.StatusError
//	    if errors.As(err, &se) { ... }
//	}
//
//	text, err := client.FetchReadme(ctx, "octocat", "hello-world", false)
//
// # Authentication
//
// A token is optional. Unauthenticated clients are limited to 60 requests
// per hour, which a portfolio with many repositories exhausts quickly since
// every project costs one README request.
//
// # Caching
//
// Repository listings are cached for [cache.TTLRepos] and decoded READMEs
// for [cache.TTLReadme]. Pass refresh=true to bypass the cache.
//
// [cache.TTLRepos]: github.com/matzehuels/showcase/pkg/cache.TTLRepos
// [cache.TTLReadme]: github.com/matzehuels/showcase/pkg/cache.TTLReadme
package github
