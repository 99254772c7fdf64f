// Package integrations provides the shared HTTP client used by API clients.
//
// The [Client] type wraps net/http with:
//   - default headers (User-Agent, Accept, Authorization)
//   - response caching through any [cache.Cache] backend
//   - observability hooks for requests and cache lookups
//
// Errors are classified with the [ErrNotFound] and [ErrNetwork] sentinels;
// [StatusError] carries the exact HTTP status. There are no retries: every
// request is attempted once and failures are reported to the caller.
//
// The GitHub API client lives in the [github] subpackage.
//
// [cache.Cache]: github.com/matzehuels/showcase/pkg/cache.Cache
// [github]: github.com/matzehuels/showcase/pkg/integrations/github
package integrations
