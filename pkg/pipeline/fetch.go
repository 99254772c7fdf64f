package pipeline

import (
	"context"
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/matzehuels/showcase/pkg/config"
	"github.com/matzehuels/showcase/pkg/errors"
	"github.com/matzehuels/showcase/pkg/integrations"
	"github.com/matzehuels/showcase/pkg/integrations/github"
	"github.com/matzehuels/showcase/pkg/project"
)

// Source is the remote repository host. *github.Client implements it.
type Source interface {
	ListRepos(ctx context.Context, owner string, perPage int, refresh bool) ([]github.Repo, error)
	FetchReadme(ctx context.Context, owner, repo string, refresh bool) (string, error)
}

var _ Source = (*github.Client)(nil)

// Fetch lists the owner's repositories, drops forks and returns local
// projects first, then remote ones in API order. A failed listing is
// returned as a FETCH_FAILED error carrying an [errors.FetchError].
func Fetch(ctx context.Context, src Source, cfg *config.Config, opts Options, now time.Time) ([]project.Repository, error) {
	repos, err := src.ListRepos(ctx, opts.Owner, opts.PageSize, opts.Refresh)
	if err != nil {
		return nil, fetchError(opts.Owner, err)
	}

	out := LocalRecords(cfg, now)
	for _, r := range repos {
		if r.Fork {
			continue
		}
		out = append(out, fromAPI(r))
	}
	return out, nil
}

// LocalRecords synthesizes a repository record for every override flagged
// as a local project, in declaration order.
func LocalRecords(cfg *config.Config, now time.Time) []project.Repository {
	stamp := now.UTC().Format(time.RFC3339)

	var out []project.Repository
	for _, name := range cfg.LocalProjects() {
		o, _ := cfg.Override(name)

		link := o.LiveURL
		if link == "" {
			link = "#"
		}
		language := "Media"
		if len(o.Tags) > 0 {
			language = o.Tags[0]
		}

		out = append(out, project.Repository{
			ID:            "local-" + name,
			Name:          name,
			FullName:      "local/" + name,
			Description:   o.CustomDescription,
			Homepage:      link,
			HTMLURL:       link,
			Language:      language,
			CreatedAt:     stamp,
			UpdatedAt:     stamp,
			DefaultBranch: "main",
			Local:         true,
		})
	}
	return out
}

func fromAPI(r github.Repo) project.Repository {
	return project.Repository{
		ID:            strconv.FormatInt(r.ID, 10),
		Name:          r.Name,
		FullName:      r.FullName,
		Description:   r.Description,
		Homepage:      r.Homepage,
		HTMLURL:       r.HTMLURL,
		Stars:         r.Stars,
		Forks:         r.Forks,
		Language:      r.Language,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		DefaultBranch: r.DefaultBranch,
		Fork:          r.Fork,
		Archived:      r.Archived,
		Topics:        r.Topics,
	}
}

// fetchError classifies a listing failure. Status failures carry the code
// in a FetchError; anything else is a network error.
func fetchError(owner string, err error) error {
	var se *integrations.StatusError
	if !stderrors.As(err, &se) {
		return errors.Wrap(errors.ErrCodeFetchFailed,
			errors.Wrap(errors.ErrCodeNetwork, err, "request failed"),
			"list repositories for %s", owner)
	}

	fe := &errors.FetchError{StatusCode: se.StatusCode, Owner: owner}
	code := statusCode(se.StatusCode)
	if code == errors.ErrCodeFetchFailed {
		return errors.Wrap(errors.ErrCodeFetchFailed, fe, "list repositories for %s", owner)
	}
	return errors.Wrap(errors.ErrCodeFetchFailed,
		errors.Wrap(code, fe, "%s", http.StatusText(se.StatusCode)),
		"list repositories for %s", owner)
}

func statusCode(status int) errors.Code {
	switch status {
	case http.StatusUnauthorized:
		return errors.ErrCodeUnauthorized
	case http.StatusForbidden, http.StatusTooManyRequests:
		return errors.ErrCodeRateLimited
	case http.StatusNotFound:
		return errors.ErrCodeNotFound
	default:
		return errors.ErrCodeFetchFailed
	}
}
