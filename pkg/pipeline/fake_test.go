package pipeline

import (
	"context"
	"sync"

	"github.com/matzehuels/showcase/pkg/config"
	"github.com/matzehuels/showcase/pkg/integrations"
	"github.com/matzehuels/showcase/pkg/integrations/github"
	"github.com/matzehuels/showcase/pkg/project"
)

// fakeSource serves canned repositories and READMEs.
type fakeSource struct {
	repos   []github.Repo
	listErr error
	readmes map[string]string // missing name → ErrNotFound

	mu          sync.Mutex
	readmeCalls []string
}

func (f *fakeSource) ListRepos(ctx context.Context, owner string, perPage int, refresh bool) ([]github.Repo, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.repos, nil
}

func (f *fakeSource) FetchReadme(ctx context.Context, owner, repo string, refresh bool) (string, error) {
	f.mu.Lock()
	f.readmeCalls = append(f.readmeCalls, repo)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, ok := f.readmes[repo]
	if !ok {
		return "", integrations.ErrNotFound
	}
	return text, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{Owner: "octocat"}
	cfg.SetDefaults()
	return cfg
}

func named(names ...string) []project.Project {
	out := make([]project.Project, len(names))
	for i, n := range names {
		out[i] = project.Project{Repository: project.Repository{ID: n, Name: n}}
	}
	return out
}

func names(ps []project.Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}
