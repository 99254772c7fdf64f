package pipeline

import (
	"slices"

	"github.com/matzehuels/showcase/pkg/config"
	"github.com/matzehuels/showcase/pkg/project"
)

// ApplyOverride returns p with the curated override for its name merged in.
// Every presentation field is set afterwards, with or without an override:
// DisplayName falls back to the name, LiveURL to the homepage, Tags to an
// empty list and the flags to false. Applying it twice gives the same
// result as applying it once.
func ApplyOverride(p project.Project, cfg *config.Config) project.Project {
	o, _ := cfg.Override(p.Name)

	out := p
	out.DisplayName = firstNonEmpty(o.DisplayName, p.Name)
	out.Readme = firstNonEmpty(o.CustomDescription, p.Readme)
	out.Description = firstNonEmpty(o.CustomDescription, p.Description)
	out.LiveURL = firstNonEmpty(o.LiveURL, p.Homepage)
	out.Tags = slices.Clone(o.Tags)
	if out.Tags == nil {
		out.Tags = []string{}
	}
	out.Highlighted = o.Highlight
	out.Featured = o.Featured
	return out
}

// Merge applies ApplyOverride to every project, returning a new slice.
func Merge(projects []project.Project, cfg *config.Config) []project.Project {
	out := make([]project.Project, len(projects))
	for i, p := range projects {
		out[i] = ApplyOverride(p, cfg)
	}
	return out
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
