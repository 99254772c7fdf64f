package pipeline

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/matzehuels/showcase/pkg/config"
	"github.com/matzehuels/showcase/pkg/project"
)

// CategoryOf returns the bucket for a project name. The first match wins:
// hidden, then featured, then archived; anything else is other.
func CategoryOf(name string, cfg *config.Config) project.Category {
	switch {
	case slices.Contains(cfg.Hidden, name):
		return project.Hidden
	case slices.Contains(cfg.Featured, name):
		return project.Featured
	case slices.Contains(cfg.Archived, name):
		return project.Archived
	default:
		return project.Other
	}
}

// Categorize partitions projects into the four buckets and orders them:
// featured by position in the featured list, other by the configured sort
// key and order, archived oldest first. Hidden keeps input order. All sorts
// are stable.
func Categorize(projects []project.Project, cfg *config.Config) project.Buckets {
	b := project.NewBuckets()
	for _, p := range projects {
		b.Add(CategoryOf(p.Name, cfg), p)
	}

	rank := make(map[string]int, len(cfg.Featured))
	for i, name := range cfg.Featured {
		if _, dup := rank[name]; !dup {
			rank[name] = i
		}
	}
	slices.SortStableFunc(b.Featured, func(x, y project.Project) int {
		return cmp.Compare(rank[x.Name], rank[y.Name])
	})

	slices.SortStableFunc(b.Other, otherComparator(cfg.Display.SortOtherBy, cfg.Display.SortOrder))
	slices.SortStableFunc(b.Archived, byCreated)
	return b
}

// otherComparator returns the ordering for the other bucket. Unknown keys
// sort by creation date; any order other than "asc" is descending.
func otherComparator(key, order string) func(x, y project.Project) int {
	var compare func(x, y project.Project) int
	switch key {
	case config.SortUpdated:
		compare = func(x, y project.Project) int { return x.Updated().Compare(y.Updated()) }
	case config.SortStars:
		compare = func(x, y project.Project) int { return cmp.Compare(x.Stars, y.Stars) }
	case config.SortName:
		c := collate.New(language.English)
		compare = func(x, y project.Project) int { return c.CompareString(x.Name, y.Name) }
	default:
		compare = byCreated
	}

	if order == config.OrderAsc {
		return compare
	}
	return func(x, y project.Project) int { return compare(y, x) }
}

func byCreated(x, y project.Project) int {
	return x.Created().Compare(y.Created())
}
