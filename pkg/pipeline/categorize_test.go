package pipeline

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/matzehuels/showcase/pkg/config"
	"github.com/matzehuels/showcase/pkg/project"
)

func repo(name string, stars int, created string) project.Project {
	return project.Project{Repository: project.Repository{
		ID:        name,
		Name:      name,
		Stars:     stars,
		CreatedAt: created,
		UpdatedAt: created,
	}}
}

func TestCategoryOf(t *testing.T) {
	cfg := testConfig()
	cfg.Featured = []string{"both", "featured", "featured-archived"}
	cfg.Archived = []string{"archived", "featured-archived"}
	cfg.Hidden = []string{"both", "hidden"}

	tests := []struct {
		name string
		want project.Category
	}{
		{"both", project.Hidden},
		{"hidden", project.Hidden},
		{"featured", project.Featured},
		{"featured-archived", project.Featured},
		{"archived", project.Archived},
		{"unlisted", project.Other},
		{"Featured", project.Other}, // names match exactly
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoryOf(tt.name, cfg); got != tt.want {
				t.Errorf("CategoryOf(%q) = %s, want %s", tt.name, got, tt.want)
			}
		})
	}
}

func TestCategorizePartition(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pool := make([]string, 30)
	for i := range pool {
		pool[i] = fmt.Sprintf("repo-%02d", i)
	}

	for round := 0; round < 20; round++ {
		cfg := testConfig()
		for _, name := range pool {
			switch rng.Intn(5) {
			case 0:
				cfg.Featured = append(cfg.Featured, name)
			case 1:
				cfg.Archived = append(cfg.Archived, name)
			case 2:
				cfg.Hidden = append(cfg.Hidden, name)
			case 3:
				cfg.Featured = append(cfg.Featured, name)
				cfg.Hidden = append(cfg.Hidden, name)
			}
		}

		var in []project.Project
		for i, name := range pool {
			if rng.Intn(4) == 0 {
				continue
			}
			in = append(in, repo(name, rng.Intn(10), fmt.Sprintf("2023-%02d-01T00:00:00Z", i%12+1)))
		}
		rng.Shuffle(len(in), func(i, j int) { in[i], in[j] = in[j], in[i] })

		b := Categorize(in, cfg)
		if b.Len() != len(in) {
			t.Fatalf("round %d: %d projects in buckets, want %d", round, b.Len(), len(in))
		}

		seen := make(map[string]project.Category)
		for _, c := range project.Categories {
			for _, p := range b.Get(c) {
				if prev, dup := seen[p.Name]; dup {
					t.Fatalf("round %d: %s in both %s and %s", round, p.Name, prev, c)
				}
				seen[p.Name] = c
				if want := CategoryOf(p.Name, cfg); c != want {
					t.Errorf("round %d: %s in %s, want %s", round, p.Name, c, want)
				}
			}
		}
	}
}

func TestCategorizeFeaturedOrder(t *testing.T) {
	cfg := testConfig()
	cfg.Featured = []string{"c", "missing", "a", "b"}

	in := []project.Project{repo("a", 0, ""), repo("b", 9, ""), repo("x", 0, ""), repo("c", 1, "")}
	b := Categorize(in, cfg)

	if want := []string{"c", "a", "b"}; !slices.Equal(names(b.Featured), want) {
		t.Errorf("featured = %v, want %v", names(b.Featured), want)
	}
	if want := []string{"x"}; !slices.Equal(names(b.Other), want) {
		t.Errorf("other = %v, want %v", names(b.Other), want)
	}
}

func TestCategorizeOtherOrder(t *testing.T) {
	in := []project.Project{
		repo("banana", 5, "2023-03-01T00:00:00Z"),
		repo("Apple", 12, "2023-01-01T00:00:00Z"),
		repo("cherry", 5, "2023-02-01T00:00:00Z"),
		repo("date", 1, "not a date"),
	}

	tests := []struct {
		key, order string
		want       []string
	}{
		{config.SortStars, config.OrderDesc, []string{"Apple", "banana", "cherry", "date"}},
		{config.SortStars, config.OrderAsc, []string{"date", "banana", "cherry", "Apple"}},
		{config.SortCreated, config.OrderDesc, []string{"banana", "cherry", "Apple", "date"}},
		{config.SortCreated, config.OrderAsc, []string{"date", "Apple", "cherry", "banana"}},
		{config.SortUpdated, config.OrderDesc, []string{"banana", "cherry", "Apple", "date"}},
		{config.SortName, config.OrderAsc, []string{"Apple", "banana", "cherry", "date"}},
		{config.SortName, config.OrderDesc, []string{"date", "cherry", "banana", "Apple"}},
		{"size", config.OrderDesc, []string{"banana", "cherry", "Apple", "date"}},
		{config.SortStars, "sideways", []string{"Apple", "banana", "cherry", "date"}},
	}

	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.order, func(t *testing.T) {
			cfg := testConfig()
			cfg.Display.SortOtherBy = tt.key
			cfg.Display.SortOrder = tt.order

			b := Categorize(slices.Clone(in), cfg)
			if got := names(b.Other); !slices.Equal(got, tt.want) {
				t.Errorf("other = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCategorizeStarsAdjacent(t *testing.T) {
	cfg := testConfig()
	cfg.Display.SortOtherBy = config.SortStars

	rng := rand.New(rand.NewSource(7))
	var in []project.Project
	for i := 0; i < 40; i++ {
		in = append(in, repo(fmt.Sprintf("r%d", i), rng.Intn(100), ""))
	}

	other := Categorize(in, cfg).Other
	for i := 1; i < len(other); i++ {
		if other[i-1].Stars < other[i].Stars {
			t.Fatalf("position %d: %d stars before %d", i, other[i-1].Stars, other[i].Stars)
		}
	}
}

func TestCategorizeArchivedOldestFirst(t *testing.T) {
	cfg := testConfig()
	cfg.Archived = []string{"new", "old", "bad"}
	cfg.Display.SortOrder = config.OrderDesc

	in := []project.Project{
		repo("new", 0, "2024-06-01T00:00:00Z"),
		repo("old", 0, "2020-06-01T00:00:00Z"),
		repo("bad", 0, ""),
	}
	b := Categorize(in, cfg)

	if want := []string{"bad", "old", "new"}; !slices.Equal(names(b.Archived), want) {
		t.Errorf("archived = %v, want %v", names(b.Archived), want)
	}
}

func TestCategorizeEmpty(t *testing.T) {
	b := Categorize(nil, testConfig())
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
	if b.Featured == nil || b.Other == nil || b.Archived == nil || b.Hidden == nil {
		t.Error("buckets should be non-nil")
	}
}
