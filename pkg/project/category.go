package project

import "fmt"

// Category is one of the four mutually exclusive display buckets.
type Category string

const (
	Featured Category = "featured"
	Other    Category = "other"
	Archived Category = "archived"
	Hidden   Category = "hidden"
)

// Categories lists all categories in display order.
var Categories = []Category{Featured, Other, Archived, Hidden}

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (must be one of: featured, other, archived, hidden)", s)
}

// Buckets is the partitioned project set. The slices are disjoint and
// together hold every input project exactly once.
type Buckets struct {
	Featured []Project `json:"featured"`
	Other    []Project `json:"other"`
	Archived []Project `json:"archived"`
	Hidden   []Project `json:"hidden"`
}

// NewBuckets returns buckets with empty, non-nil slices so they encode as
// [] rather than null.
func NewBuckets() Buckets {
	return Buckets{
		Featured: []Project{},
		Other:    []Project{},
		Archived: []Project{},
		Hidden:   []Project{},
	}
}

// Get returns the bucket for c.
func (b Buckets) Get(c Category) []Project {
	switch c {
	case Featured:
		return b.Featured
	case Other:
		return b.Other
	case Archived:
		return b.Archived
	case Hidden:
		return b.Hidden
	}
	return nil
}

// Add appends p to the bucket for c.
func (b *Buckets) Add(c Category, p Project) {
	switch c {
	case Featured:
		b.Featured = append(b.Featured, p)
	case Archived:
		b.Archived = append(b.Archived, p)
	case Hidden:
		b.Hidden = append(b.Hidden, p)
	default:
		b.Other = append(b.Other, p)
	}
}

// Len returns the total number of projects across all buckets.
func (b Buckets) Len() int {
	return len(b.Featured) + len(b.Other) + len(b.Archived) + len(b.Hidden)
}

// All returns every project in category display order.
func (b Buckets) All() []Project {
	all := make([]Project, 0, b.Len())
	for _, c := range Categories {
		all = append(all, b.Get(c)...)
	}
	return all
}

// Page returns up to limit projects starting at offset, and whether more
// follow. A limit below one returns everything from offset.
func Page(projects []Project, offset, limit int) ([]Project, bool) {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(projects) {
		return []Project{}, false
	}
	end := len(projects)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return projects[offset:end], end < len(projects)
}
