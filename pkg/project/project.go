package project

import (
	"time"
)

// Repository is a fetched or synthesized project record. Timestamps keep
// their RFC 3339 wire form; use [Repository.Created] and
// [Repository.Updated] to compare them.
type Repository struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	FullName      string   `json:"full_name"`
	Description   string   `json:"description"`
	Homepage      string   `json:"homepage"`
	HTMLURL       string   `json:"html_url"`
	Stars         int      `json:"stargazers_count"`
	Forks         int      `json:"forks_count"`
	Language      string   `json:"language"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
	DefaultBranch string   `json:"default_branch"`
	Fork          bool     `json:"fork"`
	Archived      bool     `json:"archived"`
	Topics        []string `json:"topics,omitempty"`
	Local         bool     `json:"is_local_project"`
}

// Created returns the parsed creation time, or the zero time if the
// timestamp is missing or malformed. Zero sorts as the oldest.
func (r Repository) Created() time.Time { return parseTime(r.CreatedAt) }

// Updated returns the parsed last-update time, or the zero time.
func (r Repository) Updated() time.Time { return parseTime(r.UpdatedAt) }

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Project is a Repository with derived and curated fields. The embedded
// Repository is a copy; nothing downstream of the fetch stage modifies the
// fetched record.
type Project struct {
	Repository

	Readme      string   `json:"readme"`
	Image       string   `json:"project_image"`
	DisplayName string   `json:"display_name"`
	Tags        []string `json:"tags"`
	LiveURL     string   `json:"live_url"`
	Highlighted bool     `json:"is_highlighted"`
	Featured    bool     `json:"is_featured"`
}

// New wraps a repository in a Project with no derived fields.
func New(r Repository) Project {
	if r.Topics != nil {
		r.Topics = append([]string(nil), r.Topics...)
	}
	return Project{Repository: r}
}

// Title returns the display name, falling back to the repository name.
func (p Project) Title() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}

// Link returns the live URL, falling back to the repository page.
func (p Project) Link() string {
	if p.LiveURL != "" && p.LiveURL != "#" {
		return p.LiveURL
	}
	return p.HTMLURL
}

// IsNew reports whether the project was created within the last 30 days
// relative to now.
func (p Project) IsNew(now time.Time) bool {
	return p.Created().After(now.AddDate(0, 0, -30))
}

// AgeDays returns the number of whole or partial days since creation,
// rounded up.
func (p Project) AgeDays(now time.Time) int {
	d := now.Sub(p.Created())
	if d < 0 {
		d = -d
	}
	days := d / (24 * time.Hour)
	if d%(24*time.Hour) != 0 {
		days++
	}
	return int(days)
}

// FormatDate renders an RFC 3339 timestamp as "Jan 2, 2006". Malformed
// input yields "".
func FormatDate(s string) string {
	t := parseTime(s)
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}
