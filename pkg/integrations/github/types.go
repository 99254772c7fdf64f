package github

// Repo is a repository as returned by the list-repositories endpoint.
// Timestamps stay in their RFC 3339 wire form.
type Repo struct {
	ID            int64    `json:"id"`
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
	Topics        []string `json:"topics"`
}

// contentResponse is the payload of the readme endpoint.
type contentResponse struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}
