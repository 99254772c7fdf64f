package server

import (
	"encoding/json"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/showcase/pkg/buildinfo"
	"github.com/matzehuels/showcase/pkg/contact"
	"github.com/matzehuels/showcase/pkg/errors"
	"github.com/matzehuels/showcase/pkg/project"
)

const (
	maxPageSize    = 100
	maxContactBody = 64 << 10
)

type projectsResponse struct {
	Tabs        []project.Category                     `json:"tabs"`
	Projects    map[project.Category][]project.Project `json:"projects"`
	Stats       project.Stats                          `json:"stats"`
	Degraded    bool                                   `json:"degraded"`
	Warning     string                                 `json:"warning,omitempty"`
	GeneratedAt time.Time                              `json:"generated_at"`
}

type tabResponse struct {
	Tab      project.Category  `json:"tab"`
	Projects []project.Project `json:"projects"`
	Offset   int               `json:"offset"`
	Limit    int               `json:"limit"`
	Total    int               `json:"total"`
	HasMore  bool              `json:"has_more"`
	Degraded bool              `json:"degraded"`
	Warning  string            `json:"warning,omitempty"`
}

type contactResponse struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

type contactError struct {
	Error      string             `json:"error"`
	Code       errors.Code        `json:"code"`
	Fields     map[string]string  `json:"fields,omitempty"`
	Submission contact.Submission `json:"submission"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// listProjects handles GET /api/projects.
func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	result, err := s.results(r.Context())
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "projects are unavailable")
		return
	}

	tabs := s.cfg.Display.Tabs()
	resp := projectsResponse{
		Tabs:        tabs,
		Projects:    make(map[project.Category][]project.Project, len(tabs)),
		Stats:       result.Stats,
		Degraded:    result.Degraded,
		Warning:     result.Warning,
		GeneratedAt: result.GeneratedAt,
	}
	for _, tab := range tabs {
		resp.Projects[tab] = result.Buckets.Get(tab)
	}
	respondJSON(w, http.StatusOK, resp)
}

// listTab handles GET /api/projects/{tab}.
func (s *Server) listTab(w http.ResponseWriter, r *http.Request) {
	tab, err := project.ParseCategory(chi.URLParam(r, "tab"))
	if err != nil || !slices.Contains(s.cfg.Display.Tabs(), tab) {
		respondError(w, http.StatusNotFound, "unknown tab")
		return
	}

	offset, err := queryInt(r, "offset", 0)
	if err != nil || offset < 0 {
		respondError(w, http.StatusBadRequest, "offset must be a non-negative integer")
		return
	}
	limit, err := queryInt(r, "limit", s.cfg.Display.ProjectsPerPage)
	if err != nil || limit < 1 || limit > maxPageSize {
		respondError(w, http.StatusBadRequest, "limit must be between 1 and "+strconv.Itoa(maxPageSize))
		return
	}

	result, err := s.results(r.Context())
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "projects are unavailable")
		return
	}

	all := result.Buckets.Get(tab)
	page, more := project.Page(all, offset, limit)
	respondJSON(w, http.StatusOK, tabResponse{
		Tab:      tab,
		Projects: page,
		Offset:   offset,
		Limit:    limit,
		Total:    len(all),
		HasMore:  more,
		Degraded: result.Degraded,
		Warning:  result.Warning,
	})
}

// submitContact handles POST /api/contact. Failures echo the submission so
// the client can offer a retry without losing the message.
func (s *Server) submitContact(w http.ResponseWriter, r *http.Request) {
	var sub contact.Submission
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody)).Decode(&sub); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	msg, err := s.contact.Submit(r.Context(), sub)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, errors.ErrCodeInvalidInput):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, errors.ErrCodeStoreUnavailable):
			status = http.StatusServiceUnavailable
		}
		if status != http.StatusUnprocessableEntity {
			s.logger.Error("contact submission failed", "err", err)
		}
		respondJSON(w, status, contactError{
			Error:      errors.UserMessage(err),
			Code:       errors.GetCode(err),
			Fields:     contact.Fields(err),
			Submission: sub,
		})
		return
	}

	respondJSON(w, http.StatusCreated, contactResponse{ID: msg.ID, Timestamp: msg.Timestamp})
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError writes a JSON error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
