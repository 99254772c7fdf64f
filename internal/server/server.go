// Package server exposes the project listing and the contact form over a
// JSON HTTP API.
//
// Routes:
//
//	GET  /api/health
//	GET  /api/projects                          all visible buckets
//	GET  /api/projects/{tab}?offset=&limit=     one bucket, paged
//	POST /api/contact                           store a contact message
//
// Pipeline results are kept in memory and recomputed at most once per
// refresh interval.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/showcase/pkg/config"
	"github.com/matzehuels/showcase/pkg/contact"
	"github.com/matzehuels/showcase/pkg/pipeline"
)

// Runner produces pipeline results. *pipeline.Runner implements it.
type Runner interface {
	Execute(ctx context.Context, opts pipeline.Options) (*pipeline.Result, error)
}

// Server serves the API.
type Server struct {
	runner  Runner
	contact *contact.Service
	cfg     *config.Config
	logger  *log.Logger
	refresh time.Duration

	mu        sync.Mutex
	result    *pipeline.Result
	fetchedAt time.Time

	// now is replaced in tests.
	now func() time.Time
}

// New creates a server. cfg supplies display settings and the refresh
// interval.
func New(runner Runner, svc *contact.Service, cfg *config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner:  runner,
		contact: svc,
		cfg:     cfg,
		logger:  logger,
		refresh: cfg.Server.RefreshInterval.Duration,
		now:     time.Now,
	}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.health)
		r.Get("/projects", s.listProjects)
		r.Get("/projects/{tab}", s.listTab)
		r.Post("/contact", s.submitContact)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// results returns the cached pipeline result, recomputing it when it is
// older than the refresh interval. Concurrent callers wait for a single
// run.
func (s *Server) results(ctx context.Context) (*pipeline.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil && s.now().Sub(s.fetchedAt) < s.refresh {
		return s.result, nil
	}

	result, err := s.runner.Execute(ctx, pipeline.Options{})
	if err != nil {
		return nil, err
	}
	s.result = result
	s.fetchedAt = s.now()
	return result, nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"id", middleware.GetReqID(r.Context()))
	})
}
