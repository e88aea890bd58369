// Package web serves the hikes dashboard over HTTP. Every control change
// triggers one request to /table which returns the re-rendered results.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"marando/pkg/filter"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server renders the dashboard for one loaded table.
type Server struct {
	engine *filter.Engine
	pages  *template.Template
	quiet  bool
}

// Option configures a Server.
type Option func(*Server)

// WithoutRequestLog disables the per-request access log.
func WithoutRequestLog() Option {
	return func(s *Server) { s.quiet = true }
}

// NewServer parses the page templates once.
func NewServer(engine *filter.Engine, opts ...Option) (*Server, error) {
	pages, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{engine: engine, pages: pages}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Routes returns the dashboard handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	if !s.quiet {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", s.handleIndex)
	r.Get("/table", s.handleTable)
	r.Get("/stations", s.handleStations)
	r.Get("/export.xlsx", s.handleExportXLSX)
	r.Get("/export.ics", s.handleExportICS)
	r.Get("/chart/distance.png", s.handleDistanceChart)

	return r
}

// ListenAndServe blocks serving the dashboard on addr.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Routes())
}
