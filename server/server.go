// Package server exposes the dashboard over HTTP: auth endpoints driven by
// the session manager, JSON views over the domain repositories, and the
// route-guard middleware gating them by role.
package server

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/neurobridge/dashboard/audit"
	"github.com/neurobridge/dashboard/auth"
	"github.com/neurobridge/dashboard/cases"
	"github.com/neurobridge/dashboard/institutions"
	"github.com/neurobridge/dashboard/internal/config"
	"github.com/neurobridge/dashboard/messaging"
)

// Repos holds the data dependencies of the dashboard server.
type Repos struct {
	Institutions institutions.Repo
	Cases        cases.Repo
	Threads      messaging.Repo
}

type Server struct {
	env    string
	mux    *http.ServeMux
	routes []string
	config *config.Config
	auth   *auth.Manager
	repos  Repos
	trail  *audit.Log
}

func New(cfg *config.Config, authManager *auth.Manager, repos Repos, trail *audit.Log) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("[Server New] config is required")
	}
	if authManager == nil {
		return nil, errors.New("[Server New] auth manager is required")
	}
	if repos.Institutions == nil || repos.Cases == nil || repos.Threads == nil {
		return nil, errors.New("[Server New] all repos are required")
	}

	s := &Server{
		env:    cfg.Env,
		mux:    http.NewServeMux(),
		config: cfg,
		auth:   authManager,
		repos:  repos,
		trail:  trail,
	}

	// Bootstrap: load demo data in development so the dashboard has content
	if cfg.IsDev() {
		if err := s.seedDemoData(); err != nil {
			return nil, errors.Wrap(err, "[Server New] seed demo data")
		}
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		log.Debug().Str("route", route).Msg("registered")
	}
}

func (s *Server) seedDemoData() error {
	if err := institutions.SeedDemoData(s.repos.Institutions); err != nil {
		return errors.Wrap(err, "seed institutions")
	}
	if err := cases.SeedDemoData(s.repos.Cases); err != nil {
		return errors.Wrap(err, "seed cases")
	}
	if err := messaging.SeedDemoData(s.repos.Threads); err != nil {
		return errors.Wrap(err, "seed threads")
	}
	return nil
}
