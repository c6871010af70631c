package server

import (
	"net/http"
	"time"

	"github.com/WangWilly/threadStats/pkgs/tokenstore"
)

////////////////////////////////////////////////////////////////////////////////

type Config struct {
	Port string
}

// Server exposes the dashboard's JSON API
type Server struct {
	port string
	mux  *http.ServeMux

	service    ActivityService
	client     AccountClient
	tokenStore tokenstore.Store

	now func() time.Time
}

func New(cfg Config, service ActivityService, client AccountClient, store tokenstore.Store) *Server {
	s := &Server{
		port:       cfg.Port,
		mux:        http.NewServeMux(),
		service:    service,
		client:     client,
		tokenStore: store,
		now:        time.Now,
	}
	s.setupRoutes()
	return s
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return http.ListenAndServe(":"+s.port, s.mux)
}

// Handler exposes the route mux
func (s *Server) Handler() http.Handler {
	return s.mux
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/activity", s.handleActivity)
	s.mux.HandleFunc("/api/posts", s.handlePosts)
	s.mux.HandleFunc("/api/profile", s.handleProfile)
	s.mux.HandleFunc("/api/insights", s.handleAccountInsights)
	s.mux.HandleFunc("/api/token", s.handleToken)
	s.mux.HandleFunc("/api/token/exists", s.handleTokenExists)
	s.mux.HandleFunc("/api/download-csv", s.handleDownloadCSV)
}
