package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	access "campus/contexts/identity-access/access-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "campus/internal/platform/httpserver/docs"
)

type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string
	access access.Module
}

func New(accessModule access.Module, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
		addr:   addr,
		access: accessModule,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/access/v1/landing", s.handleAccessLanding)
	s.mux.HandleFunc("GET /api/access/v1/me", s.handleAccessMe)
	s.mux.HandleFunc("GET /api/access/v1/organizations/{slug}", s.handleAccessResolveOrganization)
	s.mux.HandleFunc("GET /api/access/v1/organization", s.handleAccessResolveSingleOrg)
	s.mux.HandleFunc("POST /api/access/v1/authorize", s.handleAccessAuthorize)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
