// Package proxy wires the relay handlers into a chi router with the
// shared request policy: permissive CORS and a 10 MB body ceiling.
package proxy

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Tedesqui/imagebook/internal/proxy/handler"
)

// Server holds dependencies for the HTTP relay server.
type Server struct {
	Router   chi.Router
	Handlers *handler.Handlers
}

// ServerConfig holds configuration for creating a new Server.
type ServerConfig struct {
	Handlers *handler.Handlers

	// MaxBodyBytes caps inbound request bodies; zero means no cap.
	MaxBodyBytes int64
}

// NewServer creates a chi router with all routes configured.
func NewServer(cfg ServerConfig) *Server {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)

	// All origins permitted on every endpoint; the relay has no caller
	// auth, so there is no allow-list to enforce.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	if cfg.MaxBodyBytes > 0 {
		r.Use(chiMiddleware.RequestSize(cfg.MaxBodyBytes))
	}

	s := &Server{
		Router:   r,
		Handlers: cfg.Handlers,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := s.Router

	r.Route("/health", func(r chi.Router) {
		r.Get("/", s.Handlers.HealthCheck)
		r.Get("/liveness", s.Handlers.HealthLiveness)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/ocr-aws", s.Handlers.OCRProcess)
		r.Post("/generate-image-openai", s.Handlers.ImageGeneration)
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
