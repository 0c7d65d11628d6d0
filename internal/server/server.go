package server

import (
	"context"
	"log"
	"net"
	"net/http"

	"github.com/bhaveshp2632005/smartrecipiBackend/config"
	"github.com/bhaveshp2632005/smartrecipiBackend/internal/api"
	"github.com/bhaveshp2632005/smartrecipiBackend/internal/router"
	"github.com/bhaveshp2632005/smartrecipiBackend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	http *http.Server
}

// New builds the service graph and configures the HTTP server
func New(cfg *config.Config) (*Server, error) {
	llmService, err := service.NewLLMService(cfg.LLMTimeout)
	if err != nil {
		return nil, err
	}

	uploads, err := service.NewUploadService(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		return nil, err
	}

	analyzeHandler := api.NewAnalyzeHandler(uploads, llmService)
	recipeHandler := api.NewRecipeHandler(llmService)
	videoHandler := api.NewVideoHandler(llmService)

	r := router.SetupRouter(analyzeHandler, recipeHandler, videoHandler)

	return &Server{
		http: &http.Server{
			Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler: r,
		},
	}, nil
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
