// Package server provides the HTTP API for inquest.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/inquest-dev/inquest/internal/config"
	"github.com/inquest-dev/inquest/internal/model"
	"github.com/inquest-dev/inquest/internal/trust"
)

// QueryRunner runs one research query end to end.
type QueryRunner interface {
	Run(ctx context.Context, query string) (model.Bundle, error)
}

// Server is the HTTP server for the inquest API.
type Server struct {
	runner     QueryRunner
	reputation *trust.ReputationStore
	config     *config.ServerConfig
	logger     *zap.Logger
	server     *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(runner QueryRunner, reputation *trust.ReputationStore, cfg *config.ServerConfig, logger *zap.Logger) *Server {
	return &Server{
		runner:     runner,
		reputation: reputation,
		config:     cfg,
		logger:     logger,
	}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	r.Post("/research", s.handleResearch)
	r.Post("/approve_source", s.handleApproveSource)
	r.Post("/flag_source", s.handleFlagSource)
	r.Get("/health", s.handleHealth)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Routes(),
	}
	s.logger.Info("starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
