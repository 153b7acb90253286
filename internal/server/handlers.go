package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/inquest-dev/inquest/internal/pipeline"
	"github.com/inquest-dev/inquest/internal/retrieve"
)

type researchRequest struct {
	Query string `json:"query"`
}

type sourceRequest struct {
	Source string `json:"source"`
}

func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	var req researchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.logger.Debug("research request", zap.String("query", req.Query))
	bundle, err := s.runner.Run(r.Context(), req.Query)
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrEmptyQuery):
			s.respondError(w, http.StatusBadRequest, "Query cannot be empty")
		case errors.Is(err, retrieve.ErrExhausted):
			s.respondError(w, http.StatusServiceUnavailable, "Failed to fetch data from web sources. Please try again later.")
		default:
			s.logger.Error("research failed", zap.Error(err))
			s.respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	s.respondJSON(w, http.StatusOK, bundle)
}

func (s *Server) handleApproveSource(w http.ResponseWriter, r *http.Request) {
	source, ok := s.decodeSource(w, r)
	if !ok {
		return
	}

	s.reputation.Approve(source)
	s.logger.Info("source approved", zap.String("source", source))
	s.respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Source %s approved and trust score updated.", source),
	})
}

func (s *Server) handleFlagSource(w http.ResponseWriter, r *http.Request) {
	source, ok := s.decodeSource(w, r)
	if !ok {
		return
	}

	s.reputation.Flag(source)
	s.logger.Info("source flagged", zap.String("source", source))
	s.respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Source %s flagged as unreliable and trust score updated.", source),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeSource parses and validates the administrative source payload.
func (s *Server) decodeSource(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req sourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return "", false
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		s.respondError(w, http.StatusBadRequest, "Source URL cannot be empty")
		return "", false
	}
	return source, true
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response failed", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
