package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/interview-coach/internal/scoring"
	"github.com/jonathan/interview-coach/internal/types"
)

// handleListPresets lists the available weight preset names
func (s *Server) handleListPresets(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"presets": scoring.PresetNames(),
	})
}

// handleGetPreset returns a named weight preset
func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	weights, err := scoring.GetPresetWeights(name)
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"name":    name,
		"weights": weights,
	})
}

// handleGetWeights returns a user's effective weight set
func (s *Server) handleGetWeights(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	weights, err := s.db.GetScoringWeights(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	custom := weights != nil
	if !custom {
		weights = scoring.DefaultWeights()
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"weights": weights,
		"custom":  custom,
	})
}

// handleUpdateWeights replaces a user's custom weight set
func (s *Server) handleUpdateWeights(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req types.UpdateWeightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := scoring.ValidateWeights(req.Weights); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.db.SaveScoringWeights(r.Context(), userID, req.Weights); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"weights": req.Weights,
	})
}
