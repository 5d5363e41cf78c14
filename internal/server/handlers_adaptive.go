package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/interview-coach/internal/types"
)

// handleGetRecommendation returns the next-session recommendation for a user
func (s *Server) handleGetRecommendation(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	rec := s.engine.Recommend(r.Context(), userID)
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleRecordChoice logs the session configuration the user actually picked
func (s *Server) handleRecordChoice(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req types.RecordChoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	record := s.engine.RecordChoice(r.Context(), userID, req.Recommendation, req.UserChoice)
	s.jsonResponse(w, http.StatusCreated, record)
}

// handleUpdateOutcome attaches a session outcome to a recorded choice
func (s *Server) handleUpdateOutcome(w http.ResponseWriter, r *http.Request) {
	choiceID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid choice ID")
		return
	}

	var req types.UpdateOutcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	outcome := types.SessionOutcome{
		OverallScore: req.OverallScore,
		Completed:    req.Completed,
	}
	if err := s.engine.UpdateSessionOutcome(r.Context(), choiceID, outcome); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Outcome recorded"})
}

// handleGetAccuracy reports how often followed recommendations went well
func (s *Server) handleGetAccuracy(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	accuracy := s.engine.RecommendationAccuracy(r.Context(), userID)
	s.jsonResponse(w, http.StatusOK, map[string]float64{"accuracy": accuracy})
}
