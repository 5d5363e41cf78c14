package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/scoring"
	"github.com/jonathan/interview-coach/internal/types"
)

// handleScore scores a single interview response and, when session metadata
// is attached, records the result in the user's performance history.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	ctx := r.Context()

	// Custom weights apply only when the request carries a user.
	weights := scoring.DefaultWeights()
	if req.UserID != nil {
		custom, err := s.db.GetScoringWeights(ctx, *req.UserID)
		if err != nil {
			log.Printf("[scores] failed to load custom weights for %s: %v", req.UserID, err)
		} else if custom != nil {
			weights = custom
		}
	}

	// AI feedback is best-effort; on failure the heuristics stand alone.
	var aiFeedback *types.AIFeedback
	if req.UseAI && s.llmClient != nil {
		feedback, err := llm.GenerateFeedback(ctx, s.llmClient, req.Question, req.Response, req.Criteria)
		if err != nil {
			log.Printf("[scores] AI feedback unavailable, falling back to heuristics: %v", err)
		} else {
			aiFeedback = feedback
		}
	}

	score := scoring.Score(req.Question, req.Response, req.DurationSeconds, req.Criteria, aiFeedback, weights)

	if req.UserID != nil && req.SessionID != nil {
		metrics := &types.PerformanceMetrics{
			UserID:              *req.UserID,
			SessionID:           *req.SessionID,
			Timestamp:           time.Now().UTC(),
			Difficulty:          req.Criteria.Difficulty,
			InterviewType:       interviewTypeFor(req.Criteria.QuestionType),
			OverallScore:        score.OverallScore,
			Breakdown:           score.Breakdown,
			CompletionRate:      req.CompletionRate,
			AverageResponseTime: req.AverageResponseTime,
			TotalQuestions:      req.TotalQuestions,
			AnsweredQuestions:   req.AnsweredQuestions,
		}
		if err := s.db.InsertPerformanceMetrics(ctx, metrics); err != nil {
			// Recording is secondary; the caller still gets their score.
			log.Printf("[scores] failed to record metrics for %s: %v", req.UserID, err)
		}
	}

	s.jsonResponse(w, http.StatusOK, score)
}

// interviewTypeFor maps a question type onto the session format used in
// performance records.
func interviewTypeFor(qt types.QuestionType) types.InterviewType {
	switch qt {
	case types.QuestionTechnical:
		return types.InterviewTechnical
	case types.QuestionBehavioral, types.QuestionSituational:
		return types.InterviewBehavioral
	default:
		return types.InterviewMixed
	}
}
