package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonathan/interview-coach/internal/analytics"
)

// handleGetProfile returns the derived performance profile for a user
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	metrics, err := s.db.ListPerformanceMetrics(r.Context(), userID, 50)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, analytics.BuildProfile(metrics))
}

// handleListMetrics lists a user's stored performance metrics, newest first
func (s *Server) handleListMetrics(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	limit := parseQueryInt(r, "limit", 50, 50)

	metrics, err := s.db.ListPerformanceMetrics(r.Context(), userID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"metrics": metrics,
		"count":   len(metrics),
	})
}

// parseQueryInt parses an integer query parameter with a default and cap.
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}
