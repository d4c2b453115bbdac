package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleGetStreak(w http.ResponseWriter, r *http.Request) {
	summary, err := s.Progression.Summary(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, summary.Streak)
}

func (s *Server) handleGamification(w http.ResponseWriter, r *http.Request) {
	summary, err := s.Progression.Summary(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, summary)
}

func (s *Server) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	heatmap, err := s.Progression.Heatmap(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, heatmap)
}

func (s *Server) handleAwardBadge(w http.ResponseWriter, r *http.Request) {
	badge, err := s.Progression.AwardBadge(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	if badge == nil {
		// Unknown or already unlocked; either way nothing changed.
		respondJSON(w, r, http.StatusOK, map[string]any{"unlocked": false})
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"unlocked":    true,
		"badge":       badge,
		"unlocked_at": time.Now(),
	})
}
