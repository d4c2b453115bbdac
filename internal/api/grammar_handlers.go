package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/services"
)

func (s *Server) handleListRules(w http.ResponseWriter, r *http.Request) {
	rules, err := s.Grammar.ListRules(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if rules == nil {
		rules = []models.GrammarRule{}
	}
	respondJSON(w, r, http.StatusOK, rules)
}

func (s *Server) handleSaveRule(w http.ResponseWriter, r *http.Request) {
	var input services.SaveRuleInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	rule, saved, err := s.Grammar.SaveRule(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if !saved {
		respondJSON(w, r, http.StatusOK, map[string]any{"saved": false})
		return
	}
	respondJSON(w, r, http.StatusCreated, map[string]any{"saved": true, "rule": rule})
}

func (s *Server) handleDeleteRule(w http.ResponseWriter, r *http.Request) {
	if err := s.Grammar.DeleteRule(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusNoContent, nil)
}
