package api

import (
	"net/http"
	"time"

	"github.com/mcamargo/lexgym/internal/errors"
	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/services"
)

func (s *Server) handleRecordSession(w http.ResponseWriter, r *http.Request) {
	var input services.SessionInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.Sessions.RecordSession(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, result)
}

func (s *Server) handleListProgress(w http.ResponseWriter, r *http.Request) {
	filter := models.ProgressFilter{
		Module: r.URL.Query().Get("module"),
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}
	if raw := r.URL.Query().Get("since"); raw != "" {
		since, err := time.Parse(models.DateLayout, raw)
		if err != nil {
			handleError(w, r, errors.NewValidationError("since", "must be a YYYY-MM-DD date"))
			return
		}
		filter.Since = &since
	}

	entries, err := s.Sessions.ListSessions(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if entries == nil {
		entries = []models.ProgressEntry{}
	}
	respondJSON(w, r, http.StatusOK, entries)
}

func (s *Server) handleListActivity(w http.ResponseWriter, r *http.Request) {
	entries, err := s.Sessions.ListActivity(r.Context(), queryInt(r, "limit", 0))
	if err != nil {
		handleError(w, r, err)
		return
	}
	if entries == nil {
		entries = []models.ActivityEntry{}
	}
	respondJSON(w, r, http.StatusOK, entries)
}
