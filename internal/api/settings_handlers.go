package api

import (
	"net/http"

	"github.com/mcamargo/lexgym/internal/models"
)

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.Settings.GetSettings(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, settings)
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch models.SettingsPatch
	if err := decodeJSON(r, &patch); err != nil {
		handleError(w, r, err)
		return
	}

	settings, err := s.Settings.UpdateSettings(r.Context(), patch)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, settings)
}

func (s *Server) handleResetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.Settings.ResetSettings(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, settings)
}
