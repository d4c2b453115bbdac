package api

import (
	"fmt"
	"net/http"
	"time"
)

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	backup, err := s.Backup.Export(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	filename := fmt.Sprintf("lexgym-backup-%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	respondJSON(w, r, http.StatusOK, backup)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.Backup.Import(r.Context(), body)
	if err != nil {
		handleError(w, r, err)
		return
	}
	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	respondJSON(w, r, status, result)
}

func (s *Server) handleEraseData(w http.ResponseWriter, r *http.Request) {
	scope := r.URL.Query().Get("scope")
	if err := s.Data.Erase(r.Context(), scope); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"erased": scope})
}
