package api

import (
	"net/http"

	"github.com/mcamargo/lexgym/internal/ai"
)

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req ai.GenerateRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	content, err := s.Generation.Generate(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, content)
}

type speechRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

func (s *Server) handleSpeech(w http.ResponseWriter, r *http.Request) {
	var req speechRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	audio, err := s.Generation.Speech(r.Context(), req.Text, req.Voice)
	if err != nil {
		handleError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	w.Write(audio)
}
