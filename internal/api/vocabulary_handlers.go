package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/mcamargo/lexgym/internal/errors"
	"github.com/mcamargo/lexgym/internal/logger"
	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/services"
	"github.com/mcamargo/lexgym/internal/worker"
)

func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	filter := models.VocabularyFilter{
		PartOfSpeech: r.URL.Query().Get("part_of_speech"),
		Search:       r.URL.Query().Get("search"),
		Limit:        queryInt(r, "limit", 0),
		Offset:       queryInt(r, "offset", 0),
	}

	items, err := s.Vocabulary.ListWords(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if items == nil {
		items = []models.VocabularyItem{}
	}
	respondJSON(w, r, http.StatusOK, items)
}

func (s *Server) handleSaveWord(w http.ResponseWriter, r *http.Request) {
	var input services.SaveWordInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	item, saved, err := s.Vocabulary.SaveWord(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if !saved {
		respondJSON(w, r, http.StatusOK, map[string]any{"word": item.Word, "saved": false})
		return
	}
	respondJSON(w, r, http.StatusCreated, map[string]any{"word": item.Word, "saved": true})
}

func wordParam(r *http.Request) (string, error) {
	word, err := url.PathUnescape(chi.URLParam(r, "word"))
	if err != nil || word == "" {
		return "", errors.NewBadRequestError("invalid word parameter")
	}
	return word, nil
}

func (s *Server) handleGetWord(w http.ResponseWriter, r *http.Request) {
	word, err := wordParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	item, err := s.Vocabulary.GetWord(r.Context(), word)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, item)
}

func (s *Server) handleDeleteWord(w http.ResponseWriter, r *http.Request) {
	word, err := wordParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Vocabulary.DeleteWord(r.Context(), word); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusNoContent, nil)
}

// handleEnrichWord queues a background deep-dive for a saved word. The
// response only acknowledges the queueing; the enrichment lands later.
func (s *Server) handleEnrichWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	word, err := wordParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	item, err := s.Vocabulary.GetWord(r.Context(), word)
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.EnrichPool.Submit(&worker.EnrichWordJob{
		AI:         s.AIService,
		Vocabulary: s.VocabularyRepo,
		Word:       item.Word,
	})
	log.Info("enrichment queued for word %q", item.Word)
	respondJSON(w, r, http.StatusAccepted, map[string]any{"word": item.Word, "queued": true})
}
