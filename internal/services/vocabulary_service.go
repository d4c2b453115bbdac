package services

import (
	"context"
	"strings"
	"time"

	"github.com/mcamargo/lexgym/internal/errors"
	"github.com/mcamargo/lexgym/internal/logger"
	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/progression"
	"github.com/mcamargo/lexgym/internal/repository"
)

// SaveWordInput is a word capture from any practice screen.
type SaveWordInput struct {
	Word         string `json:"word"`
	PartOfSpeech string `json:"part_of_speech"`
	Definition   string `json:"definition"`
	Example      string `json:"example"`
}

// VocabularyService manages the personal word bank.
type VocabularyService interface {
	SaveWord(ctx context.Context, input SaveWordInput) (*models.VocabularyItem, bool, error)
	GetWord(ctx context.Context, word string) (*models.VocabularyItem, error)
	ListWords(ctx context.Context, filter models.VocabularyFilter) ([]models.VocabularyItem, error)
	DeleteWord(ctx context.Context, word string) error
	ApplyEnrichment(ctx context.Context, word string, enrichment models.Enrichment) error
}

type vocabularyService struct {
	vocabulary  repository.VocabularyRepository
	progression ProgressionService
}

// NewVocabularyService creates a new VocabularyService
func NewVocabularyService(vocabulary repository.VocabularyRepository, progression ProgressionService) VocabularyService {
	return &vocabularyService{vocabulary: vocabulary, progression: progression}
}

func (s *vocabularyService) SaveWord(ctx context.Context, input SaveWordInput) (*models.VocabularyItem, bool, error) {
	log := logger.FromContext(ctx)

	word := strings.TrimSpace(input.Word)
	if word == "" {
		return nil, false, errors.NewValidationError("word", "must not be empty")
	}
	log = log.WithField("word", word)
	log.Debug("saving word")

	item := models.VocabularyItem{
		Word:         word,
		PartOfSpeech: strings.TrimSpace(input.PartOfSpeech),
		Definition:   strings.TrimSpace(input.Definition),
		Example:      strings.TrimSpace(input.Example),
		SavedAt:      time.Now(),
	}
	saved, err := s.vocabulary.Insert(ctx, item)
	if err != nil {
		log.Error("failed to insert word: %v", err)
		return nil, false, errors.NewInternalError(err)
	}
	if !saved {
		log.Debug("word already in the bank, skipping")
		return &item, false, nil
	}

	// The word is stored either way; a failed XP write only costs points.
	if _, err := s.progression.EarnXP(ctx, progression.ActivityWordSaved, nil); err != nil {
		log.Warn("failed to award xp for saved word: %v", err)
	}
	log.Info("word saved")
	return &item, true, nil
}

func (s *vocabularyService) GetWord(ctx context.Context, word string) (*models.VocabularyItem, error) {
	item, err := s.vocabulary.Get(ctx, word)
	if err != nil {
		logger.FromContext(ctx).Error("failed to get word %q: %v", word, err)
		return nil, errors.NewInternalError(err)
	}
	if item == nil {
		return nil, errors.NewNotFoundError("word", word)
	}
	return item, nil
}

func (s *vocabularyService) ListWords(ctx context.Context, filter models.VocabularyFilter) ([]models.VocabularyItem, error) {
	items, err := s.vocabulary.List(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list words: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return items, nil
}

func (s *vocabularyService) DeleteWord(ctx context.Context, word string) error {
	log := logger.FromContext(ctx).WithField("word", word)

	item, err := s.vocabulary.Get(ctx, word)
	if err != nil {
		log.Error("failed to look up word: %v", err)
		return errors.NewInternalError(err)
	}
	if item == nil {
		return errors.NewNotFoundError("word", word)
	}
	if err := s.vocabulary.Delete(ctx, word); err != nil {
		log.Error("failed to delete word: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("word deleted")
	return nil
}

func (s *vocabularyService) ApplyEnrichment(ctx context.Context, word string, enrichment models.Enrichment) error {
	log := logger.FromContext(ctx).WithField("word", word)

	item, err := s.vocabulary.Get(ctx, word)
	if err != nil {
		log.Error("failed to look up word: %v", err)
		return errors.NewInternalError(err)
	}
	if item == nil {
		return errors.NewNotFoundError("word", word)
	}
	if err := s.vocabulary.UpdateEnrichment(ctx, word, enrichment); err != nil {
		log.Error("failed to apply enrichment: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("enrichment applied")
	return nil
}
