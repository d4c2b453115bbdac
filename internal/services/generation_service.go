package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mcamargo/lexgym/internal/ai"
	"github.com/mcamargo/lexgym/internal/errors"
	"github.com/mcamargo/lexgym/internal/logger"
	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/repository"
)

// GenerationService fronts the AI backend for lesson content and speech, and
// records every generated lesson in the activity log.
type GenerationService interface {
	Generate(ctx context.Context, req ai.GenerateRequest) (*ai.GeneratedContent, error)
	Speech(ctx context.Context, text, voice string) ([]byte, error)
}

type generationService struct {
	ai       ai.Service
	activity repository.ActivityRepository
}

// NewGenerationService creates a new GenerationService
func NewGenerationService(aiService ai.Service, activity repository.ActivityRepository) GenerationService {
	return &generationService{ai: aiService, activity: activity}
}

func (s *generationService) Generate(ctx context.Context, req ai.GenerateRequest) (*ai.GeneratedContent, error) {
	log := logger.FromContext(ctx).WithField("module", req.Module)
	log.Debug("generating content: kind=%s", req.Kind)

	if !models.KnownModule(req.Module) {
		return nil, errors.NewValidationError("module", "unknown module")
	}

	content, err := s.ai.Generate(ctx, req)
	if err != nil {
		log.Error("content generation failed: %v", err)
		return nil, errors.NewUpstreamError(err)
	}

	entry := models.ActivityEntry{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Module:    content.Module,
		Kind:      content.Kind,
		Payload:   content.Payload,
	}
	// The lesson is already in hand; a failed log write must not discard it.
	if err := s.activity.Insert(ctx, entry); err != nil {
		log.Warn("failed to record activity entry: %v", err)
	}
	return content, nil
}

func (s *generationService) Speech(ctx context.Context, text, voice string) ([]byte, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(text) == "" {
		return nil, errors.NewValidationError("text", "must not be empty")
	}

	audio, err := s.ai.SynthesizeSpeech(ctx, text, voice)
	if err != nil {
		log.Error("speech synthesis failed: %v", err)
		return nil, errors.NewUpstreamError(err)
	}
	return audio, nil
}
