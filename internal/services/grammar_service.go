package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mcamargo/lexgym/internal/errors"
	"github.com/mcamargo/lexgym/internal/logger"
	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/progression"
	"github.com/mcamargo/lexgym/internal/repository"
)

// SaveRuleInput is a grammar rule snapshot captured from a lesson.
type SaveRuleInput struct {
	Topic   string `json:"topic"`
	Rule    string `json:"rule"`
	Example string `json:"example"`
}

// GrammarService manages the saved grammar rule reference cards.
type GrammarService interface {
	SaveRule(ctx context.Context, input SaveRuleInput) (*models.GrammarRule, bool, error)
	ListRules(ctx context.Context) ([]models.GrammarRule, error)
	DeleteRule(ctx context.Context, id string) error
}

type grammarService struct {
	grammar     repository.GrammarRepository
	progression ProgressionService
}

// NewGrammarService creates a new GrammarService
func NewGrammarService(grammar repository.GrammarRepository, progression ProgressionService) GrammarService {
	return &grammarService{grammar: grammar, progression: progression}
}

func (s *grammarService) SaveRule(ctx context.Context, input SaveRuleInput) (*models.GrammarRule, bool, error) {
	log := logger.FromContext(ctx)

	text := strings.TrimSpace(input.Rule)
	if text == "" {
		return nil, false, errors.NewValidationError("rule", "must not be empty")
	}
	log.Debug("saving grammar rule: topic=%s", input.Topic)

	rule := models.GrammarRule{
		ID:      uuid.NewString(),
		Topic:   strings.TrimSpace(input.Topic),
		Rule:    text,
		Example: strings.TrimSpace(input.Example),
		SavedAt: time.Now(),
	}
	saved, err := s.grammar.Insert(ctx, rule)
	if err != nil {
		log.Error("failed to insert grammar rule: %v", err)
		return nil, false, errors.NewInternalError(err)
	}
	if !saved {
		log.Debug("identical rule already saved, skipping")
		return &rule, false, nil
	}

	if _, err := s.progression.EarnXP(ctx, progression.ActivityRuleSaved, nil); err != nil {
		log.Warn("failed to award xp for saved rule: %v", err)
	}
	log.Info("grammar rule saved: id=%s", rule.ID)
	return &rule, true, nil
}

func (s *grammarService) ListRules(ctx context.Context) ([]models.GrammarRule, error) {
	rules, err := s.grammar.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list grammar rules: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return rules, nil
}

func (s *grammarService) DeleteRule(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).WithField("rule_id", id)

	if err := s.grammar.Delete(ctx, id); err != nil {
		log.Error("failed to delete grammar rule: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("grammar rule deleted")
	return nil
}
