package services

import (
	"context"

	"github.com/mcamargo/lexgym/internal/errors"
	"github.com/mcamargo/lexgym/internal/logger"
	"github.com/mcamargo/lexgym/internal/repository"
)

// Erase scopes.
const (
	ScopeSessions = "sessions"
	ScopeLibrary  = "library"
	ScopeAll      = "all"
)

// DataService handles the destructive bulk-erase operations behind the
// settings screen.
type DataService interface {
	Erase(ctx context.Context, scope string) error
}

type dataService struct {
	settings     repository.SettingsRepository
	vocabulary   repository.VocabularyRepository
	progress     repository.ProgressRepository
	activity     repository.ActivityRepository
	grammar      repository.GrammarRepository
	streak       repository.StreakRepository
	gamification repository.GamificationRepository
}

// NewDataService creates a new DataService
func NewDataService(
	settings repository.SettingsRepository,
	vocabulary repository.VocabularyRepository,
	progress repository.ProgressRepository,
	activity repository.ActivityRepository,
	grammar repository.GrammarRepository,
	streak repository.StreakRepository,
	gamification repository.GamificationRepository,
) DataService {
	return &dataService{
		settings:     settings,
		vocabulary:   vocabulary,
		progress:     progress,
		activity:     activity,
		grammar:      grammar,
		streak:       streak,
		gamification: gamification,
	}
}

func (s *dataService) Erase(ctx context.Context, scope string) error {
	log := logger.FromContext(ctx).WithField("scope", scope)
	log.Info("erasing data")

	switch scope {
	case ScopeSessions:
		return s.eraseSessions(ctx)
	case ScopeLibrary:
		return s.eraseLibrary(ctx)
	case ScopeAll:
		if err := s.eraseSessions(ctx); err != nil {
			return err
		}
		if err := s.eraseLibrary(ctx); err != nil {
			return err
		}
		if err := s.settings.Clear(ctx); err != nil {
			log.Error("failed to clear settings: %v", err)
			return errors.NewInternalError(err)
		}
		return nil
	}
	return errors.NewValidationError("scope", "must be one of sessions, library, all")
}

// eraseSessions clears everything derived from practice activity. The streak
// and XP totals go with the sessions that produced them.
func (s *dataService) eraseSessions(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := s.progress.Clear(ctx); err != nil {
		log.Error("failed to clear progress: %v", err)
		return errors.NewInternalError(err)
	}
	if err := s.activity.Clear(ctx); err != nil {
		log.Error("failed to clear activity log: %v", err)
		return errors.NewInternalError(err)
	}
	if err := s.streak.Clear(ctx); err != nil {
		log.Error("failed to clear streak: %v", err)
		return errors.NewInternalError(err)
	}
	if err := s.gamification.Clear(ctx); err != nil {
		log.Error("failed to clear gamification: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

// eraseLibrary clears the user-curated reference material.
func (s *dataService) eraseLibrary(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := s.vocabulary.Clear(ctx); err != nil {
		log.Error("failed to clear vocabulary: %v", err)
		return errors.NewInternalError(err)
	}
	if err := s.grammar.Clear(ctx); err != nil {
		log.Error("failed to clear grammar rules: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}
