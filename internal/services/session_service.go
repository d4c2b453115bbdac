package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mcamargo/lexgym/internal/errors"
	"github.com/mcamargo/lexgym/internal/logger"
	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/progression"
	"github.com/mcamargo/lexgym/internal/repository"
)

// SessionInput is one finished practice session as reported by the client.
type SessionInput struct {
	Module     string `json:"module"`
	Score      int    `json:"score"`
	MaxScore   int    `json:"max_score"`
	Label      string `json:"label"`
	FastFinish bool   `json:"fast_finish"`
}

// SessionResult is the recorded entry plus everything the session changed.
type SessionResult struct {
	Entry  models.ProgressEntry    `json:"entry"`
	Streak models.Streak           `json:"streak"`
	Earn   *progression.EarnResult `json:"earn"`
}

// SessionService records finished practice sessions and fans the event out
// to the streak and XP machinery.
type SessionService interface {
	RecordSession(ctx context.Context, input SessionInput) (*SessionResult, error)
	ListSessions(ctx context.Context, filter models.ProgressFilter) ([]models.ProgressEntry, error)
	ListActivity(ctx context.Context, limit int) ([]models.ActivityEntry, error)
}

type sessionService struct {
	progress    repository.ProgressRepository
	activity    repository.ActivityRepository
	settings    repository.SettingsRepository
	progression ProgressionService
}

// NewSessionService creates a new SessionService
func NewSessionService(
	progress repository.ProgressRepository,
	activity repository.ActivityRepository,
	settings repository.SettingsRepository,
	progression ProgressionService,
) SessionService {
	return &sessionService{
		progress:    progress,
		activity:    activity,
		settings:    settings,
		progression: progression,
	}
}

func (s *sessionService) RecordSession(ctx context.Context, input SessionInput) (*SessionResult, error) {
	log := logger.FromContext(ctx).WithField("module", input.Module)
	log.Debug("recording session: score=%d/%d", input.Score, input.MaxScore)

	if !models.KnownModule(input.Module) {
		return nil, errors.NewValidationError("module", "unknown module")
	}
	if input.MaxScore <= 0 {
		return nil, errors.NewValidationError("max_score", "must be positive")
	}
	if input.Score < 0 || input.Score > input.MaxScore {
		return nil, errors.NewValidationError("score", "must be between 0 and max_score")
	}

	now := time.Now()
	entry := models.ProgressEntry{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Module:    input.Module,
		Score:     input.Score,
		MaxScore:  input.MaxScore,
		Label:     input.Label,
	}
	if err := s.progress.Insert(ctx, entry); err != nil {
		log.Error("failed to insert progress entry: %v", err)
		return nil, errors.NewInternalError(err)
	}

	streak, err := s.progression.UpdateStreak(ctx, now)
	if err != nil {
		return nil, err
	}

	kind, ok := progression.SessionActivity(input.Module)
	if !ok {
		// Every known module maps to an activity, so this is unreachable,
		// but a missing mapping must not lose the recorded entry.
		log.Error("no activity mapping for module %s", input.Module)
		return &SessionResult{Entry: entry, Streak: streak}, nil
	}

	bonuses, err := s.bonuses(ctx, input, now)
	if err != nil {
		return nil, err
	}

	earn, err := s.progression.EarnXP(ctx, kind, bonuses)
	if err != nil {
		return nil, err
	}
	return &SessionResult{Entry: entry, Streak: streak, Earn: earn}, nil
}

// bonuses decides which extra XP awards this session triggers.
func (s *sessionService) bonuses(ctx context.Context, input SessionInput, now time.Time) ([]progression.ActivityKind, error) {
	log := logger.FromContext(ctx)

	var bonuses []progression.ActivityKind
	if input.Score == input.MaxScore {
		switch input.Module {
		case models.ModuleReading:
			bonuses = append(bonuses, progression.ActivityReadingPerfect)
		case models.ModuleListening:
			bonuses = append(bonuses, progression.ActivityListeningPerfect)
		default:
			bonuses = append(bonuses, progression.ActivityPerfectScore)
		}
	}
	if input.FastFinish {
		bonuses = append(bonuses, progression.ActivitySpeedBonus)
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		log.Error("failed to read settings: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if settings.DailyGoal > 0 {
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		today, err := s.progress.Count(ctx, models.ProgressFilter{Since: &midnight})
		if err != nil {
			log.Error("failed to count today's sessions: %v", err)
			return nil, errors.NewInternalError(err)
		}
		// The entry for this session is already inserted, so the count
		// includes it. The bonus fires exactly once, on the session that
		// meets the goal.
		if today == settings.DailyGoal {
			bonuses = append(bonuses, progression.ActivityDailyGoalMet)
		}
	}
	return bonuses, nil
}

func (s *sessionService) ListSessions(ctx context.Context, filter models.ProgressFilter) ([]models.ProgressEntry, error) {
	entries, err := s.progress.List(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list sessions: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return entries, nil
}

func (s *sessionService) ListActivity(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	entries, err := s.activity.List(ctx, limit)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list activity: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return entries, nil
}
