package services

import (
	"context"
	"time"

	"github.com/mcamargo/lexgym/internal/errors"
	"github.com/mcamargo/lexgym/internal/logger"
	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/progression"
	"github.com/mcamargo/lexgym/internal/repository"
)

// BadgeStatus pairs a catalog descriptor with its unlock state.
type BadgeStatus struct {
	progression.Badge
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

// ProgressionSummary is the read-side view of the gamification record.
type ProgressionSummary struct {
	XP     int                   `json:"xp"`
	Level  progression.LevelInfo `json:"level"`
	Badges []BadgeStatus         `json:"badges"`
	Streak models.Streak         `json:"streak"`
}

// ProgressionService converts domain events into XP totals, level
// transitions and badge unlocks.
type ProgressionService interface {
	EarnXP(ctx context.Context, kind progression.ActivityKind, bonuses []progression.ActivityKind) (*progression.EarnResult, error)
	AwardBadge(ctx context.Context, badgeID string) (*progression.Badge, error)
	UpdateStreak(ctx context.Context, now time.Time) (models.Streak, error)
	Summary(ctx context.Context) (*ProgressionSummary, error)
	Heatmap(ctx context.Context) (map[string]int, error)
}

type progressionService struct {
	gamification repository.GamificationRepository
	progress     repository.ProgressRepository
	vocabulary   repository.VocabularyRepository
	streak       repository.StreakRepository
}

// NewProgressionService creates a new ProgressionService
func NewProgressionService(
	gamification repository.GamificationRepository,
	progress repository.ProgressRepository,
	vocabulary repository.VocabularyRepository,
	streak repository.StreakRepository,
) ProgressionService {
	return &progressionService{
		gamification: gamification,
		progress:     progress,
		vocabulary:   vocabulary,
		streak:       streak,
	}
}

func (s *progressionService) EarnXP(ctx context.Context, kind progression.ActivityKind, bonuses []progression.ActivityKind) (*progression.EarnResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("earning xp: kind=%s, bonuses=%d", kind, len(bonuses))

	if !progression.KnownActivity(kind) {
		return nil, errors.NewValidationError("activity", "unknown activity kind")
	}

	record, err := s.gamification.Get(ctx)
	if err != nil {
		log.Error("failed to read gamification record: %v", err)
		return nil, errors.NewInternalError(err)
	}

	base := progression.Value(kind)
	bonus := 0
	for _, b := range bonuses {
		bonus += progression.Value(b)
	}
	delta := base + bonus

	// Badge conditions are checked against the provisional total; the
	// increment itself happens inside the write transaction, and the total it
	// returns is the authoritative one.
	provisional := progression.LevelFor(record.XP + delta)

	snap, err := s.snapshot(ctx, provisional.Level)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	unlocked := make(map[string]bool, len(record.Badges))
	for _, b := range record.Badges {
		unlocked[b.BadgeID] = true
	}
	newBadges := progression.EvaluateBadges(snap, unlocked)

	now := time.Now()
	entry := models.XPLogEntry{
		Date:     now.Format(models.DateLayout),
		Amount:   delta,
		Activity: string(kind),
	}
	toUnlock := make([]models.UnlockedBadge, len(newBadges))
	for i, b := range newBadges {
		toUnlock[i] = models.UnlockedBadge{BadgeID: b.ID, UnlockedAt: now}
	}

	newTotal, err := s.gamification.ApplyEarn(ctx, delta, entry, toUnlock)
	if err != nil {
		log.Error("failed to persist earn: %v", err)
		return nil, errors.NewInternalError(err)
	}

	oldLevel := progression.LevelFor(newTotal - delta).Level
	newInfo := progression.LevelFor(newTotal)
	result := &progression.EarnResult{
		Base:      base,
		Bonus:     bonus,
		NewTotal:  newTotal,
		LeveledUp: newInfo.Level > oldLevel,
		NewLevel:  newInfo.Level,
		NewBadges: newBadges,
	}
	log.Info("earned %d xp (%d base + %d bonus), total=%d, level=%d, new_badges=%d",
		base+bonus, base, bonus, newTotal, newInfo.Level, len(newBadges))
	return result, nil
}

// snapshot gathers the cross-cutting counters the badge conditions read.
func (s *progressionService) snapshot(ctx context.Context, level int) (progression.Snapshot, error) {
	log := logger.FromContext(ctx)

	totalSessions, err := s.progress.Count(ctx, models.ProgressFilter{})
	if err != nil {
		log.Error("failed to count sessions: %v", err)
		return progression.Snapshot{}, err
	}
	grammarSessions, err := s.progress.Count(ctx, models.ProgressFilter{Module: models.ModuleGrammar})
	if err != nil {
		log.Error("failed to count grammar sessions: %v", err)
		return progression.Snapshot{}, err
	}
	strongWriting, err := s.progress.CountWithMinPercent(ctx, models.ModuleWriting, 80)
	if err != nil {
		log.Error("failed to count strong writing sessions: %v", err)
		return progression.Snapshot{}, err
	}
	wordCount, err := s.vocabulary.Count(ctx, models.VocabularyFilter{})
	if err != nil {
		log.Error("failed to count words: %v", err)
		return progression.Snapshot{}, err
	}
	streak, err := s.streak.Get(ctx)
	if err != nil {
		log.Error("failed to read streak: %v", err)
		return progression.Snapshot{}, err
	}

	return progression.Snapshot{
		TotalSessions:   totalSessions,
		WordCount:       wordCount,
		StrongWriting:   strongWriting,
		GrammarSessions: grammarSessions,
		StreakCurrent:   streak.Current,
		Level:           level,
	}, nil
}

func (s *progressionService) AwardBadge(ctx context.Context, badgeID string) (*progression.Badge, error) {
	log := logger.FromContext(ctx)
	log.Debug("awarding badge: badge_id=%s", badgeID)

	badge, ok := progression.BadgeByID(badgeID)
	if !ok {
		// Unknown ids are a silent no-op.
		log.Debug("unknown badge id, ignoring: %s", badgeID)
		return nil, nil
	}

	added, err := s.gamification.UnlockBadge(ctx, models.UnlockedBadge{BadgeID: badge.ID, UnlockedAt: time.Now()})
	if err != nil {
		log.Error("failed to unlock badge: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if !added {
		return nil, nil
	}
	log.Info("badge unlocked: %s", badge.ID)
	return &badge, nil
}

func (s *progressionService) UpdateStreak(ctx context.Context, now time.Time) (models.Streak, error) {
	log := logger.FromContext(ctx)

	updated, err := s.streak.Advance(ctx, now)
	if err != nil {
		log.Error("failed to advance streak: %v", err)
		return models.Streak{}, errors.NewInternalError(err)
	}
	log.Info("streak: current=%d, longest=%d", updated.Current, updated.Longest)
	return updated, nil
}

func (s *progressionService) Summary(ctx context.Context) (*ProgressionSummary, error) {
	log := logger.FromContext(ctx)
	log.Debug("building progression summary")

	record, err := s.gamification.Get(ctx)
	if err != nil {
		log.Error("failed to read gamification record: %v", err)
		return nil, errors.NewInternalError(err)
	}
	streak, err := s.streak.Get(ctx)
	if err != nil {
		log.Error("failed to read streak: %v", err)
		return nil, errors.NewInternalError(err)
	}

	unlockedAt := make(map[string]time.Time, len(record.Badges))
	for _, b := range record.Badges {
		unlockedAt[b.BadgeID] = b.UnlockedAt
	}

	catalog := progression.Catalog()
	badges := make([]BadgeStatus, len(catalog))
	for i, badge := range catalog {
		status := BadgeStatus{Badge: badge}
		if t, ok := unlockedAt[badge.ID]; ok {
			status.Unlocked = true
			status.UnlockedAt = &t
		}
		badges[i] = status
	}

	return &ProgressionSummary{
		XP:     record.XP,
		Level:  progression.LevelFor(record.XP),
		Badges: badges,
		Streak: streak,
	}, nil
}

func (s *progressionService) Heatmap(ctx context.Context) (map[string]int, error) {
	record, err := s.gamification.Get(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return progression.XPByDate(record.XPLog), nil
}
