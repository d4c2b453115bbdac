package repository

import (
	"context"
	"time"

	"github.com/mcamargo/lexgym/internal/models"
)

// SettingsRepository handles the singleton settings record
type SettingsRepository interface {
	// Get returns the stored settings, or a default-valued record when none
	// has been written yet.
	Get(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, s models.Settings) error
	Clear(ctx context.Context) error
}

// VocabularyRepository handles saved words
type VocabularyRepository interface {
	List(ctx context.Context, filter models.VocabularyFilter) ([]models.VocabularyItem, error)
	Count(ctx context.Context, filter models.VocabularyFilter) (int, error)
	Get(ctx context.Context, word string) (*models.VocabularyItem, error)
	// Insert saves a word. It returns false when an item with the same
	// lowercased word already exists; the collection is left unchanged.
	Insert(ctx context.Context, item models.VocabularyItem) (bool, error)
	UpdateEnrichment(ctx context.Context, word string, e models.Enrichment) error
	Delete(ctx context.Context, word string) error
	Clear(ctx context.Context) error
	Replace(ctx context.Context, items []models.VocabularyItem) error
}

// ProgressRepository handles scored session records
type ProgressRepository interface {
	Insert(ctx context.Context, entry models.ProgressEntry) error
	List(ctx context.Context, filter models.ProgressFilter) ([]models.ProgressEntry, error)
	Count(ctx context.Context, filter models.ProgressFilter) (int, error)
	// CountWithMinPercent counts entries of a module whose score reached the
	// given percentage of max_score. Used by badge conditions.
	CountWithMinPercent(ctx context.Context, module string, percent int) (int, error)
	Clear(ctx context.Context) error
	Replace(ctx context.Context, entries []models.ProgressEntry) error
}

// ActivityRepository handles the bounded content-generation log
type ActivityRepository interface {
	// Insert appends an entry and trims the log to models.ActivityLogCap.
	Insert(ctx context.Context, entry models.ActivityEntry) error
	List(ctx context.Context, limit int) ([]models.ActivityEntry, error)
	Clear(ctx context.Context) error
	Replace(ctx context.Context, entries []models.ActivityEntry) error
}

// GrammarRepository handles saved grammar rule snapshots
type GrammarRepository interface {
	// Insert saves a rule. It returns false when a rule with identical rule
	// text already exists.
	Insert(ctx context.Context, rule models.GrammarRule) (bool, error)
	List(ctx context.Context) ([]models.GrammarRule, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Replace(ctx context.Context, rules []models.GrammarRule) error
}

// StreakRepository handles the singleton streak record
type StreakRepository interface {
	Get(ctx context.Context) (models.Streak, error)
	// Advance applies the calendar-day streak rules for now and returns the
	// resulting record. The read and write run in one transaction.
	Advance(ctx context.Context, now time.Time) (models.Streak, error)
	Save(ctx context.Context, s models.Streak) error
	Clear(ctx context.Context) error
}

// GamificationRepository handles XP, badges and the dated XP log
type GamificationRepository interface {
	Get(ctx context.Context) (models.Gamification, error)
	// ApplyEarn persists one EarnXP outcome as a single transaction: the XP
	// total is incremented by delta, the dated log entry is appended (trimmed
	// to models.XPLogCap) and any newly unlocked badges are added. It returns
	// the XP total after the increment.
	ApplyEarn(ctx context.Context, delta int, entry models.XPLogEntry, unlocked []models.UnlockedBadge) (int, error)
	// UnlockBadge adds one badge id. It returns false when the badge is
	// already present.
	UnlockBadge(ctx context.Context, badge models.UnlockedBadge) (bool, error)
	Clear(ctx context.Context) error
	Replace(ctx context.Context, g models.Gamification) error
}
