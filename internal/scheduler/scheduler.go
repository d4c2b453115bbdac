package scheduler

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/mcamargo/lexgym/internal/logger"
	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/repository"
)

// Scheduler runs the daily maintenance pass: re-trimming the bounded logs
// and reporting streaks that lapsed overnight. Streak resets themselves are
// lazy; the next recorded session applies them.
type Scheduler struct {
	scheduler *gocron.Scheduler
	db        *sql.DB
	streak    repository.StreakRepository
	log       *logger.Logger
}

// New creates a scheduler that fires once a day at the given local hour.
func New(db *sql.DB, streak repository.StreakRepository, hour int) *Scheduler {
	if hour < 0 || hour > 23 {
		hour = 3
	}
	s := gocron.NewScheduler(time.Local)
	sched := &Scheduler{
		scheduler: s,
		db:        db,
		streak:    streak,
		log:       logger.Default().WithPrefix("scheduler"),
	}
	s.Every(1).Day().At(fmt.Sprintf("%02d:00", hour)).Do(sched.runMaintenance)
	return sched
}

func (s *Scheduler) Start() {
	s.log.Info("starting daily maintenance scheduler")
	s.scheduler.StartAsync()
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) runMaintenance() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	ctx = logger.NewContext(ctx, s.log)

	s.log.Info("running daily maintenance")

	// Inserts already trim on write; this is a backstop for rows restored by
	// an oversized import.
	if _, err := s.db.ExecContext(ctx, `
DELETE FROM activity_log
WHERE rowid NOT IN (
    SELECT rowid FROM activity_log
    ORDER BY created_at DESC, rowid DESC
    LIMIT ?
)
`, models.ActivityLogCap); err != nil {
		s.log.Error("failed to trim activity log: %v", err)
	}
	if _, err := s.db.ExecContext(ctx, `
DELETE FROM xp_log
WHERE rowid NOT IN (
    SELECT rowid FROM xp_log
    ORDER BY rowid DESC
    LIMIT ?
)
`, models.XPLogCap); err != nil {
		s.log.Error("failed to trim xp log: %v", err)
	}
	if _, err := s.db.ExecContext(ctx, `PRAGMA optimize`); err != nil {
		s.log.Warn("failed to run pragma optimize: %v", err)
	}

	streak, err := s.streak.Get(ctx)
	if err != nil {
		s.log.Error("failed to read streak: %v", err)
		return
	}
	if streak.Current > 0 && lapsed(streak, time.Now()) {
		s.log.Info("streak of %d days has lapsed, will reset on next session", streak.Current)
	}
	s.log.Info("daily maintenance finished")
}

// lapsed reports whether the streak can no longer be extended.
func lapsed(s models.Streak, now time.Time) bool {
	today := now.Format(models.DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(models.DateLayout)
	return s.LastActiveDate != today && s.LastActiveDate != yesterday
}
