package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mcamargo/lexgym/internal/logger"
	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/progression"
	"github.com/mcamargo/lexgym/internal/repository"
)

type streakRepository struct {
	db *sql.DB
}

// NewStreakRepository creates a new StreakRepository implementation
func NewStreakRepository(db *sql.DB) repository.StreakRepository {
	return &streakRepository{db: db}
}

func (r *streakRepository) Get(ctx context.Context) (models.Streak, error) {
	log := logger.FromContext(ctx).WithPrefix("streak_repo")
	log.Debug("getting streak")

	var s models.Streak
	err := r.db.QueryRowContext(ctx, `
SELECT current, longest, last_active_date
FROM streak
WHERE id = 1
`).Scan(&s.Current, &s.Longest, &s.LastActiveDate)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no streak stored, returning zero value")
		return models.Streak{}, nil
	}
	if err != nil {
		log.Error("failed to get streak: %v", err)
		return models.Streak{}, err
	}
	return s, nil
}

func (r *streakRepository) Advance(ctx context.Context, now time.Time) (models.Streak, error) {
	log := logger.FromContext(ctx).WithPrefix("streak_repo")
	log.Debug("advancing streak")

	// Read and write share one transaction so overlapping calls cannot both
	// advance from the same stale record.
	var updated models.Streak
	err := tx(ctx, r.db, func(t *sql.Tx) error {
		var current models.Streak
		err := t.QueryRowContext(ctx, `
SELECT current, longest, last_active_date
FROM streak
WHERE id = 1
`).Scan(&current.Current, &current.Longest, &current.LastActiveDate)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		updated = progression.AdvanceStreak(current, now)
		if updated == current {
			log.Debug("streak already counted today: current=%d", current.Current)
			return nil
		}

		_, err = t.ExecContext(ctx, `
INSERT INTO streak (id, current, longest, last_active_date)
VALUES (1, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    current = excluded.current,
    longest = excluded.longest,
    last_active_date = excluded.last_active_date
`, updated.Current, updated.Longest, updated.LastActiveDate)
		return err
	})
	if err != nil {
		log.Error("failed to advance streak: %v", err)
		return models.Streak{}, err
	}
	return updated, nil
}

func (r *streakRepository) Save(ctx context.Context, s models.Streak) error {
	log := logger.FromContext(ctx).WithPrefix("streak_repo")
	log.Debug("saving streak: current=%d, longest=%d, last_active=%s", s.Current, s.Longest, s.LastActiveDate)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO streak (id, current, longest, last_active_date)
VALUES (1, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    current = excluded.current,
    longest = excluded.longest,
    last_active_date = excluded.last_active_date
`, s.Current, s.Longest, s.LastActiveDate)
	if err != nil {
		log.Error("failed to save streak: %v", err)
	}
	return err
}

func (r *streakRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("streak_repo")
	log.Debug("clearing streak")

	_, err := r.db.ExecContext(ctx, `DELETE FROM streak`)
	if err != nil {
		log.Error("failed to clear streak: %v", err)
	}
	return err
}
