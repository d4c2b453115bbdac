package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mcamargo/lexgym/internal/logger"
	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/repository"
)

type gamificationRepository struct {
	db *sql.DB
}

// NewGamificationRepository creates a new GamificationRepository implementation
func NewGamificationRepository(db *sql.DB) repository.GamificationRepository {
	return &gamificationRepository{db: db}
}

func (r *gamificationRepository) Get(ctx context.Context) (models.Gamification, error) {
	log := logger.FromContext(ctx).WithPrefix("gamification_repo")
	log.Debug("getting gamification record")

	var g models.Gamification
	err := r.db.QueryRowContext(ctx, `SELECT xp FROM gamification WHERE id = 1`).Scan(&g.XP)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error("failed to get xp total: %v", err)
		return models.Gamification{}, err
	}

	badgeRows, err := r.db.QueryContext(ctx, `SELECT badge_id, unlocked_at FROM badges ORDER BY unlocked_at ASC, rowid ASC`)
	if err != nil {
		log.Error("failed to list badges: %v", err)
		return models.Gamification{}, err
	}
	defer badgeRows.Close()
	for badgeRows.Next() {
		var b models.UnlockedBadge
		if err := badgeRows.Scan(&b.BadgeID, &b.UnlockedAt); err != nil {
			log.Error("failed to scan badge row: %v", err)
			return models.Gamification{}, err
		}
		g.Badges = append(g.Badges, b)
	}
	if err := badgeRows.Err(); err != nil {
		return models.Gamification{}, err
	}

	logRows, err := r.db.QueryContext(ctx, `SELECT day, amount, activity FROM xp_log ORDER BY rowid DESC LIMIT ?`, models.XPLogCap)
	if err != nil {
		log.Error("failed to list xp log: %v", err)
		return models.Gamification{}, err
	}
	defer logRows.Close()
	for logRows.Next() {
		var e models.XPLogEntry
		if err := logRows.Scan(&e.Date, &e.Amount, &e.Activity); err != nil {
			log.Error("failed to scan xp log row: %v", err)
			return models.Gamification{}, err
		}
		g.XPLog = append(g.XPLog, e)
	}
	log.Debug("gamification record loaded: xp=%d, badges=%d, log=%d", g.XP, len(g.Badges), len(g.XPLog))
	return g, logRows.Err()
}

func (r *gamificationRepository) ApplyEarn(ctx context.Context, delta int, entry models.XPLogEntry, unlocked []models.UnlockedBadge) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("gamification_repo")
	log.Debug("applying earn: delta=%d, amount=%d, activity=%s, new_badges=%d", delta, entry.Amount, entry.Activity, len(unlocked))

	// The increment runs inside the transaction so two overlapping earns
	// cannot both write a total derived from the same stale read.
	var newXP int
	err := tx(ctx, r.db, func(t *sql.Tx) error {
		if err := t.QueryRowContext(ctx, `
INSERT INTO gamification (id, xp) VALUES (1, ?)
ON CONFLICT(id) DO UPDATE SET xp = gamification.xp + excluded.xp
RETURNING xp
`, delta).Scan(&newXP); err != nil {
			return err
		}
		if _, err := t.ExecContext(ctx, `
INSERT INTO xp_log (day, amount, activity) VALUES (?, ?, ?)
`, entry.Date, entry.Amount, entry.Activity); err != nil {
			return err
		}
		if _, err := t.ExecContext(ctx, `
DELETE FROM xp_log
WHERE rowid NOT IN (SELECT rowid FROM xp_log ORDER BY rowid DESC LIMIT ?)
`, models.XPLogCap); err != nil {
			return err
		}
		for _, b := range unlocked {
			// Already-unlocked badges are never re-awarded.
			if _, err := t.ExecContext(ctx, `
INSERT OR IGNORE INTO badges (badge_id, unlocked_at) VALUES (?, ?)
`, b.BadgeID, b.UnlockedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newXP, nil
}

func (r *gamificationRepository) UnlockBadge(ctx context.Context, badge models.UnlockedBadge) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("gamification_repo")
	log.Debug("unlocking badge: badge_id=%s", badge.BadgeID)

	res, err := r.db.ExecContext(ctx, `
INSERT OR IGNORE INTO badges (badge_id, unlocked_at) VALUES (?, ?)
`, badge.BadgeID, badge.UnlockedAt)
	if err != nil {
		log.Error("failed to unlock badge: %v", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		log.Error("failed to read rows affected: %v", err)
		return false, err
	}
	if n == 0 {
		log.Debug("badge already unlocked: badge_id=%s", badge.BadgeID)
		return false, nil
	}
	return true, nil
}

func (r *gamificationRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("gamification_repo")
	log.Debug("clearing gamification state")

	return tx(ctx, r.db, func(t *sql.Tx) error {
		for _, stmt := range []string{
			`DELETE FROM gamification`,
			`DELETE FROM badges`,
			`DELETE FROM xp_log`,
		} {
			if _, err := t.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *gamificationRepository) Replace(ctx context.Context, g models.Gamification) error {
	log := logger.FromContext(ctx).WithPrefix("gamification_repo")
	log.Debug("replacing gamification state: xp=%d, badges=%d, log=%d", g.XP, len(g.Badges), len(g.XPLog))

	xpLog := g.XPLog
	if len(xpLog) > models.XPLogCap {
		xpLog = xpLog[:models.XPLogCap]
	}

	return tx(ctx, r.db, func(t *sql.Tx) error {
		for _, stmt := range []string{
			`DELETE FROM gamification`,
			`DELETE FROM badges`,
			`DELETE FROM xp_log`,
		} {
			if _, err := t.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		if _, err := t.ExecContext(ctx, `INSERT INTO gamification (id, xp) VALUES (1, ?)`, g.XP); err != nil {
			return err
		}
		for _, b := range g.Badges {
			if _, err := t.ExecContext(ctx, `INSERT OR IGNORE INTO badges (badge_id, unlocked_at) VALUES (?, ?)`, b.BadgeID, b.UnlockedAt); err != nil {
				return err
			}
		}
		// The log is exported most-recent-first; restore in reverse so rowid
		// order matches earn order.
		for i := len(xpLog) - 1; i >= 0; i-- {
			e := xpLog[i]
			if _, err := t.ExecContext(ctx, `INSERT INTO xp_log (day, amount, activity) VALUES (?, ?, ?)`, e.Date, e.Amount, e.Activity); err != nil {
				return err
			}
		}
		return nil
	})
}
