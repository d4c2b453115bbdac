package sqlite

import (
	"context"
	"database/sql"

	"github.com/mcamargo/lexgym/internal/logger"
	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/repository"
)

type activityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new ActivityRepository implementation
func NewActivityRepository(db *sql.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Insert(ctx context.Context, entry models.ActivityEntry) error {
	log := logger.FromContext(ctx).WithPrefix("activity_repo")
	log.Debug("inserting activity entry: module=%s, kind=%s", entry.Module, entry.Kind)

	payload := string(entry.Payload)
	if payload == "" {
		payload = "{}"
	}

	// Insert and trim to the cap in one transaction so the ring buffer never
	// observes more than ActivityLogCap entries.
	return tx(ctx, r.db, func(t *sql.Tx) error {
		if _, err := t.ExecContext(ctx, `
INSERT INTO activity_log (id, created_at, module, kind, payload)
VALUES (?, ?, ?, ?, ?)
`, entry.ID, entry.CreatedAt, entry.Module, entry.Kind, payload); err != nil {
			log.Error("failed to insert activity entry: %v", err)
			return err
		}
		if _, err := t.ExecContext(ctx, `
DELETE FROM activity_log
WHERE rowid NOT IN (
    SELECT rowid FROM activity_log
    ORDER BY created_at DESC, rowid DESC
    LIMIT ?
)
`, models.ActivityLogCap); err != nil {
			log.Error("failed to trim activity log: %v", err)
			return err
		}
		return nil
	})
}

func (r *activityRepository) List(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("activity_repo")
	log.Debug("listing activity entries: limit=%d", limit)

	if limit <= 0 || limit > models.ActivityLogCap {
		limit = models.ActivityLogCap
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, created_at, module, kind, payload
FROM activity_log
ORDER BY created_at DESC, rowid DESC
LIMIT ?
`, limit)
	if err != nil {
		log.Error("failed to list activity entries: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []models.ActivityEntry
	for rows.Next() {
		var e models.ActivityEntry
		var payload string
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.Module, &e.Kind, &payload); err != nil {
			log.Error("failed to scan activity row: %v", err)
			return nil, err
		}
		e.Payload = []byte(payload)
		entries = append(entries, e)
	}
	log.Debug("found %d activity entries", len(entries))
	return entries, rows.Err()
}

func (r *activityRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("activity_repo")
	log.Debug("clearing activity log")

	_, err := r.db.ExecContext(ctx, `DELETE FROM activity_log`)
	if err != nil {
		log.Error("failed to clear activity log: %v", err)
	}
	return err
}

func (r *activityRepository) Replace(ctx context.Context, entries []models.ActivityEntry) error {
	log := logger.FromContext(ctx).WithPrefix("activity_repo")
	log.Debug("replacing activity log with %d entries", len(entries))

	if len(entries) > models.ActivityLogCap {
		entries = entries[:models.ActivityLogCap]
	}

	return tx(ctx, r.db, func(t *sql.Tx) error {
		if _, err := t.ExecContext(ctx, `DELETE FROM activity_log`); err != nil {
			return err
		}
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			payload := string(e.Payload)
			if payload == "" {
				payload = "{}"
			}
			if _, err := t.ExecContext(ctx, `
INSERT INTO activity_log (id, created_at, module, kind, payload)
VALUES (?, ?, ?, ?, ?)
`, e.ID, e.CreatedAt, e.Module, e.Kind, payload); err != nil {
				return err
			}
		}
		return nil
	})
}
