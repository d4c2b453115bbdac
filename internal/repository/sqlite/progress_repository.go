package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/mcamargo/lexgym/internal/logger"
	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/repository"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Insert(ctx context.Context, entry models.ProgressEntry) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("inserting progress entry: module=%s, score=%d/%d", entry.Module, entry.Score, entry.MaxScore)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO progress (id, created_at, module, score, max_score, label)
VALUES (?, ?, ?, ?, ?, ?)
`, entry.ID, entry.CreatedAt, entry.Module, entry.Score, entry.MaxScore, entry.Label)
	if err != nil {
		log.Error("failed to insert progress entry: %v", err)
	}
	return err
}

func (r *progressRepository) List(ctx context.Context, filter models.ProgressFilter) ([]models.ProgressEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("listing progress: module=%s", filter.Module)

	query := sqlBuilder.Select("id", "created_at", "module", "score", "max_score", "label").From("progress")

	if filter.Module != "" {
		query = query.Where(squirrel.Eq{"module": filter.Module})
	}
	if filter.Since != nil {
		query = query.Where(squirrel.GtOrEq{"created_at": *filter.Since})
	}

	query = query.OrderBy("created_at DESC", "rowid DESC")

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list progress: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []models.ProgressEntry
	for rows.Next() {
		var e models.ProgressEntry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.Module, &e.Score, &e.MaxScore, &e.Label); err != nil {
			log.Error("failed to scan progress row: %v", err)
			return nil, err
		}
		entries = append(entries, e)
	}
	log.Debug("found %d progress entries", len(entries))
	return entries, rows.Err()
}

func (r *progressRepository) Count(ctx context.Context, filter models.ProgressFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")

	query := sqlBuilder.Select("COUNT(*)").From("progress")
	if filter.Module != "" {
		query = query.Where(squirrel.Eq{"module": filter.Module})
	}
	if filter.Since != nil {
		query = query.Where(squirrel.GtOrEq{"created_at": *filter.Since})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build count query: %v", err)
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		log.Error("failed to count progress: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *progressRepository) CountWithMinPercent(ctx context.Context, module string, percent int) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("counting %s sessions at or above %d%%", module, percent)

	var count int
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*)
FROM progress
WHERE module = ? AND max_score > 0 AND score * 100 >= max_score * ?
`, module, percent).Scan(&count)
	if err != nil {
		log.Error("failed to count progress by percent: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *progressRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("clearing progress")

	_, err := r.db.ExecContext(ctx, `DELETE FROM progress`)
	if err != nil {
		log.Error("failed to clear progress: %v", err)
	}
	return err
}

func (r *progressRepository) Replace(ctx context.Context, entries []models.ProgressEntry) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("replacing progress with %d entries", len(entries))

	return tx(ctx, r.db, func(t *sql.Tx) error {
		if _, err := t.ExecContext(ctx, `DELETE FROM progress`); err != nil {
			return err
		}
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			if _, err := t.ExecContext(ctx, `
INSERT INTO progress (id, created_at, module, score, max_score, label)
VALUES (?, ?, ?, ?, ?, ?)
`, e.ID, e.CreatedAt, e.Module, e.Score, e.MaxScore, e.Label); err != nil {
				return err
			}
		}
		return nil
	})
}
