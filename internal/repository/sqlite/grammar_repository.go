package sqlite

import (
	"context"
	"database/sql"

	"github.com/mcamargo/lexgym/internal/logger"
	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/repository"
)

type grammarRepository struct {
	db *sql.DB
}

// NewGrammarRepository creates a new GrammarRepository implementation
func NewGrammarRepository(db *sql.DB) repository.GrammarRepository {
	return &grammarRepository{db: db}
}

func (r *grammarRepository) Insert(ctx context.Context, rule models.GrammarRule) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("grammar_repo")
	log.Debug("inserting grammar rule: topic=%s", rule.Topic)

	// Dedup on exact rule text via the UNIQUE constraint.
	res, err := r.db.ExecContext(ctx, `
INSERT OR IGNORE INTO grammar_rules (id, topic, rule, example, saved_at)
VALUES (?, ?, ?, ?, ?)
`, rule.ID, rule.Topic, rule.Rule, rule.Example, rule.SavedAt)
	if err != nil {
		log.Error("failed to insert grammar rule: %v", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		log.Error("failed to read rows affected: %v", err)
		return false, err
	}
	if n == 0 {
		log.Debug("identical rule already saved, insert skipped")
		return false, nil
	}
	return true, nil
}

func (r *grammarRepository) List(ctx context.Context) ([]models.GrammarRule, error) {
	log := logger.FromContext(ctx).WithPrefix("grammar_repo")
	log.Debug("listing grammar rules")

	rows, err := r.db.QueryContext(ctx, `
SELECT id, topic, rule, example, saved_at
FROM grammar_rules
ORDER BY saved_at DESC, rowid DESC
`)
	if err != nil {
		log.Error("failed to list grammar rules: %v", err)
		return nil, err
	}
	defer rows.Close()

	var rules []models.GrammarRule
	for rows.Next() {
		var g models.GrammarRule
		if err := rows.Scan(&g.ID, &g.Topic, &g.Rule, &g.Example, &g.SavedAt); err != nil {
			log.Error("failed to scan grammar rule row: %v", err)
			return nil, err
		}
		rules = append(rules, g)
	}
	log.Debug("found %d grammar rules", len(rules))
	return rules, rows.Err()
}

func (r *grammarRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).WithPrefix("grammar_repo")
	log.Debug("deleting grammar rule: id=%s", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM grammar_rules WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete grammar rule: %v", err)
	}
	return err
}

func (r *grammarRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("grammar_repo")
	log.Debug("clearing grammar rules")

	_, err := r.db.ExecContext(ctx, `DELETE FROM grammar_rules`)
	if err != nil {
		log.Error("failed to clear grammar rules: %v", err)
	}
	return err
}

func (r *grammarRepository) Replace(ctx context.Context, rules []models.GrammarRule) error {
	log := logger.FromContext(ctx).WithPrefix("grammar_repo")
	log.Debug("replacing grammar rules with %d entries", len(rules))

	return tx(ctx, r.db, func(t *sql.Tx) error {
		if _, err := t.ExecContext(ctx, `DELETE FROM grammar_rules`); err != nil {
			return err
		}
		for i := len(rules) - 1; i >= 0; i-- {
			g := rules[i]
			if _, err := t.ExecContext(ctx, `
INSERT OR IGNORE INTO grammar_rules (id, topic, rule, example, saved_at)
VALUES (?, ?, ?, ?, ?)
`, g.ID, g.Topic, g.Rule, g.Example, g.SavedAt); err != nil {
				return err
			}
		}
		return nil
	})
}
