package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/mcamargo/lexgym/internal/logger"
	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const vocabularyColumns = `word, part_of_speech, definition, example, etymology, detailed_definition, synonyms, antonyms, collocations, register, grammar_note, word_formation, srs_level, next_review, saved_at`

type vocabularyRepository struct {
	db *sql.DB
}

// NewVocabularyRepository creates a new VocabularyRepository implementation
func NewVocabularyRepository(db *sql.DB) repository.VocabularyRepository {
	return &vocabularyRepository{db: db}
}

func scanVocabularyItem(row interface {
	Scan(dest ...any) error
}) (models.VocabularyItem, error) {
	var item models.VocabularyItem
	var synonyms, antonyms, collocations string
	var nextReview sql.NullTime
	err := row.Scan(&item.Word, &item.PartOfSpeech, &item.Definition, &item.Example,
		&item.Etymology, &item.DetailedDef, &synonyms, &antonyms, &collocations,
		&item.Register, &item.GrammarNote, &item.WordFormation,
		&item.SRSLevel, &nextReview, &item.SavedAt)
	if err != nil {
		return item, err
	}
	item.Synonyms = decodeList(synonyms)
	item.Antonyms = decodeList(antonyms)
	item.Collocations = decodeList(collocations)
	if nextReview.Valid {
		t := nextReview.Time
		item.NextReview = &t
	}
	return item, nil
}

func (r *vocabularyRepository) List(ctx context.Context, filter models.VocabularyFilter) ([]models.VocabularyItem, error) {
	log := logger.FromContext(ctx).WithPrefix("vocab_repo")
	log.Debug("listing vocabulary: part_of_speech=%s, search=%s", filter.PartOfSpeech, filter.Search)

	query := sqlBuilder.Select(strings.Split(vocabularyColumns, ", ")...).From("vocabulary")

	if filter.PartOfSpeech != "" {
		query = query.Where(squirrel.Eq{"part_of_speech": filter.PartOfSpeech})
	}
	if filter.Search != "" {
		query = query.Where(squirrel.Like{"word_key": "%" + strings.ToLower(filter.Search) + "%"})
	}

	// Most-recent-first, rowid as tiebreaker for same-instant saves.
	query = query.OrderBy("saved_at DESC", "rowid DESC")

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
		log.Error("failed to list vocabulary: %v", err)
		return nil, err
	}
	defer rows.Close()

	var items []models.VocabularyItem
	for rows.Next() {
		item, err := scanVocabularyItem(rows)
		if err != nil {
			log.Error("failed to scan vocabulary row: %v", err)
			return nil, err
		}
		items = append(items, item)
	}
	log.Debug("found %d vocabulary items", len(items))
	return items, rows.Err()
}

func (r *vocabularyRepository) Count(ctx context.Context, filter models.VocabularyFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("vocab_repo")

	query := sqlBuilder.Select("COUNT(*)").From("vocabulary")
	if filter.PartOfSpeech != "" {
		query = query.Where(squirrel.Eq{"part_of_speech": filter.PartOfSpeech})
	}
	if filter.Search != "" {
		query = query.Where(squirrel.Like{"word_key": "%" + strings.ToLower(filter.Search) + "%"})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build count query: %v", err)
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		log.Error("failed to count vocabulary: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *vocabularyRepository) Get(ctx context.Context, word string) (*models.VocabularyItem, error) {
	log := logger.FromContext(ctx).WithPrefix("vocab_repo")
	key := strings.ToLower(strings.TrimSpace(word))
	log.Debug("getting vocabulary item: word_key=%s", key)

	row := r.db.QueryRowContext(ctx, `
SELECT `+vocabularyColumns+`
FROM vocabulary
WHERE word_key = ?
`, key)
	item, err := scanVocabularyItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("vocabulary item not found: word_key=%s", key)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get vocabulary item: %v", err)
		return nil, err
	}
	return &item, nil
}

func (r *vocabularyRepository) Insert(ctx context.Context, item models.VocabularyItem) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("vocab_repo")
	key := strings.ToLower(strings.TrimSpace(item.Word))
	log.Debug("inserting vocabulary item: word_key=%s", key)

	// Dedup on the lowercased word; an existing item wins.
	res, err := r.db.ExecContext(ctx, `
INSERT OR IGNORE INTO vocabulary (word_key, `+vocabularyColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, key, item.Word, item.PartOfSpeech, item.Definition, item.Example,
		item.Etymology, item.DetailedDef, encodeList(item.Synonyms), encodeList(item.Antonyms), encodeList(item.Collocations),
		item.Register, item.GrammarNote, item.WordFormation,
		item.SRSLevel, item.NextReview, item.SavedAt)
	if err != nil {
		log.Error("failed to insert vocabulary item: %v", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		log.Error("failed to read rows affected: %v", err)
		return false, err
	}
	if n == 0 {
		log.Debug("word already saved, insert skipped: word_key=%s", key)
		return false, nil
	}
	log.Debug("vocabulary item inserted: word_key=%s", key)
	return true, nil
}

func (r *vocabularyRepository) UpdateEnrichment(ctx context.Context, word string, e models.Enrichment) error {
	log := logger.FromContext(ctx).WithPrefix("vocab_repo")
	key := strings.ToLower(strings.TrimSpace(word))
	log.Debug("updating enrichment: word_key=%s", key)

	_, err := r.db.ExecContext(ctx, `
UPDATE vocabulary
SET etymology = ?, detailed_definition = ?, synonyms = ?, antonyms = ?, collocations = ?,
    register = ?, grammar_note = ?, word_formation = ?
WHERE word_key = ?
`, e.Etymology, e.DetailedDef, encodeList(e.Synonyms), encodeList(e.Antonyms), encodeList(e.Collocations),
		e.Register, e.GrammarNote, e.WordFormation, key)
	if err != nil {
		log.Error("failed to update enrichment: %v", err)
	}
	return err
}

func (r *vocabularyRepository) Delete(ctx context.Context, word string) error {
	log := logger.FromContext(ctx).WithPrefix("vocab_repo")
	key := strings.ToLower(strings.TrimSpace(word))
	log.Debug("deleting vocabulary item: word_key=%s", key)

	_, err := r.db.ExecContext(ctx, `DELETE FROM vocabulary WHERE word_key = ?`, key)
	if err != nil {
		log.Error("failed to delete vocabulary item: %v", err)
	}
	return err
}

func (r *vocabularyRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("vocab_repo")
	log.Debug("clearing vocabulary")

	_, err := r.db.ExecContext(ctx, `DELETE FROM vocabulary`)
	if err != nil {
		log.Error("failed to clear vocabulary: %v", err)
	}
	return err
}

func (r *vocabularyRepository) Replace(ctx context.Context, items []models.VocabularyItem) error {
	log := logger.FromContext(ctx).WithPrefix("vocab_repo")
	log.Debug("replacing vocabulary with %d items", len(items))

	return tx(ctx, r.db, func(t *sql.Tx) error {
		if _, err := t.ExecContext(ctx, `DELETE FROM vocabulary`); err != nil {
			return err
		}
		// Imported items arrive most-recent-first; insert in reverse so rowid
		// order matches save order.
		for i := len(items) - 1; i >= 0; i-- {
			item := items[i]
			key := strings.ToLower(strings.TrimSpace(item.Word))
			if _, err := t.ExecContext(ctx, `
INSERT OR IGNORE INTO vocabulary (word_key, `+vocabularyColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, key, item.Word, item.PartOfSpeech, item.Definition, item.Example,
				item.Etymology, item.DetailedDef, encodeList(item.Synonyms), encodeList(item.Antonyms), encodeList(item.Collocations),
				item.Register, item.GrammarNote, item.WordFormation,
				item.SRSLevel, item.NextReview, item.SavedAt); err != nil {
				return err
			}
		}
		return nil
	})
}
