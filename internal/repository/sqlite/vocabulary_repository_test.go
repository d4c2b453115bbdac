package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/repository"
	"github.com/mcamargo/lexgym/internal/repository/sqlite"
	"github.com/mcamargo/lexgym/internal/testutil"
)

type VocabularyRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.VocabularyRepository
}

func (s *VocabularyRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewVocabularyRepository(s.db)
}

func (s *VocabularyRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *VocabularyRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()

	saved, err := s.repo.Insert(ctx, models.VocabularyItem{
		Word:         "serendipity",
		PartOfSpeech: "noun",
		Definition:   "a fortunate accident",
		Example:      "Finding the cafe was pure serendipity.",
		SavedAt:      time.Now(),
	})
	s.Require().NoError(err)
	s.Assert().True(saved)

	item, err := s.repo.Get(ctx, "serendipity")
	s.Require().NoError(err)
	s.Require().NotNil(item)
	s.Assert().Equal("serendipity", item.Word)
	s.Assert().Equal("noun", item.PartOfSpeech)
}

func (s *VocabularyRepositorySuite) TestInsertDedupIsCaseInsensitive() {
	ctx := context.Background()

	saved, err := s.repo.Insert(ctx, models.VocabularyItem{Word: "Serendipity", SavedAt: time.Now()})
	s.Require().NoError(err)
	s.Assert().True(saved)

	saved, err = s.repo.Insert(ctx, models.VocabularyItem{Word: "serendipity", SavedAt: time.Now()})
	s.Require().NoError(err)
	s.Assert().False(saved, "same word in different case is a duplicate")

	count, err := s.repo.Count(ctx, models.VocabularyFilter{})
	s.Require().NoError(err)
	s.Assert().Equal(1, count)

	// The original casing wins.
	item, err := s.repo.Get(ctx, "SERENDIPITY")
	s.Require().NoError(err)
	s.Require().NotNil(item)
	s.Assert().Equal("Serendipity", item.Word)
}

func (s *VocabularyRepositorySuite) TestGetMissingReturnsNil() {
	item, err := s.repo.Get(context.Background(), "nonexistent")
	s.Require().NoError(err)
	s.Assert().Nil(item)
}

func (s *VocabularyRepositorySuite) TestListOrderAndFilters() {
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	words := []models.VocabularyItem{
		{Word: "alpha", PartOfSpeech: "noun", SavedAt: base},
		{Word: "bravo", PartOfSpeech: "verb", SavedAt: base.Add(time.Hour)},
		{Word: "charlie", PartOfSpeech: "noun", SavedAt: base.Add(2 * time.Hour)},
	}
	for _, w := range words {
		_, err := s.repo.Insert(ctx, w)
		s.Require().NoError(err)
	}

	items, err := s.repo.List(ctx, models.VocabularyFilter{})
	s.Require().NoError(err)
	s.Require().Len(items, 3)
	s.Assert().Equal("charlie", items[0].Word, "most recent save comes first")
	s.Assert().Equal("alpha", items[2].Word)

	nouns, err := s.repo.List(ctx, models.VocabularyFilter{PartOfSpeech: "noun"})
	s.Require().NoError(err)
	s.Assert().Len(nouns, 2)

	matches, err := s.repo.List(ctx, models.VocabularyFilter{Search: "ALP"})
	s.Require().NoError(err)
	s.Require().Len(matches, 1)
	s.Assert().Equal("alpha", matches[0].Word)

	limited, err := s.repo.List(ctx, models.VocabularyFilter{Limit: 2})
	s.Require().NoError(err)
	s.Assert().Len(limited, 2)
}

func (s *VocabularyRepositorySuite) TestUpdateEnrichment() {
	ctx := context.Background()

	_, err := s.repo.Insert(ctx, models.VocabularyItem{Word: "ephemeral", SavedAt: time.Now()})
	s.Require().NoError(err)

	err = s.repo.UpdateEnrichment(ctx, "ephemeral", models.Enrichment{
		Etymology:   "from Greek ephemeros, lasting a day",
		DetailedDef: "lasting for a very short time",
		Synonyms:    []string{"transient", "fleeting"},
		Register:    "formal",
	})
	s.Require().NoError(err)

	item, err := s.repo.Get(ctx, "ephemeral")
	s.Require().NoError(err)
	s.Require().NotNil(item)
	s.Assert().Equal("from Greek ephemeros, lasting a day", item.Etymology)
	s.Assert().Equal([]string{"transient", "fleeting"}, item.Synonyms)
	s.Assert().Equal("formal", item.Register)
	s.Assert().Nil(item.Antonyms)
}

func (s *VocabularyRepositorySuite) TestDeleteAndClear() {
	ctx := context.Background()

	_, err := s.repo.Insert(ctx, models.VocabularyItem{Word: "one", SavedAt: time.Now()})
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, models.VocabularyItem{Word: "two", SavedAt: time.Now()})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Delete(ctx, "One"))
	item, err := s.repo.Get(ctx, "one")
	s.Require().NoError(err)
	s.Assert().Nil(item)

	s.Require().NoError(s.repo.Clear(ctx))
	count, err := s.repo.Count(ctx, models.VocabularyFilter{})
	s.Require().NoError(err)
	s.Assert().Equal(0, count)
}

func (s *VocabularyRepositorySuite) TestReplacePreservesOrder() {
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	_, err := s.repo.Insert(ctx, models.VocabularyItem{Word: "stale", SavedAt: base})
	s.Require().NoError(err)

	// Replace with a most-recent-first export.
	err = s.repo.Replace(ctx, []models.VocabularyItem{
		{Word: "newer", SavedAt: base.Add(time.Hour)},
		{Word: "older", SavedAt: base},
	})
	s.Require().NoError(err)

	items, err := s.repo.List(ctx, models.VocabularyFilter{})
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Assert().Equal("newer", items[0].Word)
	s.Assert().Equal("older", items[1].Word)

	stale, err := s.repo.Get(ctx, "stale")
	s.Require().NoError(err)
	s.Assert().Nil(stale, "replace drops everything that was there before")
}

func TestVocabularyRepositorySuite(t *testing.T) {
	suite.Run(t, new(VocabularyRepositorySuite))
}
