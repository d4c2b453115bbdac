package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/repository"
	"github.com/mcamargo/lexgym/internal/repository/sqlite"
	"github.com/mcamargo/lexgym/internal/testutil"
)

type ActivityRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ActivityRepository
}

func (s *ActivityRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewActivityRepository(s.db)
}

func (s *ActivityRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ActivityRepositorySuite) insertN(n int, start time.Time) {
	ctx := context.Background()
	for i := 0; i < n; i++ {
		err := s.repo.Insert(ctx, models.ActivityEntry{
			ID:        fmt.Sprintf("entry-%03d", i),
			CreatedAt: start.Add(time.Duration(i) * time.Minute),
			Module:    models.ModuleReading,
			Kind:      "passage",
			Payload:   []byte(`{"title":"t"}`),
		})
		s.Require().NoError(err)
	}
}

func (s *ActivityRepositorySuite) TestInsertAndList() {
	ctx := context.Background()
	s.insertN(3, time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC))

	entries, err := s.repo.List(ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(entries, 3)
	s.Assert().Equal("entry-002", entries[0].ID, "most recent entry comes first")
	s.Assert().JSONEq(`{"title":"t"}`, string(entries[0].Payload))
}

func (s *ActivityRepositorySuite) TestEmptyPayloadStoredAsObject() {
	ctx := context.Background()

	err := s.repo.Insert(ctx, models.ActivityEntry{
		ID:        "no-payload",
		CreatedAt: time.Now(),
		Module:    models.ModuleGrammar,
		Kind:      "exercise",
	})
	s.Require().NoError(err)

	entries, err := s.repo.List(ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Assert().Equal("{}", string(entries[0].Payload))
}

func (s *ActivityRepositorySuite) TestCapDropsOldestEntries() {
	ctx := context.Background()
	s.insertN(models.ActivityLogCap+10, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activity_log`).Scan(&count)
	s.Require().NoError(err)
	s.Assert().Equal(models.ActivityLogCap, count, "the log never exceeds the cap")

	entries, err := s.repo.List(ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(entries, models.ActivityLogCap)
	s.Assert().Equal("entry-059", entries[0].ID, "newest entries survive")
	s.Assert().Equal("entry-010", entries[len(entries)-1].ID, "the oldest ten were dropped")
}

func (s *ActivityRepositorySuite) TestReplaceTruncatesToCap() {
	ctx := context.Background()

	oversized := make([]models.ActivityEntry, models.ActivityLogCap+5)
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := range oversized {
		// Most-recent-first, as exported.
		oversized[i] = models.ActivityEntry{
			ID:        fmt.Sprintf("imported-%03d", i),
			CreatedAt: start.Add(-time.Duration(i) * time.Minute),
			Module:    models.ModuleListening,
			Kind:      "dialogue",
		}
	}

	s.Require().NoError(s.repo.Replace(ctx, oversized))

	entries, err := s.repo.List(ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(entries, models.ActivityLogCap)
	s.Assert().Equal("imported-000", entries[0].ID, "the newest imported entries are kept")
}

func TestActivityRepositorySuite(t *testing.T) {
	suite.Run(t, new(ActivityRepositorySuite))
}
