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

type StreakRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.StreakRepository
}

func (s *StreakRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewStreakRepository(s.db)
}

func (s *StreakRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *StreakRepositorySuite) TestGetEmptyReturnsZeroValue() {
	streak, err := s.repo.Get(context.Background())
	s.Require().NoError(err)
	s.Assert().Equal(models.Streak{}, streak)
}

func (s *StreakRepositorySuite) TestSaveIsUpsert() {
	ctx := context.Background()

	s.Require().NoError(s.repo.Save(ctx, models.Streak{Current: 1, Longest: 1, LastActiveDate: "2026-08-29"}))
	s.Require().NoError(s.repo.Save(ctx, models.Streak{Current: 2, Longest: 2, LastActiveDate: "2026-08-30"}))

	got, err := s.repo.Get(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(models.Streak{Current: 2, Longest: 2, LastActiveDate: "2026-08-30"}, got)

	var count int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM streak`).Scan(&count)
	s.Require().NoError(err)
	s.Assert().Equal(1, count)
}

func (s *StreakRepositorySuite) TestAdvance() {
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	first, err := s.repo.Advance(ctx, now)
	s.Require().NoError(err)
	s.Assert().Equal(models.Streak{Current: 1, Longest: 1, LastActiveDate: "2026-08-30"}, first)

	sameDay, err := s.repo.Advance(ctx, now.Add(8*time.Hour))
	s.Require().NoError(err)
	s.Assert().Equal(first, sameDay, "a second activity on the same day changes nothing")

	nextDay, err := s.repo.Advance(ctx, now.Add(24*time.Hour))
	s.Require().NoError(err)
	s.Assert().Equal(2, nextDay.Current)
	s.Assert().Equal(2, nextDay.Longest)

	afterGap, err := s.repo.Advance(ctx, now.Add(5*24*time.Hour))
	s.Require().NoError(err)
	s.Assert().Equal(1, afterGap.Current, "a missed day resets the run")
	s.Assert().Equal(2, afterGap.Longest, "the longest run survives the reset")
}

func (s *StreakRepositorySuite) TestClear() {
	ctx := context.Background()

	s.Require().NoError(s.repo.Save(ctx, models.Streak{Current: 7, Longest: 9, LastActiveDate: "2026-08-30"}))
	s.Require().NoError(s.repo.Clear(ctx))

	got, err := s.repo.Get(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(models.Streak{}, got)
}

func TestStreakRepositorySuite(t *testing.T) {
	suite.Run(t, new(StreakRepositorySuite))
}
