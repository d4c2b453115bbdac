package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/progression"
	"github.com/mcamargo/lexgym/internal/repository"
	"github.com/mcamargo/lexgym/internal/repository/sqlite"
	"github.com/mcamargo/lexgym/internal/services"
	"github.com/mcamargo/lexgym/internal/testutil"
)

type SessionServiceSuite struct {
	suite.Suite
	db       *sql.DB
	progress repository.ProgressRepository
	svc      services.SessionService
}

func (s *SessionServiceSuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	gamification := sqlite.NewGamificationRepository(s.db)
	s.progress = sqlite.NewProgressRepository(s.db)
	vocab := sqlite.NewVocabularyRepository(s.db)
	streak := sqlite.NewStreakRepository(s.db)
	activity := sqlite.NewActivityRepository(s.db)
	settings := sqlite.NewSettingsRepository(s.db)
	progression := services.NewProgressionService(gamification, s.progress, vocab, streak)
	s.svc = services.NewSessionService(s.progress, activity, settings, progression)
}

func (s *SessionServiceSuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *SessionServiceSuite) TestRecordSessionValidation() {
	ctx := context.Background()

	_, err := s.svc.RecordSession(ctx, services.SessionInput{Module: "meditation", Score: 1, MaxScore: 5})
	s.Assert().Error(err, "unknown module is rejected")

	_, err = s.svc.RecordSession(ctx, services.SessionInput{Module: models.ModuleReading, Score: 1, MaxScore: 0})
	s.Assert().Error(err, "zero max score is rejected")

	_, err = s.svc.RecordSession(ctx, services.SessionInput{Module: models.ModuleReading, Score: 6, MaxScore: 5})
	s.Assert().Error(err, "score above max is rejected")
}

func (s *SessionServiceSuite) TestRecordSession() {
	ctx := context.Background()

	result, err := s.svc.RecordSession(ctx, services.SessionInput{
		Module:   models.ModuleReading,
		Score:    4,
		MaxScore: 5,
		Label:    "Reading: climate report",
	})
	s.Require().NoError(err)

	s.Assert().NotEmpty(result.Entry.ID)
	s.Assert().Equal(1, result.Streak.Current, "the first session starts a streak")
	s.Require().NotNil(result.Earn)
	s.Assert().Equal(50, result.Earn.Base)
	s.Assert().Equal(0, result.Earn.Bonus)
	s.Assert().Contains(badgeIDs(result.Earn.NewBadges), "first_steps")

	entries, err := s.svc.ListSessions(ctx, models.ProgressFilter{})
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Assert().Equal("Reading: climate report", entries[0].Label)
}

func (s *SessionServiceSuite) TestPerfectScoreBonus() {
	ctx := context.Background()

	result, err := s.svc.RecordSession(ctx, services.SessionInput{
		Module:   models.ModuleReading,
		Score:    5,
		MaxScore: 5,
	})
	s.Require().NoError(err)
	s.Assert().Equal(50, result.Earn.Base)
	s.Assert().Equal(30, result.Earn.Bonus, "a perfect reading session earns the reading bonus")
}

func (s *SessionServiceSuite) TestSpeedBonus() {
	ctx := context.Background()

	result, err := s.svc.RecordSession(ctx, services.SessionInput{
		Module:     models.ModuleGrammar,
		Score:      7,
		MaxScore:   10,
		FastFinish: true,
	})
	s.Require().NoError(err)
	s.Assert().Equal(40, result.Earn.Base)
	s.Assert().Equal(20, result.Earn.Bonus)
}

func (s *SessionServiceSuite) TestDailyGoalBonusFiresOnce() {
	ctx := context.Background()
	input := services.SessionInput{Module: models.ModuleListening, Score: 3, MaxScore: 5}

	// Default daily goal is 3 sessions.
	first, err := s.svc.RecordSession(ctx, input)
	s.Require().NoError(err)
	s.Assert().Equal(0, first.Earn.Bonus)

	second, err := s.svc.RecordSession(ctx, input)
	s.Require().NoError(err)
	s.Assert().Equal(0, second.Earn.Bonus)

	third, err := s.svc.RecordSession(ctx, input)
	s.Require().NoError(err)
	s.Assert().Equal(25, third.Earn.Bonus, "the session that meets the goal gets the bonus")

	fourth, err := s.svc.RecordSession(ctx, input)
	s.Require().NoError(err)
	s.Assert().Equal(0, fourth.Earn.Bonus, "the bonus does not repeat past the goal")
}

func badgeIDs(badges []progression.Badge) []string {
	ids := make([]string, len(badges))
	for i, b := range badges {
		ids[i] = b.ID
	}
	return ids
}

func TestSessionServiceSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceSuite))
}
