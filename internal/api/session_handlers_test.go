package api_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcamargo/lexgym/internal/api"
	"github.com/mcamargo/lexgym/internal/errors"
	"github.com/mcamargo/lexgym/internal/repository/sqlite"
	"github.com/mcamargo/lexgym/internal/services"
	"github.com/mcamargo/lexgym/internal/testutil"
)

type SessionHandlersSuite struct {
	suite.Suite
	db     *sql.DB
	router http.Handler
}

func (s *SessionHandlersSuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())

	progress := sqlite.NewProgressRepository(s.db)
	activity := sqlite.NewActivityRepository(s.db)
	settings := sqlite.NewSettingsRepository(s.db)
	vocab := sqlite.NewVocabularyRepository(s.db)
	streak := sqlite.NewStreakRepository(s.db)
	gamification := sqlite.NewGamificationRepository(s.db)

	progression := services.NewProgressionService(gamification, progress, vocab, streak)
	srv := &api.Server{
		DB:       s.db,
		Sessions: services.NewSessionService(progress, activity, settings, progression),
	}
	s.router = srv.Routes()
}

func (s *SessionHandlersSuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *SessionHandlersSuite) TestListProgressRejectsBadSince() {
	req := httptest.NewRequest(http.MethodGet, "/api/progress?since=not-a-date", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Assert().Equal(http.StatusBadRequest, rec.Code, "a malformed query parameter is the client's fault")

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Assert().Equal(errors.ErrCodeValidation, body.Error.Code)
	s.Assert().Contains(body.Error.Message, "since")
}

func (s *SessionHandlersSuite) TestListProgressAcceptsValidSince() {
	req := httptest.NewRequest(http.MethodGet, "/api/progress?since=2026-08-01", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Assert().Equal(http.StatusOK, rec.Code)
	s.Assert().JSONEq(`[]`, rec.Body.String())
}

func TestSessionHandlersSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlersSuite))
}
