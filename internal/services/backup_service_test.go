package services_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/repository"
	"github.com/mcamargo/lexgym/internal/repository/sqlite"
	"github.com/mcamargo/lexgym/internal/services"
	"github.com/mcamargo/lexgym/internal/testutil"
)

type BackupServiceSuite struct {
	suite.Suite
	db           *sql.DB
	settings     repository.SettingsRepository
	vocab        repository.VocabularyRepository
	progress     repository.ProgressRepository
	streak       repository.StreakRepository
	gamification repository.GamificationRepository
	svc          services.BackupService
}

func (s *BackupServiceSuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.settings = sqlite.NewSettingsRepository(s.db)
	s.vocab = sqlite.NewVocabularyRepository(s.db)
	s.progress = sqlite.NewProgressRepository(s.db)
	activity := sqlite.NewActivityRepository(s.db)
	grammar := sqlite.NewGrammarRepository(s.db)
	s.streak = sqlite.NewStreakRepository(s.db)
	s.gamification = sqlite.NewGamificationRepository(s.db)
	s.svc = services.NewBackupService(s.settings, s.vocab, s.progress, activity, grammar, s.streak, s.gamification)
}

func (s *BackupServiceSuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *BackupServiceSuite) seed() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	custom := models.DefaultSettings(now)
	custom.DisplayName = "Backup Tester"
	s.Require().NoError(s.settings.Save(ctx, custom))

	_, err := s.vocab.Insert(ctx, models.VocabularyItem{Word: "resilient", PartOfSpeech: "adjective", SavedAt: now})
	s.Require().NoError(err)

	s.Require().NoError(s.progress.Insert(ctx, models.ProgressEntry{
		ID: "p1", CreatedAt: now, Module: models.ModuleWriting, Score: 8, MaxScore: 10,
	}))
	s.Require().NoError(s.streak.Save(ctx, models.Streak{Current: 3, Longest: 5, LastActiveDate: "2026-08-30"}))
	_, err = s.gamification.ApplyEarn(ctx, 130, models.XPLogEntry{Date: "2026-08-30", Amount: 130, Activity: "writing_complete"}, nil)
	s.Require().NoError(err)
}

func (s *BackupServiceSuite) TestExportImportRoundTrip() {
	ctx := context.Background()
	s.seed()

	backup, err := s.svc.Export(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(models.BackupVersion, backup.Version)
	s.Require().NotNil(backup.Settings)
	s.Assert().Equal("Backup Tester", backup.Settings.DisplayName)
	s.Require().Len(backup.Vocabulary, 1)
	s.Require().Len(backup.Progress, 1)

	data, err := json.Marshal(backup)
	s.Require().NoError(err)

	// Wipe everything, then restore.
	s.Require().NoError(s.settings.Clear(ctx))
	s.Require().NoError(s.vocab.Clear(ctx))
	s.Require().NoError(s.progress.Clear(ctx))
	s.Require().NoError(s.streak.Clear(ctx))
	s.Require().NoError(s.gamification.Clear(ctx))

	result, err := s.svc.Import(ctx, data)
	s.Require().NoError(err)
	s.Assert().True(result.Success)

	settings, err := s.settings.Get(ctx)
	s.Require().NoError(err)
	s.Assert().Equal("Backup Tester", settings.DisplayName)

	item, err := s.vocab.Get(ctx, "resilient")
	s.Require().NoError(err)
	s.Require().NotNil(item)

	streak, err := s.streak.Get(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(3, streak.Current)

	g, err := s.gamification.Get(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(130, g.XP)
}

func (s *BackupServiceSuite) TestImportRejectsMalformedDocument() {
	ctx := context.Background()
	s.seed()

	result, err := s.svc.Import(ctx, []byte(`{not json`))
	s.Require().NoError(err, "a bad document is a typed result, not an error")
	s.Assert().False(result.Success)
	s.Assert().NotEmpty(result.Message)

	// Nothing was touched.
	item, err := s.vocab.Get(ctx, "resilient")
	s.Require().NoError(err)
	s.Assert().NotNil(item)
}

func (s *BackupServiceSuite) TestImportRejectsMalformedFamilyWithoutWrites() {
	ctx := context.Background()
	s.seed()

	doc := []byte(`{"version":1,"settings":{"display_name":"Other"},"vocabulary":"not-an-array"}`)
	result, err := s.svc.Import(ctx, doc)
	s.Require().NoError(err)
	s.Assert().False(result.Success)

	// The valid settings section must not have been applied either.
	settings, err := s.settings.Get(ctx)
	s.Require().NoError(err)
	s.Assert().Equal("Backup Tester", settings.DisplayName, "a failed import leaves everything untouched")
}

func (s *BackupServiceSuite) TestImportSkipsAbsentFamilies() {
	ctx := context.Background()
	s.seed()

	doc := []byte(`{"version":1,"streak":{"current":9,"longest":9,"last_active_date":"2026-08-30"}}`)
	result, err := s.svc.Import(ctx, doc)
	s.Require().NoError(err)
	s.Assert().True(result.Success)

	streak, err := s.streak.Get(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(9, streak.Current)

	// Families absent from the document are untouched.
	item, err := s.vocab.Get(ctx, "resilient")
	s.Require().NoError(err)
	s.Assert().NotNil(item)
	settings, err := s.settings.Get(ctx)
	s.Require().NoError(err)
	s.Assert().Equal("Backup Tester", settings.DisplayName)
}

func (s *BackupServiceSuite) TestImportRejectsNewerVersion() {
	ctx := context.Background()

	result, err := s.svc.Import(ctx, []byte(`{"version":99}`))
	s.Require().NoError(err)
	s.Assert().False(result.Success)
	s.Assert().Contains(result.Message, "version")
}

func TestBackupServiceSuite(t *testing.T) {
	suite.Run(t, new(BackupServiceSuite))
}
