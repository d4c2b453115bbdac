package progression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcamargo/lexgym/internal/progression"
)

func TestEvaluateBadges_FirstSession(t *testing.T) {
	snap := progression.Snapshot{TotalSessions: 1, Level: 1}

	newly := progression.EvaluateBadges(snap, nil)

	require.Len(t, newly, 1)
	assert.Equal(t, "first_steps", newly[0].ID)
}

func TestEvaluateBadges_SkipsUnlocked(t *testing.T) {
	snap := progression.Snapshot{TotalSessions: 1, Level: 1}
	unlocked := map[string]bool{"first_steps": true}

	newly := progression.EvaluateBadges(snap, unlocked)

	assert.Empty(t, newly, "an unlocked badge is never awarded again")
}

func TestEvaluateBadges_Idempotent(t *testing.T) {
	snap := progression.Snapshot{TotalSessions: 12, WordCount: 15, StreakCurrent: 4, Level: 5}

	first := progression.EvaluateBadges(snap, nil)
	require.NotEmpty(t, first)

	unlocked := map[string]bool{}
	for _, b := range first {
		unlocked[b.ID] = true
	}
	second := progression.EvaluateBadges(snap, unlocked)
	assert.Empty(t, second, "re-evaluating unchanged state yields nothing new")
}

func TestEvaluateBadges_CatalogOrder(t *testing.T) {
	snap := progression.Snapshot{TotalSessions: 100, WordCount: 100, StrongWriting: 20, GrammarSessions: 10, StreakCurrent: 30, Level: 20}

	newly := progression.EvaluateBadges(snap, nil)
	catalog := progression.Catalog()

	require.Len(t, newly, len(catalog), "the full snapshot satisfies every condition")
	for i, b := range newly {
		assert.Equal(t, catalog[i].ID, b.ID, "awards follow catalog order")
	}
}

func TestEvaluateBadges_Thresholds(t *testing.T) {
	cases := []struct {
		name string
		snap progression.Snapshot
		want string
	}{
		{"ten sessions", progression.Snapshot{TotalSessions: 10}, "regular"},
		{"fifty words", progression.Snapshot{WordCount: 50}, "lexicon_builder"},
		{"strong writing", progression.Snapshot{StrongWriting: 5}, "wordsmith"},
		{"grammar sessions", progression.Snapshot{GrammarSessions: 10}, "grammar_guru"},
		{"week streak", progression.Snapshot{StreakCurrent: 7}, "week_warrior"},
		{"level ten", progression.Snapshot{Level: 10}, "scholar"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			newly := progression.EvaluateBadges(tc.snap, nil)
			ids := make([]string, len(newly))
			for i, b := range newly {
				ids[i] = b.ID
			}
			assert.Contains(t, ids, tc.want)
		})
	}
}

func TestBadgeByID(t *testing.T) {
	badge, ok := progression.BadgeByID("centurion")
	require.True(t, ok)
	assert.Equal(t, "Centurion", badge.Name)

	_, ok = progression.BadgeByID("nonexistent")
	assert.False(t, ok)
}

func TestCatalog_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range progression.Catalog() {
		assert.False(t, seen[b.ID], "duplicate badge id %s", b.ID)
		seen[b.ID] = true
		assert.NotEmpty(t, b.Name)
		assert.NotEmpty(t, b.Tier)
	}
}
