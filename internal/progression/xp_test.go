package progression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcamargo/lexgym/internal/progression"
)

func TestValue_KnownKinds(t *testing.T) {
	assert.Equal(t, 50, progression.Value(progression.ActivityReadingComplete))
	assert.Equal(t, 30, progression.Value(progression.ActivityReadingPerfect))
	assert.Equal(t, 10, progression.Value(progression.ActivityWordSaved))
	assert.Equal(t, 5, progression.Value(progression.ActivityRuleSaved))
}

func TestValue_UnknownKindIsZero(t *testing.T) {
	assert.Equal(t, 0, progression.Value(progression.ActivityKind("made_up")))
	assert.False(t, progression.KnownActivity(progression.ActivityKind("made_up")))
}

func TestSessionActivity_AllModulesMapped(t *testing.T) {
	for _, module := range []string{"reading", "listening", "grammar", "vocabulary", "writing", "speaking"} {
		kind, ok := progression.SessionActivity(module)
		assert.True(t, ok, "module %s must map to an activity", module)
		assert.True(t, progression.KnownActivity(kind))
		assert.Greater(t, progression.Value(kind), 0)
	}

	_, ok := progression.SessionActivity("meditation")
	assert.False(t, ok)
}
