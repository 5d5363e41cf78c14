package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreBreakdown_GetSet(t *testing.T) {
	var b ScoreBreakdown

	for i, c := range AllCategories {
		b.Set(c, float64(i*10))
	}
	for i, c := range AllCategories {
		v, ok := b.Get(c)
		require.True(t, ok)
		assert.Equal(t, float64(i*10), v)
	}

	_, ok := ScoreBreakdown{}.Get(Category("vibes"))
	assert.False(t, ok)

	// Setting an unknown category is a no-op
	before := b
	b.Set(Category("vibes"), 99)
	assert.Equal(t, before, b)
}

func TestScoreBreakdown_ToMap(t *testing.T) {
	b := ScoreBreakdown{TechnicalAccuracy: 80, Examples: 40}

	m := b.ToMap()

	assert.Len(t, m, len(AllCategories))
	assert.Equal(t, 80.0, m[CategoryTechnicalAccuracy])
	assert.Equal(t, 40.0, m[CategoryExamples])
	assert.Equal(t, 0.0, m[CategoryClarity])
}

func TestScoringWeights_Sum(t *testing.T) {
	w := ScoringWeights{CategoryClarity: 0.4, CategoryStructure: 0.6}
	assert.InDelta(t, 1.0, w.Sum(), 1e-9)
	assert.Equal(t, 0.0, ScoringWeights{}.Sum())
}

func TestScoreRequest_Validate(t *testing.T) {
	valid := ScoreRequest{
		Question: "Tell me about yourself.",
		Response: "I am an engineer.",
		Criteria: ScoringCriteria{QuestionType: QuestionBehavioral},
	}
	assert.NoError(t, valid.Validate())

	missingQuestion := valid
	missingQuestion.Question = ""
	assert.Error(t, missingQuestion.Validate())

	badType := valid
	badType.Criteria.QuestionType = "trivia"
	assert.Error(t, badType.Validate())

	negativeDuration := valid
	negativeDuration.DurationSeconds = -1
	assert.Error(t, negativeDuration.Validate())

	badDifficulty := valid
	badDifficulty.Criteria.Difficulty = "impossible"
	assert.Error(t, badDifficulty.Validate())
}

func TestUpdateOutcomeRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateOutcomeRequest{OverallScore: 70, Completed: true}).Validate())
	assert.NoError(t, (&UpdateOutcomeRequest{OverallScore: 0}).Validate())
	assert.Error(t, (&UpdateOutcomeRequest{OverallScore: 101}).Validate())
	assert.Error(t, (&UpdateOutcomeRequest{OverallScore: -1}).Validate())
}

func TestCreateUserRequest_Validate(t *testing.T) {
	valid := CreateUserRequest{Name: "Alice", Email: "alice@example.com", Password: "supersecret"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&CreateUserRequest{Email: "alice@example.com", Password: "supersecret"}).Validate())
	assert.Error(t, (&CreateUserRequest{Name: "Alice", Email: "nope", Password: "supersecret"}).Validate())
	assert.Error(t, (&CreateUserRequest{Name: "Alice", Email: "alice@example.com", Password: "short"}).Validate())
}
