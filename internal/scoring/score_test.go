package scoring

import (
	"testing"

	"github.com/jonathan/interview-coach/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestScore_OverallMatchesBreakdown(t *testing.T) {
	criteria := types.ScoringCriteria{QuestionType: types.QuestionBehavioral}
	weights := DefaultWeights()

	score := Score("Tell me about a time you improved a process", starResponse, 30, criteria, nil, weights)

	assert.Equal(t, CalculateOverallScore(score.Breakdown, weights), score.OverallScore)
}

func TestScore_NilWeightsUseDefaults(t *testing.T) {
	criteria := types.ScoringCriteria{QuestionType: types.QuestionBehavioral}

	withNil := Score("q", starResponse, 30, criteria, nil, nil)
	withDefaults := Score("q", starResponse, 30, criteria, nil, DefaultWeights())

	assert.Equal(t, withDefaults, withNil)
}

func TestScore_Deterministic(t *testing.T) {
	criteria := types.ScoringCriteria{QuestionType: types.QuestionTechnical, Role: "backend engineer"}

	first := Score("Explain caching", "We used Redis as a cache with TTL-based eviction.", 20, criteria, nil, nil)
	second := Score("Explain caching", "We used Redis as a cache with TTL-based eviction.", 20, criteria, nil, nil)

	assert.Equal(t, first, second)
}

func TestScore_PopulatesAllSections(t *testing.T) {
	criteria := types.ScoringCriteria{QuestionType: types.QuestionTechnical, Role: "backend engineer"}

	score := Score("Explain how a hash table works", "", 0, criteria, nil, nil)

	assert.NotEmpty(t, score.Weaknesses)
	assert.NotEmpty(t, score.Recommendations)
	assert.NotEmpty(t, score.ImprovementPlan.ShortTerm)
	assert.Equal(t, types.LevelJunior, score.LevelAssessment)
}
