package scoring

import (
	"github.com/jonathan/interview-coach/internal/types"
)

// Score produces the full DetailedScore for one response. It is a pure
// function of its inputs: identical calls yield identical results. A nil
// weights argument uses the default weight set.
func Score(question, response string, durationSeconds int, criteria types.ScoringCriteria, aiFeedback *types.AIFeedback, weights types.ScoringWeights) types.DetailedScore {
	if weights == nil {
		weights = DefaultWeights()
	}

	breakdown := CalculateBreakdownScores(question, response, durationSeconds, criteria, aiFeedback)

	return types.DetailedScore{
		OverallScore:    CalculateOverallScore(breakdown, weights),
		Breakdown:       breakdown,
		LevelAssessment: AssessLevel(breakdown, criteria.Role),
		Strengths:       GenerateStrengths(breakdown, response),
		Weaknesses:      GenerateWeaknesses(breakdown, response),
		Recommendations: GenerateRecommendations(breakdown),
		ImprovementPlan: BuildImprovementPlan(breakdown),
	}
}
