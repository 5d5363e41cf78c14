package scoring

import (
	"math"

	"github.com/jonathan/interview-coach/internal/types"
)

// CalculateOverallScore computes the weighted average of the breakdown.
// Categories absent from the weight table are ignored in both numerator and
// denominator, so a partial weight set still yields a sane average.
func CalculateOverallScore(breakdown types.ScoreBreakdown, weights types.ScoringWeights) int {
	if len(weights) == 0 {
		weights = DefaultWeights()
	}

	sum := 0.0
	totalWeight := 0.0
	for category, weight := range weights {
		value, ok := breakdown.Get(category)
		if !ok {
			continue
		}
		sum += weight * value
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0
	}

	score := int(math.Round(sum / totalWeight))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
