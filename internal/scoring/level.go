package scoring

import (
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// Seniority thresholds before the role-complexity offset is applied.
const (
	leadThreshold   = 95
	seniorThreshold = 85
	midThreshold    = 70
	juniorThreshold = 50
)

// roleComplexityOffset returns how many points to subtract from the level
// thresholds based on seniority keywords in the role title. A more complex
// role earns the same level at a lower raw score.
func roleComplexityOffset(role string) int {
	lower := strings.ToLower(role)
	switch {
	case strings.Contains(lower, "principal"):
		return 20
	case strings.Contains(lower, "lead"), strings.Contains(lower, "staff"):
		return 15
	case strings.Contains(lower, "senior"), strings.Contains(lower, "manager"):
		return 10
	}
	return 0
}

// AssessLevel maps the overall score (under default weights) to a seniority
// label, adjusted by the role-complexity offset. The comparison falls
// through to junior below all thresholds.
func AssessLevel(breakdown types.ScoreBreakdown, role string) types.Level {
	score := CalculateOverallScore(breakdown, DefaultWeights())
	offset := roleComplexityOffset(role)

	switch {
	case score >= leadThreshold-offset:
		return types.LevelLead
	case score >= seniorThreshold-offset:
		return types.LevelSenior
	case score >= midThreshold-offset:
		return types.LevelMid
	case score >= juniorThreshold-offset:
		return types.LevelJunior
	}
	return types.LevelJunior
}
