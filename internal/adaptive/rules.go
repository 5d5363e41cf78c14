// Package adaptive recommends the next session's difficulty and type from a
// user's historical performance, using an ordered list of condition/action
// rules.
package adaptive

import (
	"fmt"

	"github.com/jonathan/interview-coach/internal/types"
)

// Rule is one condition/action pair. All rules whose condition holds are
// collected and the single highest-priority one is applied; rules are never
// merged.
type Rule struct {
	ID        string
	Priority  int
	Condition func(profile types.UserPerformanceProfile, recent []int) bool
	Action    func(profile types.UserPerformanceProfile, recent []int) types.AdaptiveRecommendation
}

// Thresholds for the rule conditions.
const (
	advanceScore     = 85.0
	reduceScore      = 60.0
	balancedMaxGap   = 10.0
	specializeMinGap = 15.0
)

// rules is the fixed, priority-ordered rule list.
var rules = []Rule{
	{
		ID:       "advance-difficulty",
		Priority: 100,
		Condition: func(p types.UserPerformanceProfile, recent []int) bool {
			return p.TotalSessions >= 3 && p.AverageOverallScore >= advanceScore && average(recent) >= advanceScore
		},
		Action: func(p types.UserPerformanceProfile, recent []int) types.AdaptiveRecommendation {
			next := stepUp(p.PreferredDifficulty)
			return types.AdaptiveRecommendation{
				RecommendedDifficulty: next,
				RecommendedType:       dominantType(p),
				Rationale: types.Rationale{
					Primary: fmt.Sprintf("Consistently scoring above %.0f; ready for a harder challenge.", advanceScore),
					Supporting: []string{
						fmt.Sprintf("Average score %.1f across %d sessions.", p.AverageOverallScore, p.TotalSessions),
						fmt.Sprintf("Recent average %.1f.", average(recent)),
					},
				},
				EstimatedDifficulty: types.EstimateChallenging,
			}
		},
	},
	{
		ID:       "reduce-difficulty",
		Priority: 90,
		Condition: func(p types.UserPerformanceProfile, recent []int) bool {
			return p.TotalSessions >= 2 && (p.AverageOverallScore < reduceScore || average(recent) < reduceScore)
		},
		Action: func(p types.UserPerformanceProfile, recent []int) types.AdaptiveRecommendation {
			return types.AdaptiveRecommendation{
				RecommendedDifficulty: stepDown(p.PreferredDifficulty),
				RecommendedType:       dominantType(p),
				Rationale: types.Rationale{
					Primary:    "Recent scores suggest an easier setting will build momentum.",
					Supporting: []string{fmt.Sprintf("Average score %.1f.", p.AverageOverallScore)},
				},
				EstimatedDifficulty: types.EstimateComfortable,
			}
		},
	},
	{
		ID:       "focus-technical",
		Priority: 80,
		Condition: func(p types.UserPerformanceProfile, _ []int) bool {
			return hasWeakness(p, types.CategoryTechnicalAccuracy, types.CategoryProblemSolving)
		},
		Action: func(p types.UserPerformanceProfile, _ []int) types.AdaptiveRecommendation {
			return types.AdaptiveRecommendation{
				RecommendedDifficulty: p.PreferredDifficulty,
				RecommendedType:       types.InterviewTechnical,
				Rationale: types.Rationale{
					Primary:    "Technical dimensions are the weakest areas; targeted practice will close the gap.",
					Supporting: []string{"Technical accuracy or problem solving scored below the weakness threshold."},
				},
				FocusAreas:          weakOf(p, types.CategoryTechnicalAccuracy, types.CategoryProblemSolving),
				EstimatedDifficulty: types.EstimateAppropriate,
			}
		},
	},
	{
		ID:       "focus-behavioral",
		Priority: 75,
		Condition: func(p types.UserPerformanceProfile, _ []int) bool {
			return hasWeakness(p, types.CategoryCommunicationSkills, types.CategoryClarity, types.CategoryConfidence)
		},
		Action: func(p types.UserPerformanceProfile, _ []int) types.AdaptiveRecommendation {
			return types.AdaptiveRecommendation{
				RecommendedDifficulty: p.PreferredDifficulty,
				RecommendedType:       types.InterviewBehavioral,
				Rationale: types.Rationale{
					Primary:    "Communication-oriented dimensions need the most work right now.",
					Supporting: []string{"Communication, clarity, or confidence scored below the weakness threshold."},
				},
				FocusAreas:          weakOf(p, types.CategoryCommunicationSkills, types.CategoryClarity, types.CategoryConfidence),
				EstimatedDifficulty: types.EstimateAppropriate,
			}
		},
	},
	{
		ID:       "balanced-mixed",
		Priority: 50,
		Condition: func(p types.UserPerformanceProfile, _ []int) bool {
			beh, behOK := p.PerformanceByType[types.InterviewBehavioral]
			tech, techOK := p.PerformanceByType[types.InterviewTechnical]
			if !behOK || !techOK {
				return false
			}
			return p.TotalSessions >= 5 && abs(beh.AverageScore-tech.AverageScore) < balancedMaxGap
		},
		Action: func(p types.UserPerformanceProfile, _ []int) types.AdaptiveRecommendation {
			return types.AdaptiveRecommendation{
				RecommendedDifficulty: p.PreferredDifficulty,
				RecommendedType:       types.InterviewMixed,
				Rationale: types.Rationale{
					Primary:    "Behavioral and technical performance are balanced; mixed sessions keep both sharp.",
					Supporting: []string{"Type averages differ by less than ten points."},
				},
				EstimatedDifficulty: types.EstimateAppropriate,
			}
		},
	},
	{
		ID:       "specialize-stronger",
		Priority: 40,
		Condition: func(p types.UserPerformanceProfile, _ []int) bool {
			beh, behOK := p.PerformanceByType[types.InterviewBehavioral]
			tech, techOK := p.PerformanceByType[types.InterviewTechnical]
			if !behOK || !techOK || beh.SessionCount < 3 || tech.SessionCount < 3 {
				return false
			}
			return abs(beh.AverageScore-tech.AverageScore) > specializeMinGap
		},
		Action: func(p types.UserPerformanceProfile, _ []int) types.AdaptiveRecommendation {
			beh := p.PerformanceByType[types.InterviewBehavioral]
			tech := p.PerformanceByType[types.InterviewTechnical]
			stronger := types.InterviewBehavioral
			if tech.AverageScore > beh.AverageScore {
				stronger = types.InterviewTechnical
			}
			return types.AdaptiveRecommendation{
				RecommendedDifficulty: p.PreferredDifficulty,
				RecommendedType:       stronger,
				Rationale: types.Rationale{
					Primary:    fmt.Sprintf("Clear edge in %s interviews; leaning into the stronger format.", stronger),
					Supporting: []string{"Type averages differ by more than fifteen points."},
				},
				EstimatedDifficulty: types.EstimateComfortable,
			}
		},
	},
}

// pickRule evaluates all rules in one pass and returns the highest-priority
// matching rule, or nil when none match.
func pickRule(profile types.UserPerformanceProfile, recent []int) *Rule {
	var winner *Rule
	for i := range rules {
		r := &rules[i]
		if !r.Condition(profile, recent) {
			continue
		}
		if winner == nil || r.Priority > winner.Priority {
			winner = r
		}
	}
	return winner
}

func stepUp(d types.Difficulty) types.Difficulty {
	switch d {
	case types.DifficultyEasy:
		return types.DifficultyMedium
	case types.DifficultyMedium:
		return types.DifficultyHard
	}
	return types.DifficultyHard
}

func stepDown(d types.Difficulty) types.Difficulty {
	switch d {
	case types.DifficultyHard:
		return types.DifficultyMedium
	case types.DifficultyMedium:
		return types.DifficultyEasy
	}
	return types.DifficultyEasy
}

// dominantType returns the interview type with the most sessions, defaulting
// to mixed.
func dominantType(p types.UserPerformanceProfile) types.InterviewType {
	best := types.InterviewMixed
	bestCount := 0
	for _, t := range []types.InterviewType{types.InterviewBehavioral, types.InterviewTechnical, types.InterviewMixed} {
		if perf, ok := p.PerformanceByType[t]; ok && perf.SessionCount > bestCount {
			best = t
			bestCount = perf.SessionCount
		}
	}
	return best
}

func hasWeakness(p types.UserPerformanceProfile, categories ...types.Category) bool {
	for _, w := range p.Weaknesses {
		for _, c := range categories {
			if w == c {
				return true
			}
		}
	}
	return false
}

func weakOf(p types.UserPerformanceProfile, categories ...types.Category) []types.Category {
	var out []types.Category
	for _, w := range p.Weaknesses {
		for _, c := range categories {
			if w == c {
				out = append(out, w)
			}
		}
	}
	return out
}

func average(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	total := 0
	for _, s := range scores {
		total += s
	}
	return float64(total) / float64(len(scores))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
