// Package analytics aggregates stored per-session metrics into the derived
// performance profile and trend data consumed by the adaptive engine.
package analytics

import (
	"sort"

	"github.com/jonathan/interview-coach/internal/types"
)

// Category score boundaries for calling a dimension a strength or weakness
// across a user's history.
const (
	strengthAverage = 75.0
	weaknessAverage = 60.0
	maxTrendPoints  = 10
)

// BuildProfile derives a UserPerformanceProfile from stored metrics. The
// profile is recomputed on demand and never persisted. An empty metrics list
// yields a zero-session profile.
func BuildProfile(metrics []types.PerformanceMetrics) types.UserPerformanceProfile {
	profile := types.UserPerformanceProfile{
		PerformanceByType: make(map[types.InterviewType]types.TypePerformance),
	}
	if len(metrics) == 0 {
		return profile
	}

	// Work on a copy sorted oldest-first so trends read chronologically.
	sorted := make([]types.PerformanceMetrics, len(metrics))
	copy(sorted, metrics)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	profile.TotalSessions = len(sorted)

	totalScore := 0
	difficultyCounts := make(map[types.Difficulty]int)
	categoryTotals := make(map[types.Category]float64)
	typeTotals := make(map[types.InterviewType]*typeAccumulator)

	for _, m := range sorted {
		totalScore += m.OverallScore
		difficultyCounts[m.Difficulty]++

		for c, v := range m.Breakdown.ToMap() {
			categoryTotals[c] += v
		}

		acc := typeTotals[m.InterviewType]
		if acc == nil {
			acc = &typeAccumulator{}
			typeTotals[m.InterviewType] = acc
		}
		acc.add(m.OverallScore)
	}

	profile.AverageOverallScore = float64(totalScore) / float64(len(sorted))
	profile.PreferredDifficulty = mostUsedDifficulty(difficultyCounts)
	profile.Strengths, profile.Weaknesses = classifyCategories(categoryTotals, len(sorted))

	for t, acc := range typeTotals {
		profile.PerformanceByType[t] = acc.summary()
	}

	start := len(sorted) - maxTrendPoints
	if start < 0 {
		start = 0
	}
	for _, m := range sorted[start:] {
		profile.RecentTrends = append(profile.RecentTrends, types.TrendPoint{
			Timestamp:    m.Timestamp,
			OverallScore: m.OverallScore,
		})
	}

	return profile
}

// RecentScores returns the overall scores of the n most recent metrics,
// newest first.
func RecentScores(metrics []types.PerformanceMetrics, n int) []int {
	sorted := make([]types.PerformanceMetrics, len(metrics))
	copy(sorted, metrics)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	scores := make([]int, 0, n)
	for _, m := range sorted[:n] {
		scores = append(scores, m.OverallScore)
	}
	return scores
}

// Average returns the mean of scores, or 0 for an empty slice.
func Average(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	total := 0
	for _, s := range scores {
		total += s
	}
	return float64(total) / float64(len(scores))
}

type typeAccumulator struct {
	total int
	count int
	best  int
}

func (a *typeAccumulator) add(score int) {
	a.total += score
	a.count++
	if score > a.best {
		a.best = score
	}
}

func (a *typeAccumulator) summary() types.TypePerformance {
	return types.TypePerformance{
		AverageScore: float64(a.total) / float64(a.count),
		SessionCount: a.count,
		BestScore:    a.best,
	}
}

// mostUsedDifficulty picks the difficulty with the highest session count,
// breaking ties toward the easier level.
func mostUsedDifficulty(counts map[types.Difficulty]int) types.Difficulty {
	order := []types.Difficulty{types.DifficultyEasy, types.DifficultyMedium, types.DifficultyHard}
	best := types.DifficultyMedium
	bestCount := -1
	for _, d := range order {
		if counts[d] > bestCount {
			best = d
			bestCount = counts[d]
		}
	}
	return best
}

// classifyCategories splits the eight dimensions into historical strengths
// and weaknesses by average score, strongest and weakest first respectively.
func classifyCategories(totals map[types.Category]float64, sessions int) (strengths, weaknesses []types.Category) {
	type avg struct {
		category types.Category
		value    float64
	}

	avgs := make([]avg, 0, len(types.AllCategories))
	for _, c := range types.AllCategories {
		avgs = append(avgs, avg{c, totals[c] / float64(sessions)})
	}
	sort.SliceStable(avgs, func(i, j int) bool { return avgs[i].value > avgs[j].value })

	for _, a := range avgs {
		if a.value >= strengthAverage {
			strengths = append(strengths, a.category)
		}
	}
	for i := len(avgs) - 1; i >= 0; i-- {
		if avgs[i].value < weaknessAverage {
			weaknesses = append(weaknesses, avgs[i].category)
		}
	}
	return strengths, weaknesses
}
