package scoring

import (
	"strings"
	"testing"

	"github.com/jonathan/interview-coach/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestGenerateStrengths_TopCategories(t *testing.T) {
	b := uniformBreakdown(50)
	b.Structure = 90
	b.Examples = 85

	strengths := GenerateStrengths(b, "short answer")

	assert.Contains(t, strengths, strengthSentences[types.CategoryStructure])
	assert.Contains(t, strengths, strengthSentences[types.CategoryExamples])
	assert.NotContains(t, strengths, strengthSentences[types.CategoryConfidence])
}

func TestGenerateStrengths_ResponseShapeBonuses(t *testing.T) {
	long := strings.Repeat("I worked on the platform team and shipped things. ", 8)
	assert.Greater(t, len(long), 300)

	strengths := GenerateStrengths(uniformBreakdown(50), long)
	assert.Contains(t, strengths, "Gave a thorough, detailed response.")

	withExample := GenerateStrengths(uniformBreakdown(50), "In my experience this works.")
	assert.Contains(t, withExample, "Grounded the answer in personal experience.")
}

func TestGenerateStrengths_CappedAtFive(t *testing.T) {
	long := strings.Repeat("for example in my experience ", 15)
	strengths := GenerateStrengths(uniformBreakdown(95), long)
	assert.LessOrEqual(t, len(strengths), 5)
}

func TestGenerateWeaknesses_BottomCategories(t *testing.T) {
	b := uniformBreakdown(80)
	b.Confidence = 30
	b.Clarity = 40

	weaknesses := GenerateWeaknesses(b, strings.Repeat("a solid answer ", 10))

	assert.Contains(t, weaknesses, weaknessSentences[types.CategoryConfidence])
	assert.Contains(t, weaknesses, weaknessSentences[types.CategoryClarity])
	assert.NotContains(t, weaknesses, weaknessSentences[types.CategoryStructure])
}

func TestGenerateWeaknesses_BriefResponse(t *testing.T) {
	weaknesses := GenerateWeaknesses(uniformBreakdown(90), "Yes.")
	assert.Contains(t, weaknesses, "The response was too brief to demonstrate depth.")
}

func TestGenerateWeaknesses_NoneWhenStrong(t *testing.T) {
	weaknesses := GenerateWeaknesses(uniformBreakdown(85), strings.Repeat("a solid answer ", 10))
	assert.Empty(t, weaknesses)
}

func TestGenerateRecommendations_OnePerWeakCategory(t *testing.T) {
	b := uniformBreakdown(90)
	b.Structure = 60
	b.Examples = 50

	recs := GenerateRecommendations(b)

	assert.Len(t, recs, 2)
	assert.Contains(t, recs, recommendationSentences[types.CategoryStructure])
	assert.Contains(t, recs, recommendationSentences[types.CategoryExamples])
	// Weakest first
	assert.Equal(t, recommendationSentences[types.CategoryExamples], recs[0])
}

func TestBuildImprovementPlan_ShortTermFromWeakest(t *testing.T) {
	b := uniformBreakdown(90)
	b.Confidence = 65
	b.Structure = 50
	b.Examples = 40

	plan := BuildImprovementPlan(b)

	assert.Equal(t, []string{
		shortTermActions[types.CategoryExamples],
		shortTermActions[types.CategoryStructure],
	}, plan.ShortTerm)
	assert.Len(t, plan.LongTerm, 3)
}

func TestBuildImprovementPlan_EmptyWhenStrong(t *testing.T) {
	plan := BuildImprovementPlan(uniformBreakdown(90))
	assert.Empty(t, plan.ShortTerm)
	assert.Empty(t, plan.LongTerm)
}
