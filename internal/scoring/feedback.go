package scoring

import (
	"sort"

	"github.com/jonathan/interview-coach/internal/types"
)

// Thresholds for feedback generation.
const (
	strengthThreshold = 80
	weaknessThreshold = 60
	improveThreshold  = 70
)

var strengthSentences = map[types.Category]string{
	types.CategoryTechnicalAccuracy:   "Strong command of the technical concepts relevant to the role.",
	types.CategoryCommunicationSkills: "Communicates at a clear, well-paced rhythm that is easy to follow.",
	types.CategoryProblemSolving:      "Demonstrates a methodical, analytical approach to working through problems.",
	types.CategoryConfidence:          "Projects confidence and conviction when describing past work.",
	types.CategoryRelevance:           "Stays focused on the question and addresses it directly.",
	types.CategoryClarity:             "Expresses ideas clearly with varied, precise vocabulary.",
	types.CategoryStructure:           "Structures answers well, covering situation, actions, and results.",
	types.CategoryExamples:            "Backs up claims with concrete, specific examples.",
}

var weaknessSentences = map[types.Category]string{
	types.CategoryTechnicalAccuracy:   "Technical depth was thin for this role; key concepts went unmentioned.",
	types.CategoryCommunicationSkills: "Delivery pace or filler words made the answer harder to follow.",
	types.CategoryProblemSolving:      "The answer did not show a clear problem-solving process.",
	types.CategoryConfidence:          "Hedging language undercut the answer's authority.",
	types.CategoryRelevance:           "Parts of the answer drifted away from what was asked.",
	types.CategoryClarity:             "Long or repetitive sentences reduced clarity.",
	types.CategoryStructure:           "The answer lacked a recognizable structure such as STAR.",
	types.CategoryExamples:            "Claims were not supported with concrete examples.",
}

var recommendationSentences = map[types.Category]string{
	types.CategoryTechnicalAccuracy:   "Review the core technologies for this role and name them explicitly in answers.",
	types.CategoryCommunicationSkills: "Practice answering aloud at a steady pace and record yourself to catch filler words.",
	types.CategoryProblemSolving:      "Walk through your reasoning step by step: the problem, the options, and why you chose one.",
	types.CategoryConfidence:          "Replace hedging phrases with direct statements about what you did and achieved.",
	types.CategoryRelevance:           "Restate the question in your own words before answering to stay on topic.",
	types.CategoryClarity:             "Keep sentences short and use transitions to connect your points.",
	types.CategoryStructure:           "Frame answers with the STAR method: situation, task, action, result.",
	types.CategoryExamples:            "Prepare two or three specific stories with dates and measurable outcomes.",
}

var shortTermActions = map[types.Category]string{
	types.CategoryTechnicalAccuracy:   "Drill flashcards for the role's key terminology this week.",
	types.CategoryCommunicationSkills: "Do one recorded practice answer per day and count filler words.",
	types.CategoryProblemSolving:      "Practice narrating one small problem end to end each day.",
	types.CategoryConfidence:          "Rehearse three accomplishment statements until they feel natural.",
	types.CategoryRelevance:           "Practice paraphrasing questions before answering them.",
	types.CategoryClarity:             "Rewrite one past answer using shorter sentences.",
	types.CategoryStructure:           "Outline three past projects in STAR format.",
	types.CategoryExamples:            "Write down five specific examples with numbers and dates.",
}

var longTermActions = map[types.Category]string{
	types.CategoryTechnicalAccuracy:   "Build a small project using the role's core stack to deepen working knowledge.",
	types.CategoryCommunicationSkills: "Join a speaking group or schedule regular mock interviews for sustained practice.",
	types.CategoryProblemSolving:      "Work through a structured problem-solving course or case-study collection.",
	types.CategoryConfidence:          "Keep an accomplishment journal and review it before every interview.",
	types.CategoryRelevance:           "Study common question archetypes for your target role and map stories to them.",
	types.CategoryClarity:             "Read answers aloud weekly and edit for concision over several months.",
	types.CategoryStructure:           "Make STAR framing a habit in everyday status updates and retrospectives.",
	types.CategoryExamples:            "Maintain a growing story bank tagged by skill and outcome.",
}

// rankedCategories returns all categories sorted by score, descending.
func rankedCategories(breakdown types.ScoreBreakdown) []types.Category {
	cats := make([]types.Category, len(types.AllCategories))
	copy(cats, types.AllCategories)
	sort.SliceStable(cats, func(i, j int) bool {
		vi, _ := breakdown.Get(cats[i])
		vj, _ := breakdown.Get(cats[j])
		return vi > vj
	})
	return cats
}

// GenerateStrengths returns up to five strength sentences: the top three
// categories scoring at or above the strength threshold, plus response-shape
// bonuses for long and example-backed answers.
func GenerateStrengths(breakdown types.ScoreBreakdown, response string) []string {
	var strengths []string

	ranked := rankedCategories(breakdown)
	for _, c := range ranked {
		if len(strengths) >= 3 {
			break
		}
		if v, _ := breakdown.Get(c); v >= strengthThreshold {
			strengths = append(strengths, strengthSentences[c])
		}
	}

	if len(response) > 300 {
		strengths = append(strengths, "Gave a thorough, detailed response.")
	}
	if containsAny(response, []string{"example", "experience"}) {
		strengths = append(strengths, "Grounded the answer in personal experience.")
	}

	if len(strengths) > 5 {
		strengths = strengths[:5]
	}
	return strengths
}

// GenerateWeaknesses returns up to five weakness sentences: the bottom three
// categories scoring below the weakness threshold, plus a penalty sentence
// for very short responses.
func GenerateWeaknesses(breakdown types.ScoreBreakdown, response string) []string {
	var weaknesses []string

	ranked := rankedCategories(breakdown)
	for i := len(ranked) - 1; i >= 0 && len(weaknesses) < 3; i-- {
		c := ranked[i]
		if v, _ := breakdown.Get(c); v < weaknessThreshold {
			weaknesses = append(weaknesses, weaknessSentences[c])
		}
	}

	if len(response) < 50 {
		weaknesses = append(weaknesses, "The response was too brief to demonstrate depth.")
	}

	if len(weaknesses) > 5 {
		weaknesses = weaknesses[:5]
	}
	return weaknesses
}

// weakCategories returns categories scoring below the improvement threshold,
// weakest first.
func weakCategories(breakdown types.ScoreBreakdown) []types.Category {
	ranked := rankedCategories(breakdown)
	var weak []types.Category
	for i := len(ranked) - 1; i >= 0; i-- {
		if v, _ := breakdown.Get(ranked[i]); v < improveThreshold {
			weak = append(weak, ranked[i])
		}
	}
	return weak
}

// GenerateRecommendations emits one canned recommendation per category
// scoring below the improvement threshold.
func GenerateRecommendations(breakdown types.ScoreBreakdown) []string {
	var recs []string
	for _, c := range weakCategories(breakdown) {
		recs = append(recs, recommendationSentences[c])
	}
	return recs
}

// BuildImprovementPlan derives short-term actions from the two weakest
// categories and long-term actions from all weak categories, each capped at
// three sentences.
func BuildImprovementPlan(breakdown types.ScoreBreakdown) types.ImprovementPlan {
	weak := weakCategories(breakdown)

	var plan types.ImprovementPlan
	for i, c := range weak {
		if i < 2 {
			plan.ShortTerm = append(plan.ShortTerm, shortTermActions[c])
		}
		plan.LongTerm = append(plan.LongTerm, longTermActions[c])
	}

	if len(plan.ShortTerm) > 3 {
		plan.ShortTerm = plan.ShortTerm[:3]
	}
	if len(plan.LongTerm) > 3 {
		plan.LongTerm = plan.LongTerm[:3]
	}
	return plan
}
