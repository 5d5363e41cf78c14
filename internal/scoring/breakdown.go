package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// CalculateBreakdownScores derives the eight sub-scores for a response.
// If aiFeedback is non-nil, technical accuracy, communication, confidence
// and relevance are taken from it; the remaining four are always computed
// locally. All values are clamped to [0,100] and the computation is a pure
// function of its inputs.
func CalculateBreakdownScores(question, response string, durationSeconds int, criteria types.ScoringCriteria, aiFeedback *types.AIFeedback) types.ScoreBreakdown {
	b := types.ScoreBreakdown{
		ProblemSolving: scoreProblemSolving(response),
		Clarity:        scoreClarity(response),
		Structure:      scoreStructure(response),
		Examples:       scoreExamples(response, criteria.QuestionType),
	}

	if aiFeedback != nil {
		b.TechnicalAccuracy = clamp(aiFeedback.TechnicalAccuracy, 0, 100)
		b.CommunicationSkills = clamp(aiFeedback.Communication, 0, 100)
		b.Confidence = clamp(aiFeedback.Confidence, 0, 100)
		b.Relevance = clamp(aiFeedback.Relevance, 0, 100)
		return b
	}

	b.TechnicalAccuracy = scoreTechnicalAccuracy(response, criteria)
	b.CommunicationSkills = scoreCommunication(response, durationSeconds)
	b.Confidence = scoreConfidence(response, durationSeconds)
	b.Relevance = scoreRelevance(question, response)
	return b
}

// scoreTechnicalAccuracy matches the response against a weighted per-role
// keyword table. Non-technical questions score a fixed 100 (not applicable).
func scoreTechnicalAccuracy(response string, criteria types.ScoringCriteria) float64 {
	if criteria.QuestionType != types.QuestionTechnical {
		return 100
	}

	table := criteria.KeywordWeights
	if len(table) == 0 {
		table = keywordTableForRole(criteria.Role)
	}

	totalWeight := 0.0
	for _, w := range table {
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}

	lower := strings.ToLower(response)
	matchedWeight := 0.0
	for keyword, weight := range table {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			matchedWeight += weight
		}
	}

	score := matchedWeight / totalWeight * 100
	if len(response) > 200 {
		score += 10
	}
	return clamp(score, 0, 100)
}

// scoreCommunication blends a words-per-second pace score with a
// sentence-length coherence score, minus a filler-word penalty.
func scoreCommunication(response string, durationSeconds int) float64 {
	words := tokenize(response)

	rate := 0.0
	if durationSeconds > 0 {
		rate = float64(len(words)) / float64(durationSeconds)
	}

	// Optimal speaking pace is roughly 1.5-4 words per second.
	var paceScore float64
	switch {
	case rate >= 1.5 && rate <= 4.0:
		paceScore = 100
	case rate >= 1.0 && rate < 1.5, rate > 4.0 && rate <= 5.0:
		paceScore = 75
	case rate >= 0.5 && rate < 1.0, rate > 5.0 && rate <= 6.0:
		paceScore = 50
	default:
		paceScore = 25
	}

	coherence := sentenceLengthScore(response)

	penalty := float64(countOccurrences(response, fillerWords)) * 5
	if penalty > 30 {
		penalty = 30
	}

	return clamp(0.6*paceScore+0.4*coherence-penalty, 0, 100)
}

// sentenceLengthScore rates average sentence length against a readable band.
func sentenceLengthScore(response string) float64 {
	sentences := splitSentences(response)
	if len(sentences) == 0 {
		return 30
	}

	totalWords := 0
	for _, s := range sentences {
		totalWords += len(tokenize(s))
	}
	avg := float64(totalWords) / float64(len(sentences))

	switch {
	case avg >= 8 && avg <= 20:
		return 100
	case avg >= 5 && avg < 8, avg > 20 && avg <= 30:
		return 70
	default:
		return 40
	}
}

// scoreProblemSolving counts problem-solving vocabulary, scaled so that a
// modest number of distinct terms saturates the score, plus a bonus for
// ordinal/sequence markers.
func scoreProblemSolving(response string) float64 {
	lower := strings.ToLower(response)
	matches := 0
	for _, term := range problemSolvingTerms {
		if strings.Contains(lower, term) {
			matches++
		}
	}
	if matches > 8 {
		matches = 8
	}
	score := float64(matches) / 8.0 * 150

	markers := 0
	for _, m := range sequenceMarkers {
		if strings.Contains(lower, m) {
			markers++
		}
	}
	switch {
	case markers >= 2:
		score += 15
	case markers == 1:
		score += 8
	}

	return clamp(score, 0, 100)
}

// scoreConfidence starts at a neutral base and adjusts for confident and
// uncertain phrasing, response completeness, and pace.
func scoreConfidence(response string, durationSeconds int) float64 {
	score := 50.0
	score += float64(countOccurrences(response, confidentPhrases)) * 10
	score -= float64(countOccurrences(response, uncertainPhrases)) * 8

	words := tokenize(response)
	switch {
	case len(words) >= 80:
		score += 10
	case len(words) >= 40:
		score += 5
	}

	if durationSeconds > 0 {
		rate := float64(len(words)) / float64(durationSeconds)
		if rate >= 1.5 && rate <= 4.0 {
			score += 5
		}
	}

	return clamp(score, 20, 100)
}

// scoreRelevance measures how many of the question's content words appear in
// the response, with a bonus for explicitly addressing the question.
func scoreRelevance(question, response string) float64 {
	terms := contentWords(question)
	if len(terms) == 0 {
		return 50
	}

	lower := strings.ToLower(response)
	matched := 0
	for _, term := range terms {
		if strings.Contains(lower, term) {
			matched++
		}
	}

	score := float64(matched) / float64(len(terms)) * 100
	if containsAny(response, selfReferenceTerms) {
		score += 10
	}
	return clamp(score, 0, 100)
}

// scoreClarity blends sentence-length readability with vocabulary diversity,
// plus a transition-word bonus.
func scoreClarity(response string) float64 {
	words := tokenize(response)
	if len(words) == 0 {
		return 0
	}

	unique := make(map[string]bool, len(words))
	for _, w := range words {
		unique[w] = true
	}
	diversity := float64(len(unique)) / float64(len(words))
	// A diversity ratio around 0.7 is typical of clear spoken answers.
	diversityScore := clamp(diversity/0.7*100, 0, 100)

	bonus := float64(countOccurrences(response, transitionWords)) * 5
	if bonus > 20 {
		bonus = 20
	}

	return clamp(0.5*sentenceLengthScore(response)+0.5*diversityScore+bonus, 0, 100)
}

// scoreStructure awards 25 points per STAR category whose keyword set is
// matched, plus a bonus for flow words and sequence markers.
func scoreStructure(response string) float64 {
	lower := strings.ToLower(response)

	score := 0.0
	for _, keywords := range starCategories {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				score += 25
				break
			}
		}
	}

	flow := 0
	for _, p := range append(append([]string{}, flowWords...), sequenceMarkers...) {
		if strings.Contains(lower, p) {
			flow++
		}
	}
	bonus := float64(flow) * 5
	if bonus > 20 {
		bonus = 20
	}

	return clamp(score+bonus, 0, 100)
}

var (
	yearRe     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	durationRe = regexp.MustCompile(`\b\d+\s*(years?|months?|weeks?|days?)\b`)
	quantityRe = regexp.MustCompile(`\b\d+\s*(%|percent\b|x\b)`)
	companyRe  = regexp.MustCompile(`\b(at|with)\s+[A-Z][A-Za-z0-9]+`)
)

// scoreExamples awards points per example-introducing phrase plus a
// specificity bonus for dates, durations, quantities, and company names.
// Behavioral questions weight examples more heavily.
func scoreExamples(response string, questionType types.QuestionType) float64 {
	lower := strings.ToLower(response)

	matches := 0
	for _, p := range exampleIntroPhrases {
		if strings.Contains(lower, p) {
			matches++
		}
	}
	score := float64(matches) * 20
	if score > 80 {
		score = 80
	}

	bonus := 0.0
	if yearRe.MatchString(response) {
		bonus += 5
	}
	if durationRe.MatchString(lower) {
		bonus += 5
	}
	if quantityRe.MatchString(lower) {
		bonus += 5
	}
	if companyRe.MatchString(response) {
		bonus += 5
	}
	score += bonus

	if questionType == types.QuestionBehavioral {
		score *= 1.2
	}

	return clamp(score, 0, 100)
}
