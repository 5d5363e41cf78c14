// Package types provides type definitions for structured data used throughout the interview-coach system.
package types

// QuestionType identifies the kind of interview question being scored.
type QuestionType string

const (
	QuestionBehavioral  QuestionType = "behavioral"
	QuestionTechnical   QuestionType = "technical"
	QuestionSituational QuestionType = "situational"
)

// Difficulty is the difficulty level of a session or question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// InterviewType identifies the session format.
type InterviewType string

const (
	InterviewBehavioral InterviewType = "behavioral"
	InterviewTechnical  InterviewType = "technical"
	InterviewMixed      InterviewType = "mixed"
)

// Level is the seniority assessment derived from a score.
type Level string

const (
	LevelJunior Level = "junior"
	LevelMid    Level = "mid"
	LevelSenior Level = "senior"
	LevelLead   Level = "lead"
)

// Category names one of the eight scored dimensions.
type Category string

const (
	CategoryTechnicalAccuracy   Category = "technicalAccuracy"
	CategoryCommunicationSkills Category = "communicationSkills"
	CategoryProblemSolving      Category = "problemSolving"
	CategoryConfidence          Category = "confidence"
	CategoryRelevance           Category = "relevance"
	CategoryClarity             Category = "clarity"
	CategoryStructure           Category = "structure"
	CategoryExamples            Category = "examples"
)

// AllCategories lists the eight scored dimensions in canonical order.
var AllCategories = []Category{
	CategoryTechnicalAccuracy,
	CategoryCommunicationSkills,
	CategoryProblemSolving,
	CategoryConfidence,
	CategoryRelevance,
	CategoryClarity,
	CategoryStructure,
	CategoryExamples,
}

// ScoringCriteria is the per-call configuration for scoring one response.
type ScoringCriteria struct {
	QuestionType     QuestionType       `json:"question_type" validate:"required,oneof=behavioral technical situational"`
	Role             string             `json:"role"`
	Difficulty       Difficulty         `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	ExpectedDuration int                `json:"expected_duration,omitempty"` // seconds
	KeywordWeights   map[string]float64 `json:"keyword_weights,omitempty"`
}

// ScoreBreakdown holds the eight sub-scores, each clamped to [0,100].
type ScoreBreakdown struct {
	TechnicalAccuracy   float64 `json:"technical_accuracy"`
	CommunicationSkills float64 `json:"communication_skills"`
	ProblemSolving      float64 `json:"problem_solving"`
	Confidence          float64 `json:"confidence"`
	Relevance           float64 `json:"relevance"`
	Clarity             float64 `json:"clarity"`
	Structure           float64 `json:"structure"`
	Examples            float64 `json:"examples"`
}

// Get returns the value for a category, and false for unknown categories.
func (b ScoreBreakdown) Get(c Category) (float64, bool) {
	switch c {
	case CategoryTechnicalAccuracy:
		return b.TechnicalAccuracy, true
	case CategoryCommunicationSkills:
		return b.CommunicationSkills, true
	case CategoryProblemSolving:
		return b.ProblemSolving, true
	case CategoryConfidence:
		return b.Confidence, true
	case CategoryRelevance:
		return b.Relevance, true
	case CategoryClarity:
		return b.Clarity, true
	case CategoryStructure:
		return b.Structure, true
	case CategoryExamples:
		return b.Examples, true
	}
	return 0, false
}

// Set assigns the value for a category. Unknown categories are ignored.
func (b *ScoreBreakdown) Set(c Category, v float64) {
	switch c {
	case CategoryTechnicalAccuracy:
		b.TechnicalAccuracy = v
	case CategoryCommunicationSkills:
		b.CommunicationSkills = v
	case CategoryProblemSolving:
		b.ProblemSolving = v
	case CategoryConfidence:
		b.Confidence = v
	case CategoryRelevance:
		b.Relevance = v
	case CategoryClarity:
		b.Clarity = v
	case CategoryStructure:
		b.Structure = v
	case CategoryExamples:
		b.Examples = v
	}
}

// ToMap returns the breakdown keyed by category.
func (b ScoreBreakdown) ToMap() map[Category]float64 {
	m := make(map[Category]float64, len(AllCategories))
	for _, c := range AllCategories {
		v, _ := b.Get(c)
		m[c] = v
	}
	return m
}

// ScoringWeights maps each category to its weight in the overall score.
// A valid weight set sums to 1.0.
type ScoringWeights map[Category]float64

// Sum returns the total of all weights.
func (w ScoringWeights) Sum() float64 {
	total := 0.0
	for _, v := range w {
		total += v
	}
	return total
}

// ImprovementPlan holds short-term and long-term improvement actions.
type ImprovementPlan struct {
	ShortTerm []string `json:"short_term"`
	LongTerm  []string `json:"long_term"`
}

// DetailedScore is the full scoring result for one response.
// OverallScore always equals the weighted average of Breakdown for the
// weight set used to produce it.
type DetailedScore struct {
	OverallScore    int             `json:"overall_score"`
	Breakdown       ScoreBreakdown  `json:"breakdown"`
	LevelAssessment Level           `json:"level_assessment"`
	Strengths       []string        `json:"strengths"`
	Weaknesses      []string        `json:"weaknesses"`
	Recommendations []string        `json:"recommendations"`
	ImprovementPlan ImprovementPlan `json:"improvement_plan"`
}

// AIFeedback is the externally supplied feedback object from an AI reviewer.
// When present, four of the eight breakdown dimensions are taken from it.
type AIFeedback struct {
	OverallScore      float64  `json:"overall_score"`
	TechnicalAccuracy float64  `json:"technical_accuracy"`
	Communication     float64  `json:"communication"`
	Confidence        float64  `json:"confidence"`
	Relevance         float64  `json:"relevance"`
	Strengths         []string `json:"strengths,omitempty"`
	Improvements      []string `json:"improvements,omitempty"`
	DetailedFeedback  string   `json:"detailed_feedback,omitempty"`
}
