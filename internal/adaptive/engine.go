package adaptive

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/interview-coach/internal/analytics"
	"github.com/jonathan/interview-coach/internal/types"
)

// recentWindow is how many recent sessions the rule conditions look at.
const recentWindow = 3

// Store is the persistence capability the engine needs. Storage failures
// never propagate to callers; the engine degrades to defaults.
type Store interface {
	ListPerformanceMetrics(ctx context.Context, userID uuid.UUID, limit int) ([]types.PerformanceMetrics, error)
	InsertChoiceRecord(ctx context.Context, record *types.UserChoiceRecord) error
	ListChoiceRecords(ctx context.Context, userID uuid.UUID, limit int) ([]types.UserChoiceRecord, error)
	UpdateChoiceOutcome(ctx context.Context, choiceID uuid.UUID, outcome types.SessionOutcome) error
}

// Engine produces next-session recommendations. It is stateless per call;
// all state lives in the injected store.
type Engine struct {
	store Store
}

// NewEngine creates an adaptive engine backed by the given store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// DefaultRecommendation is returned for users with no session history and
// when no rule matches.
func DefaultRecommendation() types.AdaptiveRecommendation {
	return types.AdaptiveRecommendation{
		RecommendedDifficulty: types.DifficultyMedium,
		RecommendedType:       types.InterviewMixed,
		Confidence:            50,
		Rationale: types.Rationale{
			Primary: "Not enough history yet; a medium mixed session gives a balanced baseline.",
		},
		AlternativeOptions: []types.AlternativeOption{
			{Difficulty: types.DifficultyEasy, Type: types.InterviewBehavioral, Reason: "Start gently with story-based questions."},
			{Difficulty: types.DifficultyMedium, Type: types.InterviewTechnical, Reason: "Jump straight into technical practice."},
		},
		EstimatedDifficulty: types.EstimateAppropriate,
	}
}

// Recommend evaluates the rule list against the user's performance profile
// and returns a recommendation. Empty or unreadable histories yield the
// fixed default rather than an error.
func (e *Engine) Recommend(ctx context.Context, userID uuid.UUID) types.AdaptiveRecommendation {
	metrics, err := e.store.ListPerformanceMetrics(ctx, userID, 50)
	if err != nil {
		log.Printf("[adaptive] failed to load metrics for %s: %v", userID, err)
		return DefaultRecommendation()
	}
	if len(metrics) == 0 {
		return DefaultRecommendation()
	}

	profile := analytics.BuildProfile(metrics)
	recent := analytics.RecentScores(metrics, recentWindow)

	rule := pickRule(profile, recent)
	if rule == nil {
		return DefaultRecommendation()
	}

	rec := rule.Action(profile, recent)
	rec.Confidence = confidence(profile, recent, rec.Rationale)
	rec.AlternativeOptions = alternatives(rec)
	return rec
}

// confidence is computed independently of the winning rule: a session-count
// bonus, a bonus inversely proportional to recent score variance, and a
// bonus for well-supported rationales.
func confidence(profile types.UserPerformanceProfile, recent []int, rationale types.Rationale) int {
	score := 50.0

	sessionBonus := float64(profile.TotalSessions) * 2
	if sessionBonus > 20 {
		sessionBonus = 20
	}
	score += sessionBonus

	if len(recent) >= 2 {
		score += 15.0 / (1.0 + variance(recent)/50.0)
	}

	if len(rationale.Supporting) >= 2 {
		score += 10
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(score)
}

func variance(scores []int) float64 {
	mean := average(scores)
	sum := 0.0
	for _, s := range scores {
		d := float64(s) - mean
		sum += d * d
	}
	return sum / float64(len(scores))
}

// alternatives generates up to two secondary options by varying type at the
// recommended difficulty and difficulty at the recommended type.
func alternatives(rec types.AdaptiveRecommendation) []types.AlternativeOption {
	var alts []types.AlternativeOption

	otherType := types.InterviewMixed
	if rec.RecommendedType == types.InterviewMixed {
		otherType = types.InterviewBehavioral
	}
	alts = append(alts, types.AlternativeOption{
		Difficulty: rec.RecommendedDifficulty,
		Type:       otherType,
		Reason:     fmt.Sprintf("Same difficulty with a %s format for variety.", otherType),
	})

	otherDifficulty := stepDown(rec.RecommendedDifficulty)
	if otherDifficulty == rec.RecommendedDifficulty {
		otherDifficulty = stepUp(rec.RecommendedDifficulty)
	}
	alts = append(alts, types.AlternativeOption{
		Difficulty: otherDifficulty,
		Type:       rec.RecommendedType,
		Reason:     fmt.Sprintf("Same format at %s difficulty.", otherDifficulty),
	})

	return alts
}

// RecordChoice logs the user's actual session choice against the shown
// recommendation. Write failures are logged and dropped.
func (e *Engine) RecordChoice(ctx context.Context, userID uuid.UUID, rec types.AdaptiveRecommendation, choice types.SessionChoice) *types.UserChoiceRecord {
	record := &types.UserChoiceRecord{
		ID:             uuid.New(),
		UserID:         userID,
		Timestamp:      time.Now().UTC(),
		Recommendation: rec,
		UserChoice:     choice,
		Followed:       choice.Difficulty == rec.RecommendedDifficulty && choice.Type == rec.RecommendedType,
	}

	if err := e.store.InsertChoiceRecord(ctx, record); err != nil {
		log.Printf("[adaptive] failed to record choice for %s: %v", userID, err)
	}
	return record
}

// UpdateSessionOutcome attaches the session result to a recorded choice.
func (e *Engine) UpdateSessionOutcome(ctx context.Context, choiceID uuid.UUID, outcome types.SessionOutcome) error {
	if err := e.store.UpdateChoiceOutcome(ctx, choiceID, outcome); err != nil {
		return fmt.Errorf("failed to update session outcome: %w", err)
	}
	return nil
}

// successScore is the overall score at or above which a followed
// recommendation counts as successful.
const successScore = 60

// RecommendationAccuracy returns the fraction of followed recommendations
// with a recorded outcome that went well. Returns 0 when no followed
// recommendation has an outcome yet.
func (e *Engine) RecommendationAccuracy(ctx context.Context, userID uuid.UUID) float64 {
	records, err := e.store.ListChoiceRecords(ctx, userID, 100)
	if err != nil {
		log.Printf("[adaptive] failed to load choice records for %s: %v", userID, err)
		return 0
	}

	followed := 0
	successful := 0
	for _, r := range records {
		if !r.Followed || r.Outcome == nil {
			continue
		}
		followed++
		if r.Outcome.Completed && r.Outcome.OverallScore >= successScore {
			successful++
		}
	}

	if followed == 0 {
		return 0
	}
	return float64(successful) / float64(followed)
}
