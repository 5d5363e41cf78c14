package adaptive

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/interview-coach/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store for engine tests.
type fakeStore struct {
	metrics    []types.PerformanceMetrics
	records    []types.UserChoiceRecord
	metricsErr error
	insertErr  error
}

func (f *fakeStore) ListPerformanceMetrics(_ context.Context, _ uuid.UUID, _ int) ([]types.PerformanceMetrics, error) {
	return f.metrics, f.metricsErr
}

func (f *fakeStore) InsertChoiceRecord(_ context.Context, record *types.UserChoiceRecord) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeStore) ListChoiceRecords(_ context.Context, _ uuid.UUID, _ int) ([]types.UserChoiceRecord, error) {
	return f.records, nil
}

func (f *fakeStore) UpdateChoiceOutcome(_ context.Context, choiceID uuid.UUID, outcome types.SessionOutcome) error {
	for i := range f.records {
		if f.records[i].ID == choiceID {
			f.records[i].Outcome = &outcome
			return nil
		}
	}
	return fmt.Errorf("choice not found: %s", choiceID)
}

// sessionMetrics builds n sessions at the given score and difficulty.
func sessionMetrics(n, score int, difficulty types.Difficulty, interviewType types.InterviewType) []types.PerformanceMetrics {
	var b types.ScoreBreakdown
	for _, c := range types.AllCategories {
		b.Set(c, float64(score))
	}

	var out []types.PerformanceMetrics
	for i := 0; i < n; i++ {
		out = append(out, types.PerformanceMetrics{
			ID:            uuid.New(),
			Timestamp:     time.Now().UTC().Add(-time.Duration(i) * time.Hour),
			Difficulty:    difficulty,
			InterviewType: interviewType,
			OverallScore:  score,
			Breakdown:     b,
		})
	}
	return out
}

func TestRecommend_NoHistoryReturnsDefault(t *testing.T) {
	engine := NewEngine(&fakeStore{})

	rec := engine.Recommend(context.Background(), uuid.New())

	assert.Equal(t, DefaultRecommendation(), rec)
	assert.Equal(t, types.DifficultyMedium, rec.RecommendedDifficulty)
	assert.Equal(t, types.InterviewMixed, rec.RecommendedType)
	assert.Equal(t, 50, rec.Confidence)
}

func TestRecommend_StoreErrorDegradesToDefault(t *testing.T) {
	engine := NewEngine(&fakeStore{metricsErr: fmt.Errorf("connection refused")})

	rec := engine.Recommend(context.Background(), uuid.New())

	assert.Equal(t, DefaultRecommendation(), rec)
}

func TestRecommend_StrongHistoryStepsUpDifficulty(t *testing.T) {
	store := &fakeStore{metrics: sessionMetrics(5, 90, types.DifficultyMedium, types.InterviewTechnical)}
	engine := NewEngine(store)

	rec := engine.Recommend(context.Background(), uuid.New())

	assert.Equal(t, types.DifficultyHard, rec.RecommendedDifficulty)
	assert.Equal(t, types.EstimateChallenging, rec.EstimatedDifficulty)
	assert.NotEmpty(t, rec.Rationale.Primary)
	assert.Len(t, rec.AlternativeOptions, 2)
}

func TestRecommend_WeakHistoryStepsDownDifficulty(t *testing.T) {
	store := &fakeStore{metrics: sessionMetrics(4, 45, types.DifficultyMedium, types.InterviewBehavioral)}
	engine := NewEngine(store)

	rec := engine.Recommend(context.Background(), uuid.New())

	assert.Equal(t, types.DifficultyEasy, rec.RecommendedDifficulty)
	assert.Equal(t, types.EstimateComfortable, rec.EstimatedDifficulty)
}

func TestRecommend_ConfidenceGrowsWithConsistentHistory(t *testing.T) {
	small := &fakeStore{metrics: sessionMetrics(2, 50, types.DifficultyMedium, types.InterviewMixed)}
	large := &fakeStore{metrics: sessionMetrics(20, 50, types.DifficultyMedium, types.InterviewMixed)}

	smallRec := NewEngine(small).Recommend(context.Background(), uuid.New())
	largeRec := NewEngine(large).Recommend(context.Background(), uuid.New())

	assert.Greater(t, largeRec.Confidence, smallRec.Confidence)
	assert.LessOrEqual(t, largeRec.Confidence, 100)
}

func TestRecommend_AlternativesDifferFromPrimary(t *testing.T) {
	store := &fakeStore{metrics: sessionMetrics(5, 90, types.DifficultyMedium, types.InterviewTechnical)}
	engine := NewEngine(store)

	rec := engine.Recommend(context.Background(), uuid.New())

	require.Len(t, rec.AlternativeOptions, 2)
	for _, alt := range rec.AlternativeOptions {
		differs := alt.Difficulty != rec.RecommendedDifficulty || alt.Type != rec.RecommendedType
		assert.True(t, differs)
		assert.NotEmpty(t, alt.Reason)
	}
}

func TestRecordChoice_FollowedFlag(t *testing.T) {
	store := &fakeStore{}
	engine := NewEngine(store)
	userID := uuid.New()
	rec := DefaultRecommendation()

	followed := engine.RecordChoice(context.Background(), userID, rec, types.SessionChoice{
		Difficulty: rec.RecommendedDifficulty,
		Type:       rec.RecommendedType,
	})
	ignored := engine.RecordChoice(context.Background(), userID, rec, types.SessionChoice{
		Difficulty: types.DifficultyHard,
		Type:       rec.RecommendedType,
	})

	assert.True(t, followed.Followed)
	assert.False(t, ignored.Followed)
	assert.Len(t, store.records, 2)
}

func TestRecordChoice_WriteFailureStillReturnsRecord(t *testing.T) {
	store := &fakeStore{insertErr: fmt.Errorf("disk full")}
	engine := NewEngine(store)

	record := engine.RecordChoice(context.Background(), uuid.New(), DefaultRecommendation(), types.SessionChoice{
		Difficulty: types.DifficultyMedium,
		Type:       types.InterviewMixed,
	})

	require.NotNil(t, record)
	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.Empty(t, store.records)
}

func TestUpdateSessionOutcome_NotFound(t *testing.T) {
	engine := NewEngine(&fakeStore{})

	err := engine.UpdateSessionOutcome(context.Background(), uuid.New(), types.SessionOutcome{OverallScore: 70, Completed: true})
	assert.Error(t, err)
}

func TestRecommendationAccuracy(t *testing.T) {
	store := &fakeStore{}
	engine := NewEngine(store)
	userID := uuid.New()
	rec := DefaultRecommendation()

	// No records yet
	assert.Equal(t, 0.0, engine.RecommendationAccuracy(context.Background(), userID))

	good := engine.RecordChoice(context.Background(), userID, rec, types.SessionChoice{
		Difficulty: rec.RecommendedDifficulty, Type: rec.RecommendedType,
	})
	bad := engine.RecordChoice(context.Background(), userID, rec, types.SessionChoice{
		Difficulty: rec.RecommendedDifficulty, Type: rec.RecommendedType,
	})
	// A choice that ignored the recommendation never counts
	engine.RecordChoice(context.Background(), userID, rec, types.SessionChoice{
		Difficulty: types.DifficultyHard, Type: types.InterviewTechnical,
	})

	require.NoError(t, engine.UpdateSessionOutcome(context.Background(), good.ID, types.SessionOutcome{OverallScore: 75, Completed: true}))
	require.NoError(t, engine.UpdateSessionOutcome(context.Background(), bad.ID, types.SessionOutcome{OverallScore: 40, Completed: true}))

	assert.InDelta(t, 0.5, engine.RecommendationAccuracy(context.Background(), userID), 1e-9)
}
