package llm

import (
	"context"
	"fmt"
	"testing"

	"github.com/jonathan/interview-coach/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient returns a canned payload.
type fakeClient struct {
	payload string
	err     error
}

func (f *fakeClient) GenerateJSON(context.Context, string) (string, error) {
	return f.payload, f.err
}

func (f *fakeClient) Close() error { return nil }

func TestGenerateFeedback_ParsesValidPayload(t *testing.T) {
	client := &fakeClient{payload: `{
		"overall_score": 78,
		"technical_accuracy": 80,
		"communication": 75,
		"confidence": 70,
		"relevance": 85,
		"strengths": ["clear structure"],
		"improvements": ["add metrics"],
		"detailed_feedback": "Solid answer overall."
	}`}

	feedback, err := GenerateFeedback(context.Background(), client, "Tell me about yourself.", "I build backend services.", types.ScoringCriteria{QuestionType: types.QuestionBehavioral})

	require.NoError(t, err)
	assert.Equal(t, 80.0, feedback.TechnicalAccuracy)
	assert.Equal(t, 75.0, feedback.Communication)
	assert.Equal(t, []string{"clear structure"}, feedback.Strengths)
}

func TestGenerateFeedback_ClientError(t *testing.T) {
	client := &fakeClient{err: fmt.Errorf("quota exceeded")}

	_, err := GenerateFeedback(context.Background(), client, "q", "a", types.ScoringCriteria{})
	assert.Error(t, err)
}

func TestGenerateFeedback_RejectsInvalidPayload(t *testing.T) {
	// Missing required fields must fail schema validation
	client := &fakeClient{payload: `{"overall_score": 78}`}

	_, err := GenerateFeedback(context.Background(), client, "q", "a", types.ScoringCriteria{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")
}

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, cleanJSONBlock("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, cleanJSONBlock("```\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, cleanJSONBlock(`  {"a": 1}  `))
}
