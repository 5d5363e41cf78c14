package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAIFeedback_Valid(t *testing.T) {
	doc := `{
		"overall_score": 78,
		"technical_accuracy": 80,
		"communication": 75,
		"confidence": 70,
		"relevance": 85,
		"strengths": ["clear structure"],
		"improvements": ["add metrics"],
		"detailed_feedback": "Solid answer overall."
	}`

	assert.NoError(t, ValidateAIFeedback(doc))
}

func TestValidateAIFeedback_MissingRequiredField(t *testing.T) {
	doc := `{"overall_score": 78, "technical_accuracy": 80, "communication": 75, "confidence": 70}`

	err := ValidateAIFeedback(doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateAIFeedback_ScoreOutOfRange(t *testing.T) {
	doc := `{
		"overall_score": 150,
		"technical_accuracy": 80,
		"communication": 75,
		"confidence": 70,
		"relevance": 85
	}`

	assert.Error(t, ValidateAIFeedback(doc))
}

func TestValidateAIFeedback_MalformedJSON(t *testing.T) {
	err := ValidateAIFeedback(`{"overall_score":`)
	assert.Error(t, err)
}

func TestValidateScoringWeights_Valid(t *testing.T) {
	doc := `{
		"technicalAccuracy": 0.15,
		"communicationSkills": 0.20,
		"problemSolving": 0.15,
		"confidence": 0.10,
		"relevance": 0.15,
		"clarity": 0.10,
		"structure": 0.10,
		"examples": 0.05
	}`

	assert.NoError(t, ValidateScoringWeights(doc))
}

func TestValidateScoringWeights_UnknownCategory(t *testing.T) {
	err := ValidateScoringWeights(`{"vibes": 1.0}`)
	assert.Error(t, err)
}

func TestValidateScoringWeights_OutOfRange(t *testing.T) {
	err := ValidateScoringWeights(`{"technicalAccuracy": 1.5}`)
	assert.Error(t, err)
}

func TestValidationError_MessageListsFields(t *testing.T) {
	err := ValidateScoringWeights(`{"technicalAccuracy": -1, "clarity": 2}`)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 2)
	assert.Contains(t, ve.Error(), "validation failed")
}
