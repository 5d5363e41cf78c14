package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/interview-coach/internal/schemas"
	"github.com/jonathan/interview-coach/internal/types"
)

const feedbackPromptTemplate = `You are an experienced interviewer evaluating a candidate's answer.

Question type: %s
Role: %s
Question: %s

Candidate's answer:
%s

Return a JSON object with these fields, all scores on a 0-100 scale:
{
  "overall_score": number,
  "technical_accuracy": number,
  "communication": number,
  "confidence": number,
  "relevance": number,
  "strengths": [string],
  "improvements": [string],
  "detailed_feedback": string
}`

// GenerateFeedback asks the model to evaluate a response and returns the
// parsed feedback object. The JSON payload is validated against the
// ai_feedback schema before being trusted.
func GenerateFeedback(ctx context.Context, client Client, question, response string, criteria types.ScoringCriteria) (*types.AIFeedback, error) {
	prompt := fmt.Sprintf(feedbackPromptTemplate, criteria.QuestionType, criteria.Role, question, response)

	raw, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate feedback: %w", err)
	}

	if err := schemas.ValidateAIFeedback(raw); err != nil {
		return nil, fmt.Errorf("feedback failed schema validation: %w", err)
	}

	var feedback types.AIFeedback
	if err := json.Unmarshal([]byte(raw), &feedback); err != nil {
		return nil, fmt.Errorf("failed to parse feedback JSON: %w", err)
	}
	return &feedback, nil
}
