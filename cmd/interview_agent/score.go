package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/interview-coach/internal/config"
	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/observability"
	"github.com/jonathan/interview-coach/internal/scoring"
	"github.com/jonathan/interview-coach/internal/types"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single interview response",
	Long:  "Score an interview response across eight dimensions and print the detailed result as JSON, or as formatted boxes with --verbose.",
	RunE:  runScore,
}

var (
	scoreQuestion     string
	scoreResponseFile string
	scoreDuration     int
	scoreQuestionType string
	scoreRole         string
	scoreDifficulty   string
	scorePreset       string
	scoreKeywordsFile string
	scoreAPIKey       string
	scoreUseAI        bool
	scoreConfigFile   string
	scoreVerbose      bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreQuestion, "question", "q", "", "Interview question text (required)")
	scoreCmd.Flags().StringVarP(&scoreResponseFile, "in", "i", "", "Path to response text file (required)")
	scoreCmd.Flags().IntVarP(&scoreDuration, "duration", "d", 0, "Response duration in seconds")
	scoreCmd.Flags().StringVarP(&scoreQuestionType, "type", "t", "behavioral", "Question type: behavioral, technical, situational")
	scoreCmd.Flags().StringVar(&scoreRole, "role", "", "Target role (e.g. \"backend engineer\")")
	scoreCmd.Flags().StringVar(&scoreDifficulty, "difficulty", "", "Question difficulty: easy, medium, hard")
	scoreCmd.Flags().StringVar(&scorePreset, "preset", "", "Named weight preset (default weights if unset)")
	scoreCmd.Flags().StringVar(&scoreKeywordsFile, "keywords", "", "Path to JSON keyword weight table")
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	scoreCmd.Flags().BoolVar(&scoreUseAI, "ai", false, "Blend AI feedback into the breakdown")
	scoreCmd.Flags().StringVarP(&scoreConfigFile, "config", "c", "", "Path to JSON config file")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print formatted breakdown instead of JSON")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	if scoreConfigFile != "" {
		cfg, err := config.LoadConfig(scoreConfigFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if scorePreset == "" {
			scorePreset = cfg.WeightPreset
		}
		if scoreAPIKey == "" {
			scoreAPIKey = cfg.APIKey
		}
		if cfg.Verbose {
			scoreVerbose = true
		}
	}

	if scoreQuestion == "" {
		return fmt.Errorf("--question is required")
	}
	if scoreResponseFile == "" {
		return fmt.Errorf("--in is required")
	}

	responseBytes, err := os.ReadFile(scoreResponseFile)
	if err != nil {
		return fmt.Errorf("failed to read response file: %w", err)
	}
	response := string(responseBytes)

	criteria := types.ScoringCriteria{
		QuestionType: types.QuestionType(scoreQuestionType),
		Role:         scoreRole,
		Difficulty:   types.Difficulty(scoreDifficulty),
	}

	if scoreKeywordsFile != "" {
		keywordBytes, err := os.ReadFile(scoreKeywordsFile)
		if err != nil {
			return fmt.Errorf("failed to read keywords file: %w", err)
		}
		if err := json.Unmarshal(keywordBytes, &criteria.KeywordWeights); err != nil {
			return fmt.Errorf("failed to parse keywords JSON: %w", err)
		}
	}

	weights := scoring.DefaultWeights()
	if scorePreset != "" {
		weights, err = scoring.GetPresetWeights(scorePreset)
		if err != nil {
			return err
		}
	}

	// AI feedback is best-effort; failures fall back to heuristics
	var aiFeedback *types.AIFeedback
	if scoreUseAI {
		apiKey := scoreAPIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("API key is required with --ai (set GEMINI_API_KEY environment variable or use --api-key flag)")
		}

		ctx := context.Background()
		client, err := llm.NewGeminiClient(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			return fmt.Errorf("failed to create AI client: %w", err)
		}
		defer func() { _ = client.Close() }()

		feedback, err := llm.GenerateFeedback(ctx, client, scoreQuestion, response, criteria)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: AI feedback unavailable, using heuristics only: %v\n", err)
		} else {
			aiFeedback = feedback
		}
	}

	score := scoring.Score(scoreQuestion, response, scoreDuration, criteria, aiFeedback, weights)

	if scoreVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintDetailedScore(&score)
		printer.PrintImprovementPlan(&score.ImprovementPlan)
		return nil
	}

	jsonBytes, err := json.MarshalIndent(score, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
