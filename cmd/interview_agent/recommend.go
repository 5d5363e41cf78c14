package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/interview-coach/internal/adaptive"
	"github.com/jonathan/interview-coach/internal/analytics"
	"github.com/jonathan/interview-coach/internal/db"
	"github.com/jonathan/interview-coach/internal/observability"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend the next practice session for a user",
	Long:  "Evaluate a user's stored performance history and print the recommended difficulty and format for their next session.",
	RunE:  runRecommend,
}

var (
	recommendUserID      string
	recommendDatabaseURL string
	recommendProfile     bool
	recommendVerbose     bool
)

func init() {
	recommendCmd.Flags().StringVar(&recommendUserID, "user-id", "", "User ID to recommend for (required)")
	recommendCmd.Flags().StringVar(&recommendDatabaseURL, "db-url", "", "Database URL (defaults to DATABASE_URL env var)")
	recommendCmd.Flags().BoolVar(&recommendProfile, "profile", false, "Also print the derived performance profile")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print formatted output instead of JSON")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	if recommendUserID == "" {
		return fmt.Errorf("--user-id is required")
	}
	userID, err := uuid.Parse(recommendUserID)
	if err != nil {
		return fmt.Errorf("invalid user-id: %w", err)
	}

	if recommendDatabaseURL == "" {
		recommendDatabaseURL = os.Getenv("DATABASE_URL")
	}
	if recommendDatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required (set the environment variable or use --db-url)")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, recommendDatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	engine := adaptive.NewEngine(database)
	rec := engine.Recommend(ctx, userID)

	if recommendVerbose {
		printer := observability.NewPrinter(os.Stdout)
		if recommendProfile {
			metrics, err := database.ListPerformanceMetrics(ctx, userID, 50)
			if err != nil {
				return fmt.Errorf("failed to load metrics: %w", err)
			}
			profile := analytics.BuildProfile(metrics)
			printer.PrintProfile(&profile)
		}
		printer.PrintRecommendation(&rec)
		return nil
	}

	out := map[string]any{"recommendation": rec}
	if recommendProfile {
		metrics, err := database.ListPerformanceMetrics(ctx, userID, 50)
		if err != nil {
			return fmt.Errorf("failed to load metrics: %w", err)
		}
		out["profile"] = analytics.BuildProfile(metrics)
	}

	jsonBytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
