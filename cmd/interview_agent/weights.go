package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/interview-coach/internal/schemas"
	"github.com/jonathan/interview-coach/internal/scoring"
	"github.com/jonathan/interview-coach/internal/types"
	"github.com/spf13/cobra"
)

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "List and inspect scoring weight presets",
	Long:  "List the available scoring weight presets, print one as JSON, or validate a custom weight file.",
	RunE:  runWeights,
}

var (
	weightsPreset   string
	weightsValidate string
)

func init() {
	weightsCmd.Flags().StringVar(&weightsPreset, "preset", "", "Print the named preset as JSON")
	weightsCmd.Flags().StringVar(&weightsValidate, "validate", "", "Path to a custom weights JSON file to validate")

	rootCmd.AddCommand(weightsCmd)
}

func runWeights(_ *cobra.Command, _ []string) error {
	if weightsValidate != "" {
		content, err := os.ReadFile(weightsValidate)
		if err != nil {
			return fmt.Errorf("failed to read weights file: %w", err)
		}

		if err := schemas.ValidateScoringWeights(string(content)); err != nil {
			return fmt.Errorf("weights failed schema validation: %w", err)
		}

		var weights types.ScoringWeights
		if err := json.Unmarshal(content, &weights); err != nil {
			return fmt.Errorf("failed to parse weights JSON: %w", err)
		}
		if err := scoring.ValidateWeights(weights); err != nil {
			return err
		}

		fmt.Println("Weights are valid")
		return nil
	}

	if weightsPreset != "" {
		weights, err := scoring.GetPresetWeights(weightsPreset)
		if err != nil {
			return err
		}
		jsonBytes, err := json.MarshalIndent(weights, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	for _, name := range scoring.PresetNames() {
		fmt.Println(name)
	}
	return nil
}
