package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/interview-coach/internal/config"
	"github.com/jonathan/interview-coach/internal/posting"
	"github.com/spf13/cobra"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Derive a keyword weight table from job postings",
	Long:  "Fetch one or more job posting URLs and derive a keyword weight table for role-specific technical scoring. The output feeds the score command's --keywords flag.",
	RunE:  runKeywords,
}

var (
	keywordsURLs       []string
	keywordsOutputFile string
	keywordsUseBrowser bool
	keywordsConfigFile string
)

func init() {
	keywordsCmd.Flags().StringArrayVarP(&keywordsURLs, "url", "u", nil, "Job posting URL (repeatable)")
	keywordsCmd.Flags().StringVarP(&keywordsOutputFile, "out", "o", "", "Path to output JSON file (stdout if unset)")
	keywordsCmd.Flags().BoolVar(&keywordsUseBrowser, "browser", false, "Render JavaScript-heavy postings with a headless browser")
	keywordsCmd.Flags().StringVarP(&keywordsConfigFile, "config", "c", "", "Path to JSON config file")

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(_ *cobra.Command, _ []string) error {
	if keywordsConfigFile != "" {
		cfg, err := config.LoadConfig(keywordsConfigFile)
		if err != nil {
			return err
		}
		if cfg.UseBrowser {
			keywordsUseBrowser = true
		}
	}

	if len(keywordsURLs) == 0 {
		return fmt.Errorf("at least one --url is required")
	}

	ctx := context.Background()
	texts, err := posting.FetchAll(ctx, keywordsURLs, keywordsUseBrowser)
	if err != nil {
		return fmt.Errorf("failed to fetch postings: %w", err)
	}

	table := posting.BuildKeywordTable(texts)
	if len(table) == 0 {
		return fmt.Errorf("no keywords could be derived from the given postings")
	}

	jsonBytes, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if keywordsOutputFile != "" {
		if err := os.WriteFile(keywordsOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("Derived %d keywords\n", len(table))
		fmt.Printf("Output: %s\n", keywordsOutputFile)
		return nil
	}

	fmt.Println(string(jsonBytes))
	return nil
}
