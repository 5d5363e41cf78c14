// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// scoreBar renders a 20-char bar for a 0-100 score.
func scoreBar(score float64) string {
	filled := int(score / 5)
	if filled < 0 {
		filled = 0
	}
	if filled > 20 {
		filled = 20
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
}

// categoryLabels maps internal category names to display labels.
var categoryLabels = map[types.Category]string{
	types.CategoryTechnicalAccuracy:   "Technical",
	types.CategoryCommunicationSkills: "Communication",
	types.CategoryProblemSolving:      "Problem solving",
	types.CategoryConfidence:          "Confidence",
	types.CategoryRelevance:           "Relevance",
	types.CategoryClarity:             "Clarity",
	types.CategoryStructure:           "Structure",
	types.CategoryExamples:            "Examples",
}

// PrintDetailedScore outputs a human-readable summary of a scoring result.
func (p *Printer) PrintDetailedScore(score *types.DetailedScore) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %d/100\n", score.OverallScore))
	sb.WriteString(fmt.Sprintf("Level:    %s\n", score.LevelAssessment))
	sb.WriteString("\n")

	for _, c := range types.AllCategories {
		v, _ := score.Breakdown.Get(c)
		sb.WriteString(fmt.Sprintf("%-15s %s %3.0f\n", categoryLabels[c], scoreBar(v), v))
	}

	p.printBox("SCORE BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))

	p.printFeedbackList("STRENGTHS", score.Strengths)
	p.printFeedbackList("WEAKNESSES", score.Weaknesses)
	p.printFeedbackList("RECOMMENDATIONS", score.Recommendations)
}

// printFeedbackList prints a boxed bullet list, truncated to maxItemsToShow.
func (p *Printer) printFeedbackList(title string, items []string) {
	if len(items) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := items[i]
		if len(item) > 50 {
			item = item[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s", item))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(items)-maxItemsToShow))
	}

	p.printBox(title, sb.String())
}

// PrintImprovementPlan outputs the short-term and long-term actions.
func (p *Printer) PrintImprovementPlan(plan *types.ImprovementPlan) {
	if plan == nil || (len(plan.ShortTerm) == 0 && len(plan.LongTerm) == 0) {
		return
	}

	var sb strings.Builder
	if len(plan.ShortTerm) > 0 {
		sb.WriteString("Short term:\n")
		for _, action := range plan.ShortTerm {
			if len(action) > 50 {
				action = action[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", action))
		}
	}
	if len(plan.LongTerm) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Long term:\n")
		for _, action := range plan.LongTerm {
			if len(action) > 50 {
				action = action[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", action))
		}
	}

	p.printBox("IMPROVEMENT PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendation outputs the adaptive next-session suggestion.
func (p *Printer) PrintRecommendation(rec *types.AdaptiveRecommendation) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Difficulty:  %s\n", rec.RecommendedDifficulty))
	sb.WriteString(fmt.Sprintf("Format:      %s\n", rec.RecommendedType))
	sb.WriteString(fmt.Sprintf("Confidence:  %d%%\n", rec.Confidence))
	sb.WriteString(fmt.Sprintf("Feels:       %s\n", rec.EstimatedDifficulty))
	sb.WriteString("\n")

	primary := rec.Rationale.Primary
	if len(primary) > 50 {
		primary = primary[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("Why: %s\n", primary))
	for _, supporting := range rec.Rationale.Supporting {
		if len(supporting) > 48 {
			supporting = supporting[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("  - %s\n", supporting))
	}

	if len(rec.FocusAreas) > 0 {
		areas := make([]string, 0, len(rec.FocusAreas))
		for _, c := range rec.FocusAreas {
			areas = append(areas, categoryLabels[c])
		}
		sb.WriteString(fmt.Sprintf("\nFocus: %s\n", strings.Join(areas, ", ")))
	}

	if len(rec.AlternativeOptions) > 0 {
		sb.WriteString("\nAlternatives:\n")
		for _, alt := range rec.AlternativeOptions {
			sb.WriteString(fmt.Sprintf("  • %s %s\n", alt.Difficulty, alt.Type))
		}
	}

	p.printBox("NEXT SESSION RECOMMENDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfile outputs a summary of the user's performance profile.
func (p *Printer) PrintProfile(profile *types.UserPerformanceProfile) {
	if profile == nil || profile.TotalSessions == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Sessions:   %d\n", profile.TotalSessions))
	sb.WriteString(fmt.Sprintf("Average:    %.1f\n", profile.AverageOverallScore))
	sb.WriteString(fmt.Sprintf("Difficulty: %s\n", profile.PreferredDifficulty))

	if len(profile.Strengths) > 0 {
		names := make([]string, 0, len(profile.Strengths))
		for _, c := range profile.Strengths {
			names = append(names, categoryLabels[c])
		}
		sb.WriteString(fmt.Sprintf("\nStrengths:  %s\n", strings.Join(names, ", ")))
	}
	if len(profile.Weaknesses) > 0 {
		names := make([]string, 0, len(profile.Weaknesses))
		for _, c := range profile.Weaknesses {
			names = append(names, categoryLabels[c])
		}
		sb.WriteString(fmt.Sprintf("Weaknesses: %s\n", strings.Join(names, ", ")))
	}

	if len(profile.RecentTrends) > 1 {
		first := profile.RecentTrends[0].OverallScore
		last := profile.RecentTrends[len(profile.RecentTrends)-1].OverallScore
		direction := "flat"
		if last > first {
			direction = "improving"
		} else if last < first {
			direction = "declining"
		}
		sb.WriteString(fmt.Sprintf("\nTrend:      %s (%d → %d)\n", direction, first, last))
	}

	p.printBox("PERFORMANCE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}
