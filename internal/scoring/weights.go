package scoring

import (
	"fmt"
	"math"

	"github.com/jonathan/interview-coach/internal/types"
)

// DefaultWeights returns the standard weight set used for the overall score.
// The weights sum to 1.0.
func DefaultWeights() types.ScoringWeights {
	return types.ScoringWeights{
		types.CategoryTechnicalAccuracy:   0.15,
		types.CategoryCommunicationSkills: 0.20,
		types.CategoryProblemSolving:      0.15,
		types.CategoryConfidence:          0.10,
		types.CategoryRelevance:           0.15,
		types.CategoryClarity:             0.10,
		types.CategoryStructure:           0.10,
		types.CategoryExamples:            0.05,
	}
}

// presets holds the named weight presets. Each sums to 1.0.
var presets = map[string]types.ScoringWeights{
	"technical": {
		types.CategoryTechnicalAccuracy:   0.25,
		types.CategoryCommunicationSkills: 0.15,
		types.CategoryProblemSolving:      0.20,
		types.CategoryConfidence:          0.05,
		types.CategoryRelevance:           0.15,
		types.CategoryClarity:             0.05,
		types.CategoryStructure:           0.10,
		types.CategoryExamples:            0.05,
	},
	"behavioral": {
		types.CategoryTechnicalAccuracy:   0.05,
		types.CategoryCommunicationSkills: 0.25,
		types.CategoryProblemSolving:      0.10,
		types.CategoryConfidence:          0.10,
		types.CategoryRelevance:           0.15,
		types.CategoryClarity:             0.10,
		types.CategoryStructure:           0.15,
		types.CategoryExamples:            0.10,
	},
	"product-manager": {
		types.CategoryTechnicalAccuracy:   0.10,
		types.CategoryCommunicationSkills: 0.20,
		types.CategoryProblemSolving:      0.20,
		types.CategoryConfidence:          0.10,
		types.CategoryRelevance:           0.15,
		types.CategoryClarity:             0.10,
		types.CategoryStructure:           0.10,
		types.CategoryExamples:            0.05,
	},
	"leadership": {
		types.CategoryTechnicalAccuracy:   0.05,
		types.CategoryCommunicationSkills: 0.20,
		types.CategoryProblemSolving:      0.15,
		types.CategoryConfidence:          0.15,
		types.CategoryRelevance:           0.10,
		types.CategoryClarity:             0.10,
		types.CategoryStructure:           0.10,
		types.CategoryExamples:            0.15,
	},
}

// PresetNames lists the available preset names.
func PresetNames() []string {
	return []string{"technical", "behavioral", "product-manager", "leadership"}
}

// GetPresetWeights returns a copy of the named preset.
func GetPresetWeights(name string) (types.ScoringWeights, error) {
	preset, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown weight preset: %s", name)
	}
	out := make(types.ScoringWeights, len(preset))
	for c, w := range preset {
		out[c] = w
	}
	return out, nil
}

// ValidateWeights checks that a weight set covers only known categories and
// sums to 1.0 within floating-point tolerance.
func ValidateWeights(w types.ScoringWeights) error {
	if len(w) == 0 {
		return fmt.Errorf("weights are empty")
	}
	for c, v := range w {
		if _, ok := (types.ScoreBreakdown{}).Get(c); !ok {
			return fmt.Errorf("unknown category: %s", c)
		}
		if v < 0 {
			return fmt.Errorf("negative weight for %s: %f", c, v)
		}
	}
	if math.Abs(w.Sum()-1.0) > 1e-6 {
		return fmt.Errorf("weights must sum to 1.0, got %f", w.Sum())
	}
	return nil
}
