package scoring

import (
	"testing"

	"github.com/jonathan/interview-coach/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeights_SumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, DefaultWeights().Sum(), 1e-9)
	assert.Len(t, DefaultWeights(), len(types.AllCategories))
}

func TestPresets_AllSumToOne(t *testing.T) {
	for _, name := range PresetNames() {
		weights, err := GetPresetWeights(name)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, weights.Sum(), 1e-9, "preset %s", name)
		assert.Len(t, weights, len(types.AllCategories), "preset %s", name)
	}
}

func TestGetPresetWeights_Unknown(t *testing.T) {
	_, err := GetPresetWeights("nonexistent")
	assert.Error(t, err)
}

func TestGetPresetWeights_ReturnsCopy(t *testing.T) {
	first, err := GetPresetWeights("technical")
	require.NoError(t, err)

	first[types.CategoryTechnicalAccuracy] = 0.99

	second, err := GetPresetWeights("technical")
	require.NoError(t, err)
	assert.Equal(t, 0.25, second[types.CategoryTechnicalAccuracy])
}

func TestValidateWeights_Valid(t *testing.T) {
	assert.NoError(t, ValidateWeights(DefaultWeights()))
}

func TestValidateWeights_Empty(t *testing.T) {
	assert.Error(t, ValidateWeights(types.ScoringWeights{}))
	assert.Error(t, ValidateWeights(nil))
}

func TestValidateWeights_BadSum(t *testing.T) {
	w := DefaultWeights()
	w[types.CategoryExamples] = 0.5
	assert.Error(t, ValidateWeights(w))
}

func TestValidateWeights_UnknownCategory(t *testing.T) {
	w := types.ScoringWeights{types.Category("vibes"): 1.0}
	assert.Error(t, ValidateWeights(w))
}

func TestValidateWeights_Negative(t *testing.T) {
	w := types.ScoringWeights{
		types.CategoryTechnicalAccuracy: 1.5,
		types.CategoryExamples:          -0.5,
	}
	assert.Error(t, ValidateWeights(w))
}
