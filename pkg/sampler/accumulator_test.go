package sampler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jitlab/warmsim/pkg/common"
)

func applyAll(durations []float64) common.ExecutionStats {
	stats := common.NewExecutionStats()
	for _, d := range durations {
		stats = ApplySample(stats, d)
	}

	return stats
}

func TestApplySampleCountsAndAverages(t *testing.T) {
	tests := []struct {
		testName    string
		durations   []float64
		expectCount int
		expectTotal float64
		expectFirst float64
		expectBest  float64
	}{
		{
			testName:    "single_sample",
			durations:   []float64{120},
			expectCount: 1,
			expectTotal: 120,
			expectFirst: 120,
			expectBest:  120,
		},
		{
			testName:    "improving_sequence",
			durations:   []float64{100, 80, 60, 90},
			expectCount: 4,
			expectTotal: 330,
			expectFirst: 100,
			expectBest:  60,
		},
		{
			testName:    "regressing_sequence",
			durations:   []float64{50, 70, 90},
			expectCount: 3,
			expectTotal: 210,
			expectFirst: 50,
			expectBest:  50,
		},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			stats := applyAll(test.durations)

			assert.Equal(t, test.expectCount, stats.CallCount)
			assert.InDelta(t, test.expectTotal, stats.TotalTime, 1e-9)
			assert.InDelta(t, test.expectTotal/float64(test.expectCount), stats.AvgTime, 1e-9)
			assert.InDelta(t, test.expectFirst, stats.FirstTime, 1e-9)
			assert.InDelta(t, test.expectBest, stats.BestTime, 1e-9)
		})
	}
}

func TestApplySampleDoesNotMutateInput(t *testing.T) {
	stats := applyAll([]float64{100, 90})
	snapshot := stats

	_ = ApplySample(stats, 10)

	assert.Equal(t, snapshot, stats)
}

func TestBestNeverExceedsFirst(t *testing.T) {
	sequences := [][]float64{
		{100, 110, 120},
		{100, 50, 200, 25},
		{5, 5, 5},
	}

	for _, durations := range sequences {
		stats := applyAll(durations)
		assert.LessOrEqual(t, stats.BestTime, stats.FirstTime)
	}
}

func TestOptimizationLevelFromRelativeImprovement(t *testing.T) {
	tests := []struct {
		testName      string
		durations     []float64
		expectedLevel float64
	}{
		{
			testName:      "no_improvement",
			durations:     []float64{100, 100, 100},
			expectedLevel: 0,
		},
		{
			testName:      "ten_percent_improvement",
			durations:     []float64{100, 90},
			expectedLevel: 2,
		},
		{
			testName:      "quarter_improvement_saturates",
			durations:     []float64{100, 75},
			expectedLevel: 5,
		},
		{
			testName:      "level_is_capped",
			durations:     []float64{100, 10},
			expectedLevel: 5,
		},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			stats := applyAll(test.durations)
			assert.InDelta(t, test.expectedLevel, stats.OptimizationLevel, 1e-9)
		})
	}
}

func TestWarmupScenario(t *testing.T) {
	stats := common.NewExecutionStats()

	for sampleIndex := 1; sampleIndex <= 25; sampleIndex++ {
		stats = ApplySample(stats, 100)

		require.Equal(t, sampleIndex, stats.CallCount)

		switch {
		case sampleIndex < 5:
			require.Equal(t, common.TierCold, stats.Tier, "sample %d", sampleIndex)
		case sampleIndex < 10:
			require.Equal(t, common.TierWarming, stats.Tier, "sample %d", sampleIndex)
		case sampleIndex < 20:
			require.Equal(t, common.TierHot, stats.Tier, "sample %d", sampleIndex)
		default:
			require.Equal(t, common.TierOptimized, stats.Tier, "sample %d", sampleIndex)
		}
	}
}

func TestZeroStateHasNoDerivedValues(t *testing.T) {
	stats := common.NewExecutionStats()

	assert.Equal(t, 0, stats.CallCount)
	assert.Zero(t, stats.AvgTime)
	assert.Zero(t, stats.OptimizationLevel)
	assert.Equal(t, common.TierCold, stats.Tier)
	assert.False(t, math.IsNaN(stats.AvgTime))
}
