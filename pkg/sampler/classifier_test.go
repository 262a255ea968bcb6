package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jitlab/warmsim/pkg/common"
)

func TestClassifyTierThresholds(t *testing.T) {
	tests := []struct {
		callCount    int
		expectedTier common.Tier
	}{
		{callCount: 0, expectedTier: common.TierCold},
		{callCount: 1, expectedTier: common.TierCold},
		{callCount: 4, expectedTier: common.TierCold},
		{callCount: 5, expectedTier: common.TierWarming},
		{callCount: 9, expectedTier: common.TierWarming},
		{callCount: 10, expectedTier: common.TierHot},
		{callCount: 19, expectedTier: common.TierHot},
		{callCount: 20, expectedTier: common.TierOptimized},
		{callCount: 25, expectedTier: common.TierOptimized},
		{callCount: 1000, expectedTier: common.TierOptimized},
	}

	for _, test := range tests {
		assert.Equal(t, test.expectedTier, ClassifyTier(test.callCount),
			"unexpected tier for call count %d", test.callCount)
	}
}

func TestTierMonotonicity(t *testing.T) {
	previousRank := common.TierCold.Rank()

	for callCount := 0; callCount <= 50; callCount++ {
		rank := ClassifyTier(callCount).Rank()
		if rank < previousRank {
			t.Fatalf("tier regressed at call count %d", callCount)
		}
		previousRank = rank
	}
}

func TestTierChanged(t *testing.T) {
	cold := common.ExecutionStats{Tier: common.TierCold}
	warming := common.ExecutionStats{Tier: common.TierWarming}

	assert.True(t, TierChanged(cold, warming))
	assert.False(t, TierChanged(warming, warming))
}
