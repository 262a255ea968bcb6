package sampler

import (
	"github.com/jitlab/warmsim/pkg/common"
)

// ClassifyTier maps a call count to its warmup tier. The mapping depends on
// the count alone, so a record's tier is monotonic non-decreasing until reset.
func ClassifyTier(callCount int) common.Tier {
	switch {
	case callCount >= common.OptimizedThreshold:
		return common.TierOptimized
	case callCount >= common.HotThreshold:
		return common.TierHot
	case callCount >= common.OptimizationThreshold:
		return common.TierWarming
	default:
		return common.TierCold
	}
}

// TierChanged reports whether applying a sample moved the record into a new
// tier. The driver uses it to emit the promotion notification exactly once
// per transition.
func TierChanged(previous, next common.ExecutionStats) bool {
	return previous.Tier != next.Tier
}
