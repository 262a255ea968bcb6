/*
 * MIT License
 *
 * Copyright (c) 2026 The warmsim authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package sampler

import (
	"github.com/jitlab/warmsim/pkg/common"
)

// ApplySample folds one duration (milliseconds) into the given statistics and
// returns the next value. The input is never mutated; callers swap the whole
// struct so concurrent readers always observe a consistent snapshot.
//
// Field update order matters: FirstTime and BestTime must be settled before
// the optimization level is derived from them, and the tier is classified from
// the already-incremented call count.
func ApplySample(stats common.ExecutionStats, duration float64) common.ExecutionStats {
	next := stats

	if next.CallCount == 0 {
		next.FirstTime = duration
		next.BestTime = duration
	} else if duration < next.BestTime {
		next.BestTime = duration
	}

	next.CallCount++
	next.TotalTime += duration
	next.AvgTime = next.TotalTime / float64(next.CallCount)

	if next.FirstTime > 0 {
		improvement := 1.0 - next.BestTime/next.FirstTime
		next.OptimizationLevel = common.ClampFloat(0, common.MaxOptimizationLevel,
			improvement*common.OptimizationLevelScale)
	}

	next.Tier = ClassifyTier(next.CallCount)

	return next
}
