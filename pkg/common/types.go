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

package common

// Tier labels how optimized a function currently appears. It is derived solely
// from the function's call count and never regresses without an explicit reset.
type Tier string

const (
	TierCold      Tier = "cold"
	TierWarming   Tier = "warming"
	TierHot       Tier = "hot"
	TierOptimized Tier = "optimized"
)

// Rank gives the position of the tier in the cold < warming < hot < optimized
// ordering, used to check monotonicity.
func (t Tier) Rank() int {
	switch t {
	case TierWarming:
		return 1
	case TierHot:
		return 2
	case TierOptimized:
		return 3
	default:
		return 0
	}
}

// ExecutionStats holds the running statistics of one monitored function. It is
// a value type: every sample produces a fresh copy and the previous value is
// never mutated in place, so observers always see a consistent snapshot.
//
// All durations are in milliseconds. FirstTime and BestTime are meaningless
// while CallCount == 0.
type ExecutionStats struct {
	CallCount int

	TotalTime float64
	AvgTime   float64
	FirstTime float64
	BestTime  float64

	// OptimizationLevel is a display-only scalar in [0, MaxOptimizationLevel]
	// derived from the relative improvement of BestTime over FirstTime.
	OptimizationLevel float64

	Tier Tier
}

// NewExecutionStats gives the zero state of a freshly registered or reset record.
func NewExecutionStats() ExecutionStats {
	return ExecutionStats{Tier: TierCold}
}

// Workload is one CPU-bound callback timed by the measured sampler.
type Workload func()

// FunctionRecord is one monitored function. Identity fields (Name, SourceText,
// Workload, IterationsPerSample) are fixed at registration; only Stats and
// History change over the record's lifetime.
type FunctionRecord struct {
	Name       string
	SourceText string

	// Workload is only invoked by the measured sampler; the simulated sampler
	// synthesizes durations without running it.
	Workload Workload

	// IterationsPerSample amortizes clock resolution for fast workloads: the
	// measured sampler times this many back-to-back invocations as one batch.
	IterationsPerSample int

	Stats   ExecutionStats
	History *History
}
