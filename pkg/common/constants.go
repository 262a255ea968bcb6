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

const (
	// OptimizationThreshold Number of calls after which a function leaves the cold tier.
	OptimizationThreshold = 5

	// HotThreshold Number of calls after which a function is considered hot.
	HotThreshold = 10

	// OptimizedThreshold Number of calls after which a function is fully optimized.
	// Terminal until an explicit reset.
	OptimizedThreshold = 20
)

const (
	// MaxOptimizationLevel Upper bound of the derived optimization level. The level is
	// display-only and never feeds back into tier classification.
	MaxOptimizationLevel = 5.0

	// OptimizationLevelScale Scaling applied to the relative best-vs-first improvement,
	// chosen so that a 25% time reduction saturates the level.
	OptimizationLevelScale = 20.0
)

const (
	// MinSimulatedDurationMilli Hard floor for synthetic durations. The synthetic timer
	// must never report a zero or negative sample.
	MinSimulatedDurationMilli = 5.0

	// SimulatedBaseMilli Base offset of the synthetic duration before optimization scaling.
	SimulatedBaseMilli = 50.0

	// SimulatedSpreadMilli Width of the uniform random component of the synthetic duration.
	SimulatedSpreadMilli = 100.0

	// PerLevelSpeedup Fractional speedup applied per optimization level to synthetic samples.
	PerLevelSpeedup = 0.15
)

const (
	// DefaultHistoryLength Bound of the per-function trailing duration window.
	DefaultHistoryLength = 20

	// DefaultRounds Number of rounds in one timed run.
	DefaultRounds = 30

	// DefaultRoundDelayMilli Pause between two rounds of a timed run.
	DefaultRoundDelayMilli = 150

	// EventLogCapacity Number of trailing event lines retained for display.
	EventLogCapacity = 50
)
