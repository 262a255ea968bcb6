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
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jitlab/warmsim/pkg/common"
)

// TimerSource produces the duration, in milliseconds, of one sample of a
// function record. Implementations must never return a non-positive duration
// together with a nil error.
type TimerSource interface {
	Sample(record *common.FunctionRecord) (float64, error)
}

// SimulatedTimer synthesizes durations from a seeded random source. Durations
// trend downward as the record's optimization level rises, with a hard floor
// so a sample can never be zero or negative.
type SimulatedTimer struct {
	timerRand *rand.Rand
}

func NewSimulatedTimer(seed int64) *SimulatedTimer {
	return &SimulatedTimer{
		timerRand: rand.New(rand.NewSource(seed)),
	}
}

func (t *SimulatedTimer) Sample(record *common.FunctionRecord) (float64, error) {
	optimizationFactor := 1.0 - record.Stats.OptimizationLevel*common.PerLevelSpeedup

	duration := (t.timerRand.Float64()*common.SimulatedSpreadMilli + common.SimulatedBaseMilli) * optimizationFactor
	if duration < common.MinSimulatedDurationMilli {
		duration = common.MinSimulatedDurationMilli
	}

	return duration, nil
}

// MeasuredTimer times the record's real workload. One sample is a batch of
// IterationsPerSample back-to-back invocations, reported as the wall-clock
// elapsed time of the whole batch. A panicking workload is converted into an
// error so a single bad sample does not abort the whole run.
type MeasuredTimer struct{}

func NewMeasuredTimer() *MeasuredTimer {
	return &MeasuredTimer{}
}

func (t *MeasuredTimer) Sample(record *common.FunctionRecord) (duration float64, err error) {
	if record.Workload == nil {
		return 0, errors.New("function " + record.Name + " has no workload to measure")
	}

	defer func() {
		if r := recover(); r != nil {
			duration = 0
			err = fmt.Errorf("workload %s panicked: %v", record.Name, r)
		}
	}()

	iterations := common.MaxOf(1, record.IterationsPerSample)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		record.Workload()
	}

	return float64(time.Since(start).Nanoseconds()) / 1e6, nil
}
