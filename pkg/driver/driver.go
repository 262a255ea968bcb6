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

package driver

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jitlab/warmsim/pkg/common"
	"github.com/jitlab/warmsim/pkg/eventlog"
	"github.com/jitlab/warmsim/pkg/metric"
	"github.com/jitlab/warmsim/pkg/registry"
	"github.com/jitlab/warmsim/pkg/sampler"
)

// RunState is the driver's two-state run machine. A timed run owns the
// Running state from its first round until completion or cancellation.
type RunState int

const (
	Idle RunState = iota
	Running
)

// ErrRunInProgress is returned by entry points that must be refused while a
// timed run owns the driver.
var ErrRunInProgress = errors.New("a timed run is already in progress")

type DriverConfiguration struct {
	Rounds     int
	RoundDelay time.Duration
	Seed       int64

	Timer    sampler.TimerSource
	Registry *registry.Registry
	Exporter *metric.Exporter
	EventLog *eventlog.Log
}

// Driver orchestrates sampling on a single cooperative timeline: either one
// manual sample at a time, or a timed run of configured rounds with a fixed
// delay between them. All record mutation goes through whole-value swaps of
// the record's statistics, so readers never observe a half-applied sample.
type Driver struct {
	Configuration *DriverConfiguration

	pickRand *rand.Rand

	mutex sync.Mutex
	state RunState
}

func NewDriver(driverConfig *DriverConfiguration) *Driver {
	if driverConfig.Rounds <= 0 {
		driverConfig.Rounds = common.DefaultRounds
	}
	if driverConfig.RoundDelay <= 0 {
		driverConfig.RoundDelay = common.DefaultRoundDelayMilli * time.Millisecond
	}

	return &Driver{
		Configuration: driverConfig,
		pickRand:      rand.New(rand.NewSource(driverConfig.Seed)),
	}
}

func (d *Driver) State() RunState {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.state
}

// SampleOne produces one immediate sample for the function at the given
// registration index. It is the manual trigger of the host surface and is
// refused while a timed run is in progress.
func (d *Driver) SampleOne(index int) (metric.SampleRecord, error) {
	d.mutex.Lock()
	if d.state == Running {
		d.mutex.Unlock()
		return metric.SampleRecord{}, ErrRunInProgress
	}
	d.mutex.Unlock()

	return d.sample("", -1, index)
}

// RunTimed executes the configured number of rounds, each sampling one
// function picked uniformly at random, with a fixed delay between rounds.
// Starting while a run is already in progress returns ErrRunInProgress.
// Cancellation is honored between rounds, never mid-sample.
func (d *Driver) RunTimed(ctx context.Context) error {
	d.mutex.Lock()
	if d.state == Running {
		d.mutex.Unlock()
		return ErrRunInProgress
	}
	d.state = Running
	d.mutex.Unlock()

	defer func() {
		d.mutex.Lock()
		d.state = Idle
		d.mutex.Unlock()
	}()

	functionCount := d.Configuration.Registry.Count()
	if functionCount == 0 {
		return errors.New("no functions registered")
	}

	rounds := d.Configuration.Rounds
	runID := uuid.New().String()

	log.Infof("Starting timed run %s: %d rounds over %d functions", runID, rounds, functionCount)
	d.Configuration.EventLog.Append("timed run started (%d rounds)", rounds)

	for round := 0; round < rounds; round++ {
		select {
		case <-ctx.Done():
			log.Warnf("Timed run %s aborted after %d rounds", runID, round)
			d.Configuration.EventLog.Append("timed run aborted after %d rounds", round)

			return ctx.Err()
		default:
		}

		index := d.pickRand.Intn(functionCount)

		record, err := d.sample(runID, round, index)
		if err != nil {
			return err
		}

		if !record.Failed {
			// the failure line was already appended by sample
			d.Configuration.EventLog.Append("round %d: executed %s in %.2f ms [%s]",
				round+1, record.FunctionName, record.Duration, record.Tier)
		}
		log.Debugf("Round %d/%d: %s took %.2f ms (tier %s, level %.1f)",
			round+1, rounds, record.FunctionName, record.Duration, record.Tier, record.OptLevel)

		if round < rounds-1 {
			select {
			case <-ctx.Done():
				log.Warnf("Timed run %s aborted after %d rounds", runID, round+1)
				d.Configuration.EventLog.Append("timed run aborted after %d rounds", round+1)

				return ctx.Err()
			case <-time.After(d.Configuration.RoundDelay):
			}
		}
	}

	log.Infof("Timed run %s complete", runID)
	d.Configuration.EventLog.Append("timed run complete (%d rounds)", rounds)

	return nil
}

// Reset restarts every record's warmup machine. Refused while a timed run is
// in progress.
func (d *Driver) Reset() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.state == Running {
		return ErrRunInProgress
	}

	d.Configuration.Registry.Reset()
	d.Configuration.EventLog.Append("all functions reset to cold")
	log.Info("All function records reset")

	return nil
}

// ResetFunction restarts the warmup machine of a single record, leaving all
// others untouched.
func (d *Driver) ResetFunction(index int) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.state == Running {
		return ErrRunInProgress
	}

	record, err := d.Configuration.Registry.Get(index)
	if err != nil {
		return err
	}

	if err := d.Configuration.Registry.ResetRecord(index); err != nil {
		return err
	}

	d.Configuration.EventLog.Append("function %s reset to cold", record.Name)

	return nil
}

// sample runs one Timer Source -> Accumulator -> Classifier -> History pass
// for the record at the given index. A failing timer (e.g. a panicking
// workload) yields a failed record and skips the statistics update; the error
// return is reserved for driver-level problems such as a bad index.
func (d *Driver) sample(runID string, round, index int) (metric.SampleRecord, error) {
	record, err := d.Configuration.Registry.Get(index)
	if err != nil {
		return metric.SampleRecord{}, err
	}

	sampleRecord := metric.SampleRecord{
		RunID:        runID,
		Round:        round,
		Timestamp:    time.Now().UnixMicro(),
		FunctionName: record.Name,
	}

	duration, err := d.Configuration.Timer.Sample(record)
	if err != nil {
		sampleRecord.Failed = true
		sampleRecord.CallCount = record.Stats.CallCount
		sampleRecord.Tier = string(record.Stats.Tier)

		log.Warnf("Sample of %s failed: %v", record.Name, err)
		d.Configuration.EventLog.Append("sample of %s failed: %v", record.Name, err)
		d.Configuration.Exporter.ReportSample(sampleRecord)

		return sampleRecord, nil
	}

	previous := record.Stats
	next := sampler.ApplySample(previous, duration)

	record.Stats = next
	record.History.Append(duration)

	if sampler.TierChanged(previous, next) && next.Tier.Rank() > previous.Tier.Rank() {
		log.Infof("Function %s promoted to %s after %d calls", record.Name, next.Tier, next.CallCount)
		d.Configuration.EventLog.Append("function %s promoted to %s after %d calls",
			record.Name, next.Tier, next.CallCount)
	}

	sampleRecord.CallCount = next.CallCount
	sampleRecord.Duration = duration
	sampleRecord.AvgTime = next.AvgTime
	sampleRecord.BestTime = next.BestTime
	sampleRecord.OptLevel = next.OptimizationLevel
	sampleRecord.Tier = string(next.Tier)

	d.Configuration.Exporter.ReportSample(sampleRecord)

	return sampleRecord, nil
}
