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

package registry

import (
	"fmt"

	"github.com/jitlab/warmsim/pkg/common"
	"github.com/jitlab/warmsim/pkg/workload"
)

// Registry owns the fixed set of monitored function records. Records are
// created once at construction with fixed identity and workload; they are
// never added or removed at runtime. Reset reinitializes statistics and
// history but keeps every record in place.
type Registry struct {
	records []*common.FunctionRecord
}

// New builds the registry with the built-in workload set, each record getting
// a trailing duration window of the given bound.
func New(historyLength int) *Registry {
	blueprints := []struct {
		name       string
		sourceText string
		workload   common.Workload
		iterations int
	}{
		{
			name: "fibonacci",
			sourceText: `func fibonacci(n int) int {
	a, b := 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a
}`,
			workload:   workload.Fibonacci(90),
			iterations: 10_000,
		},
		{
			name: "sumOfSquares",
			sourceText: `func sumOfSquares(n int) float64 {
	total := 0.0
	for i := 1; i <= n; i++ {
		total += math.Sqrt(float64(i))
	}
	return total
}`,
			workload:   workload.SumOfSquares(10_000),
			iterations: 500,
		},
		{
			name: "matrixMultiply",
			sourceText: `func matrixMultiply(a, b [][]float64) [][]float64 {
	// classic O(n^3) triple loop
}`,
			workload:   workload.MatrixMultiply(32),
			iterations: 100,
		},
		{
			name: "buildString",
			sourceText: `func buildString(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString("x")
	}
	return sb.String()
}`,
			workload:   workload.BuildString(4_096),
			iterations: 500,
		},
	}

	records := make([]*common.FunctionRecord, len(blueprints))
	for i, bp := range blueprints {
		records[i] = &common.FunctionRecord{
			Name:                bp.name,
			SourceText:          bp.sourceText,
			Workload:            bp.workload,
			IterationsPerSample: bp.iterations,
			Stats:               common.NewExecutionStats(),
			History:             common.NewHistory(historyLength),
		}
	}

	return &Registry{records: records}
}

// Records returns the records in registration order.
func (r *Registry) Records() []*common.FunctionRecord {
	return r.records
}

func (r *Registry) Count() int {
	return len(r.records)
}

// Get returns the record at the given registration index.
func (r *Registry) Get(index int) (*common.FunctionRecord, error) {
	if index < 0 || index >= len(r.records) {
		return nil, fmt.Errorf("function index %d out of range [0, %d)", index, len(r.records))
	}

	return r.records[index], nil
}

// Reset reinitializes every record's statistics and history. The records
// themselves, their workloads and source snippets stay untouched.
func (r *Registry) Reset() {
	for i := range r.records {
		r.resetRecord(i)
	}
}

// ResetRecord reinitializes a single record, leaving all others untouched.
func (r *Registry) ResetRecord(index int) error {
	if index < 0 || index >= len(r.records) {
		return fmt.Errorf("function index %d out of range [0, %d)", index, len(r.records))
	}

	r.resetRecord(index)

	return nil
}

func (r *Registry) resetRecord(index int) {
	record := r.records[index]

	record.Stats = common.NewExecutionStats()
	record.History.Reset()
}
