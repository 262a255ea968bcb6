package metric

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// FunctionSummary aggregates the successful samples of one function at the
// end of a run. Durations are in milliseconds.
type FunctionSummary struct {
	FunctionName string  `csv:"functionName"`
	SampleCount  int     `csv:"samples"`
	FailedCount  int     `csv:"failed"`
	Mean         float64 `csv:"meanMilli"`
	StdDev       float64 `csv:"stddevMilli"`
	P50          float64 `csv:"p50Milli"`
	P99          float64 `csv:"p99Milli"`
	Best         float64 `csv:"bestMilli"`
	Tier         string  `csv:"tier"`
}

// Summarize groups sample records by function, preserving first-seen order,
// and derives per-function distribution statistics. Failed samples count
// toward FailedCount only.
func Summarize(records []SampleRecord) []FunctionSummary {
	order := []string{}
	durations := map[string][]float64{}
	failed := map[string]int{}
	lastTier := map[string]string{}

	for _, record := range records {
		if _, seen := durations[record.FunctionName]; !seen {
			order = append(order, record.FunctionName)
			durations[record.FunctionName] = []float64{}
		}

		if record.Failed {
			failed[record.FunctionName]++
			continue
		}

		durations[record.FunctionName] = append(durations[record.FunctionName], record.Duration)
		lastTier[record.FunctionName] = record.Tier
	}

	summaries := make([]FunctionSummary, 0, len(order))
	for _, name := range order {
		samples := durations[name]

		summary := FunctionSummary{
			FunctionName: name,
			SampleCount:  len(samples),
			FailedCount:  failed[name],
			Tier:         lastTier[name],
		}

		if len(samples) > 0 {
			sorted := make([]float64, len(samples))
			copy(sorted, samples)
			sort.Float64s(sorted)

			summary.Mean = stat.Mean(sorted, nil)
			if len(sorted) > 1 {
				summary.StdDev = stat.StdDev(sorted, nil)
			}
			summary.P50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
			summary.P99 = stat.Quantile(0.99, stat.Empirical, sorted, nil)
			summary.Best = sorted[0]
		}

		summaries = append(summaries, summary)
	}

	return summaries
}
