package plotter

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/jitlab/warmsim/pkg/metric"
)

// WriteTimeline renders the sampled durations of a run as one line per
// function, round index on the X axis, and saves the figure as a PNG. Failed
// samples are skipped.
func WriteTimeline(path string, records []metric.SampleRecord) error {
	p := plot.New()

	p.Title.Text = "Sample durations over warmup"
	p.X.Label.Text = "Round"
	p.Y.Label.Text = "Duration (ms)"
	p.Y.Min = 0

	order := []string{}
	series := map[string]plotter.XYs{}

	for _, record := range records {
		if record.Failed {
			continue
		}

		if _, seen := series[record.FunctionName]; !seen {
			order = append(order, record.FunctionName)
		}

		series[record.FunctionName] = append(series[record.FunctionName], plotter.XY{
			X: float64(record.Round),
			Y: record.Duration,
		})
	}

	lineArgs := make([]interface{}, 0, 2*len(order))
	for _, name := range order {
		lineArgs = append(lineArgs, name, series[name])
	}

	if err := plotutil.AddLinePoints(p, lineArgs...); err != nil {
		return err
	}

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
