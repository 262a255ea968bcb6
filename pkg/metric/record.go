package metric

// SampleRecord is one measured or synthesized execution event, exported as a
// CSV row at the end of a run. Durations are in milliseconds.
//
// Round is -1 for manually triggered samples, otherwise the zero-based round
// index within the timed run identified by RunID.
type SampleRecord struct {
	RunID        string  `csv:"runID"`
	Round        int     `csv:"round"`
	Timestamp    int64   `csv:"timestamp"`
	FunctionName string  `csv:"functionName"`
	CallCount    int     `csv:"callCount"`
	Duration     float64 `csv:"durationMilli"`
	AvgTime      float64 `csv:"avgMilli"`
	BestTime     float64 `csv:"bestMilli"`
	OptLevel     float64 `csv:"optimizationLevel"`
	Tier         string  `csv:"tier"`
	Failed       bool    `csv:"failed"`
}
