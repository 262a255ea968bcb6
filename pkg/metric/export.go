package metric

import (
	"os"
	"sort"
	"sync"

	"github.com/gocarina/gocsv"
)

// Exporter collects sample records during a run and writes them out as CSV
// once the run finishes.
type Exporter struct {
	mutex         sync.Mutex
	sampleRecords []SampleRecord
}

func NewExporter() *Exporter {
	return &Exporter{
		sampleRecords: []SampleRecord{},
	}
}

func (ep *Exporter) ReportSample(record SampleRecord) {
	ep.mutex.Lock()
	defer ep.mutex.Unlock()

	ep.sampleRecords = append(ep.sampleRecords, record)
}

func (ep *Exporter) SampleRecordLen() int {
	ep.mutex.Lock()
	defer ep.mutex.Unlock()

	return len(ep.sampleRecords)
}

// GetSampleRecords returns a copy of the collected records in timestamp order.
func (ep *Exporter) GetSampleRecords() []SampleRecord {
	ep.mutex.Lock()
	defer ep.mutex.Unlock()

	result := make([]SampleRecord, len(ep.sampleRecords))
	copy(result, ep.sampleRecords)

	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp < result[j].Timestamp
	})

	return result
}

// WriteToFile marshals the collected records into the given CSV file,
// creating or truncating it.
func (ep *Exporter) WriteToFile(path string) error {
	records := ep.GetSampleRecords()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.MarshalFile(&records, f)
}
