package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryStaysWithinBound(t *testing.T) {
	tests := []struct {
		testName string
		bound    int
		appends  int
	}{
		{testName: "under_bound", bound: 20, appends: 7},
		{testName: "at_bound", bound: 20, appends: 20},
		{testName: "over_bound", bound: 20, appends: 100},
		{testName: "wide_variant", bound: 30, appends: 45},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			history := NewHistory(test.bound)

			for i := 0; i < test.appends; i++ {
				history.Append(float64(i))
			}

			assert.LessOrEqual(t, history.Len(), test.bound)
			assert.Equal(t, MinOf(test.appends, test.bound), history.Len())
		})
	}
}

func TestHistoryEvictsOldestFirst(t *testing.T) {
	history := NewHistory(3)

	for i := 1; i <= 5; i++ {
		history.Append(float64(i))
	}

	assert.Equal(t, []float64{3, 4, 5}, history.Snapshot())
}

func TestHistorySnapshotIsACopy(t *testing.T) {
	history := NewHistory(3)
	history.Append(1)

	snapshot := history.Snapshot()
	snapshot[0] = 99

	assert.Equal(t, []float64{1}, history.Snapshot())
}

func TestHistoryReset(t *testing.T) {
	history := NewHistory(3)
	history.Append(1)
	history.Append(2)

	history.Reset()

	assert.Equal(t, 0, history.Len())
	assert.Equal(t, 3, history.Bound())

	history.Append(7)
	assert.Equal(t, []float64{7}, history.Snapshot())
}

func TestHistoryDefaultBound(t *testing.T) {
	history := NewHistory(0)
	assert.Equal(t, DefaultHistoryLength, history.Bound())
}
