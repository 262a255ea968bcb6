package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkloadsRunToCompletion(t *testing.T) {
	tests := []struct {
		testName string
		workload func()
	}{
		{testName: "fibonacci", workload: Fibonacci(90)},
		{testName: "sum_of_squares", workload: SumOfSquares(10_000)},
		{testName: "matrix_multiply", workload: MatrixMultiply(16)},
		{testName: "build_string", workload: BuildString(1_024)},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			assert.NotPanics(t, test.workload)
		})
	}
}
