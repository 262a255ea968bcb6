package workload

import (
	"math"
	"strings"
)

// Sinks circumvent compiler optimisations that would otherwise elide the
// busy work entirely.
var (
	floatSink  float64
	intSink    int
	stringSink string
)

// Fibonacci returns a callback computing the n-th Fibonacci number iteratively.
func Fibonacci(n int) func() {
	return func() {
		a, b := 0, 1
		for i := 0; i < n; i++ {
			a, b = b, a+b
		}
		intSink = a
	}
}

// SumOfSquares returns a callback summing the square roots of the first n integers.
func SumOfSquares(n int) func() {
	return func() {
		total := 0.0
		for i := 1; i <= n; i++ {
			total += math.Sqrt(float64(i))
		}
		floatSink = total
	}
}

// MatrixMultiply returns a callback multiplying two dense n-by-n matrices.
func MatrixMultiply(n int) func() {
	a := make([]float64, n*n)
	b := make([]float64, n*n)
	for i := range a {
		a[i] = float64(i % 7)
		b[i] = float64(i % 11)
	}

	return func() {
		c := make([]float64, n*n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				sum := 0.0
				for k := 0; k < n; k++ {
					sum += a[i*n+k] * b[k*n+j]
				}
				c[i*n+j] = sum
			}
		}
		floatSink = c[0]
	}
}

// BuildString returns a callback concatenating n short tokens through a builder.
func BuildString(n int) func() {
	return func() {
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteString("x")
		}
		stringSink = sb.String()
	}
}
