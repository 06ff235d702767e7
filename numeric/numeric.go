// Package numeric implements the arithmetic behind the mathy operations.
//
// Integer results use arbitrary precision, so no input overflows silently.
package numeric

import (
	"errors"
	"math"
	"math/big"
)

var ErrEmpty = errors.New("numeric: empty input")

// Factorial returns n! for n >= 0. Factorial(0) is 1.
func Factorial(n int64) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}

	return new(big.Int).MulRange(1, n)
}

// Fibonacci starts from (a, b) = (0, 1), applies (a, b) = (b, a+b) n times
// and returns b. Fibonacci(0) and Fibonacci(1) are both 1.
func Fibonacci(n int64) *big.Int {
	a, b := big.NewInt(0), big.NewInt(1)

	for i := int64(0); i < n; i++ {
		// a becomes a+b, then swap so that b holds the newest term
		a.Add(a, b)
		a, b = b, a
	}

	return b
}

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}

	count := float64(len(values))

	var sum float64
	for _, v := range values {
		sum += v
	}

	if !math.IsInf(sum, 0) {
		return sum / count, nil
	}

	// the plain sum overflowed, fall back to summing the quotients
	var mean float64
	for _, v := range values {
		mean += v / count
	}

	return mean, nil
}
