package menagerie

import (
	"errors"
	"fmt"
	"math"
)

// ErrNegativeBound is returned by the Fibonacci generators when given
// a negative bound or term count.
var ErrNegativeBound = errors.New("menagerie: negative bound")

// GenerateFibonacci returns every Fibonacci number strictly less than
// bound, in generation order starting 0, 1, 1, 2, 3, 5, ….
//
// GenerateFibonacci(10) is [0 1 1 2 3 5 8]. A bound of 0 yields an
// empty slice and a bound of 1 yields [0]; "strictly less than" is
// applied literally at the boundary.
func GenerateFibonacci(bound int64) ([]int64, error) {
	if bound < 0 {
		return nil, fmt.Errorf("generate fibonacci up to %d: %w", bound, ErrNegativeBound)
	}
	var terms []int64
	a, b := int64(0), int64(1)
	for a < bound {
		terms = append(terms, a)
		if a > math.MaxInt64-b {
			// Next term would overflow int64; every remaining term
			// exceeds any representable bound anyway.
			break
		}
		a, b = b, a+b
	}
	return terms, nil
}

// maxFibonacciTerms is the number of Fibonacci terms representable in
// int64: fib(0) through fib(92).
const maxFibonacciTerms = 93

// FibonacciTerms returns the first n terms of the Fibonacci sequence.
// The first five terms are [0 1 1 2 3]. n of 0 yields an empty slice;
// n beyond the int64-representable prefix is rejected.
func FibonacciTerms(n int) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("fibonacci terms %d: %w", n, ErrNegativeBound)
	}
	if n > maxFibonacciTerms {
		return nil, fmt.Errorf("fibonacci terms %d: exceeds int64 range (max %d)", n, maxFibonacciTerms)
	}
	terms := make([]int64, 0, n)
	a, b := int64(0), int64(1)
	for i := 0; i < n; i++ {
		terms = append(terms, a)
		a, b = b, a+b
	}
	return terms, nil
}

// DoubleAge returns twice the given age. Identical results for
// constant and runtime arguments; it exists for parity with the
// ages carried by the animal model.
func DoubleAge(age int) int {
	return age * 2
}
