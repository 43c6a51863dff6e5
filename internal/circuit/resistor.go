package circuit

import (
	"errors"
	"fmt"
)

// ErrDegenerate is returned when a combination has no meaningful
// numeric result, e.g. a parallel network whose reciprocal sum
// vanished. With strictly positive inputs this cannot happen, but the
// check sits in front of the division regardless.
var ErrDegenerate = errors.New("circuit: degenerate computation")

// Series returns the equivalent resistance of resistors in series,
// the plain sum of the values.
func Series(values []float64) (float64, error) {
	if err := checkPositive(values); err != nil {
		return 0, err
	}

	var total float64
	for _, r := range values {
		total += r
	}
	return total, nil
}

// Parallel returns the equivalent resistance of resistors in parallel,
// 1 / Σ(1/Rᵢ).
func Parallel(values []float64) (float64, error) {
	if err := checkPositive(values); err != nil {
		return 0, err
	}

	var invSum float64
	for _, r := range values {
		invSum += 1 / r
	}
	if invSum == 0 {
		return 0, ErrDegenerate
	}
	return 1 / invSum, nil
}

// checkPositive guards the formulas against values the input boundary
// should already have rejected.
func checkPositive(values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("circuit: no resistor values given")
	}
	for i, r := range values {
		if r <= 0 {
			return fmt.Errorf("circuit: resistor %d must be > 0, got %g", i+1, r)
		}
	}
	return nil
}
