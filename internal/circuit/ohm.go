package circuit

import (
	"fmt"
	"math"
)

// KnownPair selects which two electrical quantities are given to Solve.
type KnownPair int

const (
	// PairVR: voltage and resistance known.
	PairVR KnownPair = iota + 1

	// PairVI: voltage and current known.
	PairVI

	// PairVP: voltage and power known.
	PairVP

	// PairIR: current and resistance known.
	PairIR

	// PairIP: current and power known.
	PairIP

	// PairRP: resistance and power known.
	PairRP
)

// String returns the quantities of the pair, e.g. "V & R".
func (p KnownPair) String() string {
	switch p {
	case PairVR:
		return "V & R"
	case PairVI:
		return "V & I"
	case PairVP:
		return "V & P"
	case PairIR:
		return "I & R"
	case PairIP:
		return "I & P"
	case PairRP:
		return "R & P"
	default:
		return fmt.Sprintf("KnownPair(%d)", int(p))
	}
}

// Quantities holds all four related electrical quantities of one
// operating point: voltage (V), current (A), resistance (Ω), power (W).
type Quantities struct {
	V float64
	I float64
	R float64
	P float64
}

// Solve derives the two missing quantities from the pair of known ones
// using V = I·R and P = V·I.
//
// Each pair has one fixed derivation order; there is no iteration or
// generic solving. first and second are the known values in the order
// the pair names them (e.g. PairIP takes I then P). Both must be > 0.
func Solve(pair KnownPair, first, second float64) (Quantities, error) {
	if first <= 0 || second <= 0 {
		return Quantities{}, fmt.Errorf("circuit: quantities must be > 0, got %g and %g", first, second)
	}

	var q Quantities
	switch pair {
	case PairVR:
		q.V, q.R = first, second
		q.I = q.V / q.R
		q.P = q.V * q.I
	case PairVI:
		q.V, q.I = first, second
		q.R = q.V / q.I
		q.P = q.V * q.I
	case PairVP:
		q.V, q.P = first, second
		q.I = q.P / q.V
		q.R = q.V / q.I
	case PairIR:
		q.I, q.R = first, second
		q.V = q.I * q.R
		q.P = q.V * q.I
	case PairIP:
		q.I, q.P = first, second
		q.V = q.P / q.I
		q.R = q.V / q.I
	case PairRP:
		q.R, q.P = first, second
		q.V = math.Sqrt(q.P * q.R)
		q.I = q.V / q.R
	default:
		return Quantities{}, fmt.Errorf("circuit: unknown quantity pair %d", int(pair))
	}

	return q, nil
}
