package rescode

import (
	"fmt"
	"math"
)

// Selection holds one 4-band color selection by table index.
//
// A Selection is built from validated user input and lives only for the
// duration of a single encode.
type Selection struct {
	// Digit1 is the first digit band value (0-9).
	Digit1 int

	// Digit2 is the second digit band value (0-9).
	Digit2 int

	// Multiplier is the multiplier band index (0-11).
	Multiplier int

	// Tolerance is the tolerance band index (0-7).
	Tolerance int
}

// Validate checks that every band index is within its table.
func (s Selection) Validate() error {
	if s.Digit1 < 0 || s.Digit1 > 9 {
		return fmt.Errorf("rescode: digit band 1 out of range: %d", s.Digit1)
	}
	if s.Digit2 < 0 || s.Digit2 > 9 {
		return fmt.Errorf("rescode: digit band 2 out of range: %d", s.Digit2)
	}
	if s.Multiplier < 0 || s.Multiplier >= len(Multipliers) {
		return fmt.Errorf("rescode: multiplier band out of range: %d", s.Multiplier)
	}
	if s.Tolerance < 0 || s.Tolerance >= len(Tolerances) {
		return fmt.Errorf("rescode: tolerance band out of range: %d", s.Tolerance)
	}
	return nil
}

// ToleranceText returns the tolerance percent text for the selection,
// e.g. "±5%".
func (s Selection) ToleranceText() string {
	return Tolerances[s.Tolerance].Text
}

// Encode converts a band selection into its resistance in ohms:
// (digit1*10 + digit2) * multiplier factor.
func Encode(s Selection) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	base := float64(s.Digit1*10 + s.Digit2)
	return base * Multipliers[s.Multiplier].Factor, nil
}

// DecodeResult holds the approximate 4-band reading of a resistance.
//
// Decode never selects a tolerance band; tolerance depends on the
// physical component, not on its nominal value, so that slot is left to
// the caller.
type DecodeResult struct {
	// Digit1 and Digit2 are the two significant-digit band values.
	Digit1 int
	Digit2 int

	// Multiplier is the multiplier band index, always within 0-9.
	Multiplier int

	// OutOfRange is set when normalization hit the multiplier index
	// bound before the value fit into two digits. The returned bands
	// are then the closest representable reading, not an accurate one.
	OutOfRange bool
}

// Decode approximates a resistance with two significant digits and a
// decimal multiplier.
//
// The value is scaled by powers of ten until it lies in [10, 100),
// moving the multiplier index within [0, 9]. Scaling stops early at the
// index bounds, so resistances below 1 Ω or at 100 GΩ and above come
// back clamped with OutOfRange set. Rounding half-up to an integer can
// carry to 100; that carries into the multiplier instead (e.g. 99.5
// reads as 10 with the next multiplier).
func Decode(r float64) DecodeResult {
	base := r
	m := 0

	for base >= 100 && m < 9 {
		base /= 10
		m++
	}
	for base < 10 && m > 0 {
		base *= 10
		m--
	}

	// Scaling stopped at an index bound with the value still outside
	// two digits: the reading below is clamped, not accurate.
	outOfRange := base >= 100 || base < 10

	rounded := int(base + 0.5)
	if rounded >= 100 {
		if m < 9 {
			rounded = 10
			m++
		} else {
			rounded = 99
			outOfRange = true
		}
	}

	return DecodeResult{
		Digit1:     rounded / 10,
		Digit2:     rounded % 10,
		Multiplier: m,
		OutOfRange: outOfRange,
	}
}

// FormatResistance renders a resistance with an auto-scaled unit:
// values from 1 kΩ display in kΩ, from 1 MΩ in MΩ, everything else in Ω.
func FormatResistance(r float64) string {
	switch {
	case math.Abs(r) >= 1e6:
		return fmt.Sprintf("%.4g MΩ", r/1e6)
	case math.Abs(r) >= 1e3:
		return fmt.Sprintf("%.4g kΩ", r/1e3)
	default:
		return fmt.Sprintf("%.4g Ω", r)
	}
}
