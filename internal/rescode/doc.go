// Package rescode implements the 4-band resistor color code: the static
// band tables and the conversions between band selections and numeric
// resistance.
//
// # Tables
//
// Three fixed tables cover the four bands: DigitNames (bands 1 and 2),
// Multipliers (band 3, including the fractional Gold and Silver
// entries), and Tolerances (band 4). They are package-level data,
// initialized once and never mutated.
//
// # Encoding
//
// Encode turns a validated Selection into ohms:
//
//	r, err := rescode.Encode(rescode.Selection{
//	    Digit1: 3, Digit2: 9, Multiplier: 2, Tolerance: 6,
//	})
//	// r == 3900, rescode.FormatResistance(r) == "3.9 kΩ"
//
// # Decoding
//
// Decode approximates a resistance with two significant digits:
//
//	res := rescode.Decode(4700)
//	// res.Digit1 == 4, res.Digit2 == 7, res.Multiplier == 2
//
// Decode clamps the multiplier index to 0-9, so resistances below 1 Ω
// or at 100 GΩ and above come back with OutOfRange set, and it never
// chooses a tolerance band: tolerance is a property of the physical
// part, not of its nominal value.
package rescode
