package rescode

import (
	"fmt"
	"strings"
)

// MultiplierBand describes one entry of the third (multiplier) band table.
type MultiplierBand struct {
	// Name is the color name, e.g. "Red".
	Name string

	// Factor is the numeric multiplier, e.g. 100 for Red.
	Factor float64

	// Label is the human-readable factor, e.g. "x100".
	Label string
}

// ToleranceBand describes one entry of the fourth (tolerance) band table.
type ToleranceBand struct {
	// Name is the color name, e.g. "Gold".
	Name string

	// Text is the tolerance as printed, e.g. "±5%".
	Text string
}

// DigitNames maps digit band values 0-9 to their colors (bands 1 and 2).
var DigitNames = [10]string{
	"Black", "Brown", "Red", "Orange", "Yellow",
	"Green", "Blue", "Violet", "Grey", "White",
}

// Multipliers maps multiplier band indices 0-11 to color and factor.
// Indices 10 and 11 (Gold, Silver) are the fractional multipliers; they
// are selectable when encoding but are never produced by Decode.
var Multipliers = [12]MultiplierBand{
	{Name: "Black", Factor: 1, Label: "x1"},
	{Name: "Brown", Factor: 10, Label: "x10"},
	{Name: "Red", Factor: 100, Label: "x100"},
	{Name: "Orange", Factor: 1e3, Label: "x1k"},
	{Name: "Yellow", Factor: 1e4, Label: "x10k"},
	{Name: "Green", Factor: 1e5, Label: "x100k"},
	{Name: "Blue", Factor: 1e6, Label: "x1M"},
	{Name: "Violet", Factor: 1e7, Label: "x10M"},
	{Name: "Grey", Factor: 1e8, Label: "x100M"},
	{Name: "White", Factor: 1e9, Label: "x1G"},
	{Name: "Gold", Factor: 0.1, Label: "x0.1"},
	{Name: "Silver", Factor: 0.01, Label: "x0.01"},
}

// Tolerances maps tolerance band indices 0-7 to color and percent text.
var Tolerances = [8]ToleranceBand{
	{Name: "Brown", Text: "±1%"},
	{Name: "Red", Text: "±2%"},
	{Name: "Green", Text: "±0.5%"},
	{Name: "Blue", Text: "±0.25%"},
	{Name: "Violet", Text: "±0.1%"},
	{Name: "Grey", Text: "±0.05%"},
	{Name: "Gold", Text: "±5%"},
	{Name: "Silver", Text: "±10%"},
}

// DigitLabel returns the display label for a digit band value,
// e.g. "3 Orange".
func DigitLabel(d int) string {
	return fmt.Sprintf("%d %s", d, DigitNames[d])
}

// MultiplierLabel returns the display label for a multiplier band index,
// e.g. "2 Red x100".
func MultiplierLabel(m int) string {
	return fmt.Sprintf("%d %s %s", m, Multipliers[m].Name, Multipliers[m].Label)
}

// ToleranceLabel returns the display label for a tolerance band index,
// e.g. "6 Gold ±5%".
func ToleranceLabel(t int) string {
	return fmt.Sprintf("%d %s %s", t, Tolerances[t].Name, Tolerances[t].Text)
}

// DigitTable renders the digit color reference table (bands 1 and 2).
func DigitTable() string {
	var sb strings.Builder
	sb.WriteString("== Digit Color Table (Band 1 & 2) ==\n")
	for i := range DigitNames {
		sb.WriteString(DigitLabel(i) + "\n")
	}
	return sb.String()
}

// MultiplierTable renders the multiplier color reference table (band 3).
func MultiplierTable() string {
	var sb strings.Builder
	sb.WriteString("== Multiplier Color Table (Band 3) ==\n")
	for i := range Multipliers {
		sb.WriteString(MultiplierLabel(i) + "\n")
	}
	return sb.String()
}

// ToleranceTable renders the tolerance color reference table (band 4).
func ToleranceTable() string {
	var sb strings.Builder
	sb.WriteString("== Tolerance Color Table (Band 4) ==\n")
	for i := range Tolerances {
		sb.WriteString(ToleranceLabel(i) + "\n")
	}
	return sb.String()
}
