package rescode

import (
	"math"
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want float64
	}{
		{name: "orange white red", sel: Selection{Digit1: 3, Digit2: 9, Multiplier: 2}, want: 3900},
		{name: "brown black black", sel: Selection{Digit1: 1, Digit2: 0, Multiplier: 0}, want: 10},
		{name: "yellow violet orange", sel: Selection{Digit1: 4, Digit2: 7, Multiplier: 3}, want: 47000},
		{name: "white white white", sel: Selection{Digit1: 9, Digit2: 9, Multiplier: 9}, want: 99e9},
		{name: "gold multiplier", sel: Selection{Digit1: 4, Digit2: 7, Multiplier: 10}, want: 4.7},
		{name: "silver multiplier", sel: Selection{Digit1: 1, Digit2: 0, Multiplier: 11}, want: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.sel)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Encode() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestEncode_InvalidSelection(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
	}{
		{name: "digit1 too large", sel: Selection{Digit1: 10}},
		{name: "digit2 negative", sel: Selection{Digit2: -1}},
		{name: "multiplier too large", sel: Selection{Multiplier: 12}},
		{name: "tolerance too large", sel: Selection{Tolerance: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Encode(tt.sel); err == nil {
				t.Error("Encode() should reject invalid selection")
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		r          float64
		wantD1     int
		wantD2     int
		wantM      int
		outOfRange bool
	}{
		{name: "3900 ohm", r: 3900, wantD1: 3, wantD2: 9, wantM: 2},
		{name: "47 ohm", r: 47, wantD1: 4, wantD2: 7, wantM: 0},
		{name: "1 megaohm", r: 1e6, wantD1: 1, wantD2: 0, wantM: 5},
		{name: "rounds up", r: 47.6, wantD1: 4, wantD2: 8, wantM: 0},
		{name: "carry on round to 100", r: 99.5, wantD1: 1, wantD2: 0, wantM: 1},
		{name: "below ten stays", r: 4.7, wantD1: 0, wantD2: 5, wantM: 0, outOfRange: true},
		{name: "sub ohm clamped", r: 0.5, wantD1: 0, wantD2: 1, wantM: 0, outOfRange: true},
		{name: "huge value clamped", r: 5e11, wantD1: 9, wantD2: 9, wantM: 9, outOfRange: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.r)
			if got.Digit1 != tt.wantD1 || got.Digit2 != tt.wantD2 || got.Multiplier != tt.wantM {
				t.Errorf("Decode(%g) = (%d,%d,m=%d), want (%d,%d,m=%d)",
					tt.r, got.Digit1, got.Digit2, got.Multiplier, tt.wantD1, tt.wantD2, tt.wantM)
			}
			if got.OutOfRange != tt.outOfRange {
				t.Errorf("Decode(%g).OutOfRange = %v, want %v", tt.r, got.OutOfRange, tt.outOfRange)
			}
		})
	}
}

// Encoding a selection with an integer base in [10, 99] and decoding the
// result must reproduce the same two digit bands.
func TestEncodeDecode_RoundTrip(t *testing.T) {
	for d1 := 1; d1 <= 9; d1++ {
		for d2 := 0; d2 <= 9; d2++ {
			for m := 0; m <= 9; m++ {
				r, err := Encode(Selection{Digit1: d1, Digit2: d2, Multiplier: m})
				if err != nil {
					t.Fatalf("Encode(%d,%d,%d) error = %v", d1, d2, m, err)
				}
				got := Decode(r)
				if got.Digit1 != d1 || got.Digit2 != d2 || got.Multiplier != m {
					t.Errorf("Decode(Encode(%d,%d,m=%d)) = (%d,%d,m=%d)",
						d1, d2, m, got.Digit1, got.Digit2, got.Multiplier)
				}
			}
		}
	}
}

// Re-encoding a decoded value must land within one part in 100 of the
// original for resistances the 2-digit code can represent.
func TestDecodeEncode_Approximation(t *testing.T) {
	for _, r := range []float64{10, 33, 47.2, 99, 101, 4700, 56e3, 1.23e6, 9.9e10} {
		dec := Decode(r)
		if dec.OutOfRange {
			t.Fatalf("Decode(%g) unexpectedly out of range", r)
		}
		back, err := Encode(Selection{Digit1: dec.Digit1, Digit2: dec.Digit2, Multiplier: dec.Multiplier})
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		if rel := math.Abs(back-r) / r; rel > 0.05 {
			t.Errorf("Encode(Decode(%g)) = %g, relative error %.4f too large", r, back, rel)
		}
	}
}

func TestFormatResistance(t *testing.T) {
	tests := []struct {
		r    float64
		want string
	}{
		{3900, "3.9 kΩ"},
		{470, "470 Ω"},
		{1e6, "1 MΩ"},
		{2.2e7, "22 MΩ"},
		{0.47, "0.47 Ω"},
		{999, "999 Ω"},
		{1000, "1 kΩ"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatResistance(tt.r); got != tt.want {
				t.Errorf("FormatResistance(%g) = %q, want %q", tt.r, got, tt.want)
			}
		})
	}
}

func TestTables(t *testing.T) {
	if got := DigitTable(); !strings.Contains(got, "3 Orange") || !strings.Contains(got, "9 White") {
		t.Errorf("DigitTable() missing expected rows:\n%s", got)
	}
	if got := MultiplierTable(); !strings.Contains(got, "2 Red x100") || !strings.Contains(got, "11 Silver x0.01") {
		t.Errorf("MultiplierTable() missing expected rows:\n%s", got)
	}
	if got := ToleranceTable(); !strings.Contains(got, "6 Gold ±5%") {
		t.Errorf("ToleranceTable() missing expected rows:\n%s", got)
	}
}

func TestSelection_ToleranceText(t *testing.T) {
	s := Selection{Tolerance: 6}
	if got := s.ToleranceText(); got != "±5%" {
		t.Errorf("ToleranceText() = %q, want %q", got, "±5%")
	}
}
