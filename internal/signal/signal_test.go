package signal

import (
	"math"
	"testing"
)

func TestPeriodAndAngularFrequency(t *testing.T) {
	if got := Period(50); math.Abs(got-0.02) > 1e-12 {
		t.Errorf("Period(50) = %g, want 0.02", got)
	}
	if got := AngularFrequency(50); math.Abs(got-2*math.Pi*50) > 1e-9 {
		t.Errorf("AngularFrequency(50) = %g, want %g", got, 2*math.Pi*50)
	}
}

func TestSineSamples(t *testing.T) {
	const (
		f  = 50.0
		a  = 2.0
		fs = 1000.0
		n  = 40
	)

	samples, err := SineSamples(f, a, fs, n)
	if err != nil {
		t.Fatalf("SineSamples() error = %v", err)
	}

	if len(samples) != n {
		t.Fatalf("len(samples) = %d, want %d", len(samples), n)
	}

	// x[0] = 0 for any parameters.
	if samples[0].X != 0 {
		t.Errorf("samples[0].X = %g, want 0", samples[0].X)
	}
	if samples[0].N != 0 || samples[0].T != 0 {
		t.Errorf("samples[0] = %+v, want N=0 T=0", samples[0])
	}

	for _, s := range samples {
		// Amplitude bound.
		if math.Abs(s.X) > a+1e-12 {
			t.Errorf("samples[%d].X = %g exceeds amplitude %g", s.N, s.X, a)
		}
		// Time axis is k/fs.
		if want := float64(s.N) / fs; math.Abs(s.T-want) > 1e-12 {
			t.Errorf("samples[%d].T = %g, want %g", s.N, s.T, want)
		}
		// Definition check.
		if want := a * math.Sin(2*math.Pi*f*s.T); math.Abs(s.X-want) > 1e-12 {
			t.Errorf("samples[%d].X = %g, want %g", s.N, s.X, want)
		}
	}
}

func TestSineSamples_FreshPerCall(t *testing.T) {
	first, err := SineSamples(60, 1, 480, 10)
	if err != nil {
		t.Fatalf("SineSamples() error = %v", err)
	}
	second, err := SineSamples(60, 1, 480, 10)
	if err != nil {
		t.Fatalf("SineSamples() error = %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("sample %d differs between calls: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSineSamples_Bounds(t *testing.T) {
	tests := []struct {
		name string
		f    float64
		a    float64
		fs   float64
		n    int
	}{
		{name: "zero samples", f: 50, a: 1, fs: 1000, n: 0},
		{name: "too many samples", f: 50, a: 1, fs: 1000, n: 101},
		{name: "zero frequency", f: 0, a: 1, fs: 1000, n: 10},
		{name: "negative amplitude", f: 50, a: -1, fs: 1000, n: 10},
		{name: "zero sample rate", f: 50, a: 1, fs: 0, n: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SineSamples(tt.f, tt.a, tt.fs, tt.n); err == nil {
				t.Error("SineSamples() should have failed")
			}
		})
	}
}

func TestSineSamples_MaxCount(t *testing.T) {
	samples, err := SineSamples(50, 1, 1000, MaxSamples)
	if err != nil {
		t.Fatalf("SineSamples(n=%d) error = %v", MaxSamples, err)
	}
	if len(samples) != MaxSamples {
		t.Errorf("len(samples) = %d, want %d", len(samples), MaxSamples)
	}
}
