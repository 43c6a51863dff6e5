package signal

import (
	"fmt"
	"math"
)

// MaxSamples bounds the number of samples one generation may produce.
const MaxSamples = 100

// Sample is one discrete point of a generated signal.
type Sample struct {
	// N is the sample index, starting at 0.
	N int

	// T is the sample time in seconds, N divided by the sampling rate.
	T float64

	// X is the signal value at T.
	X float64
}

// Description identifies a generated signal for display and export.
type Description struct {
	// Frequency is the signal frequency in Hz.
	Frequency float64

	// Amplitude is the peak amplitude.
	Amplitude float64

	// SampleRate is the sampling frequency in Hz.
	SampleRate float64
}

// Period returns the signal period T = 1/f in seconds.
func Period(f float64) float64 {
	return 1 / f
}

// AngularFrequency returns ω = 2πf in rad/s.
func AngularFrequency(f float64) float64 {
	return 2 * math.Pi * f
}

// SineSamples generates n samples of x(t) = A·sin(2πft) at sampling
// rate fs, for sample indices 0..n-1. Each call computes the sequence
// fresh; there is no generator state.
//
// n must lie in [1, MaxSamples] and f, A, fs must be > 0.
func SineSamples(f, a, fs float64, n int) ([]Sample, error) {
	if n < 1 || n > MaxSamples {
		return nil, fmt.Errorf("signal: sample count must be between 1 and %d, got %d", MaxSamples, n)
	}
	if f <= 0 || a <= 0 || fs <= 0 {
		return nil, fmt.Errorf("signal: f, A and fs must be > 0")
	}

	samples := make([]Sample, n)
	for k := 0; k < n; k++ {
		t := float64(k) / fs
		samples[k] = Sample{
			N: k,
			T: t,
			X: a * math.Sin(2*math.Pi*f*t),
		}
	}
	return samples, nil
}
