// Package signal generates discrete sine samples and derived signal
// quantities, and renders sample sets for export.
//
// # Generation
//
//	T := signal.Period(50)             // 0.02 s
//	w := signal.AngularFrequency(50)   // ≈314.16 rad/s
//
//	samples, err := signal.SineSamples(50, 1.0, 1000, 20)
//	// samples[k] = {N: k, T: k/1000, X: sin(2π·50·k/1000)}
//
// Generation is stateless: every call computes its sequence fresh, and
// the sample count is bounded to [1, MaxSamples].
//
// # Export
//
// An Exporter renders one sample set to CSV, TSV, JSON, or a
// MATLAB/Octave script; ExportAll writes several formats at once:
//
//	paths, err := signal.ExportAll(ctx, "exports", "sine-50hz",
//	    []signal.ExportFormat{signal.FormatCSV, signal.FormatJSON},
//	    true, desc, samples)
//
// # Plotting
//
// RenderWaveformPNG draws a sample set as a PNG line chart scaled to
// the configured dimensions:
//
//	img, err := signal.RenderWaveformPNG(desc, samples, 800, 400)
//	os.WriteFile("sine.png", img, 0644)
package signal
