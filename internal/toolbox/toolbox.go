package toolbox

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/rheza/ee-toolbox/internal/circuit"
	"github.com/rheza/ee-toolbox/internal/config"
	"github.com/rheza/ee-toolbox/internal/console"
	"github.com/rheza/ee-toolbox/internal/ioutils"
	"github.com/rheza/ee-toolbox/internal/journal"
	"github.com/rheza/ee-toolbox/internal/rescode"
	"github.com/rheza/ee-toolbox/internal/signal"
)

// Toolbox drives the interactive calculator menus over a validated
// console reader, persisting results through the journal.
//
// Every method is synchronous: it blocks on console input and returns
// either nil (user backed out) or console.ErrInputClosed (input stream
// ended, session over).
type Toolbox struct {
	console  *console.Reader
	journal  *journal.Journal
	settings *config.Settings
}

// New creates a Toolbox reading from in and writing to out.
func New(settings *config.Settings, in io.Reader, out io.Writer) *Toolbox {
	return &Toolbox{
		console:  console.NewReader(in, out),
		journal:  journal.New(settings.LogFilePath),
		settings: settings,
	}
}

// Run drives the top-level menu until the user exits or input ends.
func (t *Toolbox) Run() error {
	for {
		t.console.Printf("\n====================================\n")
		t.console.Printf("     Electrical Engineering Toolbox\n")
		t.console.Printf("====================================\n")
		t.console.Printf("1. Resistor Color Code\n")
		t.console.Printf("2. Series/Parallel Resistors\n")
		t.console.Printf("3. RC Charge/Discharge\n")
		t.console.Printf("4. Ohm's Law & Power\n")
		t.console.Printf("5. Signal Generation/Analysis\n")
		t.console.Printf("6. File/Log Tools\n")
		t.console.Printf("0. Exit\n")

		choice, err := t.console.ReadInt("Select: ", 0, 6)
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			return nil
		case 1:
			err = t.runResistorColorCode()
		case 2:
			err = t.runSeriesParallel()
		case 3:
			err = t.runRCChargeDischarge()
		case 4:
			err = t.runOhmAndPower()
		case 5:
			err = t.runSignalTools()
		case 6:
			err = t.runLogTools()
		}
		if err != nil {
			return err
		}
	}
}

// askAndSave offers to persist a result summary. Journal failures are
// warnings; the calculation result has already been shown.
func (t *Toolbox) askAndSave(summary string) {
	prompt := fmt.Sprintf("\nSave this result to %q? (y/n): ", t.journal.Path())
	if !t.console.ReadYesNo(prompt) {
		t.console.Printf("Not saved.\n")
		return
	}

	if err := t.journal.Append(summary); err != nil {
		t.console.Printf("Could not write to log file: %v\n", err)
		return
	}
	t.console.Printf("Saved.\n")
}

// Module 1: resistor color code.

func (t *Toolbox) runResistorColorCode() error {
	for {
		t.console.Printf("\n== Resistor Color Code Tool ==\n")
		t.console.Printf("1. Color → Resistance\n")
		t.console.Printf("2. Resistance → Color\n")
		t.console.Printf("3. Show Tables\n")
		t.console.Printf("0. Back\n")

		choice, err := t.console.ReadInt("Select: ", 0, 3)
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			return nil
		case 1:
			err = t.runColorToResistance()
		case 2:
			err = t.runResistanceToColor()
		case 3:
			t.console.Printf("\n=== Resistor Color Code Tables ===\n")
			t.console.Printf("\n%s", rescode.DigitTable())
			t.console.Printf("\n%s", rescode.MultiplierTable())
			t.console.Printf("\n%s", rescode.ToleranceTable())
			t.console.Printf("\n4-band meaning:\n  Band 1: 1st digit\n  Band 2: 2nd digit\n  Band 3: multiplier\n  Band 4: tolerance\n")
		}
		if err != nil {
			return err
		}
	}
}

func (t *Toolbox) runColorToResistance() error {
	t.console.Printf("\n=== Color → Resistance (4-band) ===\n")

	t.console.Printf("\n%s", rescode.DigitTable())
	b1, err := t.console.ReadInt("Select Band 1 (0-9): ", 0, 9)
	if err != nil {
		return err
	}
	b2, err := t.console.ReadInt("Select Band 2 (0-9): ", 0, 9)
	if err != nil {
		return err
	}

	t.console.Printf("\n%s", rescode.MultiplierTable())
	m, err := t.console.ReadInt("Select Multiplier (0-11): ", 0, 11)
	if err != nil {
		return err
	}

	t.console.Printf("\n%s", rescode.ToleranceTable())
	tol, err := t.console.ReadInt("Select Tolerance (0-7): ", 0, 7)
	if err != nil {
		return err
	}

	sel := rescode.Selection{Digit1: b1, Digit2: b2, Multiplier: m, Tolerance: tol}
	r, err := rescode.Encode(sel)
	if err != nil {
		// Unreachable with validated input; surfaced rather than ignored.
		t.console.Printf("Computation error: %v\n", err)
		return nil
	}

	t.console.Printf("\n--- Result ---\n")
	t.console.Printf("Bands: %s | %s | %s | %s\n",
		rescode.DigitLabel(b1), rescode.DigitLabel(b2),
		rescode.MultiplierLabel(m), rescode.ToleranceLabel(tol))
	t.console.Printf("Approx resistance: %s\n", rescode.FormatResistance(r))
	t.console.Printf("Tolerance: %s\n", sel.ToleranceText())

	summary := fmt.Sprintf("[Color→Resistance] (%d,%d,m=%d,t=%d) = %.6g Ω, tol %s",
		b1, b2, m, tol, r, sel.ToleranceText())
	t.askAndSave(summary)
	return nil
}

func (t *Toolbox) runResistanceToColor() error {
	t.console.Printf("\n=== Resistance → Color (approx) ===\n")
	t.console.Printf("Uses two significant digits.\n")

	r, err := t.console.ReadPositiveFloat("Enter resistance (Ω): ")
	if err != nil {
		return err
	}

	res := rescode.Decode(r)

	t.console.Printf("\n--- Suggested Colors ---\n")
	t.console.Printf("Approx resistance: %s\n", rescode.FormatResistance(r))
	t.console.Printf("Band 1: %s\n", rescode.DigitLabel(res.Digit1))
	t.console.Printf("Band 2: %s\n", rescode.DigitLabel(res.Digit2))
	t.console.Printf("Band 3: %s\n", rescode.MultiplierLabel(res.Multiplier))
	t.console.Printf("Band 4: (choose based on component tolerance)\n")
	if res.OutOfRange {
		t.console.Printf("Note: value is outside the 2-digit color range; nearest bands shown.\n")
	}

	summary := fmt.Sprintf("[Resistance→Color] R=%.6g → (%d,%d,m=%d)",
		r, res.Digit1, res.Digit2, res.Multiplier)
	t.askAndSave(summary)
	return nil
}

// Module 2: series/parallel resistors.

func (t *Toolbox) runSeriesParallel() error {
	t.console.Printf("\n==== Series / Parallel Resistors ====\n")

	n, err := t.console.ReadInt("Number of resistors (1-10): ", 1, 10)
	if err != nil {
		return err
	}

	values := make([]float64, n)
	for i := range values {
		values[i], err = t.console.ReadPositiveFloat(fmt.Sprintf("Enter R%d (Ω): ", i+1))
		if err != nil {
			return err
		}
	}

	t.console.Printf("\nConnection Type:\n")
	t.console.Printf("1. Series\n")
	t.console.Printf("2. Parallel\n")
	mode, err := t.console.ReadInt("Select: ", 1, 2)
	if err != nil {
		return err
	}

	var total float64
	var modeName string
	if mode == 1 {
		modeName = "series"
		total, err = circuit.Series(values)
		if err == nil {
			t.console.Printf("\n--- Series Result ---\n")
		}
	} else {
		modeName = "parallel"
		total, err = circuit.Parallel(values)
		if err == nil {
			t.console.Printf("\n--- Parallel Result ---\n")
		}
	}
	if err != nil {
		t.console.Printf("Math error.\n")
		return nil
	}

	t.console.Printf("Approx resistance: %s\n", rescode.FormatResistance(total))

	summary := fmt.Sprintf("Series/Parallel: n=%d, mode=%s → %.6g Ω", n, modeName, total)
	t.askAndSave(summary)
	return nil
}

// Module 3: RC charging/discharging.

func (t *Toolbox) runRCChargeDischarge() error {
	t.console.Printf("\n==== RC Charging/Discharging ====\n")
	t.console.Printf("Use SI units: R(Ω), C(F), t(s)\n\n")

	r, err := t.console.ReadPositiveFloat("Enter R (Ω): ")
	if err != nil {
		return err
	}
	c, err := t.console.ReadPositiveFloat("Enter C (F): ")
	if err != nil {
		return err
	}

	t.console.Printf("\nTime constant τ = %.6g s\n", circuit.TimeConstant(r, c))

	t.console.Printf("\nCalculation mode:\n")
	t.console.Printf("1. Charging: Vc(t) = V(1 - e^(-t/RC))\n")
	t.console.Printf("2. Discharging: Vc(t) = V0 e^(-t/RC)\n")
	mode, err := t.console.ReadInt("Select: ", 1, 2)
	if err != nil {
		return err
	}

	ts, err := t.console.ReadPositiveFloat("Enter time t (s): ")
	if err != nil {
		return err
	}

	var summary string
	if mode == 1 {
		v, err := t.console.ReadPositiveFloat("Enter supply voltage V (V): ")
		if err != nil {
			return err
		}
		vc := circuit.ChargeVoltage(v, r, c, ts)
		t.console.Printf("\n--- Charging Result ---\n")
		t.console.Printf("Vc(t = %.6g s) = %.6g V\n", ts, vc)
		summary = fmt.Sprintf("RC charge: R=%.6g, C=%.6g, V=%.6g, t=%.6g → %.6g V", r, c, v, ts, vc)
	} else {
		v0, err := t.console.ReadPositiveFloat("Enter initial voltage V0 (V): ")
		if err != nil {
			return err
		}
		vc := circuit.DischargeVoltage(v0, r, c, ts)
		t.console.Printf("\n--- Discharging Result ---\n")
		t.console.Printf("Vc(t = %.6g s) = %.6g V\n", ts, vc)
		summary = fmt.Sprintf("RC discharge: R=%.6g, C=%.6g, V0=%.6g, t=%.6g → %.6g V", r, c, v0, ts, vc)
	}

	t.askAndSave(summary)
	return nil
}

// Module 4: Ohm's law and power.

// ohmPrompts holds the two input prompts per known pair, in the order
// circuit.Solve expects them.
var ohmPrompts = map[circuit.KnownPair][2]string{
	circuit.PairVR: {"V(V): ", "R(Ω): "},
	circuit.PairVI: {"V(V): ", "I(A): "},
	circuit.PairVP: {"V(V): ", "P(W): "},
	circuit.PairIR: {"I(A): ", "R(Ω): "},
	circuit.PairIP: {"I(A): ", "P(W): "},
	circuit.PairRP: {"R(Ω): ", "P(W): "},
}

func (t *Toolbox) runOhmAndPower() error {
	t.console.Printf("\n==== Ohm's Law / Power ====\n")
	t.console.Printf("Choose known quantities:\n")
	t.console.Printf("1. V & R\n")
	t.console.Printf("2. V & I\n")
	t.console.Printf("3. V & P\n")
	t.console.Printf("4. I & R\n")
	t.console.Printf("5. I & P\n")
	t.console.Printf("6. R & P\n")

	choice, err := t.console.ReadInt("Select: ", 1, 6)
	if err != nil {
		return err
	}
	pair := circuit.KnownPair(choice)
	prompts := ohmPrompts[pair]

	first, err := t.console.ReadPositiveFloat(prompts[0])
	if err != nil {
		return err
	}
	second, err := t.console.ReadPositiveFloat(prompts[1])
	if err != nil {
		return err
	}

	q, serr := circuit.Solve(pair, first, second)
	if serr != nil {
		t.console.Printf("Computation error: %v\n", serr)
		return nil
	}

	t.console.Printf("\n--- Result ---\n")
	t.console.Printf("Voltage  V = %.6g V\n", q.V)
	t.console.Printf("Current  I = %.6g A\n", q.I)
	t.console.Printf("Resistance R = %.6g Ω\n", q.R)
	t.console.Printf("Power     P = %.6g W\n", q.P)

	summary := fmt.Sprintf("Ohm/Power: V=%.6g, I=%.6g, R=%.6g, P=%.6g", q.V, q.I, q.R, q.P)
	t.askAndSave(summary)
	return nil
}

// Module 5: signal generation and analysis.

func (t *Toolbox) runSignalTools() error {
	t.console.Printf("\n==== Signal Generation / Analysis ====\n")

	for {
		t.console.Printf("\n1. Given f → T & ω\n")
		t.console.Printf("2. Generate sine samples\n")
		t.console.Printf("0. Back\n")

		choice, err := t.console.ReadInt("Select: ", 0, 2)
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			return nil
		case 1:
			err = t.runFrequencyInfo()
		case 2:
			err = t.runSineSamples()
		}
		if err != nil {
			return err
		}
	}
}

func (t *Toolbox) runFrequencyInfo() error {
	f, err := t.console.ReadPositiveFloat("Enter f (Hz): ")
	if err != nil {
		return err
	}

	period := signal.Period(f)
	omega := signal.AngularFrequency(f)

	t.console.Printf("\n--- Result ---\n")
	t.console.Printf("Period T = %.6g s\n", period)
	t.console.Printf("Angular freq ω = %.6g rad/s\n", omega)

	summary := fmt.Sprintf("Signal: f=%.6g Hz, T=%.6g s, ω=%.6g rad/s", f, period, omega)
	t.askAndSave(summary)
	return nil
}

func (t *Toolbox) runSineSamples() error {
	t.console.Printf("\nSignal: x(t) = A sin(2πft)\n")

	f, err := t.console.ReadPositiveFloat("Frequency f (Hz): ")
	if err != nil {
		return err
	}
	a, err := t.console.ReadPositiveFloat("Amplitude A: ")
	if err != nil {
		return err
	}
	fs, err := t.console.ReadPositiveFloat("Sampling freq fs (Hz): ")
	if err != nil {
		return err
	}
	n, err := t.console.ReadInt(fmt.Sprintf("Number of samples (1-%d): ", signal.MaxSamples), 1, signal.MaxSamples)
	if err != nil {
		return err
	}

	desc := signal.Description{Frequency: f, Amplitude: a, SampleRate: fs}
	samples, serr := signal.SineSamples(f, a, fs, n)
	if serr != nil {
		t.console.Printf("Computation error: %v\n", serr)
		return nil
	}

	t.console.Printf("\nn\t t(s)\t\t x[n]\n")
	for _, s := range samples {
		t.console.Printf("%d\t %.6g\t %.6g\n", s.N, s.T, s.X)
	}

	if t.console.ReadYesNo("\nExport samples to files? (y/n): ") {
		t.exportSamples(desc, samples)
	}

	summary := fmt.Sprintf("Sine: f=%.6g Hz, A=%.6g, fs=%.6g Hz, N=%d", f, a, fs, n)
	t.askAndSave(summary)
	return nil
}

// exportSamples writes the sample set in every configured format, plus
// the waveform PNG when enabled. Failures are warnings; the samples are
// already on screen.
func (t *Toolbox) exportSamples(desc signal.Description, samples []signal.Sample) {
	formats := make([]signal.ExportFormat, 0, len(t.settings.ExportFormats))
	for _, name := range t.settings.ExportFormats {
		formats = append(formats, signal.ParseExportFormat(name))
	}

	base := fmt.Sprintf("sine_f%g_fs%g_n%d", desc.Frequency, desc.SampleRate, len(samples))

	paths, err := signal.ExportAll(context.Background(), t.settings.ExportPath, base,
		formats, t.settings.ExportHeader, desc, samples)
	if err != nil {
		t.console.Printf("Export failed: %v\n", err)
		return
	}
	for _, p := range paths {
		t.console.Printf("Wrote %s\n", p)
	}

	if t.settings.WaveformExport {
		img, err := signal.RenderWaveformPNG(desc, samples, t.settings.WaveformWidth, t.settings.WaveformHeight)
		if err != nil {
			t.console.Printf("Waveform render failed: %v\n", err)
			return
		}
		pngPath := filepath.Join(t.settings.ExportPath, base+".png")
		if err := ioutils.WriteFile(pngPath, img); err != nil {
			t.console.Printf("Waveform write failed: %v\n", err)
			return
		}
		t.console.Printf("Wrote %s\n", pngPath)
	}
}

// Module 6: file and log tools.

func (t *Toolbox) runLogTools() error {
	for {
		t.console.Printf("\n==== File & Log Tools ====\n")
		t.console.Printf("Current log file: %q\n", t.journal.Path())
		t.console.Printf("1. View file\n")
		t.console.Printf("2. Clear file\n")
		t.console.Printf("3. Archive file\n")
		t.console.Printf("0. Back\n")

		choice, err := t.console.ReadInt("Select: ", 0, 3)
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			return nil
		case 1:
			contents, verr := t.journal.View()
			if verr != nil {
				if errors.Is(verr, journal.ErrNoEntries) {
					t.console.Printf("No file or cannot open (maybe empty).\n")
				} else {
					t.console.Printf("Could not read log file: %v\n", verr)
				}
				continue
			}
			t.console.Printf("\n--- File Start ---\n")
			t.console.Printf("%s", contents)
			t.console.Printf("--- File End ---\n")
		case 2:
			if cerr := t.journal.Clear(); cerr != nil {
				t.console.Printf("Failed to clear file.\n")
			} else {
				t.console.Printf("File cleared.\n")
			}
		case 3:
			dst, aerr := t.journal.Archive(time.Now())
			if aerr != nil {
				t.console.Printf("Failed to archive file: %v\n", aerr)
			} else {
				t.console.Printf("Archived to %q.\n", dst)
			}
		}
	}
}
