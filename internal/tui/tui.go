// Package tui provides a Bubble Tea terminal user interface for the
// EE toolbox calculators.
package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rheza/ee-toolbox/internal/circuit"
	"github.com/rheza/ee-toolbox/internal/config"
	"github.com/rheza/ee-toolbox/internal/journal"
	"github.com/rheza/ee-toolbox/internal/rescode"
	"github.com/rheza/ee-toolbox/internal/signal"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateMenu State = iota
	StateForm
	StateResult
)

// Tool identifies one calculator reachable from the menu.
type Tool int

const (
	ToolColorToResistance Tool = iota
	ToolResistanceToColor
	ToolSeriesParallel
	ToolRCTransient
	ToolOhmPower
	ToolSineSamples
)

var toolNames = []string{
	"Color → Resistance",
	"Resistance → Color",
	"Series/Parallel Resistors",
	"RC Charge/Discharge",
	"Ohm's Law & Power",
	"Sine Sample Generator",
}

// field describes one form input of a calculator.
type field struct {
	label string
	isInt bool
	min   int // int fields only
	max   int
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	cursor    int
	tool      Tool
	textInput textinput.Model
	progress  progress.Model
	journal   *journal.Journal

	// Form progress
	fields   []field
	values   []float64
	inputErr string

	// Result
	resultLines []string
	summary     string
	chargeRatio float64 // RC only: Vc divided by the source voltage
	saveStatus  string

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 24

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40

	return Model{
		state:     StateMenu,
		textInput: ti,
		progress:  prog,
		journal:   journal.New(settings.LogFilePath),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateMenu:
			return m.updateMenu(msg)
		case StateForm:
			return m.updateForm(msg)
		case StateResult:
			return m.updateResult(msg)
		}
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(toolNames)-1 {
			m.cursor++
		}

	case "enter":
		m.tool = Tool(m.cursor)
		m.fields = startFields(m.tool)
		m.values = nil
		m.inputErr = ""
		m.saveStatus = ""
		m.textInput.SetValue("")
		m.textInput.Focus()
		m.state = StateForm
		return m, textinput.Blink
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.state = StateMenu
		return m, nil

	case "enter":
		f := m.fields[len(m.values)]
		val, err := parseField(f, m.textInput.Value())
		if err != nil {
			m.inputErr = err.Error()
			return m, nil
		}

		m.inputErr = ""
		m.values = append(m.values, val)
		m.fields = extendFields(m.tool, m.fields, m.values)
		m.textInput.SetValue("")

		if len(m.values) == len(m.fields) {
			m.compute()
			m.state = StateResult
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc", "r":
		m.state = StateMenu
		return m, nil

	case "s":
		if m.summary == "" || m.saveStatus != "" {
			return m, nil
		}
		if err := m.journal.Append(m.summary); err != nil {
			m.saveStatus = "save failed: " + err.Error()
		} else {
			m.saveStatus = "Saved."
		}
		return m, nil
	}

	return m, nil
}

// parseField validates one form answer the same way the console reader
// does: whole-line numbers only, range-checked.
func parseField(f field, raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("enter a value")
	}

	if f.isInt {
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, fmt.Errorf("enter an integer")
		}
		if n < f.min || n > f.max {
			return 0, fmt.Errorf("value must be between %d and %d", f.min, f.max)
		}
		return float64(n), nil
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("enter a valid number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("value must be > 0")
	}
	return v, nil
}

// startFields returns the initial form fields of a tool. Tools whose
// later fields depend on earlier answers grow via extendFields.
func startFields(tool Tool) []field {
	switch tool {
	case ToolColorToResistance:
		return []field{
			{label: "Band 1 digit (0-9)", isInt: true, min: 0, max: 9},
			{label: "Band 2 digit (0-9)", isInt: true, min: 0, max: 9},
			{label: "Multiplier index (0-11)", isInt: true, min: 0, max: 11},
			{label: "Tolerance index (0-7)", isInt: true, min: 0, max: 7},
		}
	case ToolResistanceToColor:
		return []field{{label: "Resistance (Ω)"}}
	case ToolSeriesParallel:
		return []field{{label: "Number of resistors (1-10)", isInt: true, min: 1, max: 10}}
	case ToolRCTransient:
		return []field{
			{label: "R (Ω)"},
			{label: "C (F)"},
			{label: "Mode: 1 charge, 2 discharge", isInt: true, min: 1, max: 2},
		}
	case ToolOhmPower:
		return []field{{label: "Known pair: 1 V&R  2 V&I  3 V&P  4 I&R  5 I&P  6 R&P", isInt: true, min: 1, max: 6}}
	case ToolSineSamples:
		return []field{
			{label: "Frequency f (Hz)"},
			{label: "Amplitude A"},
			{label: "Sampling freq fs (Hz)"},
			{label: fmt.Sprintf("Number of samples (1-%d)", signal.MaxSamples), isInt: true, min: 1, max: signal.MaxSamples},
		}
	}
	return nil
}

// extendFields appends the answer-dependent fields once their
// controlling answer is in.
func extendFields(tool Tool, fields []field, values []float64) []field {
	switch tool {
	case ToolSeriesParallel:
		if len(values) == 1 {
			n := int(values[0])
			for i := 0; i < n; i++ {
				fields = append(fields, field{label: fmt.Sprintf("R%d (Ω)", i+1)})
			}
			fields = append(fields, field{label: "Mode: 1 series, 2 parallel", isInt: true, min: 1, max: 2})
		}
	case ToolRCTransient:
		if len(values) == 3 {
			fields = append(fields, field{label: "Time t (s)"})
			if int(values[2]) == 1 {
				fields = append(fields, field{label: "Supply voltage V (V)"})
			} else {
				fields = append(fields, field{label: "Initial voltage V0 (V)"})
			}
		}
	case ToolOhmPower:
		if len(values) == 1 {
			pair := circuit.KnownPair(int(values[0]))
			labels := ohmFieldLabels[pair]
			fields = append(fields, field{label: labels[0]}, field{label: labels[1]})
		}
	}
	return fields
}

var ohmFieldLabels = map[circuit.KnownPair][2]string{
	circuit.PairVR: {"V (V)", "R (Ω)"},
	circuit.PairVI: {"V (V)", "I (A)"},
	circuit.PairVP: {"V (V)", "P (W)"},
	circuit.PairIR: {"I (A)", "R (Ω)"},
	circuit.PairIP: {"I (A)", "P (W)"},
	circuit.PairRP: {"R (Ω)", "P (W)"},
}

// compute runs the selected calculator over the collected answers and
// fills the result view.
func (m *Model) compute() {
	m.resultLines = nil
	m.summary = ""
	m.chargeRatio = -1

	switch m.tool {
	case ToolColorToResistance:
		sel := rescode.Selection{
			Digit1:     int(m.values[0]),
			Digit2:     int(m.values[1]),
			Multiplier: int(m.values[2]),
			Tolerance:  int(m.values[3]),
		}
		r, err := rescode.Encode(sel)
		if err != nil {
			m.resultLines = []string{"Computation error: " + err.Error()}
			return
		}
		m.resultLines = []string{
			fmt.Sprintf("Bands: %s | %s | %s | %s",
				rescode.DigitLabel(sel.Digit1), rescode.DigitLabel(sel.Digit2),
				rescode.MultiplierLabel(sel.Multiplier), rescode.ToleranceLabel(sel.Tolerance)),
			"Resistance: " + rescode.FormatResistance(r),
			"Tolerance: " + sel.ToleranceText(),
		}
		m.summary = fmt.Sprintf("[Color→Resistance] (%d,%d,m=%d,t=%d) = %.6g Ω, tol %s",
			sel.Digit1, sel.Digit2, sel.Multiplier, sel.Tolerance, r, sel.ToleranceText())

	case ToolResistanceToColor:
		r := m.values[0]
		res := rescode.Decode(r)
		m.resultLines = []string{
			"Resistance: " + rescode.FormatResistance(r),
			"Band 1: " + rescode.DigitLabel(res.Digit1),
			"Band 2: " + rescode.DigitLabel(res.Digit2),
			"Band 3: " + rescode.MultiplierLabel(res.Multiplier),
			"Band 4: (choose based on component tolerance)",
		}
		if res.OutOfRange {
			m.resultLines = append(m.resultLines, "Note: outside the 2-digit color range; nearest bands shown.")
		}
		m.summary = fmt.Sprintf("[Resistance→Color] R=%.6g → (%d,%d,m=%d)",
			r, res.Digit1, res.Digit2, res.Multiplier)

	case ToolSeriesParallel:
		n := int(m.values[0])
		values := m.values[1 : 1+n]
		mode := int(m.values[1+n])

		var total float64
		var err error
		var modeName string
		if mode == 1 {
			modeName = "series"
			total, err = circuit.Series(values)
		} else {
			modeName = "parallel"
			total, err = circuit.Parallel(values)
		}
		if err != nil {
			m.resultLines = []string{"Computation error: " + err.Error()}
			return
		}
		m.resultLines = []string{
			fmt.Sprintf("%d resistors in %s", n, modeName),
			"Equivalent: " + rescode.FormatResistance(total),
		}
		m.summary = fmt.Sprintf("Series/Parallel: n=%d, mode=%s → %.6g Ω", n, modeName, total)

	case ToolRCTransient:
		r, c := m.values[0], m.values[1]
		mode := int(m.values[2])
		ts, v := m.values[3], m.values[4]

		tau := circuit.TimeConstant(r, c)
		var vc float64
		var modeName string
		if mode == 1 {
			modeName = "charge"
			vc = circuit.ChargeVoltage(v, r, c, ts)
			m.summary = fmt.Sprintf("RC charge: R=%.6g, C=%.6g, V=%.6g, t=%.6g → %.6g V", r, c, v, ts, vc)
		} else {
			modeName = "discharge"
			vc = circuit.DischargeVoltage(v, r, c, ts)
			m.summary = fmt.Sprintf("RC discharge: R=%.6g, C=%.6g, V0=%.6g, t=%.6g → %.6g V", r, c, v, ts, vc)
		}
		m.resultLines = []string{
			fmt.Sprintf("Time constant τ = %.6g s", tau),
			fmt.Sprintf("Vc(t = %.6g s) = %.6g V (%s)", ts, vc, modeName),
		}
		m.chargeRatio = vc / v

	case ToolOhmPower:
		pair := circuit.KnownPair(int(m.values[0]))
		q, err := circuit.Solve(pair, m.values[1], m.values[2])
		if err != nil {
			m.resultLines = []string{"Computation error: " + err.Error()}
			return
		}
		m.resultLines = []string{
			"Known: " + pair.String(),
			fmt.Sprintf("Voltage    V = %.6g V", q.V),
			fmt.Sprintf("Current    I = %.6g A", q.I),
			fmt.Sprintf("Resistance R = %.6g Ω", q.R),
			fmt.Sprintf("Power      P = %.6g W", q.P),
		}
		m.summary = fmt.Sprintf("Ohm/Power: V=%.6g, I=%.6g, R=%.6g, P=%.6g", q.V, q.I, q.R, q.P)

	case ToolSineSamples:
		f, a, fs := m.values[0], m.values[1], m.values[2]
		n := int(m.values[3])

		samples, err := signal.SineSamples(f, a, fs, n)
		if err != nil {
			m.resultLines = []string{"Computation error: " + err.Error()}
			return
		}
		m.resultLines = []string{fmt.Sprintf("x(t) = %g sin(2π·%g·t), fs = %g Hz", a, f, fs), ""}
		for _, s := range samples {
			m.resultLines = append(m.resultLines, fmt.Sprintf("%3d  t=%-10.6g x=%.6g", s.N, s.T, s.X))
		}
		m.summary = fmt.Sprintf("Sine: f=%.6g Hz, A=%.6g, fs=%.6g Hz, N=%d", f, a, fs, n)
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("⚡ EE Toolbox"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Electrical engineering calculators"))
	b.WriteString("\n\n")

	switch m.state {
	case StateMenu:
		b.WriteString(m.viewMenu())
	case StateForm:
		b.WriteString(m.viewForm())
	case StateResult:
		b.WriteString(m.viewResult())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewMenu() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Choose a tool:"))
	b.WriteString("\n\n")

	for i, name := range toolNames {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("› " + name))
		} else {
			b.WriteString("  " + name)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(toolNames[m.tool]))
	b.WriteString("\n\n")

	// Answered fields
	for i, v := range m.values {
		f := m.fields[i]
		if f.isInt {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %s: %d", f.label, int(v))))
		} else {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %s: %g", f.label, v)))
		}
		b.WriteString("\n")
	}

	// Current field
	current := m.fields[len(m.values)]
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(current.label + ":"))
	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	if m.inputErr != "" {
		b.WriteString(errorStyle.Render("✗ " + m.inputErr))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewResult() string {
	var b strings.Builder

	box := boxStyle.Render(subtitleStyle.Render(toolNames[m.tool]) + "\n\n" +
		strings.Join(m.resultLines, "\n"))
	b.WriteString(box)
	b.WriteString("\n")

	// RC results get a charge-level bar: Vc as a fraction of the
	// driving voltage.
	if m.chargeRatio >= 0 && m.chargeRatio <= 1 {
		b.WriteString("\n")
		b.WriteString(m.progress.ViewAs(m.chargeRatio))
		b.WriteString("\n")
	}

	if m.saveStatus != "" {
		if strings.HasPrefix(m.saveStatus, "Saved") {
			b.WriteString(successStyle.Render("✓ " + m.saveStatus))
		} else {
			b.WriteString(errorStyle.Render("✗ " + m.saveStatus))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateMenu:
		return "↑/↓: select • enter: open • q: quit"
	case StateForm:
		return "enter: confirm • esc: back to menu"
	case StateResult:
		return "s: save to log • r: new calculation • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
