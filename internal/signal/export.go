package signal

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rheza/ee-toolbox/internal/ioutils"
	"golang.org/x/sync/errgroup"
)

// ExportFormat represents supported sample export formats.
type ExportFormat int

const (
	// FormatCSV writes comma-separated n,t,x rows (most portable).
	FormatCSV ExportFormat = iota

	// FormatTSV writes tab-separated rows, pasteable into spreadsheets.
	FormatTSV

	// FormatJSON writes a single JSON document with the signal
	// parameters and the sample array.
	FormatJSON

	// FormatMATLAB writes a MATLAB/Octave script defining t and x
	// vectors, ready to plot.
	FormatMATLAB
)

// ParseExportFormat maps a format name from configuration ("csv",
// "tsv", "json", "matlab") to its ExportFormat. Unknown names fall back
// to CSV.
func ParseExportFormat(name string) ExportFormat {
	switch strings.ToLower(name) {
	case "tsv":
		return FormatTSV
	case "json":
		return FormatJSON
	case "matlab", "m":
		return FormatMATLAB
	default:
		return FormatCSV
	}
}

// Extension returns the file extension for the format, including the dot.
func (f ExportFormat) Extension() string {
	switch f {
	case FormatTSV:
		return ".tsv"
	case FormatJSON:
		return ".json"
	case FormatMATLAB:
		return ".m"
	default:
		return ".csv"
	}
}

// Exporter renders a generated sample set to a textual format.
//
// Example:
//
//	exp := signal.NewExporter(signal.FormatCSV, true)
//	content := exp.Render(desc, samples)
//	os.WriteFile("sine.csv", []byte(content), 0644)
type Exporter struct {
	format ExportFormat
	header bool // for CSV/TSV: include a column header row
}

// NewExporter creates an Exporter. header controls the column header
// row for the CSV and TSV formats and is ignored for the others.
func NewExporter(format ExportFormat, header bool) *Exporter {
	return &Exporter{
		format: format,
		header: header,
	}
}

// Render produces the export text for one sample set.
func (e *Exporter) Render(desc Description, samples []Sample) string {
	switch e.format {
	case FormatTSV:
		return e.renderSeparated(samples, "\t")
	case FormatJSON:
		return e.renderJSON(desc, samples)
	case FormatMATLAB:
		return e.renderMATLAB(desc, samples)
	default:
		return e.renderSeparated(samples, ",")
	}
}

// renderSeparated covers the CSV and TSV formats, which differ only in
// the separator.
func (e *Exporter) renderSeparated(samples []Sample, sep string) string {
	var sb strings.Builder

	if e.header {
		sb.WriteString("n" + sep + "t" + sep + "x\n")
	}
	for _, s := range samples {
		sb.WriteString(fmt.Sprintf("%d%s%.6g%s%.6g\n", s.N, sep, s.T, sep, s.X))
	}

	return sb.String()
}

// renderJSON emits the signal parameters and samples as one document.
// The structure is flat enough to build by hand, keeping the output
// formatting identical to the other renderers.
func (e *Exporter) renderJSON(desc Description, samples []Sample) string {
	var sb strings.Builder

	sb.WriteString("{\n")
	sb.WriteString(fmt.Sprintf("  \"frequency_hz\": %g,\n", desc.Frequency))
	sb.WriteString(fmt.Sprintf("  \"amplitude\": %g,\n", desc.Amplitude))
	sb.WriteString(fmt.Sprintf("  \"sample_rate_hz\": %g,\n", desc.SampleRate))
	sb.WriteString("  \"samples\": [\n")

	for i, s := range samples {
		sb.WriteString(fmt.Sprintf("    {\"n\": %d, \"t\": %g, \"x\": %g}", s.N, s.T, s.X))
		if i < len(samples)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("  ]\n")
	sb.WriteString("}\n")

	return sb.String()
}

// renderMATLAB emits a script defining t and x vectors with a plot call.
func (e *Exporter) renderMATLAB(desc Description, samples []Sample) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%% x(t) = %g * sin(2*pi*%g*t), fs = %g Hz\n",
		desc.Amplitude, desc.Frequency, desc.SampleRate))

	sb.WriteString("t = [")
	for i, s := range samples {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%.6g", s.T))
	}
	sb.WriteString("];\n")

	sb.WriteString("x = [")
	for i, s := range samples {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%.6g", s.X))
	}
	sb.WriteString("];\n")

	sb.WriteString("plot(t, x);\n")
	sb.WriteString("xlabel('t (s)'); ylabel('x(t)');\n")

	return sb.String()
}

// ExportAll renders and writes one file per requested format into dir,
// named baseName plus the format extension. The writes run concurrently
// under the given context; the first failure cancels the rest.
//
// Returns the paths of the written files in format order.
func ExportAll(ctx context.Context, dir, baseName string, formats []ExportFormat, header bool, desc Description, samples []Sample) ([]string, error) {
	if err := ioutils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("signal: create export dir: %w", err)
	}

	base := ioutils.SanitizeFileName(baseName)
	paths := make([]string, len(formats))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, format := range formats {
		path := filepath.Join(dir, base+format.Extension())
		paths[i] = path
		format := format
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content := NewExporter(format, header).Render(desc, samples)
			if err := ioutils.WriteFile(path, []byte(content)); err != nil {
				return fmt.Errorf("signal: write %s: %w", path, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
