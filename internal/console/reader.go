package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when the input stream ends before a valid
// value has been read. There is no way to continue an interactive
// session without input, so callers are expected to propagate this error
// all the way up and terminate.
var ErrInputClosed = errors.New("console: input stream closed")

// Reader reads validated values from a line-oriented input stream.
//
// Every read method prompts on the output writer, consumes exactly one
// line per attempt, and keeps reprompting until the line parses as the
// requested kind of value and satisfies its bounds. Bad input never
// returns an error; only the end of the input stream does.
//
// Example:
//
//	r := console.NewReader(os.Stdin, os.Stdout)
//	n, err := r.ReadInt("Number of resistors (1-10): ", 1, 10)
//	if err != nil {
//	    // input stream closed, shut down
//	}
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewReader creates a Reader that reads lines from in and writes prompts
// and error messages to out.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Printf writes a formatted message to the reader's output writer.
// It is the single output path for code driven by this reader, so tests
// can capture prompts and results together.
func (r *Reader) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// readLine reads the next input line, or ErrInputClosed if none remain.
func (r *Reader) readLine() (string, error) {
	if !r.scanner.Scan() {
		return "", ErrInputClosed
	}
	return r.scanner.Text(), nil
}

// ReadInt prompts until the user enters an integer in [min, max].
//
// Leading and trailing whitespace is tolerated; any other surrounding
// text (e.g. "12abc" or "12 34") rejects the line. Out-of-range values
// and unparseable lines produce a message and a reprompt.
func (r *Reader) ReadInt(prompt string, min, max int) (int, error) {
	for {
		r.Printf("%s", prompt)

		line, err := r.readLine()
		if err != nil {
			return 0, err
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			r.Printf("Please enter an integer.\n")
			continue
		}

		val, err := strconv.Atoi(trimmed)
		if err != nil {
			r.Printf("Please enter an integer.\n")
			continue
		}

		if val < min || val > max {
			r.Printf("Value must be between %d and %d.\n", min, max)
			continue
		}

		return val, nil
	}
}

// ReadPositiveFloat prompts until the user enters a finite number > 0.
// Used for voltages, resistances, frequencies and the like, which are
// all strictly positive physical quantities.
func (r *Reader) ReadPositiveFloat(prompt string) (float64, error) {
	for {
		r.Printf("%s", prompt)

		line, err := r.readLine()
		if err != nil {
			return 0, err
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			r.Printf("Enter a valid number.\n")
			continue
		}

		val, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			r.Printf("Enter a valid number.\n")
			continue
		}

		if math.IsNaN(val) || math.IsInf(val, 0) || val <= 0 {
			r.Printf("Value must be > 0.\n")
			continue
		}

		return val, nil
	}
}

// ReadYesNo prompts once and reports whether the answer was affirmative.
// Anything that does not start with 'y' or 'Y' counts as "no", including
// a closed input stream; a save prompt must never be the thing that
// takes the process down.
func (r *Reader) ReadYesNo(prompt string) bool {
	r.Printf("%s", prompt)

	line, err := r.readLine()
	if err != nil {
		return false
	}

	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "y") || strings.HasPrefix(trimmed, "Y")
}
