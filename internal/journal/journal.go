// Package journal persists one-line summaries of completed calculations
// to a plain text file.
//
// The file is the whole data model: one summary per line, file order =
// chronological order. Every operation opens the file, does its work,
// and closes it again; no handle survives a call, and there is no file
// locking; the journal is meant for a single interactive process.
//
//	j := journal.New("calc_log.txt")
//	err := j.Append("Series/Parallel: n=3, mode=series → 60 Ω")
//
//	entries, err := j.View()
//	if errors.Is(err, journal.ErrNoEntries) {
//	    // nothing saved yet
//	}
package journal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rheza/ee-toolbox/internal/ioutils"
)

// ErrNoEntries is returned by View when the journal file does not exist
// yet, so callers can print a friendly message instead of a read error.
var ErrNoEntries = errors.New("journal: no entries")

// Journal appends calculation summaries to a single text file.
type Journal struct {
	path string
}

// New creates a Journal bound to the given file path. The file itself
// is created lazily on the first Append.
func New(path string) *Journal {
	return &Journal{path: path}
}

// Path returns the journal file path.
func (j *Journal) Path() string {
	return j.path
}

// Append writes one summary line to the end of the journal file,
// creating the file if needed. The file is closed before returning.
func (j *Journal) Append(summary string) error {
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("journal: open for append: %w", err)
	}

	_, werr := fmt.Fprintln(f, summary)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("journal: write: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("journal: close: %w", cerr)
	}
	return nil
}

// View returns the full journal contents. A missing file reports
// ErrNoEntries; any other failure is returned as-is.
func (j *Journal) View() (string, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoEntries
		}
		return "", fmt.Errorf("journal: read: %w", err)
	}
	return string(data), nil
}

// Clear truncates the journal to empty, creating it if absent.
func (j *Journal) Clear() error {
	f, err := os.OpenFile(j.path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("journal: open for truncate: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("journal: close: %w", err)
	}
	return nil
}

// Archive copies the current journal to a dated sibling file, e.g.
// calc_log-2025-01-02.txt, and returns the archive path.
func (j *Journal) Archive(now time.Time) (string, error) {
	dst := archiveName(j.path, now)
	if err := ioutils.CopyFile(j.path, dst); err != nil {
		return "", fmt.Errorf("journal: archive: %w", err)
	}
	return dst, nil
}

// archiveName inserts the date before the extension of the journal path.
func archiveName(path string, now time.Time) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return base + "-" + now.Format("2006-01-02") + ext
}
