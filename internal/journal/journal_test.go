package journal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestJournal_AppendAndView(t *testing.T) {
	j := New(filepath.Join(t.TempDir(), "calc_log.txt"))

	if err := j.Append("Series/Parallel: n=3, mode=series → 60 Ω"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := j.Append("Ohm/Power: V=12, I=0.12, R=100, P=1.44"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	got, err := j.View()
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}

	want := "Series/Parallel: n=3, mode=series → 60 Ω\nOhm/Power: V=12, I=0.12, R=100, P=1.44\n"
	if got != want {
		t.Errorf("View() = %q, want %q", got, want)
	}
}

func TestJournal_ViewMissingFile(t *testing.T) {
	j := New(filepath.Join(t.TempDir(), "calc_log.txt"))

	if _, err := j.View(); !errors.Is(err, ErrNoEntries) {
		t.Errorf("View() on missing file error = %v, want ErrNoEntries", err)
	}
}

func TestJournal_Clear(t *testing.T) {
	j := New(filepath.Join(t.TempDir(), "calc_log.txt"))

	if err := j.Append("entry"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := j.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	got, err := j.View()
	if err != nil {
		t.Fatalf("View() after Clear() error = %v", err)
	}
	if got != "" {
		t.Errorf("View() after Clear() = %q, want empty", got)
	}
}

func TestJournal_ClearCreatesMissingFile(t *testing.T) {
	j := New(filepath.Join(t.TempDir(), "calc_log.txt"))

	if err := j.Clear(); err != nil {
		t.Fatalf("Clear() on missing file error = %v", err)
	}
	if _, err := os.Stat(j.Path()); err != nil {
		t.Errorf("Clear() should create the file: %v", err)
	}
}

func TestJournal_Archive(t *testing.T) {
	j := New(filepath.Join(t.TempDir(), "calc_log.txt"))

	if err := j.Append("entry one"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	when := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
	dst, err := j.Archive(when)
	if err != nil {
		t.Fatalf("Archive() error = %v", err)
	}

	if filepath.Base(dst) != "calc_log-2025-01-02.txt" {
		t.Errorf("Archive() path = %q, want calc_log-2025-01-02.txt", filepath.Base(dst))
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile(archive) error = %v", err)
	}
	if string(data) != "entry one\n" {
		t.Errorf("archive content = %q, want %q", data, "entry one\n")
	}
}

func TestJournal_ArchiveMissingFile(t *testing.T) {
	j := New(filepath.Join(t.TempDir(), "calc_log.txt"))

	if _, err := j.Archive(time.Now()); err == nil {
		t.Error("Archive() on missing journal should fail")
	}
}

func TestJournal_AppendOrderIsChronological(t *testing.T) {
	j := New(filepath.Join(t.TempDir(), "calc_log.txt"))

	for _, line := range []string{"first", "second", "third"} {
		if err := j.Append(line); err != nil {
			t.Fatalf("Append(%q) error = %v", line, err)
		}
	}

	got, err := j.View()
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	if got != "first\nsecond\nthird\n" {
		t.Errorf("View() = %q, lines out of order", got)
	}
}
