package ioutils

import (
	"io"
	"os"
	"regexp"
	"strings"
)

// WriteFile writes data to a file, creating it with mode 0644 if
// necessary and truncating it if it already exists.
//
// Example:
//
//	csv, _ := exporter.Render(desc, samples)
//	err := ioutils.WriteFile("exports/sine_50hz.csv", []byte(csv))
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// CopyFile copies a file from source to destination.
//
// The destination is created with mode 0644, or truncated if it exists.
// Used to archive the calculation log without disturbing the original.
func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	return err
}

// EnsureDir creates a directory and all parents if they don't exist.
// Directories are created with mode 0755; an existing directory is not
// an error.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// SanitizeFileName removes or replaces characters that are invalid in
// file names. Export base names come from user-entered labels, so they
// must survive on every platform, Windows being the strictest.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("sine 50Hz: test/2") // Returns "sine 50Hz_ test_2"
func SanitizeFileName(name string) string {
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")
	name = strings.TrimRight(name, " ")

	return name
}
