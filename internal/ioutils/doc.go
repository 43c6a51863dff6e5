// Package ioutils provides small file system utilities shared by the
// sample exporter and the calculation journal.
//
//	// Write rendered export data
//	err := ioutils.WriteFile("exports/samples.csv", data)
//
//	// Ensure the export directory exists
//	err := ioutils.EnsureDir("exports")
//
//	// Archive the journal
//	err := ioutils.CopyFile("calc_log.txt", "calc_log-2025-01-02.txt")
//
// SanitizeFileName makes user-entered labels safe to use as file names
// across platforms:
//
//	safe := ioutils.SanitizeFileName("sine: 50/60 Hz") // "sine_ 50_60 Hz"
package ioutils
