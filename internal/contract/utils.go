package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/pathfinder-ke/pathfinder/schema"
)

// Color variables for console output.
var (
	EligibleColor     = color.New(color.FgGreen, color.Bold)   // fully admissible
	DiplomaColor      = color.New(color.FgCyan, color.Bold)    // diploma pathway open
	AspirationalColor = color.New(color.FgYellow)              // one grade step away
	NotEligibleColor  = color.New(color.FgRed, color.Bold)     // blocked on current grades
	UnknownColor      = color.New(color.FgWhite)               // no data
	HighConfColor     = color.New(color.FgGreen)               // trustworthy interest signal
	MediumConfColor   = color.New(color.FgYellow)              // moderate signal
	LowConfColor      = color.New(color.FgMagenta, color.Bold) // weak signal
)

// GetPlainStatusLabel returns the plain text label for a department status.
// This is the core label used for CSV, JSON, and table printing.
func GetPlainStatusLabel(status schema.DeptStatus) string {
	switch status {
	case schema.DeptEligible:
		return "Eligible"
	case schema.DeptEligibleDiploma:
		return "Diploma"
	case schema.DeptAspirational:
		return "Aspirational"
	case schema.DeptNotEligible:
		return "Not Eligible"
	default:
		return "Unknown"
	}
}

// GetColorStatusLabel returns a colored department status label for console output.
func GetColorStatusLabel(status schema.DeptStatus) string {
	text := GetPlainStatusLabel(status)

	switch status {
	case schema.DeptEligible:
		return EligibleColor.Sprint(text)
	case schema.DeptEligibleDiploma:
		return DiplomaColor.Sprint(text)
	case schema.DeptAspirational:
		return AspirationalColor.Sprint(text)
	case schema.DeptNotEligible:
		return NotEligibleColor.Sprint(text)
	default:
		return UnknownColor.Sprint(text)
	}
}

// GetColorConfidenceLabel returns a colored confidence label for console output.
func GetColorConfidenceLabel(c schema.Confidence) string {
	switch c {
	case schema.HighConfidence:
		return HighConfColor.Sprint(string(c))
	case schema.MediumConfidence:
		return MediumConfColor.Sprint(string(c))
	default:
		return LowConfColor.Sprint(string(c))
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the
// provided file path. It falls back to os.Stdout when no path is set.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetRunDBFilePath returns the path to the SQLite DB file for run storage.
func GetRunDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".pathfinder_runs.db"
	}
	return filepath.Join(homeDir, ".pathfinder_runs.db")
}
