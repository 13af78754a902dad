package validate

import (
	"fmt"
	"io"
	"sort"
)

// Counts summarizes a validation run.
type Counts struct {
	Files    int
	Errors   int
	Warnings int
}

// Report collects every problem found in a run, keyed by source file path
// relative to the site root. Errors block publication; warnings do not.
// Cap is the configured print limit per severity, so callers need not
// reload the site config just to print the report.
type Report struct {
	ErrorsByFile   map[string][]string
	WarningsByFile map[string][]string
	Counts         Counts
	Cap            int
}

func newReport() *Report {
	return &Report{
		ErrorsByFile:   make(map[string][]string),
		WarningsByFile: make(map[string][]string),
	}
}

func (r *Report) errorf(file, format string, args ...any) {
	r.ErrorsByFile[file] = append(r.ErrorsByFile[file], fmt.Sprintf(format, args...))
	r.Counts.Errors++
}

func (r *Report) warnf(file, format string, args ...any) {
	r.WarningsByFile[file] = append(r.WarningsByFile[file], fmt.Sprintf(format, args...))
	r.Counts.Warnings++
}

// OK reports whether the run found no errors. Warnings alone do not fail a
// run.
func (r *Report) OK() bool {
	return r.Counts.Errors == 0
}

// Print writes the human-readable report: one summary line, then warnings
// and errors, each capped at limit lines with a truncation note.
func (r *Report) Print(w io.Writer, limit int) {
	fmt.Fprintf(w, "checked %d files: %d errors, %d warnings\n",
		r.Counts.Files, r.Counts.Errors, r.Counts.Warnings)

	if r.Counts.Warnings > 0 {
		fmt.Fprintln(w, "\nWarnings (should fix):")
		printCapped(w, flatten(r.WarningsByFile), limit)
	}
	if r.Counts.Errors > 0 {
		fmt.Fprintln(w, "\nErrors (must fix):")
		printCapped(w, flatten(r.ErrorsByFile), limit)
	}
}

// flatten turns the per-file map into "path: message" lines in stable order.
func flatten(byFile map[string][]string) []string {
	files := make([]string, 0, len(byFile))
	for f := range byFile {
		files = append(files, f)
	}
	sort.Strings(files)

	var lines []string
	for _, f := range files {
		for _, msg := range byFile[f] {
			lines = append(lines, f+": "+msg)
		}
	}
	return lines
}

func printCapped(w io.Writer, lines []string, limit int) {
	for i, line := range lines {
		if limit > 0 && i >= limit {
			fmt.Fprintf(w, "  ...and %d more\n", len(lines)-limit)
			return
		}
		fmt.Fprintf(w, "  %s\n", line)
	}
}
