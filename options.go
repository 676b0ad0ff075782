package roster

import (
	"fmt"
	"strings"
)

// LayoutMode selects the record-assembly strategy.
type LayoutMode int

const (
	// LayoutAuto samples the first pages of the document and picks a
	// strategy based on how tokens spread across the page width.
	LayoutAuto LayoutMode = iota

	// LayoutSingle forces the single-column strategy: bold delegation
	// headers with participants listed beneath them.
	LayoutSingle

	// LayoutTwo forces the two-column strategy: all-caps delegation
	// headers spanning two columns of participant paragraphs.
	LayoutTwo
)

// String returns the command-line spelling of the mode.
func (m LayoutMode) String() string {
	switch m {
	case LayoutSingle:
		return "one"
	case LayoutTwo:
		return "two"
	default:
		return "auto"
	}
}

// ParseLayoutMode converts the command-line spelling of a layout mode
// ("auto", "one" or "two") into a LayoutMode.
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return LayoutAuto, nil
	case "one":
		return LayoutSingle, nil
	case "two":
		return LayoutTwo, nil
	}
	return LayoutAuto, fmt.Errorf("unknown layout mode %q", s)
}

// ExtractOptions holds configuration for record extraction.
type ExtractOptions struct {
	// Layout strategy
	layout     LayoutMode
	xThreshold float64

	// OCR pipeline
	forceOCR      bool
	ocrDPI        int
	ocrLanguages  []string
	minConfidence int
	workers       int
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		layout:        LayoutAuto,
		xThreshold:    260.0,
		forceOCR:      false,
		ocrDPI:        300,
		ocrLanguages:  []string{"eng"},
		minConfidence: 0,
		workers:       0, // 0 means one recognizer per CPU
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		layout:        o.layout,
		xThreshold:    o.xThreshold,
		forceOCR:      o.forceOCR,
		ocrDPI:        o.ocrDPI,
		minConfidence: o.minConfidence,
		workers:       o.workers,
	}

	// Deep copy languages slice
	if o.ocrLanguages != nil {
		newOpts.ocrLanguages = make([]string, len(o.ocrLanguages))
		copy(newOpts.ocrLanguages, o.ocrLanguages)
	}

	return newOpts
}
