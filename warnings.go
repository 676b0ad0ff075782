package roster

import (
	"fmt"
	"strings"
)

// WarningKind categorizes a non-fatal problem encountered during extraction.
type WarningKind int

const (
	// WarnPageSkipped means a page's tokens could not be read. Records
	// from that page are missing from the result.
	WarnPageSkipped WarningKind = iota

	// WarnStrategyFallback means the single-column strategy was requested
	// but the source has no character-level tokens, so the two-column
	// strategy was used instead.
	WarnStrategyFallback
)

// String returns a human-readable name for the warning kind.
func (k WarningKind) String() string {
	switch k {
	case WarnPageSkipped:
		return "page skipped"
	case WarnStrategyFallback:
		return "strategy fallback"
	default:
		return "unknown"
	}
}

// Warning describes a non-fatal problem encountered during extraction.
// Processing continues past warnings; the affected records may be missing
// or imperfect in the result.
type Warning struct {
	// Kind categorizes the problem.
	Kind WarningKind

	// Page is the 1-indexed page the warning applies to, or 0 when the
	// warning is not tied to a page.
	Page int

	// Message describes what went wrong.
	Message string
}

// String formats the warning for display.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("%s (page %d): %s", w.Kind, w.Page, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}

// FormatWarnings joins warnings into a single display string.
//
// Example:
//
//	records, warnings, err := roster.Open("list.pdf").Records()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", roster.FormatWarnings(warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
