// Package layout provides document layout analysis including column
// splitting and layout mode detection.
package layout

import (
	"sort"

	"github.com/tsawler/roster/model"
)

// Mode identifies the page layout an extraction strategy should assume
type Mode int

const (
	// ModeSingle is a single column of text spanning the page
	ModeSingle Mode = iota

	// ModeTwo is two columns split at a fixed x coordinate
	ModeTwo
)

// String returns a string representation of the mode
func (m Mode) String() string {
	if m == ModeTwo {
		return "two"
	}
	return "one"
}

// SplitColumns partitions tokens at the given x boundary and returns the
// left (x0 < xThreshold) and right (x0 >= xThreshold) streams, each sorted
// by (top, x0).
func SplitColumns(tokens []model.Token, xThreshold float64) (left, right []model.Token) {
	for _, tok := range tokens {
		if tok.X0 < xThreshold {
			left = append(left, tok)
		} else {
			right = append(right, tok)
		}
	}
	sortByPosition(left)
	sortByPosition(right)
	return left, right
}

// ModeConfig holds configuration for layout mode detection
type ModeConfig struct {
	// XThreshold is the column split boundary in page coordinates
	// (default: 260.0)
	XThreshold float64

	// MinColumnShare is the minimum fraction of a page's tokens each side
	// of the boundary must hold for the page to count as two-column
	// (default: 0.25)
	MinColumnShare float64

	// SamplePages is the maximum number of pages to examine
	// (default: 2)
	SamplePages int
}

// DefaultModeConfig returns sensible default configuration
func DefaultModeConfig() ModeConfig {
	return ModeConfig{
		XThreshold:     260.0,
		MinColumnShare: 0.25,
		SamplePages:    2,
	}
}

// ModeDetector decides whether pages are laid out in one column or two
type ModeDetector struct {
	config ModeConfig
}

// NewModeDetector creates a new mode detector with default configuration
func NewModeDetector() *ModeDetector {
	return &ModeDetector{
		config: DefaultModeConfig(),
	}
}

// NewModeDetectorWithConfig creates a mode detector with custom configuration
func NewModeDetectorWithConfig(config ModeConfig) *ModeDetector {
	return &ModeDetector{
		config: config,
	}
}

// Detect examines up to SamplePages pages of word tokens. The first page
// where both sides of the x boundary hold at least MinColumnShare of the
// tokens decides ModeTwo; empty pages are skipped; anything else,
// including an empty sample, resolves to ModeSingle.
func (d *ModeDetector) Detect(pages [][]model.Token) Mode {
	sample := pages
	if d.config.SamplePages > 0 && len(sample) > d.config.SamplePages {
		sample = sample[:d.config.SamplePages]
	}

	for _, tokens := range sample {
		if len(tokens) == 0 {
			continue
		}

		left := 0
		for _, tok := range tokens {
			if tok.X0 < d.config.XThreshold {
				left++
			}
		}
		right := len(tokens) - left
		total := float64(len(tokens))

		if float64(left)/total >= d.config.MinColumnShare && float64(right)/total >= d.config.MinColumnShare {
			return ModeTwo
		}
	}

	return ModeSingle
}

// sortByPosition sorts tokens by (top, x0) in place
func sortByPosition(tokens []model.Token) {
	sort.SliceStable(tokens, func(i, j int) bool {
		if tokens[i].Top != tokens[j].Top {
			return tokens[i].Top < tokens[j].Top
		}
		return tokens[i].X0 < tokens[j].X0
	})
}

// absFloat64 returns absolute value of float64
func absFloat64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
