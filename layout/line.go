// Package layout provides document layout analysis including line clustering,
// paragraph segmentation, column splitting, and header identification.
package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/roster/model"
)

// Granularity selects how a line's member tokens are joined into text
type Granularity int

const (
	// Chars treats tokens as single characters: text is concatenated with
	// no separator and the assembled line is trimmed
	Chars Granularity = iota

	// Words treats tokens as whole words: text is joined with single
	// spaces and the assembled line is kept as joined
	Words
)

// String returns a string representation of the granularity
func (g Granularity) String() string {
	if g == Words {
		return "words"
	}
	return "chars"
}

// Line represents a single reconstructed line of text on a page
type Line struct {
	// Text is the assembled text content of the line
	Text string

	// Y0 is the top coordinate of the line's first token
	Y0 float64

	// Y1 is the top coordinate of the last token appended to the line
	Y1 float64

	// Bold reports whether any member token used a bold font
	Bold bool
}

// IsEmpty returns true if the line has no text content
func (l *Line) IsEmpty() bool {
	if l == nil {
		return true
	}
	return strings.TrimSpace(l.Text) == ""
}

// MidY returns the vertical midpoint of the line
func (l *Line) MidY() float64 {
	if l == nil {
		return 0
	}
	return (l.Y0 + l.Y1) / 2
}

// LineConfig holds configuration for line clustering
type LineConfig struct {
	// YTolerance is the maximum difference between a token's top and the
	// top of the line's previously appended token for the token to join
	// the line (default: 3.0)
	YTolerance float64
}

// DefaultLineConfig returns sensible default configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{
		YTolerance: 3.0,
	}
}

// LineClusterer groups positioned tokens into text lines
type LineClusterer struct {
	config LineConfig
}

// NewLineClusterer creates a new line clusterer with default configuration
func NewLineClusterer() *LineClusterer {
	return &LineClusterer{
		config: DefaultLineConfig(),
	}
}

// NewLineClustererWithConfig creates a line clusterer with custom configuration
func NewLineClustererWithConfig(config LineConfig) *LineClusterer {
	return &LineClusterer{
		config: config,
	}
}

// Cluster groups tokens into lines and assembles their text.
// Tokens are sorted by (top, x0); a token joins the current line while its
// top stays within YTolerance of the last appended token's top, so lines
// can follow a slowly drifting baseline. Returns nil for empty input.
func (c *LineClusterer) Cluster(tokens []model.Token, granularity Granularity) []Line {
	if len(tokens) == 0 {
		return nil
	}

	sorted := make([]model.Token, len(tokens))
	copy(sorted, tokens)
	sortByPosition(sorted)

	var lines []Line
	current := []model.Token{sorted[0]}
	y0 := sorted[0].Top
	y1 := sorted[0].Top

	for _, tok := range sorted[1:] {
		if absFloat64(tok.Top-y1) <= c.config.YTolerance {
			current = append(current, tok)
			y1 = tok.Top
			continue
		}

		lines = append(lines, buildLine(current, y0, y1, granularity))
		current = []model.Token{tok}
		y0 = tok.Top
		y1 = tok.Top
	}

	// Don't forget the last line
	lines = append(lines, buildLine(current, y0, y1, granularity))

	return lines
}

// buildLine assembles a Line from member tokens. Tokens re-sort by x0 so
// the text reads left to right regardless of stream order.
func buildLine(tokens []model.Token, y0, y1 float64, granularity Granularity) Line {
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].X0 < tokens[j].X0
	})

	var sb strings.Builder
	bold := false
	for i, tok := range tokens {
		if granularity == Words && i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.Text)
		if tok.Bold {
			bold = true
		}
	}

	text := sb.String()
	if granularity == Chars {
		text = strings.TrimSpace(text)
	}

	return Line{
		Text: text,
		Y0:   y0,
		Y1:   y1,
		Bold: bold,
	}
}
