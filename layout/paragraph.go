package layout

import "sort"

// Paragraph represents a run of consecutive lines separated from its
// neighbors by a larger-than-typical vertical gap
type Paragraph struct {
	// Lines are the text contents of the member lines, in reading order
	Lines []string

	// Y0 is the Y0 of the paragraph's first line
	Y0 float64

	// Y1 is the Y1 of the paragraph's last line
	Y1 float64
}

// MidY returns the vertical midpoint of the paragraph
func (p *Paragraph) MidY() float64 {
	if p == nil {
		return 0
	}
	return (p.Y0 + p.Y1) / 2
}

// LineCount returns the number of lines in the paragraph
func (p *Paragraph) LineCount() int {
	if p == nil {
		return 0
	}
	return len(p.Lines)
}

// ParagraphConfig holds configuration for paragraph segmentation
type ParagraphConfig struct {
	// GapFactor is the multiplier applied to the median line gap; a gap
	// between line midpoints larger than median*GapFactor starts a new
	// paragraph (default: 1.5)
	GapFactor float64
}

// DefaultParagraphConfig returns sensible default configuration
func DefaultParagraphConfig() ParagraphConfig {
	return ParagraphConfig{
		GapFactor: 1.5,
	}
}

// ParagraphSegmenter groups lines into paragraphs by vertical gap analysis
type ParagraphSegmenter struct {
	config ParagraphConfig
}

// NewParagraphSegmenter creates a new paragraph segmenter with default configuration
func NewParagraphSegmenter() *ParagraphSegmenter {
	return &ParagraphSegmenter{
		config: DefaultParagraphConfig(),
	}
}

// NewParagraphSegmenterWithConfig creates a paragraph segmenter with custom configuration
func NewParagraphSegmenterWithConfig(config ParagraphConfig) *ParagraphSegmenter {
	return &ParagraphSegmenter{
		config: config,
	}
}

// Segment splits lines into paragraphs. The gap between consecutive line
// midpoints is compared to the median gap across the whole input: a gap
// strictly greater than median*GapFactor starts a new paragraph. A single
// line yields a single paragraph; empty input yields nil.
func (s *ParagraphSegmenter) Segment(lines []Line) []Paragraph {
	if len(lines) == 0 {
		return nil
	}

	mids := make([]float64, len(lines))
	for i := range lines {
		mids[i] = (lines[i].Y0 + lines[i].Y1) / 2
	}

	if len(lines) == 1 {
		return []Paragraph{{
			Lines: []string{lines[0].Text},
			Y0:    lines[0].Y0,
			Y1:    lines[0].Y1,
		}}
	}

	threshold := medianGap(mids) * s.config.GapFactor

	var paragraphs []Paragraph
	current := Paragraph{
		Lines: []string{lines[0].Text},
		Y0:    lines[0].Y0,
		Y1:    lines[0].Y1,
	}

	for i := 1; i < len(lines); i++ {
		if mids[i]-mids[i-1] > threshold {
			paragraphs = append(paragraphs, current)
			current = Paragraph{Y0: lines[i].Y0}
		}
		current.Lines = append(current.Lines, lines[i].Text)
		current.Y1 = lines[i].Y1
	}
	paragraphs = append(paragraphs, current)

	return paragraphs
}

// medianGap returns the upper median of the differences between
// consecutive midpoints.
func medianGap(mids []float64) float64 {
	gaps := make([]float64, len(mids)-1)
	for i := range gaps {
		gaps[i] = mids[i+1] - mids[i]
	}
	sort.Float64s(gaps)
	return gaps[len(gaps)/2]
}
