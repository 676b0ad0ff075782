package assemble

import (
	"strings"

	"github.com/tsawler/roster/honorific"
	"github.com/tsawler/roster/layout"
	"github.com/tsawler/roster/model"
)

// TwoColumn extracts records from pages laid out as two columns beneath
// all-caps delegation headers that span the page
type TwoColumn struct {
	config Config
	lines  *layout.LineClusterer
	paras  *layout.ParagraphSegmenter
}

// NewTwoColumn creates a two-column assembler with default configuration
func NewTwoColumn() *TwoColumn {
	return NewTwoColumnWithConfig(DefaultConfig())
}

// NewTwoColumnWithConfig creates a two-column assembler with custom configuration
func NewTwoColumnWithConfig(config Config) *TwoColumn {
	return &TwoColumn{
		config: config,
		lines:  layout.NewLineClustererWithConfig(config.Line),
		paras:  layout.NewParagraphSegmenterWithConfig(config.Paragraph),
	}
}

// Assemble extracts one page's records. Delegation headers are detected on
// the full token set so a header centered over both columns is seen once.
// The tokens then split at the column threshold and each column's
// paragraphs read as one participant each: the first line is the name, the
// remaining lines are the affiliation. A paragraph takes the delegation of
// the nearest header above its vertical midpoint; paragraphs above the
// first header get an empty delegation. The left column is read before the
// right.
func (a *TwoColumn) Assemble(tokens []model.Token) []model.Record {
	if len(tokens) == 0 {
		return nil
	}

	fullLines := a.lines.Cluster(tokens, layout.Words)
	headers := layout.CollectHeaders(a.paras.Segment(fullLines))

	left, right := layout.SplitColumns(tokens, a.config.XThreshold)

	records := a.assembleColumn(left, headers)
	records = append(records, a.assembleColumn(right, headers)...)

	return records
}

// assembleColumn reads one column's paragraphs as participant entries
func (a *TwoColumn) assembleColumn(column []model.Token, headers []layout.Header) []model.Record {
	if len(column) == 0 {
		return nil
	}

	lines := a.lines.Cluster(column, layout.Words)
	paragraphs := a.paras.Segment(lines)

	var records []model.Record
	for _, para := range paragraphs {
		// Headers repeat inside the columns; they are not participants
		if para.LineCount() == 1 && layout.IsHeaderText(para.Lines[0]) {
			continue
		}
		if len(para.Lines) == 0 {
			continue
		}

		hon, person := honorific.Match(para.Lines[0])

		parts := make([]string, 0, len(para.Lines)-1)
		for _, ln := range para.Lines[1:] {
			parts = append(parts, strings.TrimSpace(ln))
		}

		records = append(records, model.Record{
			Delegation:  layout.ResolveDelegation(headers, para.MidY()),
			Honorific:   hon,
			PersonName:  person,
			Affiliation: strings.TrimSpace(strings.Join(parts, " ")),
		})
	}

	return records
}
