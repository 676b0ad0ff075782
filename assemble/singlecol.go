package assemble

import (
	"strings"

	"github.com/tsawler/roster/honorific"
	"github.com/tsawler/roster/layout"
	"github.com/tsawler/roster/model"
)

// SingleColumn extracts records from pages laid out as one column where
// bold lines carry the delegation names
type SingleColumn struct {
	lines *layout.LineClusterer
}

// NewSingleColumn creates a single-column assembler with default configuration
func NewSingleColumn() *SingleColumn {
	return NewSingleColumnWithConfig(DefaultConfig())
}

// NewSingleColumnWithConfig creates a single-column assembler with custom configuration
func NewSingleColumnWithConfig(config Config) *SingleColumn {
	return &SingleColumn{
		lines: layout.NewLineClustererWithConfig(config.Line),
	}
}

// Assemble walks one page's tokens in reading order. A bold line names the
// delegation for everything beneath it. Each following non-bold line starts
// a participant: the line itself splits into honorific and person name, and
// the non-bold non-empty lines after it join into the affiliation. Lines
// before the first delegation are skipped.
func (a *SingleColumn) Assemble(tokens []model.Token) []model.Record {
	lines := a.lines.Cluster(tokens, layout.Chars)

	var records []model.Record
	delegation := ""
	i := 0
	for i < len(lines) {
		line := lines[i]

		if line.Bold && line.Text != "" {
			delegation = layout.HeaderName(line.Text)
			i++
			continue
		}

		if delegation != "" && line.Text != "" {
			hon, person := honorific.Match(line.Text)
			i++

			var parts []string
			for i < len(lines) && !lines[i].Bold && strings.TrimSpace(lines[i].Text) != "" {
				parts = append(parts, strings.TrimSpace(lines[i].Text))
				i++
			}

			records = append(records, model.Record{
				Delegation:  delegation,
				Honorific:   hon,
				PersonName:  person,
				Affiliation: strings.TrimSpace(strings.Join(parts, " ")),
			})
			continue
		}

		i++
	}

	return records
}
