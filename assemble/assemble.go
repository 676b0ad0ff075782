// Package assemble builds participant records from positioned page tokens.
//
// Two assemblers cover the layouts that participant lists come in.
// [SingleColumn] reads pages as one column where bold lines name the
// delegation and the lines beneath describe one participant each.
// [TwoColumn] reads pages as two columns beneath all-caps delegation
// headers, one paragraph per participant. Both produce [model.Record]
// values in reading order.
package assemble

import "github.com/tsawler/roster/layout"

// Config holds configuration shared by the assemblers
type Config struct {
	// Line controls how tokens cluster into lines
	Line layout.LineConfig

	// Paragraph controls how lines group into paragraphs
	Paragraph layout.ParagraphConfig

	// XThreshold is the x coordinate separating the left column from the
	// right (default: 260.0)
	XThreshold float64
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		Line:       layout.DefaultLineConfig(),
		Paragraph:  layout.DefaultParagraphConfig(),
		XThreshold: 260.0,
	}
}
