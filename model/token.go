package model

// Token is a single positioned unit of page text. Depending on the source
// it is either one character (text-layer extraction) or one word
// (word-level extraction, OCR). Coordinates are top-down: Top is the
// distance from the top edge of the page.
type Token struct {
	// Text is the token's text content
	Text string

	// X0 is the left edge of the token in page coordinates
	X0 float64

	// Top is the distance from the top of the page to the token
	Top float64

	// FontName is the PostScript font name, when the source knows it.
	// Word-level and OCR tokens leave it empty.
	FontName string

	// Bold reports whether the token was set in a bold font
	Bold bool
}
