// Package pdftext extracts positioned text tokens from PDFs that carry a
// text layer.
//
// A [Reader] exposes each page's content at two granularities: [Reader.Chars]
// returns one token per glyph with its font name, and [Reader.Words] returns
// tokens assembled from adjacent glyphs the way a human reads words. All
// coordinates are top-down: a token's Top grows toward the bottom of the
// page.
package pdftext

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/roster/model"
)

// Reader extracts character and word tokens from a text PDF
type Reader struct {
	file *os.File
	r    *pdf.Reader
}

// Open opens the PDF at path for token extraction. The returned Reader
// holds the file open until Close is called.
func Open(path string) (*Reader, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &Reader{file: f, r: r}, nil
}

// Close releases the underlying file
func (r *Reader) Close() error {
	return r.file.Close()
}

// PageCount returns the number of pages in the document
func (r *Reader) PageCount() int {
	return r.r.NumPage()
}

// Chars returns one token per glyph on the given page (1-based), in content
// stream order. Bold is read from the glyph's font name.
func (r *Reader) Chars(page int) ([]model.Token, error) {
	glyphs, err := r.glyphs(page)
	if err != nil {
		return nil, err
	}

	tokens := make([]model.Token, 0, len(glyphs))
	for _, g := range glyphs {
		tokens = append(tokens, model.Token{
			Text:     g.text,
			X0:       g.x0,
			Top:      g.top,
			FontName: g.font,
			Bold:     strings.Contains(g.font, "Bold"),
		})
	}
	return tokens, nil
}

// glyph is one positioned character from a page's content stream
type glyph struct {
	text string
	x0   float64
	x1   float64
	top  float64
	font string
}

// glyphs reads the page's characters and converts their coordinates to
// top-down. The content stream parser panics on malformed input, so the
// call is wrapped in a recover that surfaces the panic as an error.
func (r *Reader) glyphs(page int) (out []glyph, err error) {
	defer func() {
		if p := recover(); p != nil {
			out = nil
			err = fmt.Errorf("page %d: malformed content: %v", page, p)
		}
	}()

	p := r.r.Page(page)
	if p.V.IsNull() {
		return nil, fmt.Errorf("page %d: not found", page)
	}

	height := pageHeight(p)
	content := p.Content()

	out = make([]glyph, 0, len(content.Text))
	for _, t := range content.Text {
		out = append(out, glyph{
			text: t.S,
			x0:   t.X,
			x1:   t.X + t.W,
			top:  height - t.Y,
			font: t.Font,
		})
	}
	return out, nil
}

// pageHeight resolves the page's MediaBox height, walking up the page tree
// when the box is inherited
func pageHeight(p pdf.Page) float64 {
	v := p.V
	for !v.IsNull() {
		if box := v.Key("MediaBox"); !box.IsNull() && box.Len() == 4 {
			return box.Index(3).Float64() - box.Index(1).Float64()
		}
		v = v.Key("Parent")
	}
	return 0
}
