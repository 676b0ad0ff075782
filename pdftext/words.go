package pdftext

import (
	"sort"
	"strings"

	"github.com/tsawler/roster/model"
)

const (
	// wordXTolerance is the widest horizontal gap between glyphs that still
	// belong to one word
	wordXTolerance = 3.0

	// wordYTolerance is the maximum difference between glyph tops on one row
	wordYTolerance = 3.0
)

// Words returns word tokens assembled from the glyphs of the given page
// (1-based). Glyphs on a shared baseline merge into one word until a
// whitespace glyph or a horizontal gap wider than wordXTolerance splits
// them. Word tokens carry no font information; callers that need bold
// runs read Chars instead.
func (r *Reader) Words(page int) ([]model.Token, error) {
	glyphs, err := r.glyphs(page)
	if err != nil {
		return nil, err
	}
	return mergeWords(glyphs), nil
}

// mergeWords assembles word tokens from loose glyphs. Glyphs group into
// rows by top with chained tolerance, then each row splits into words.
// Whitespace glyphs separate words and are dropped.
func mergeWords(glyphs []glyph) []model.Token {
	if len(glyphs) == 0 {
		return nil
	}

	sorted := make([]glyph, len(glyphs))
	copy(sorted, glyphs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].top != sorted[j].top {
			return sorted[i].top < sorted[j].top
		}
		return sorted[i].x0 < sorted[j].x0
	})

	var tokens []model.Token

	row := []glyph{sorted[0]}
	rowTop := sorted[0].top
	for _, g := range sorted[1:] {
		if absFloat64(g.top-rowTop) <= wordYTolerance {
			row = append(row, g)
			rowTop = g.top
			continue
		}
		tokens = append(tokens, splitRow(row)...)
		row = []glyph{g}
		rowTop = g.top
	}

	// Don't forget the last row
	tokens = append(tokens, splitRow(row)...)

	return tokens
}

// splitRow breaks one row of glyphs into word tokens. A word's X0 is its
// first glyph's and its Top is the smallest top among its glyphs.
func splitRow(row []glyph) []model.Token {
	sort.SliceStable(row, func(i, j int) bool {
		return row[i].x0 < row[j].x0
	})

	var tokens []model.Token
	var current []glyph

	flush := func() {
		if len(current) == 0 {
			return
		}
		var sb strings.Builder
		top := current[0].top
		for _, g := range current {
			sb.WriteString(g.text)
			if g.top < top {
				top = g.top
			}
		}
		tokens = append(tokens, model.Token{
			Text: sb.String(),
			X0:   current[0].x0,
			Top:  top,
		})
		current = nil
	}

	prevX1 := 0.0
	for _, g := range row {
		if strings.TrimSpace(g.text) == "" {
			flush()
			prevX1 = g.x1
			continue
		}
		if len(current) > 0 && g.x0-prevX1 > wordXTolerance {
			flush()
		}
		current = append(current, g)
		prevX1 = g.x1
	}
	flush()

	return tokens
}

func absFloat64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
