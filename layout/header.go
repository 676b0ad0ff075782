package layout

import (
	"sort"
	"strings"
	"unicode"
)

// Header is a delegation header positioned on the page. Entries below a
// header belong to its delegation until the next header begins.
type Header struct {
	// Name is the delegation name: the header text before any slash
	Name string

	// MidY is the vertical midpoint of the header's paragraph
	MidY float64
}

// IsHeaderText reports whether s looks like a delegation header: non-empty
// after trimming, and containing only uppercase letters, spaces, and
// slashes. Multilingual headers like "SWITZERLAND / SUISSE / SUIZA"
// qualify; anything with digits or lowercase does not.
func IsHeaderText(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsUpper(r) && r != ' ' && r != '/' {
			return false
		}
	}
	return true
}

// HeaderName returns the delegation name for a header line: the text
// before the first slash, trimmed.
func HeaderName(s string) string {
	if i := strings.Index(s, "/"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// CollectHeaders returns the delegation headers among paragraphs: every
// single-line paragraph whose text qualifies per IsHeaderText, sorted by
// vertical midpoint.
func CollectHeaders(paragraphs []Paragraph) []Header {
	var headers []Header
	for i := range paragraphs {
		para := &paragraphs[i]
		if len(para.Lines) != 1 || !IsHeaderText(para.Lines[0]) {
			continue
		}
		headers = append(headers, Header{
			Name: HeaderName(para.Lines[0]),
			MidY: para.MidY(),
		})
	}

	sort.SliceStable(headers, func(i, j int) bool {
		return headers[i].MidY < headers[j].MidY
	})

	return headers
}

// ResolveDelegation returns the name of the last header at or above the
// given midpoint. Content above the first header resolves to "".
func ResolveDelegation(headers []Header, midY float64) string {
	name := ""
	for _, h := range headers {
		if h.MidY > midY {
			break
		}
		name = h.Name
	}
	return name
}
