package ocr

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/roster/model"
)

// Word is one recognized word with its position on the rendered page and
// the engine's confidence in it
type Word struct {
	// Text is the recognized text, trimmed
	Text string

	// X0 is the left edge of the word's bounding box in pixels
	X0 float64

	// Top is the top edge of the word's bounding box in pixels
	Top float64

	// Confidence is the engine's word confidence, 0 to 100, or -1 when
	// the document does not report one
	Confidence float64
}

// ParseHOCR extracts the recognized words from an hOCR document. Words
// whose text is empty after trimming are dropped.
func ParseHOCR(r io.Reader) ([]Word, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse hocr: %w", err)
	}

	var words []Word
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocrx_word") {
			if w, ok := wordFromNode(n); ok {
				words = append(words, w)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return words, nil
}

// Tokens converts recognized words into layout tokens, dropping words whose
// confidence is below minConfidence
func Tokens(words []Word, minConfidence float64) []model.Token {
	tokens := make([]model.Token, 0, len(words))
	for _, w := range words {
		if w.Confidence < minConfidence {
			continue
		}
		tokens = append(tokens, model.Token{
			Text: w.Text,
			X0:   w.X0,
			Top:  w.Top,
		})
	}
	return tokens
}

// wordFromNode reads one ocrx_word element. The title attribute carries the
// geometry and confidence, e.g. "bbox 100 200 150 220; x_wconf 95".
func wordFromNode(n *html.Node) (Word, bool) {
	text := strings.TrimSpace(nodeText(n))
	if text == "" {
		return Word{}, false
	}

	w := Word{Text: text, Confidence: -1}
	for _, part := range strings.Split(attr(n, "title"), ";") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "bbox":
			if len(fields) < 5 {
				continue
			}
			x0, errX := strconv.ParseFloat(fields[1], 64)
			top, errY := strconv.ParseFloat(fields[2], 64)
			if errX == nil && errY == nil {
				w.X0 = x0
				w.Top = top
			}
		case "x_wconf":
			if len(fields) < 2 {
				continue
			}
			if conf, err := strconv.ParseFloat(fields[1], 64); err == nil {
				w.Confidence = conf
			}
		}
	}
	return w, true
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// nodeText concatenates the text content beneath n
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
