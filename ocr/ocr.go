//go:build ocr

// Package ocr turns scanned pages into positioned word tokens using the
// Tesseract OCR engine via gosseract. It requires Tesseract to be installed
// on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"
	"sync"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/roster/model"
)

// Source recognizes document pages and serves the resulting word tokens.
// All pages are rendered and recognized once, concurrently, on the first
// call to Words; later calls serve cached results.
type Source struct {
	config SourceConfig

	doc    *fitz.Document
	images []image.Image

	once  sync.Once
	pages [][]model.Token
	errs  []error
}

// OpenSource opens the document at path for OCR with default configuration
func OpenSource(path string) (*Source, error) {
	return OpenSourceWithConfig(path, DefaultSourceConfig())
}

// OpenSourceWithConfig opens the document at path for OCR with custom configuration
func OpenSourceWithConfig(path string, config SourceConfig) (*Source, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	return &Source{config: config, doc: doc}, nil
}

// NewImageSource serves tokens recognized from already-decoded page images,
// one page per image, with default configuration
func NewImageSource(images ...image.Image) (*Source, error) {
	return NewImageSourceWithConfig(DefaultSourceConfig(), images...)
}

// NewImageSourceWithConfig serves tokens recognized from already-decoded
// page images with custom configuration
func NewImageSourceWithConfig(config SourceConfig, images ...image.Image) (*Source, error) {
	return &Source{config: config, images: images}, nil
}

// Close releases the underlying document
func (s *Source) Close() error {
	if s.doc != nil {
		return s.doc.Close()
	}
	return nil
}

// PageCount returns the number of pages the source will recognize
func (s *Source) PageCount() int {
	if s.doc != nil {
		return s.doc.NumPage()
	}
	return len(s.images)
}

// Words returns the word tokens recognized on the given page (1-based)
func (s *Source) Words(page int) ([]model.Token, error) {
	s.once.Do(s.recognizeAll)

	if page < 1 || page > len(s.pages) {
		return nil, fmt.Errorf("page %d: not found", page)
	}
	return s.pages[page-1], s.errs[page-1]
}

// recognizeAll renders and recognizes every page concurrently. Each worker
// creates its own Tesseract client; clients are not safe for concurrent use.
// Failures are recorded per page so one bad page does not lose the rest.
func (s *Source) recognizeAll() {
	n := s.PageCount()
	s.pages = make([][]model.Token, n)
	s.errs = make([]error, n)

	var g errgroup.Group
	g.SetLimit(s.workers())

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			tokens, err := s.recognizePage(i)
			s.pages[i] = tokens
			s.errs[i] = err
			return nil
		})
	}
	_ = g.Wait()
}

func (s *Source) workers() int {
	if s.config.Workers > 0 {
		return s.config.Workers
	}
	return 1
}

func (s *Source) dpi() float64 {
	if s.config.DPI > 0 {
		return float64(s.config.DPI)
	}
	return 300
}

// recognizePage renders page i (0-based) and runs Tesseract on it
func (s *Source) recognizePage(i int) ([]model.Token, error) {
	data, err := s.renderPNG(i)
	if err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if len(s.config.Languages) > 0 {
		if err := client.SetLanguage(s.config.Languages...); err != nil {
			return nil, fmt.Errorf("set language: %w", err)
		}
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}

	hocr, err := client.HOCRText()
	if err != nil {
		return nil, fmt.Errorf("recognize page %d: %w", i+1, err)
	}

	words, err := ParseHOCR(strings.NewReader(hocr))
	if err != nil {
		return nil, err
	}
	return Tokens(words, s.config.MinConfidence), nil
}

// renderPNG produces PNG bytes for page i (0-based), rendering the PDF page
// at the configured DPI or encoding the supplied image
func (s *Source) renderPNG(i int) ([]byte, error) {
	var img image.Image

	if s.doc != nil {
		rendered, err := s.doc.ImageDPI(i, s.dpi())
		if err != nil {
			return nil, fmt.Errorf("render page %d: %w", i+1, err)
		}
		img = rendered
	} else {
		img = s.images[i]
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode page %d: %w", i+1, err)
	}
	return buf.Bytes(), nil
}
