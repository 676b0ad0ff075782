//go:build !ocr

// Package ocr turns scanned pages into positioned word tokens using the
// Tesseract OCR engine via gosseract.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// Constructing a source fails with ErrNotEnabled. To enable OCR, rebuild
// with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
package ocr

import (
	"image"

	"github.com/tsawler/roster/model"
)

// Source is a stub OCR source that cannot be constructed
type Source struct{}

// OpenSource returns ErrNotEnabled.
// To enable OCR, rebuild with: go build -tags ocr
func OpenSource(path string) (*Source, error) {
	return nil, ErrNotEnabled
}

// OpenSourceWithConfig returns ErrNotEnabled
func OpenSourceWithConfig(path string, config SourceConfig) (*Source, error) {
	return nil, ErrNotEnabled
}

// NewImageSource returns ErrNotEnabled
func NewImageSource(images ...image.Image) (*Source, error) {
	return nil, ErrNotEnabled
}

// NewImageSourceWithConfig returns ErrNotEnabled
func NewImageSourceWithConfig(config SourceConfig, images ...image.Image) (*Source, error) {
	return nil, ErrNotEnabled
}

// Close is a no-op for the stub source.
// It is safe to call on a nil source.
func (s *Source) Close() error {
	return nil
}

// PageCount returns 0 for the stub source
func (s *Source) PageCount() int {
	return 0
}

// Words returns ErrNotEnabled
func (s *Source) Words(page int) ([]model.Token, error) {
	return nil, ErrNotEnabled
}
