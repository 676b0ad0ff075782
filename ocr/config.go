package ocr

import (
	"errors"
	"runtime"
)

// ErrNotEnabled is returned when OCR operations are invoked but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// SourceConfig holds configuration for an OCR token source
type SourceConfig struct {
	// DPI is the resolution pages are rendered at before recognition
	// (default: 300)
	DPI int

	// Languages are the Tesseract language codes to recognize
	// (default: eng)
	Languages []string

	// Workers caps how many pages are recognized concurrently
	// (default: number of CPUs)
	Workers int

	// MinConfidence drops recognized words whose confidence is below this
	// value, on the engine's 0 to 100 scale (default: 0, keeping every
	// word the engine reports)
	MinConfidence float64
}

// DefaultSourceConfig returns sensible default configuration
func DefaultSourceConfig() SourceConfig {
	return SourceConfig{
		DPI:           300,
		Languages:     []string{"eng"},
		Workers:       runtime.NumCPU(),
		MinConfidence: 0,
	}
}
