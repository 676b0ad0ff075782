package roster

import (
	"fmt"

	"github.com/tsawler/roster/assemble"
	"github.com/tsawler/roster/format"
	"github.com/tsawler/roster/layout"
	"github.com/tsawler/roster/model"
	"github.com/tsawler/roster/ocr"
	"github.com/tsawler/roster/pdftext"
	"github.com/tsawler/roster/writer"
)

// PageSource supplies positioned word tokens one page at a time. Pages are
// 1-indexed. The package ships two implementations: pdftext.Reader for PDFs
// with a text layer and ocr.Source for scanned documents and images.
type PageSource interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// Words returns the word tokens of the given page.
	Words(page int) ([]model.Token, error)

	// Close releases resources held by the source.
	Close() error
}

// CharSource is a PageSource that can also supply character-level tokens.
// The single-column strategy needs individual characters to follow bold
// runs; sources without them are handled with the two-column strategy.
type CharSource interface {
	PageSource

	// Chars returns the character tokens of the given page.
	Chars(page int) ([]model.Token, error)
}

// Extractor provides a fluent interface for extracting participant records
// from PDF rosters, scanned PDFs, and images.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string

	// Token source (PDF text layer, OCR, or injected via FromSource)
	source PageSource

	// Lifecycle
	ownsSource   bool // true if we opened the source and should close it
	sourceOpened bool // true if source has been opened
	ocrPipeline  bool // true when tokens come from OCR; recognized pages are always two-column

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	newExt := &Extractor{
		filename:     e.filename,
		source:       e.source,
		ownsSource:   e.ownsSource,
		sourceOpened: e.sourceOpened,
		ocrPipeline:  e.ocrPipeline,
		options:      e.options.clone(),
		err:          e.err,
		warnings:     append([]Warning(nil), e.warnings...),
	}
	return newExt
}

// ensureSource opens the token source if not already open.
func (e *Extractor) ensureSource() error {
	if e.sourceOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	f, err := format.DetectFile(e.filename)
	if err != nil {
		return fmt.Errorf("failed to detect format: %w", err)
	}

	switch {
	case f.IsImage():
		img, err := ocr.LoadImage(e.filename)
		if err != nil {
			return fmt.Errorf("failed to open image: %w", err)
		}
		src, err := ocr.NewImageSourceWithConfig(e.ocrConfig(), img)
		if err != nil {
			return err
		}
		e.source = src
		e.ocrPipeline = true

	case f == format.PDF && e.options.forceOCR:
		src, err := ocr.OpenSourceWithConfig(e.filename, e.ocrConfig())
		if err != nil {
			return err
		}
		e.source = src
		e.ocrPipeline = true

	case f == format.PDF:
		r, err := pdftext.Open(e.filename)
		if err != nil {
			return fmt.Errorf("failed to open PDF: %w", err)
		}
		e.source = r

	default:
		return fmt.Errorf("unsupported file format: %s", f)
	}

	e.ownsSource = true
	e.sourceOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsSource && e.source != nil {
		err := e.source.Close()
		e.source = nil
		e.ownsSource = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Layout forces a record-assembly strategy instead of sampling the
// document. The default, LayoutAuto, examines the first two pages.
//
// Example:
//
//	records, _, err := roster.Open("list.pdf").Layout(roster.LayoutTwo).Records()
func (e *Extractor) Layout(mode LayoutMode) *Extractor {
	newExt := e.clone()
	newExt.options.layout = mode
	return newExt
}

// XThreshold sets the x coordinate that separates the left column from the
// right on two-column pages. The default of 260 suits A4 and letter pages
// at their native scale.
//
// Example:
//
//	records, _, err := roster.Open("wide.pdf").XThreshold(300).Records()
func (e *Extractor) XThreshold(x float64) *Extractor {
	newExt := e.clone()
	newExt.options.xThreshold = x
	return newExt
}

// ForceOCR rasterizes pages and recognizes them with Tesseract even when
// the document has a text layer. Use it for image-only PDFs or when the
// embedded text is garbage. Recognized pages are always assembled with the
// two-column strategy; the Layout setting does not apply.
//
// Example:
//
//	n, _, err := roster.Open("scan.pdf").ForceOCR().Write("out.csv")
func (e *Extractor) ForceOCR() *Extractor {
	newExt := e.clone()
	newExt.options.forceOCR = true
	return newExt
}

// OCRDPI sets the resolution pages are rasterized at before recognition.
// Higher values help with small print at the cost of speed and memory.
//
// Example:
//
//	records, _, err := roster.Open("scan.pdf").ForceOCR().OCRDPI(400).Records()
func (e *Extractor) OCRDPI(dpi int) *Extractor {
	newExt := e.clone()
	newExt.options.ocrDPI = dpi
	return newExt
}

// OCRLanguage sets the Tesseract language models used for recognition.
// Each language must be installed on the host.
//
// Example:
//
//	records, _, err := roster.Open("scan.pdf").ForceOCR().OCRLanguage("eng", "fra").Records()
func (e *Extractor) OCRLanguage(langs ...string) *Extractor {
	newExt := e.clone()
	newExt.options.ocrLanguages = append([]string(nil), langs...)
	return newExt
}

// MinConfidence drops recognized words scoring below conf (0 to 100).
// The default of 0 keeps every scored word and drops only words the engine
// could not score at all.
//
// Example:
//
//	records, _, err := roster.Open("scan.pdf").ForceOCR().MinConfidence(60).Records()
func (e *Extractor) MinConfidence(conf int) *Extractor {
	newExt := e.clone()
	newExt.options.minConfidence = conf
	return newExt
}

// Workers caps the number of pages recognized concurrently. The default is
// one recognizer per CPU.
//
// Example:
//
//	records, _, err := roster.Open("scan.pdf").ForceOCR().Workers(2).Records()
func (e *Extractor) Workers(n int) *Extractor {
	newExt := e.clone()
	newExt.options.workers = n
	return newExt
}

// PageCount returns the number of pages in the document.
// Note: This opens the source if needed. The source remains open.
//
// Example:
//
//	ext := roster.Open("list.pdf")
//	defer ext.Close()
//	count, err := ext.PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	if err := e.ensureSource(); err != nil {
		return 0, err
	}

	return e.source.PageCount(), nil
}

// DetectLayout samples the first pages and reports whether the document
// looks single-column or two-column. A document that cannot be sampled
// reads as single-column.
// Note: This opens the source if needed. The source remains open.
//
// Example:
//
//	ext := roster.Open("list.pdf")
//	defer ext.Close()
//	mode, err := ext.DetectLayout()
func (e *Extractor) DetectLayout() (layout.Mode, error) {
	if e.err != nil {
		return layout.ModeSingle, e.err
	}

	if err := e.ensureSource(); err != nil {
		return layout.ModeSingle, err
	}

	return e.detectMode(), nil
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Records extracts participant records from every page of the document.
// This is a terminal operation that closes the underlying source.
//
// Returns the records in page order (left column before right on two-column
// pages), any warnings encountered during processing, and an error if
// extraction failed. Warnings indicate non-fatal issues (e.g., a page that
// could not be read) where extraction succeeded but records may be missing.
//
// Example:
//
//	records, warnings, err := roster.Open("participants.pdf").Records()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", roster.FormatWarnings(warnings))
//	}
func (e *Extractor) Records() ([]model.Record, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureSource(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	// Recognized pages carry no font information, so the bold-header
	// single-column strategy never applies to them.
	if e.ocrPipeline {
		return e.twoColumnRecords()
	}

	mode := e.resolveMode()
	if mode == layout.ModeSingle {
		if chars, ok := e.source.(CharSource); ok {
			return e.singleColumnRecords(chars)
		}
		e.warn(WarnStrategyFallback, 0, "source has no character tokens; using the two-column strategy")
	}

	return e.twoColumnRecords()
}

// Write extracts records and writes them to path. The extension picks the
// encoding: .xlsx and .xls produce a workbook, anything else produces
// UTF-8 CSV with a byte order mark. This is a terminal operation that
// closes the underlying source.
//
// Returns the number of data rows written, excluding the header row.
//
// Example:
//
//	n, warnings, err := roster.Open("participants.pdf").Write("participants.xlsx")
func (e *Extractor) Write(path string) (int, []Warning, error) {
	records, warnings, err := e.Records()
	if err != nil {
		return 0, warnings, err
	}

	n, err := writer.Write(path, records)
	if err != nil {
		return 0, warnings, err
	}
	return n, warnings, nil
}

// warn appends a warning to the extractor.
func (e *Extractor) warn(kind WarningKind, page int, message string) {
	e.warnings = append(e.warnings, Warning{Kind: kind, Page: page, Message: message})
}

// resolveMode applies a forced layout or falls back to detection.
func (e *Extractor) resolveMode() layout.Mode {
	switch e.options.layout {
	case LayoutSingle:
		return layout.ModeSingle
	case LayoutTwo:
		return layout.ModeTwo
	}
	return e.detectMode()
}

// detectMode samples word tokens from the first pages of the open source.
// A page that cannot be read contributes nothing to the sample; a document
// with no readable sample pages reads as single-column.
func (e *Extractor) detectMode() layout.Mode {
	detector := layout.NewModeDetectorWithConfig(layout.ModeConfig{
		XThreshold:     e.options.xThreshold,
		MinColumnShare: layout.DefaultModeConfig().MinColumnShare,
		SamplePages:    layout.DefaultModeConfig().SamplePages,
	})

	sample := layout.DefaultModeConfig().SamplePages
	if e.source.PageCount() < sample {
		sample = e.source.PageCount()
	}

	pages := make([][]model.Token, 0, sample)
	for page := 1; page <= sample; page++ {
		tokens, err := e.source.Words(page)
		if err != nil {
			continue
		}
		pages = append(pages, tokens)
	}

	return detector.Detect(pages)
}

// singleColumnRecords assembles records from character tokens page by page.
func (e *Extractor) singleColumnRecords(src CharSource) ([]model.Record, []Warning, error) {
	asm := assemble.NewSingleColumnWithConfig(e.assembleConfig())

	var records []model.Record
	for page := 1; page <= src.PageCount(); page++ {
		tokens, err := src.Chars(page)
		if err != nil {
			e.warn(WarnPageSkipped, page, err.Error())
			continue
		}
		records = append(records, asm.Assemble(tokens)...)
	}

	return records, e.warnings, nil
}

// twoColumnRecords assembles records from word tokens page by page.
func (e *Extractor) twoColumnRecords() ([]model.Record, []Warning, error) {
	asm := assemble.NewTwoColumnWithConfig(e.assembleConfig())

	var records []model.Record
	for page := 1; page <= e.source.PageCount(); page++ {
		tokens, err := e.source.Words(page)
		if err != nil {
			e.warn(WarnPageSkipped, page, err.Error())
			continue
		}
		if len(tokens) == 0 {
			continue
		}
		records = append(records, asm.Assemble(tokens)...)
	}

	return records, e.warnings, nil
}

// assembleConfig builds the assembly configuration from the options.
func (e *Extractor) assembleConfig() assemble.Config {
	config := assemble.DefaultConfig()
	if e.options.xThreshold > 0 {
		config.XThreshold = e.options.xThreshold
	}
	return config
}

// ocrConfig builds the recognition configuration from the options.
func (e *Extractor) ocrConfig() ocr.SourceConfig {
	config := ocr.DefaultSourceConfig()
	if e.options.ocrDPI > 0 {
		config.DPI = e.options.ocrDPI
	}
	if len(e.options.ocrLanguages) > 0 {
		config.Languages = append([]string(nil), e.options.ocrLanguages...)
	}
	if e.options.workers > 0 {
		config.Workers = e.options.workers
	}
	config.MinConfidence = float64(e.options.minConfidence)
	return config
}
