// Package roster provides a fluent API for extracting participant records
// (delegation, honorific, name, affiliation) from conference roster PDFs,
// scanned PDFs, and images.
//
// Basic usage:
//
//	records, warnings, err := roster.Open("participants.pdf").Records()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", roster.FormatWarnings(warnings))
//	}
//
// With options:
//
//	n, _, err := roster.Open("scan.pdf").
//	    ForceOCR().
//	    OCRDPI(300).
//	    Write("participants.xlsx")
//
// For advanced use cases, the lower-level pdftext, ocr, layout, and
// assemble packages are also available.
package roster

// Open opens a roster document and returns an Extractor for fluent
// configuration. The format is detected from the file itself: PDFs read
// their text layer (or are rasterized and recognized under ForceOCR),
// images always go through recognition. The returned Extractor must be
// closed when done, either explicitly via Close() or implicitly when
// calling a terminal operation like Records().
//
// Example:
//
//	records, warnings, err := roster.Open("participants.pdf").Records()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates an Extractor from an already-opened token source.
// This is useful when you need more control over the source lifecycle, or
// to feed tokens from a custom backend.
// Note: The caller is responsible for closing the source.
//
// Example:
//
//	src, err := pdftext.Open("participants.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer src.Close()
//	records, warnings, err := roster.FromSource(src).Records()
func FromSource(src PageSource) *Extractor {
	return &Extractor{
		source:       src,
		ownsSource:   false,
		sourceOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := roster.Must(roster.Open("participants.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRecords is a helper that wraps a call to Records() or Write() and
// panics if the error is non-nil. It discards warnings and returns just
// the value. It is intended for use in scripts or tests where error
// handling would be cumbersome.
//
// Example:
//
//	records := roster.MustRecords(roster.Open("participants.pdf").Records())
func MustRecords[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
