// Package format provides file format detection for the roster library.
package format

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a supported file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// PNG indicates a PNG image.
	PNG
	// JPEG indicates a JPEG image.
	JPEG
	// TIFF indicates a TIFF image.
	TIFF
	// BMP indicates a BMP image.
	BMP
	// CSV indicates a comma-separated values file.
	CSV
	// XLSX indicates a Microsoft Excel (.xlsx) workbook.
	XLSX
	// XLS indicates a legacy Microsoft Excel (.xls) workbook.
	XLS
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case TIFF:
		return "TIFF"
	case BMP:
		return "BMP"
	case CSV:
		return "CSV"
	case XLSX:
		return "XLSX"
	case XLS:
		return "XLS"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case TIFF:
		return ".tif"
	case BMP:
		return ".bmp"
	case CSV:
		return ".csv"
	case XLSX:
		return ".xlsx"
	case XLS:
		return ".xls"
	default:
		return ""
	}
}

// IsImage reports whether the format is a raster image.
func (f Format) IsImage() bool {
	switch f {
	case PNG, JPEG, TIFF, BMP:
		return true
	default:
		return false
	}
}

// IsSpreadsheet reports whether the format is a spreadsheet workbook.
func (f Format) IsSpreadsheet() bool {
	return f == XLSX || f == XLS
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".tif", ".tiff":
		return TIFF
	case ".bmp":
		return BMP
	case ".csv":
		return CSV
	case ".xlsx":
		return XLSX
	case ".xls":
		return XLS
	default:
		return Unknown
	}
}

// DetectFromMagic checks file magic bytes to determine format.
// This provides more reliable detection than extension-based detection.
// Returns Unknown if the format cannot be determined from magic bytes alone.
func DetectFromMagic(data []byte) Format {
	switch {
	// PDF magic: %PDF
	case len(data) >= 4 && data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F':
		return PDF

	// PNG magic: \x89PNG
	case len(data) >= 4 && data[0] == 0x89 && data[1] == 'P' && data[2] == 'N' && data[3] == 'G':
		return PNG

	// JPEG magic: \xFF\xD8\xFF
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return JPEG

	// TIFF magic, little-endian: II*\x00
	case len(data) >= 4 && data[0] == 'I' && data[1] == 'I' && data[2] == 0x2A && data[3] == 0x00:
		return TIFF

	// TIFF magic, big-endian: MM\x00*
	case len(data) >= 4 && data[0] == 'M' && data[1] == 'M' && data[2] == 0x00 && data[3] == 0x2A:
		return TIFF

	// BMP magic: BM
	case len(data) >= 2 && data[0] == 'B' && data[1] == 'M':
		return BMP

	default:
		return Unknown
	}
}

// DetectFile determines the format of the file at path. Magic bytes are
// checked first; formats without a signature (such as CSV) fall back to the
// filename extension.
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	magic := make([]byte, 8)
	n, err := f.Read(magic)
	if err != nil && err != io.EOF {
		return Unknown, err
	}

	if detected := DetectFromMagic(magic[:n]); detected != Unknown {
		return detected, nil
	}
	return Detect(path), nil
}
