//go:build ocr

package ocr

import (
	"image"
	"image/color"
	"testing"
)

// blankPage draws an all-white image for recognition smoke tests
func blankPage(width, height int) image.Image {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func TestImageSource_BlankPage(t *testing.T) {
	src, err := NewImageSource(blankPage(200, 100))
	if err != nil {
		t.Fatalf("NewImageSource failed: %v", err)
	}
	defer src.Close()

	if src.PageCount() != 1 {
		t.Fatalf("Expected 1 page, got %d", src.PageCount())
	}

	tokens, err := src.Words(1)
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("Expected no tokens on a blank page, got %d", len(tokens))
	}
}

func TestSource_PageOutOfRange(t *testing.T) {
	src, err := NewImageSource(blankPage(50, 50))
	if err != nil {
		t.Fatalf("NewImageSource failed: %v", err)
	}
	defer src.Close()

	if _, err := src.Words(2); err == nil {
		t.Error("Expected error for out-of-range page")
	}
	if _, err := src.Words(0); err == nil {
		t.Error("Expected error for page 0")
	}
}
