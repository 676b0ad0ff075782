//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestOpenSource_NotEnabled(t *testing.T) {
	src, err := OpenSource("roster.pdf")
	if !errors.Is(err, ErrNotEnabled) {
		t.Errorf("Expected ErrNotEnabled, got %v", err)
	}
	if src != nil {
		t.Error("Expected nil source")
	}
}

func TestNewImageSource_NotEnabled(t *testing.T) {
	if _, err := NewImageSource(); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("Expected ErrNotEnabled, got %v", err)
	}
}

func TestStubSource_CloseIsSafe(t *testing.T) {
	var src *Source
	if err := src.Close(); err != nil {
		t.Errorf("Close on nil source failed: %v", err)
	}
}

func TestStubSource_Words(t *testing.T) {
	var src Source
	if _, err := src.Words(1); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("Expected ErrNotEnabled, got %v", err)
	}
}
