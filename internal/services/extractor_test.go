package services

import (
	"errors"
	"testing"

	"alfredoptarigan/ai-interviewer/internal/apperrors"
)

func TestExtractTextPlainText(t *testing.T) {
	extractor := NewTextExtractor()

	text, err := extractor.ExtractText("text/plain", []byte("Experienced backend engineer"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Experienced backend engineer" {
		t.Errorf("got %q", text)
	}
}

func TestExtractTextAnyTextSubtype(t *testing.T) {
	extractor := NewTextExtractor()

	text, err := extractor.ExtractText("text/markdown", []byte("# Resume"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "# Resume" {
		t.Errorf("got %q", text)
	}
}

func TestExtractTextIsIdempotent(t *testing.T) {
	extractor := NewTextExtractor()
	data := []byte("same bytes, same text")

	first, err := extractor.ExtractText("text/plain", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := extractor.ExtractText("text/plain", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("extraction not idempotent: %q vs %q", first, second)
	}
}

func TestExtractTextUnsupportedType(t *testing.T) {
	extractor := NewTextExtractor()

	_, err := extractor.ExtractText("image/png", []byte{0x89, 0x50})
	if err == nil {
		t.Fatal("expected an error for an unsupported media type")
	}

	var unsupported *apperrors.UnsupportedFileTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedFileTypeError, got %T: %v", err, err)
	}
	if unsupported.MimeType != "image/png" {
		t.Errorf("error carries %q, want image/png", unsupported.MimeType)
	}
}

func TestExtractTextMalformedPDF(t *testing.T) {
	extractor := NewTextExtractor()

	_, err := extractor.ExtractText("application/pdf", []byte("this is not a pdf"))
	if err == nil {
		t.Fatal("expected an error for a malformed PDF")
	}
}
