package services

import (
	"bytes"
	"fmt"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"

	"alfredoptarigan/ai-interviewer/internal/apperrors"
)

const (
	MimeTypePDF  = "application/pdf"
	MimeTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// TextExtractor turns an uploaded file's raw bytes into plain text.
// Dispatch is on the declared media type only; a mislabeled file is
// handled (or rejected) according to its label.
type TextExtractor interface {
	ExtractText(mimeType string, data []byte) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// ExtractText implements TextExtractor.
func (e *textExtractor) ExtractText(mimeType string, data []byte) (string, error) {
	switch {
	case mimeType == MimeTypePDF:
		return e.extractPDF(data)
	case mimeType == MimeTypeDocx:
		res, err := docconv.Convert(bytes.NewReader(data), mimeType, true)
		if err != nil {
			return "", fmt.Errorf("failed to extract docx text: %w", err)
		}
		return res.Body, nil
	case strings.HasPrefix(mimeType, "text/"):
		return string(data), nil
	default:
		return "", &apperrors.UnsupportedFileTypeError{MimeType: mimeType}
	}
}

func (e *textExtractor) extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Log error but continue with other pages
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}
