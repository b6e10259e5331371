// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package pdftext extracts plain text from uploaded PDF documents, one
// string per page, joined with newlines. Extraction either yields the full
// text or fails outright; there are no partial results.
package pdftext

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrExtraction wraps any failure to parse a source document.
// Use errors.Is to check: errors.Is(err, pdftext.ErrExtraction)
var ErrExtraction = errors.New("pdftext: cannot extract text")

// Extractor parses a document and returns its concatenated page text.
type Extractor struct{}

// New returns a PDF text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract reads the document and returns the text of all pages joined by
// newlines. Pages with no extractable text contribute an empty line, so
// page order is preserved in the output.
func (e *Extractor) Extract(r io.ReaderAt, size int64) (text string, err error) {
	// The parser panics on some malformed documents; turn that into the
	// same extraction error as a regular parse failure.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrExtraction, rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page fails the whole document; partial
			// text would silently skew the generated questions.
			return "", fmt.Errorf("%w: page %d: %v", ErrExtraction, i, err)
		}
		pages = append(pages, content)
	}

	return strings.Join(pages, "\n"), nil
}
