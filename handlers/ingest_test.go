// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/EerajArRahman/hackathon-studytool/models"
	"github.com/EerajArRahman/hackathon-studytool/testutil"
)

// stubExtractor returns canned text or a canned error, recording the size
// it was handed.
type stubExtractor struct {
	text     string
	err      error
	lastSize int64
}

func (s *stubExtractor) Extract(r io.ReaderAt, size int64) (string, error) {
	s.lastSize = size
	return s.text, s.err
}

func multipartFile(t *testing.T, filename string, contents []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := fw.Write(contents); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestIngestPDF(t *testing.T) {
	cfg := testutil.GetTestConfig()

	t.Run("extracted text becomes question pairs", func(t *testing.T) {
		extractor := &stubExtractor{text: "Mitochondria: the powerhouse of the cell\nOsmosis: diffusion of water"}
		handler := NewIngestHandler(cfg, extractor)

		body, contentType := multipartFile(t, "notes.pdf", []byte("%PDF-1.4 fake"))
		req := httptest.NewRequest("POST", "/ingest/pdf", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		handler.IngestPDF(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var res models.IngestResponse
		testutil.AssertJSON(t, w, &res)
		if res.Count != 2 || len(res.QA) != 2 {
			t.Fatalf("Expected 2 pairs, got count=%d len=%d", res.Count, len(res.QA))
		}
		if res.QA[0].Question != "What is Mitochondria?" {
			t.Errorf("Unexpected first question: %q", res.QA[0].Question)
		}
		if res.QA[0].Answer != "the powerhouse of the cell" {
			t.Errorf("Unexpected first answer: %q", res.QA[0].Answer)
		}
	})

	t.Run("caps pairs at ten", func(t *testing.T) {
		lines := make([]string, 0, 15)
		for i := 0; i < 15; i++ {
			lines = append(lines, "Term"+strings.Repeat("x", i+1)+": definition")
		}
		extractor := &stubExtractor{text: strings.Join(lines, "\n")}
		handler := NewIngestHandler(cfg, extractor)

		body, contentType := multipartFile(t, "big.pdf", []byte("%PDF-1.4 fake"))
		req := httptest.NewRequest("POST", "/ingest/pdf", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		handler.IngestPDF(w, req)

		var res models.IngestResponse
		testutil.AssertJSON(t, w, &res)
		if res.Count != 10 {
			t.Errorf("Expected cap of 10 pairs, got %d", res.Count)
		}
	})

	t.Run("extraction failure returns 500 with detail", func(t *testing.T) {
		extractor := &stubExtractor{err: errors.New("bad xref table")}
		handler := NewIngestHandler(cfg, extractor)

		body, contentType := multipartFile(t, "broken.pdf", []byte("%PDF-1.4 fake"))
		req := httptest.NewRequest("POST", "/ingest/pdf", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		handler.IngestPDF(w, req)

		testutil.AssertStatus(t, w, http.StatusInternalServerError)

		var res models.ErrorResponse
		testutil.AssertJSON(t, w, &res)
		if !strings.Contains(res.Message, "PDF parse error") {
			t.Errorf("Expected parse error message, got %q", res.Message)
		}
	})

	t.Run("rejects non-pdf filename", func(t *testing.T) {
		handler := NewIngestHandler(cfg, &stubExtractor{text: "ignored"})

		body, contentType := multipartFile(t, "notes.docx", []byte("not a pdf"))
		req := httptest.NewRequest("POST", "/ingest/pdf", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		handler.IngestPDF(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("rejects missing file field", func(t *testing.T) {
		handler := NewIngestHandler(cfg, &stubExtractor{})

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		mw.WriteField("other", "value")
		mw.Close()

		req := httptest.NewRequest("POST", "/ingest/pdf", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		handler.IngestPDF(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("empty document still answers with the fallback pair", func(t *testing.T) {
		handler := NewIngestHandler(cfg, &stubExtractor{text: ""})

		body, contentType := multipartFile(t, "empty.pdf", []byte("%PDF-1.4 fake"))
		req := httptest.NewRequest("POST", "/ingest/pdf", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		handler.IngestPDF(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var res models.IngestResponse
		testutil.AssertJSON(t, w, &res)
		if res.Count != 1 {
			t.Fatalf("Expected single fallback pair, got %d", res.Count)
		}
	})
}
