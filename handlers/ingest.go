// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/EerajArRahman/hackathon-studytool/cliparse"
	"github.com/EerajArRahman/hackathon-studytool/middleware"
	"github.com/EerajArRahman/hackathon-studytool/models"
	"github.com/EerajArRahman/hackathon-studytool/qgen"
)

// maxIngestQuestions caps how many pairs a single upload can produce.
const maxIngestQuestions = 10

const maxUploadBytes = 10 << 20

// TextExtractor pulls plain text out of an uploaded document.
type TextExtractor interface {
	Extract(r io.ReaderAt, size int64) (string, error)
}

type IngestHandler struct {
	cfg       cliparse.Config
	extractor TextExtractor
}

func NewIngestHandler(cfg cliparse.Config, extractor TextExtractor) *IngestHandler {
	return &IngestHandler{cfg: cfg, extractor: extractor}
}

// IngestPDF handles POST /ingest/pdf
//
// The extracted text is run through the heuristic question generator;
// the pairs are returned to the caller for editing, nothing is persisted.
func (h *IngestHandler) IngestPDF(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing file upload")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Upload a PDF")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read upload")
		return
	}

	text, err := h.extractor.Extract(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		slog.Error("pdf extraction failed", "filename", header.Filename, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "PDF parse error: "+err.Error())
		return
	}

	qa := qgen.Extract(text, maxIngestQuestions)

	slog.Info("pdf ingested", "filename", header.Filename, "questions", len(qa))

	middleware.JSONResponse(w, http.StatusOK, models.IngestResponse{
		Count: len(qa),
		QA:    qa,
	})
}
