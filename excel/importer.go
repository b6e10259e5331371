// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package excel bulk-imports flashcards into a deck from spreadsheet
// uploads. Both .xlsx workbooks and plain .csv files are accepted; rows
// are (question, answer, tag) with the tag column optional.
package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/xuri/excelize/v2"

	"github.com/EerajArRahman/hackathon-studytool/models"
)

// ImportResult holds the outcome of an import operation.
type ImportResult struct {
	Created int
	Skipped int
	Errors  []string
}

// ImportCards reads rows from the upload and inserts one card per usable
// row into deckID. Rows missing a question or answer are skipped and
// reported, not fatal. A header row (first cell "question",
// case-insensitive) is ignored.
func ImportCards(conn *sqlx.DB, deckID int64, r io.Reader, filename string) (*ImportResult, error) {
	var rows [][]string
	var err error

	if strings.HasSuffix(strings.ToLower(filename), ".csv") {
		rows, err = readCSV(r)
	} else {
		rows, err = readWorkbook(r)
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	now := time.Now().UTC()

	// All rows land in one transaction: an insert failure rolls the whole
	// upload back, so a retry never duplicates cards that already landed.
	tx, err := conn.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}

		question, answer, tag := rowFields(row)
		if question == "" || answer == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing question or answer", i+1))
			continue
		}
		if tag == "" {
			tag = models.DefaultTag
		}

		_, err := tx.Exec(conn.Rebind(`
			INSERT INTO card (deck_id, tag, question, answer, ease, interval_min, due_at, wrong_count, right_count)
			VALUES (?, ?, ?, ?, 2.5, 0, ?, 0, 0)
		`), deckID, tag, question, answer, now)
		if err != nil {
			return nil, fmt.Errorf("failed to insert card from row %d: %w", i+1, err)
		}
		result.Created++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit import: %w", err)
	}
	return result, nil
}

func readWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are fine, rowFields pads

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return rows, nil
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "question")
}

func rowFields(row []string) (question, answer, tag string) {
	get := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	return get(0), get(1), get(2)
}
