// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package excel

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/EerajArRahman/hackathon-studytool/testutil"
)

func buildWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, name, cell); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf
}

func TestImportCardsFromWorkbook(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	deckID := testutil.CreateTestDeck(t, conn, "Imported")

	buf := buildWorkbook(t, [][]string{
		{"question", "answer", "tag"},
		{"What is DNA?", "Deoxyribonucleic acid", "biology"},
		{"What is RNA?", "Ribonucleic acid", ""},
		{"", "orphan answer", "biology"},
	})

	result, err := ImportCards(conn, deckID, buf, "cards.xlsx")
	if err != nil {
		t.Fatalf("ImportCards: %v", err)
	}

	if result.Created != 2 {
		t.Errorf("Created = %d, want 2", result.Created)
	}
	if result.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", result.Skipped)
	}

	var count int
	if err := conn.Get(&count, "SELECT COUNT(*) FROM card WHERE deck_id = ?", deckID); err != nil {
		t.Fatalf("count cards: %v", err)
	}
	if count != 2 {
		t.Errorf("cards in database = %d, want 2", count)
	}

	// The blank tag column falls back to the default.
	var tag string
	if err := conn.Get(&tag, "SELECT tag FROM card WHERE question = ?", "What is RNA?"); err != nil {
		t.Fatalf("get tag: %v", err)
	}
	if tag != "general" {
		t.Errorf("tag = %q, want general", tag)
	}
}

func TestImportCardsFromCSV(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	deckID := testutil.CreateTestDeck(t, conn, "CSV")

	csvData := "question,answer,tag\nWhat is Go?,A programming language,languages\nWhat is SQL?,A query language\n"

	result, err := ImportCards(conn, deckID, strings.NewReader(csvData), "cards.csv")
	if err != nil {
		t.Fatalf("ImportCards: %v", err)
	}
	if result.Created != 2 || result.Skipped != 0 {
		t.Errorf("result = %+v, want 2 created", result)
	}
}

func TestImportCardsRollsBackOnInsertFailure(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	deckID := testutil.CreateTestDeck(t, conn, "Atomic")

	// A unique index makes the third row's insert fail after two rows have
	// already been written inside the transaction.
	if _, err := conn.Exec("CREATE UNIQUE INDEX idx_card_deck_question ON card (deck_id, question)"); err != nil {
		t.Fatalf("create index: %v", err)
	}

	csvData := "First?,one\nSecond?,two\nFirst?,duplicate\n"

	_, err := ImportCards(conn, deckID, strings.NewReader(csvData), "cards.csv")
	if err == nil {
		t.Fatal("expected error from duplicate row")
	}

	var count int
	if err := conn.Get(&count, "SELECT COUNT(*) FROM card WHERE deck_id = ?", deckID); err != nil {
		t.Fatalf("count cards: %v", err)
	}
	if count != 0 {
		t.Errorf("cards in database = %d, want 0 after rollback", count)
	}
}

func TestImportCardsRejectsGarbageWorkbook(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	deckID := testutil.CreateTestDeck(t, conn, "Bad")

	_, err := ImportCards(conn, deckID, strings.NewReader("not a zip archive"), "cards.xlsx")
	if err == nil {
		t.Error("expected error for non-workbook upload")
	}
}
