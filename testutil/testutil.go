// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package testutil provides shared helpers for handler and storage tests:
// an in-memory sqlite database with the full schema, row factories, and
// httptest request/assert utilities.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/EerajArRahman/hackathon-studytool/cliparse"
	"github.com/EerajArRahman/hackathon-studytool/db"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := sqlx.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// One connection, or each pool member would get its own empty
	// in-memory database.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              8000,
		DatabaseURL:       ":memory:",
		DatabaseType:      "sqlite",
		GenTimeout:        time.Second,
		SocraticQuestions: cliparse.QuestionsFixed,
		SessionTTL:        30 * time.Minute,
	}
}

// CreateTestDeck inserts a deck and returns its ID
func CreateTestDeck(t *testing.T, conn *sqlx.DB, name string) int64 {
	t.Helper()

	id, err := db.InsertReturningID(conn, `
		INSERT INTO deck (name, description) VALUES (?, ?)
	`, name, "A test deck")
	if err != nil {
		t.Fatalf("Failed to create test deck: %v", err)
	}
	return id
}

// CreateTestCard inserts a card with the given review counters and due time,
// returning its ID
func CreateTestCard(t *testing.T, conn *sqlx.DB, deckID int64, tag string, wrong, right int, dueAt time.Time) int64 {
	t.Helper()

	id, err := db.InsertReturningID(conn, `
		INSERT INTO card (deck_id, tag, question, answer, ease, interval_min, due_at, wrong_count, right_count)
		VALUES (?, ?, 'test question', 'test answer', 2.5, 0, ?, ?, ?)
	`, deckID, tag, dueAt, wrong, right)
	if err != nil {
		t.Fatalf("Failed to create test card: %v", err)
	}
	return id
}

// MakeRequest creates an HTTP test request with an optional JSON body
func MakeRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}

	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
