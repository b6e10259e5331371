// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/EerajArRahman/hackathon-studytool/models"
	"github.com/EerajArRahman/hackathon-studytool/testutil"
)

func TestCreateDeck(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewDeckHandler(conn, testutil.GetTestConfig())

	t.Run("creates deck with name and description", func(t *testing.T) {
		desc := "Key dates and treaties"
		req := testutil.MakeRequest("POST", "/decks", models.CreateDeckRequest{
			Name:        "History 101",
			Description: &desc,
		})
		w := httptest.NewRecorder()
		handler.CreateDeck(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)

		var deck models.Deck
		testutil.AssertJSON(t, w, &deck)
		if deck.ID == 0 {
			t.Error("Expected non-zero deck ID")
		}
		if deck.Name != "History 101" {
			t.Errorf("Expected name 'History 101', got %q", deck.Name)
		}
		if deck.Description == nil || *deck.Description != desc {
			t.Errorf("Expected description %q, got %v", desc, deck.Description)
		}
	})

	t.Run("description is optional", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/decks", models.CreateDeckRequest{Name: "Biology"})
		w := httptest.NewRecorder()
		handler.CreateDeck(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)

		var deck models.Deck
		testutil.AssertJSON(t, w, &deck)
		if deck.Description != nil {
			t.Errorf("Expected nil description, got %q", *deck.Description)
		}
	})

	t.Run("rejects missing name", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/decks", map[string]string{"description": "no name"})
		w := httptest.NewRecorder()
		handler.CreateDeck(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/decks", strings.NewReader("{not json"))
		w := httptest.NewRecorder()
		handler.CreateDeck(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestListDecks(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewDeckHandler(conn, testutil.GetTestConfig())

	t.Run("empty database returns empty array", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/decks", nil)
		w := httptest.NewRecorder()
		handler.ListDecks(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		if body := strings.TrimSpace(w.Body.String()); body != "[]" {
			t.Errorf("Expected empty array, got %s", body)
		}
	})

	t.Run("returns decks in insertion order", func(t *testing.T) {
		testutil.CreateTestDeck(t, conn, "First")
		testutil.CreateTestDeck(t, conn, "Second")

		req := testutil.MakeRequest("GET", "/decks", nil)
		w := httptest.NewRecorder()
		handler.ListDecks(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var decks []models.Deck
		testutil.AssertJSON(t, w, &decks)
		if len(decks) != 2 {
			t.Fatalf("Expected 2 decks, got %d", len(decks))
		}
		if decks[0].Name != "First" || decks[1].Name != "Second" {
			t.Errorf("Expected insertion order, got %q then %q", decks[0].Name, decks[1].Name)
		}
	})
}
