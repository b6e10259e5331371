// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

const sqliteSchema = `
-- Decks
CREATE TABLE IF NOT EXISTS deck (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT
);

-- Cards
CREATE TABLE IF NOT EXISTS card (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    deck_id INTEGER NOT NULL REFERENCES deck(id),
    tag TEXT NOT NULL DEFAULT 'general',
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    ease REAL NOT NULL DEFAULT 2.5,
    interval_min INTEGER NOT NULL DEFAULT 0,
    due_at TIMESTAMP NOT NULL,
    last_result TEXT,
    wrong_count INTEGER NOT NULL DEFAULT 0,
    right_count INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_card_deck_id ON card(deck_id);
CREATE INDEX IF NOT EXISTS idx_card_deck_due ON card(deck_id, due_at);
CREATE INDEX IF NOT EXISTS idx_card_tag ON card(tag);

-- Blog posts
CREATE TABLE IF NOT EXISTS blog_post (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
`

const postgresSchema = `
-- Decks
CREATE TABLE IF NOT EXISTS deck (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT
);

-- Cards
CREATE TABLE IF NOT EXISTS card (
    id BIGSERIAL PRIMARY KEY,
    deck_id BIGINT NOT NULL REFERENCES deck(id),
    tag TEXT NOT NULL DEFAULT 'general',
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    ease DOUBLE PRECISION NOT NULL DEFAULT 2.5,
    interval_min INTEGER NOT NULL DEFAULT 0,
    due_at TIMESTAMP NOT NULL,
    last_result TEXT,
    wrong_count INTEGER NOT NULL DEFAULT 0,
    right_count INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_card_deck_id ON card(deck_id);
CREATE INDEX IF NOT EXISTS idx_card_deck_due ON card(deck_id, due_at);
CREATE INDEX IF NOT EXISTS idx_card_tag ON card(tag);

-- Blog posts
CREATE TABLE IF NOT EXISTS blog_post (
    id BIGSERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
`
