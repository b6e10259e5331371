// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open supports two drivers behind one sqlx handle:

	conn, err := db.Open("sqlite", "studytool.db")
	conn, err := db.Open("postgres", "postgres://...")

The sqlite connection enables foreign keys and keeps the pool at a single
connection, since sqlite allows only one writer.

# Schema Creation

CreateSchema initializes all required tables for the active driver:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - deck: named card collections
  - card: flashcards with scheduling state and review counters
  - blog_post: study-log entries

	deck 1──* card

# Cross-driver Queries

Queries elsewhere in the codebase are written with ? placeholders and run
through sqlx Rebind, so the same SQL works on both drivers. Inserts that
need the new row id go through InsertReturningID, which picks RETURNING or
LastInsertId by driver.
*/
package db
