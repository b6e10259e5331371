// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // postgres driver
	_ "github.com/mattn/go-sqlite3" // sqlite driver
)

// Open connects to the configured database. dbType is "sqlite" (default
// store, a local file) or "postgres".
func Open(dbType, url string) (*sqlx.DB, error) {
	switch dbType {
	case "sqlite":
		conn, err := sqlx.Connect("sqlite3", url)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
		// sqlite allows a single writer; keep the pool at one connection.
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		return conn, nil
	case "postgres":
		conn, err := sqlx.Connect("postgres", url)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q (want sqlite or postgres)", dbType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(conn *sqlx.DB) error {
	schema := sqliteSchema
	if conn.DriverName() == "postgres" {
		schema = postgresSchema
	}
	if _, err := conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// InsertReturningID runs an INSERT written with ? placeholders and returns
// the new autoincrement id, papering over the driver difference: postgres
// needs a RETURNING clause, sqlite uses LastInsertId.
func InsertReturningID(conn *sqlx.DB, query string, args ...any) (int64, error) {
	if conn.DriverName() == "postgres" {
		var id int64
		err := conn.QueryRow(conn.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}

	res, err := conn.Exec(conn.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
