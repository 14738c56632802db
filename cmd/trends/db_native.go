//go:build !cgo_sqlite

package main

import _ "modernc.org/sqlite"

// sqliteDriver is the database/sql driver used for the keyword catalog.
// Build with -tags cgo_sqlite to switch to mattn/go-sqlite3.
const sqliteDriver = "sqlite"
