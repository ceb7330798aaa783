// Package sqlite provides a SQLite-backed storage.Store.
//
// It uses modernc.org/sqlite, a pure Go SQLite implementation, through sqlx.
// The schema is applied with golang-migrate from migrations embedded in the
// binary.
//
// # Data Location
//
// The caller chooses the database path; the cmd/draftmark binary defaults to
// $XDG_DATA_HOME/draftmark/draftmark.db.
package sqlite
