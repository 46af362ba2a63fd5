// Package store persists print runs in SQLite so a batch can be reprinted
// bit-for-bit: a run row records the seed and sheet count, and one row per
// sheet records the assembled grid.
//
// The driver is modernc.org/sqlite (pure Go, no cgo) through database/sql.
// Timestamps are stored as Unix milliseconds in UTC.
//
// The ledger is an operational convenience around the core, not part of the
// generation algorithm; the core never touches it.
package store
