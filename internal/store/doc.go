// Package store persists papers in SQLite and maintains the bounded recency
// index behind the "recent documents" view.
//
// The Store manages the database connection, schema initialization, the
// workspace flock that enforces a single writer, and the recents table whose
// cap is enforced at the single write path. Paper payloads are stored as
// portable envelopes; a payload that no longer decodes surfaces as a malformed
// record on load and in Sweep reports but never breaks enumeration of the
// index.
//
// The database is the durable source of truth between sessions; the in-memory
// document owns the truth within one. Schema changes add a migration version
// in schema.go.
package store
