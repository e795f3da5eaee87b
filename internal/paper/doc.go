// Package paper holds the in-memory model of an exam document.
//
// A Paper owns an ordered list of Sections, each owning an ordered list of
// SubQuestions. Slice position is the sole source of ordering truth; the uuid
// identifiers assigned at creation never change, so reordering moves elements
// without touching identity. Labels and section titles are derived from
// position and locale when an element is created and stored as plain fields.
//
// The package exposes read accessors and deep copies only. All mutation goes
// through the session package so selection pointers and labels stay consistent.
package paper
