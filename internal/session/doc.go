// Package session implements the mutation engine for the active paper.
//
// A DocumentSession owns exactly one live paper plus the selection pointers
// (active section, active sub-question) and is the sole write path for
// collaborators. Mutations are synchronous and atomic with respect to each
// other; operations addressing an unknown id are silent no-ops so callers can
// tolerate a document that changed underneath them. Labels and titles are
// fixed when an element is created and recomputed only by SetLocale, which
// stages the full relabel before applying any of it.
//
// Registered mutation hooks fire after each successful mutation; the autosave
// scheduler uses them to arm its debounce window.
package session
