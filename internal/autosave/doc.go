// Package autosave debounces document writes behind the mutation stream.
//
// A Scheduler observes mutations via Notify, restarting its debounce window
// each time; once the document has been idle for the full window it snapshots
// the session and writes through the store. Flush supersedes any pending
// timer for manual saves and exports so the same edit is never written twice.
// Writes for a document are serialized through one goroutine, and a newer
// snapshot always supersedes an unwritten older one. Persistence failures are
// logged and surfaced through LastResult; they never interrupt editing.
package autosave
