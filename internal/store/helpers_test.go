package store_test

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"paperforge/internal/config"
)

// corruptStoredPayload rewrites a stored payload through a side connection so
// tests can exercise decode-failure paths.
func corruptStoredPayload(t *testing.T, cfg *config.Config, id string) {
	t.Helper()

	db, err := sql.Open("sqlite", cfg.DatabasePath())
	if err != nil {
		t.Fatalf("open side connection: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`UPDATE papers SET payload = ? WHERE id = ?`, `{"format":"paperforge/paper"`, id); err != nil {
		t.Fatalf("corrupt payload: %v", err)
	}
}
