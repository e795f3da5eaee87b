package testsupport

import (
	"context"
	"testing"

	"paperforge/internal/config"
	"paperforge/internal/locale"
	"paperforge/internal/paper"
	"paperforge/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg, nil)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

// SavePaper persists a fresh paper with the given exam name and returns it.
func SavePaper(t testing.TB, st *store.Store, loc locale.Locale, examName string) *paper.Paper {
	t.Helper()

	p := paper.New(loc)
	p.ExamName = examName
	if err := st.SavePaper(context.Background(), p); err != nil {
		t.Fatalf("store.SavePaper: %v", err)
	}
	return p
}
