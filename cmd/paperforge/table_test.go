package main

import (
	"strings"
	"testing"
	"time"

	"paperforge/internal/store"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"short stays", "Algebra", 10, "Algebra"},
		{"exact stays", "Algebra", 7, "Algebra"},
		{"long shortens", "A very long exam title", 10, "A very lo…"},
		{"multibyte safe", "প্রথম প্রশ্ন এবং আরো", 8, "প্রথম প্…"},
		{"whitespace trimmed", "  padded  ", 20, "padded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.input, tc.max); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.input, tc.max, got, tc.want)
			}
		})
	}
}

func TestRenderRecents(t *testing.T) {
	touched := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	out := renderRecents([]store.Summary{
		{PaperID: "abc-123", Title: "Midterm", Subject: "Physics", Locale: "en", TouchedAt: touched},
		{PaperID: "def-456", Title: "Finals", Subject: "Chemistry", Locale: "bn", TouchedAt: touched},
	})

	for _, want := range []string{"abc-123", "Midterm", "Physics", "English", "def-456", "বাংলা"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected rendered table to contain %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "ID") || !strings.Contains(out, "Last Modified") {
		t.Fatalf("expected header row in output:\n%s", out)
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable(
		[]string{"One", "Two", "Three"},
		[][]string{{"only"}},
		[]columnAlignment{alignLeft, alignLeft, alignRight},
	)
	if !strings.Contains(out, "only") {
		t.Fatalf("expected row value in output:\n%s", out)
	}
}
