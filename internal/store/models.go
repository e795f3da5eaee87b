package store

import (
	"time"

	"paperforge/internal/locale"
)

// Summary is a lightweight recency index entry for one stored paper.
type Summary struct {
	PaperID   string
	Title     string
	Subject   string
	Locale    locale.Locale
	TouchedAt time.Time
}

// SweepReport describes the result of one integrity pass over stored papers.
type SweepReport struct {
	Checked        int
	Corrupt        []string // Paper ids whose payload no longer decodes
	OrphanedRecent int      // Recents rows pruned because their paper is gone
}

// Clean reports whether the sweep found nothing to complain about.
func (r SweepReport) Clean() bool {
	return len(r.Corrupt) == 0 && r.OrphanedRecent == 0
}
