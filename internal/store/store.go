package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"paperforge/internal/config"
	"paperforge/internal/locale"
	"paperforge/internal/logging"
	"paperforge/internal/paper"
	"paperforge/internal/portable"
)

// ErrNotFound indicates no paper is stored under the requested id.
var ErrNotFound = errors.New("paper not found")

// ErrWorkspaceLocked indicates another process holds the workspace.
var ErrWorkspaceLocked = errors.New("workspace is locked by another instance")

// Store manages paper persistence backed by SQLite. One Store owns the
// workspace lock for its lifetime; writes from other processes are refused.
type Store struct {
	db         *sql.DB
	path       string
	lock       *flock.Flock
	recentsCap int
	logger     *slog.Logger
}

// Open initializes or connects to the workspace database, acquires the
// workspace lock, and applies the schema.
func Open(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire workspace lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrWorkspaceLocked, cfg.LockPath())
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{
		db:         db,
		path:       dbPath,
		lock:       lock,
		recentsCap: cfg.Workspace.RecentsCap,
		logger:     logging.NewComponentLogger(logger, "store"),
	}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Close releases the database connection and the workspace lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var closeErr error
	if s.db != nil {
		closeErr = s.db.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && closeErr == nil {
			closeErr = err
		}
	}
	return closeErr
}

// SavePaper persists the full record and refreshes the recency index entry in
// one transaction. Stale recents carrying the same id or title are replaced,
// and the index is trimmed back to its cap.
func (s *Store) SavePaper(ctx context.Context, p *paper.Paper) error {
	if p == nil {
		return errors.New("paper is nil")
	}
	payload, err := portable.Encode(p)
	if err != nil {
		return fmt.Errorf("encode paper: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO papers (id, payload, updated_at) VALUES (?, ?, ?)
         ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		p.ID,
		string(payload),
		now,
	); err != nil {
		return fmt.Errorf("upsert paper: %w", err)
	}

	if err := s.upsertRecent(ctx, tx, p, now); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	s.logger.Debug("paper saved",
		logging.String("paper_id", p.ID),
		logging.Int("bytes", len(payload)))
	return nil
}

// upsertRecent is the single enforcement site for the recency index policy:
// no duplicates by id or title, newest first, capped length.
func (s *Store) upsertRecent(ctx context.Context, tx *sql.Tx, p *paper.Paper, touchedAt string) error {
	title := p.Title()
	if _, err := tx.ExecContext(
		ctx,
		`DELETE FROM recents WHERE paper_id = ? OR title = ?`,
		p.ID,
		title,
	); err != nil {
		return fmt.Errorf("drop stale recents: %w", err)
	}
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO recents (paper_id, title, subject, locale, touched_at) VALUES (?, ?, ?, ?, ?)`,
		p.ID,
		title,
		p.Subject,
		string(p.Locale),
		touchedAt,
	); err != nil {
		return fmt.Errorf("insert recent: %w", err)
	}
	if _, err := tx.ExecContext(
		ctx,
		`DELETE FROM recents WHERE paper_id NOT IN (
            SELECT paper_id FROM recents ORDER BY touched_at DESC, paper_id LIMIT ?
        )`,
		s.recentsCap,
	); err != nil {
		return fmt.Errorf("trim recents: %w", err)
	}
	return nil
}

// LoadPaper fetches and decodes a stored paper. A missing id reports
// ErrNotFound; a payload that no longer decodes reports the decode error
// without touching the record.
func (s *Store) LoadPaper(ctx context.Context, id string) (*paper.Paper, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM papers WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load paper: %w", err)
	}
	p, err := portable.Decode([]byte(payload))
	if err != nil {
		return nil, fmt.Errorf("paper %s: %w", id, err)
	}
	return p, nil
}

// HasPaper reports whether a record exists under the id, without decoding it.
func (s *Store) HasPaper(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM papers WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check paper: %w", err)
	}
	return true, nil
}

// DeletePaper removes a paper and its recency entry. Returns false when
// nothing was stored under the id.
func (s *Store) DeletePaper(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM papers WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete paper: %w", err)
	}
	// The recents row goes with it via ON DELETE CASCADE; keep the explicit
	// delete for databases created before foreign keys were enforced.
	if _, err := s.db.ExecContext(ctx, `DELETE FROM recents WHERE paper_id = ?`, id); err != nil {
		return false, fmt.Errorf("delete recent: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// ListRecent returns the recency index, most recently touched first. The list
// never exceeds the configured cap and never requires decoding payloads, so
// corrupt records cannot break it.
func (s *Store) ListRecent(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT paper_id, title, subject, locale, touched_at
         FROM recents ORDER BY touched_at DESC, paper_id LIMIT ?`,
		s.recentsCap,
	)
	if err != nil {
		return nil, fmt.Errorf("list recents: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var (
			summary    Summary
			localeStr  string
			touchedRaw string
		)
		if err := rows.Scan(&summary.PaperID, &summary.Title, &summary.Subject, &localeStr, &touchedRaw); err != nil {
			return nil, fmt.Errorf("scan recent: %w", err)
		}
		summary.Locale = locale.Locale(localeStr)
		if touched, err := time.Parse(time.RFC3339Nano, touchedRaw); err == nil {
			summary.TouchedAt = touched
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// Sweep decodes every stored payload, reporting corrupt records and pruning
// recents rows whose paper has disappeared. Corruption is reported, never
// fatal.
func (s *Store) Sweep(ctx context.Context) (SweepReport, error) {
	report := SweepReport{}

	rows, err := s.db.QueryContext(ctx, `SELECT id, payload FROM papers ORDER BY id`)
	if err != nil {
		return report, fmt.Errorf("scan papers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return report, fmt.Errorf("scan paper row: %w", err)
		}
		report.Checked++
		if _, err := portable.Decode([]byte(payload)); err != nil {
			report.Corrupt = append(report.Corrupt, id)
			s.logger.Warn("stored paper no longer decodes",
				logging.String("paper_id", id),
				logging.Error(err))
		}
	}
	if err := rows.Err(); err != nil {
		return report, err
	}

	res, err := s.db.ExecContext(
		ctx,
		`DELETE FROM recents WHERE paper_id NOT IN (SELECT id FROM papers)`,
	)
	if err != nil {
		return report, fmt.Errorf("prune orphaned recents: %w", err)
	}
	pruned, err := res.RowsAffected()
	if err != nil {
		return report, fmt.Errorf("rows affected: %w", err)
	}
	report.OrphanedRecent = int(pruned)
	return report, nil
}
