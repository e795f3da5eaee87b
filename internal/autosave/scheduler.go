package autosave

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"paperforge/internal/logging"
	"paperforge/internal/paper"
	"paperforge/internal/session"
	"paperforge/internal/store"
)

// Snapshotter produces a deep copy of the current document. The session's
// Snapshot method satisfies it.
type Snapshotter interface {
	Snapshot() *paper.Paper
}

// Result records the outcome of the most recent write attempt.
type Result struct {
	PaperID string
	SavedAt time.Time
	Err     error
}

// Scheduler debounces autosave writes. Construct with New, start the write
// loop with Start, and point Notify at the session's mutation hook.
type Scheduler struct {
	store    *store.Store
	source   Snapshotter
	delay    time.Duration
	logger   *slog.Logger
	pending  chan *paper.Paper
	timerMu  sync.Mutex
	timer    *time.Timer
	writeMu   sync.Mutex // Serializes writes; Flush shares it with the loop
	lastSaved time.Time  // UpdatedAt of the last committed snapshot, under writeMu
	resultMu  sync.Mutex
	result    Result
}

// New constructs a scheduler. Delay must be positive; the config's
// AutosaveInterval is the usual source.
func New(st *store.Store, source Snapshotter, delay time.Duration, logger *slog.Logger) *Scheduler {
	if delay <= 0 {
		delay = 3 * time.Second
	}
	return &Scheduler{
		store:   st,
		source:  source,
		delay:   delay,
		logger:  logging.NewComponentLogger(logger, "autosave"),
		pending: make(chan *paper.Paper, 1),
	}
}

// Start runs the write loop until the context is cancelled. A final pending
// snapshot is written during shutdown so a quit right after an edit loses
// nothing.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				s.stopTimer()
				select {
				case snapshot := <-s.pending:
					s.write(context.Background(), snapshot)
				default:
				}
				return
			case snapshot := <-s.pending:
				s.write(ctx, snapshot)
			}
		}
	}()
}

// Notify marks the document dirty and (re)starts the debounce window. Safe to
// call from the mutation hook on every edit.
func (s *Scheduler) Notify() {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.enqueue)
}

// Flush cancels any pending debounce and writes the current document
// immediately. Manual saves and exports route through here so they supersede
// the timer instead of stacking a duplicate write behind it.
func (s *Scheduler) Flush(ctx context.Context) error {
	s.stopTimer()
	// Drop a stale queued snapshot; the one taken now is newer.
	select {
	case <-s.pending:
	default:
	}
	return s.write(ctx, s.source.Snapshot())
}

// LastResult reports the outcome of the most recent write attempt.
func (s *Scheduler) LastResult() Result {
	s.resultMu.Lock()
	defer s.resultMu.Unlock()
	return s.result
}

func (s *Scheduler) enqueue() {
	snapshot := s.source.Snapshot()
	for {
		select {
		case s.pending <- snapshot:
			return
		default:
			// Replace the stale snapshot with the fresh one.
			select {
			case <-s.pending:
			default:
			}
		}
	}
}

func (s *Scheduler) stopTimer() {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Scheduler) write(ctx context.Context, snapshot *paper.Paper) error {
	if snapshot == nil {
		return errors.New("snapshot is nil")
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	// A snapshot dequeued before a concurrent Flush committed a newer one
	// must not roll the store back.
	if snapshot.UpdatedAt.Before(s.lastSaved) {
		s.logger.Debug("skipping stale snapshot", logging.String("paper_id", snapshot.ID))
		return nil
	}

	err := s.store.SavePaper(ctx, snapshot)
	if err != nil {
		err = session.Wrap(session.ErrPersistence, "autosave", "write snapshot", err)
	} else {
		s.lastSaved = snapshot.UpdatedAt
	}
	result := Result{PaperID: snapshot.ID, SavedAt: time.Now().UTC(), Err: err}
	s.resultMu.Lock()
	s.result = result
	s.resultMu.Unlock()

	if err != nil {
		// Editing continues on the in-memory document; the failure is a
		// status, not a rollback.
		s.logger.Warn("autosave write failed",
			logging.String("paper_id", snapshot.ID),
			logging.Error(err))
		return err
	}
	s.logger.Debug("autosave write complete", logging.String("paper_id", snapshot.ID))
	return nil
}
