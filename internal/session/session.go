package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"paperforge/internal/locale"
	"paperforge/internal/logging"
	"paperforge/internal/paper"
	"paperforge/internal/portable"
)

// DocumentSession is the mutation engine for one editing session. It owns the
// active paper and the selection pointers; collaborators never hold the tree
// directly. One instance per session, passed explicitly wherever needed.
type DocumentSession struct {
	mu     sync.Mutex
	paper  *paper.Paper
	active selection
	hooks  []func()
	logger *slog.Logger
}

type selection struct {
	sectionID     string
	subQuestionID string
}

// New wraps an existing paper in a session. The first section becomes active.
func New(p *paper.Paper, logger *slog.Logger) *DocumentSession {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &DocumentSession{
		paper:  p,
		logger: logger.With(logging.String("component", "session")),
	}
	if len(p.Sections) > 0 {
		s.active.sectionID = p.Sections[0].ID
	}
	return s
}

// NewBlank starts a session on a fresh paper in the given locale.
func NewBlank(loc locale.Locale, logger *slog.Logger) *DocumentSession {
	return New(paper.New(loc), logger)
}

// OnMutation registers a hook invoked after every successful mutation. Hooks
// run outside the session lock and must not mutate the session re-entrantly
// from the same goroutine.
func (s *DocumentSession) OnMutation(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.hooks = append(s.hooks, fn)
	s.mu.Unlock()
}

func (s *DocumentSession) notify() {
	s.mu.Lock()
	hooks := make([]func(), len(s.hooks))
	copy(hooks, s.hooks)
	s.mu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}

// PaperID returns the identifier of the active paper.
func (s *DocumentSession) PaperID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paper.ID
}

// ActivePaper returns the read-only projection of the current document.
func (s *DocumentSession) ActivePaper() paper.PaperView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paper.View()
}

// Snapshot returns a deep copy of the current document for persistence.
func (s *DocumentSession) Snapshot() *paper.Paper {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paper.Clone()
}

// ActiveSectionID returns the selected section id.
func (s *DocumentSession) ActiveSectionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active.sectionID
}

// ActiveSubQuestionID returns the selected sub-question id, if any.
func (s *DocumentSession) ActiveSubQuestionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active.subQuestionID
}

// SelectSection moves the selection; unknown ids are ignored.
func (s *DocumentSession) SelectSection(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sec, _ := s.paper.FindSection(id); sec != nil {
		s.active.sectionID = id
		s.active.subQuestionID = ""
	}
}

// SelectSubQuestion moves the selection; unknown ids are ignored.
func (s *DocumentSession) SelectSubQuestion(sectionID, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sq, _ := s.paper.FindSubQuestion(sectionID, id); sq != nil {
		s.active.sectionID = sectionID
		s.active.subQuestionID = id
	}
}

// MetadataUpdate carries optional paper metadata changes; nil fields are left
// untouched.
type MetadataUpdate struct {
	Institution  *string
	ExamName     *string
	Subject      *string
	TotalMarks   *string
	Duration     *string
	Instructions *string
}

// UpdateMetadata merges metadata fields into the paper.
func (s *DocumentSession) UpdateMetadata(update MetadataUpdate) {
	s.mu.Lock()
	if update.Institution != nil {
		s.paper.Institution = *update.Institution
	}
	if update.ExamName != nil {
		s.paper.ExamName = *update.ExamName
	}
	if update.Subject != nil {
		s.paper.Subject = *update.Subject
	}
	if update.TotalMarks != nil {
		s.paper.TotalMarks = *update.TotalMarks
	}
	if update.Duration != nil {
		s.paper.Duration = *update.Duration
	}
	if update.Instructions != nil {
		s.paper.Instructions = *update.Instructions
	}
	s.touch()
	s.mu.Unlock()
	s.notify()
}

// SetLocale switches the paper locale and re-derives every sub-question label
// and every non-overridden section title. The relabel is staged first and
// applied in one step so a failure leaves the previous locale fully intact.
func (s *DocumentSession) SetLocale(loc locale.Locale) error {
	s.mu.Lock()
	if !locale.Supported(loc) {
		s.mu.Unlock()
		return Wrap(ErrValidation, "set locale", fmt.Sprintf("unsupported locale %q", loc), nil)
	}
	if loc == s.paper.Locale {
		s.mu.Unlock()
		return nil
	}

	// Stage all derived strings before touching the document.
	titles := make([]string, len(s.paper.Sections))
	labels := make([][]string, len(s.paper.Sections))
	for i, sec := range s.paper.Sections {
		if !sec.TitleOverride {
			titles[i] = locale.SectionTitle(i, loc)
		}
		labels[i] = make([]string, len(sec.SubQuestions))
		for j := range sec.SubQuestions {
			labels[i][j] = locale.Label(j, loc)
		}
	}

	s.paper.Locale = loc
	for i, sec := range s.paper.Sections {
		if !sec.TitleOverride {
			sec.Title = titles[i]
		}
		for j, sq := range sec.SubQuestions {
			sq.Label = labels[i][j]
		}
	}
	s.touch()
	s.logger.Info("locale changed", logging.String("locale", string(loc)))
	s.mu.Unlock()
	s.notify()
	return nil
}

// AddSection appends a section titled for its position and makes it active.
func (s *DocumentSession) AddSection() string {
	s.mu.Lock()
	sec := paper.NewSection(len(s.paper.Sections), s.paper.Locale)
	s.paper.Sections = append(s.paper.Sections, sec)
	s.active.sectionID = sec.ID
	s.active.subQuestionID = ""
	s.touch()
	s.mu.Unlock()
	s.notify()
	return sec.ID
}

// DeleteSection removes a section. Removing the last remaining section is a
// no-op that reports ErrValidation; deleting the active section promotes the
// first remaining one. Unknown ids are silent no-ops.
func (s *DocumentSession) DeleteSection(id string) error {
	s.mu.Lock()
	sec, index := s.paper.FindSection(id)
	if sec == nil {
		s.mu.Unlock()
		return nil
	}
	if len(s.paper.Sections) == 1 {
		s.mu.Unlock()
		return Wrap(ErrValidation, "delete section", "a paper must keep at least one section", nil)
	}
	s.paper.Sections = append(s.paper.Sections[:index], s.paper.Sections[index+1:]...)
	if s.active.sectionID == id {
		s.active.sectionID = s.paper.Sections[0].ID
		s.active.subQuestionID = ""
	}
	s.touch()
	s.mu.Unlock()
	s.notify()
	return nil
}

// SectionUpdate carries optional section changes; nil fields are left alone.
// Setting Title marks the section as user-overridden so later locale changes
// keep it; ClearTitleOverride reverts to the position-derived title.
type SectionUpdate struct {
	Title              *string
	ClearTitleOverride bool
}

// UpdateSection merges non-ordering fields into a section. Unknown ids are
// silent no-ops.
func (s *DocumentSession) UpdateSection(id string, update SectionUpdate) {
	s.mu.Lock()
	sec, index := s.paper.FindSection(id)
	if sec == nil {
		s.mu.Unlock()
		return
	}
	if update.Title != nil {
		sec.Title = *update.Title
		sec.TitleOverride = true
	}
	if update.ClearTitleOverride {
		sec.TitleOverride = false
		sec.Title = locale.SectionTitle(index, s.paper.Locale)
	}
	s.touch()
	s.mu.Unlock()
	s.notify()
}

// ReorderSections moves one section. Ids, titles, and labels are untouched;
// out-of-range indices are silent no-ops.
func (s *DocumentSession) ReorderSections(from, to int) {
	s.mu.Lock()
	if !moveElement(&s.paper.Sections, from, to) {
		s.mu.Unlock()
		return
	}
	s.touch()
	s.mu.Unlock()
	s.notify()
}

// AddSubQuestion appends a sub-question labeled for its position in the paper's
// current locale and makes it active. Returns the new id, or "" when the
// section is unknown.
func (s *DocumentSession) AddSubQuestion(sectionID string, tpl *paper.Template) string {
	s.mu.Lock()
	sec, _ := s.paper.FindSection(sectionID)
	if sec == nil {
		s.mu.Unlock()
		return ""
	}
	sq := paper.NewSubQuestion(len(sec.SubQuestions), s.paper.Locale, tpl)
	sec.SubQuestions = append(sec.SubQuestions, sq)
	s.active.sectionID = sectionID
	s.active.subQuestionID = sq.ID
	s.touch()
	s.mu.Unlock()
	s.notify()
	return sq.ID
}

// SubQuestionUpdate carries optional sub-question changes; nil fields are left
// alone. Marks outside 0–99 are rejected.
type SubQuestionUpdate struct {
	Heading          *string
	Body             *string
	Marks            *int
	ClearMarks       bool
	HeadingAfterBody *bool
	Kind             *string
}

// UpdateSubQuestion merges fields into a sub-question. Unknown ids are silent
// no-ops; invalid marks report ErrValidation without applying anything.
func (s *DocumentSession) UpdateSubQuestion(sectionID, id string, update SubQuestionUpdate) error {
	s.mu.Lock()
	sq, _ := s.paper.FindSubQuestion(sectionID, id)
	if sq == nil {
		s.mu.Unlock()
		return nil
	}
	if update.Marks != nil && (*update.Marks < 0 || *update.Marks > paper.MaxMarks) {
		s.mu.Unlock()
		return Wrap(ErrValidation, "update sub-question", fmt.Sprintf("marks must be between 0 and %d", paper.MaxMarks), nil)
	}
	if update.Heading != nil {
		sq.Heading = *update.Heading
	}
	if update.Body != nil {
		sq.Body = *update.Body
	}
	if update.Marks != nil {
		marks := *update.Marks
		sq.Marks = &marks
	}
	if update.ClearMarks {
		sq.Marks = nil
	}
	if update.HeadingAfterBody != nil {
		sq.HeadingAfterBody = *update.HeadingAfterBody
	}
	if update.Kind != nil {
		sq.Kind = *update.Kind
	}
	s.touch()
	s.mu.Unlock()
	s.notify()
	return nil
}

// DeleteSubQuestion removes a sub-question unconditionally. Unknown ids are
// silent no-ops.
func (s *DocumentSession) DeleteSubQuestion(sectionID, id string) {
	s.mu.Lock()
	sec, _ := s.paper.FindSection(sectionID)
	if sec == nil {
		s.mu.Unlock()
		return
	}
	_, index := s.paper.FindSubQuestion(sectionID, id)
	if index < 0 {
		s.mu.Unlock()
		return
	}
	sec.SubQuestions = append(sec.SubQuestions[:index], sec.SubQuestions[index+1:]...)
	if s.active.subQuestionID == id {
		s.active.subQuestionID = ""
	}
	s.touch()
	s.mu.Unlock()
	s.notify()
}

// ReorderSubQuestions moves one sub-question within its section. Labels stay
// fixed at their creation-time values; use RelabelSubQuestions to close the
// gaps on request.
func (s *DocumentSession) ReorderSubQuestions(sectionID string, from, to int) {
	s.mu.Lock()
	sec, _ := s.paper.FindSection(sectionID)
	if sec == nil || !moveElement(&sec.SubQuestions, from, to) {
		s.mu.Unlock()
		return
	}
	s.touch()
	s.mu.Unlock()
	s.notify()
}

// RelabelSections re-derives the titles of all non-overridden sections from
// their current positions. Explicit opt-in; reorder never does this.
func (s *DocumentSession) RelabelSections() {
	s.mu.Lock()
	for i, sec := range s.paper.Sections {
		if !sec.TitleOverride {
			sec.Title = locale.SectionTitle(i, s.paper.Locale)
		}
	}
	s.touch()
	s.mu.Unlock()
	s.notify()
}

// RelabelSubQuestions re-derives all labels in a section from current
// positions. Unknown ids are silent no-ops.
func (s *DocumentSession) RelabelSubQuestions(sectionID string) {
	s.mu.Lock()
	sec, _ := s.paper.FindSection(sectionID)
	if sec == nil {
		s.mu.Unlock()
		return
	}
	for i, sq := range sec.SubQuestions {
		sq.Label = locale.Label(i, s.paper.Locale)
	}
	s.touch()
	s.mu.Unlock()
	s.notify()
}

// ExportPortable serializes the current document for download or storage.
func (s *DocumentSession) ExportPortable() ([]byte, error) {
	s.mu.Lock()
	snapshot := s.paper.Clone()
	s.mu.Unlock()
	return portable.Encode(snapshot)
}

// ImportPortable replaces the active document with a decoded portable payload.
// A malformed payload leaves the in-memory document untouched.
func (s *DocumentSession) ImportPortable(data []byte) error {
	p, err := portable.Decode(data)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.paper = p
	s.active = selection{}
	if len(p.Sections) > 0 {
		s.active.sectionID = p.Sections[0].ID
	}
	s.mu.Unlock()
	s.logger.Info("document imported",
		logging.String("paper_id", p.ID),
		logging.Int("sections", len(p.Sections)))
	s.notify()
	return nil
}

func (s *DocumentSession) touch() {
	s.paper.UpdatedAt = time.Now().UTC()
}

// moveElement relocates one element of a slice, reporting false when either
// index is out of range.
func moveElement[T any](items *[]T, from, to int) bool {
	list := *items
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) || from == to {
		return false
	}
	moved := list[from]
	list = append(list[:from], list[from+1:]...)
	rest := append(list[:to:to], moved)
	*items = append(rest, list[to:]...)
	return true
}
