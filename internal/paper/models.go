package paper

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"paperforge/internal/locale"
)

// MaxMarks is the upper bound for per-question marks.
const MaxMarks = 99

// Paper is the root exam document.
type Paper struct {
	ID           string
	Locale       locale.Locale
	Institution  string
	ExamName     string
	Subject      string
	TotalMarks   string
	Duration     string
	Instructions string
	Sections     []*Section
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Section groups sub-questions under a position-derived (or user-overridden) title.
type Section struct {
	ID            string
	Title         string
	TitleOverride bool
	SubQuestions  []*SubQuestion
}

// SubQuestion is a single question entry within a Section.
type SubQuestion struct {
	ID               string
	Label            string
	Heading          string
	Body             string // Opaque rich-text blob owned by the editor
	Marks            *int
	HeadingAfterBody bool
	Kind             string // Template origin, informational only
}

// Template pre-fills a new SubQuestion.
type Template struct {
	Kind             string
	Heading          string
	Body             string
	Marks            *int
	HeadingAfterBody bool
}

// New creates a paper in the given locale with one empty section, the minimum
// structurally valid document.
func New(loc locale.Locale) *Paper {
	now := time.Now().UTC()
	p := &Paper{
		ID:        uuid.NewString(),
		Locale:    loc,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.Sections = append(p.Sections, NewSection(0, loc))
	return p
}

// NewSection creates a section titled for the given position and locale.
func NewSection(index int, loc locale.Locale) *Section {
	return &Section{
		ID:    uuid.NewString(),
		Title: locale.SectionTitle(index, loc),
	}
}

// NewSubQuestion creates a sub-question labeled for the given position and
// locale, optionally pre-filled from a template.
func NewSubQuestion(index int, loc locale.Locale, tpl *Template) *SubQuestion {
	sq := &SubQuestion{
		ID:    uuid.NewString(),
		Label: locale.Label(index, loc),
	}
	if tpl != nil {
		sq.Kind = tpl.Kind
		sq.Heading = tpl.Heading
		sq.Body = tpl.Body
		sq.HeadingAfterBody = tpl.HeadingAfterBody
		if tpl.Marks != nil {
			marks := *tpl.Marks
			sq.Marks = &marks
		}
	}
	return sq
}

// Title returns the display title for recents and window chrome.
func (p *Paper) Title() string {
	if name := strings.TrimSpace(p.ExamName); name != "" {
		return name
	}
	return "Untitled Paper"
}

// FindSection returns the section with the given id and its position, or
// (nil, -1) when absent.
func (p *Paper) FindSection(id string) (*Section, int) {
	for i, sec := range p.Sections {
		if sec.ID == id {
			return sec, i
		}
	}
	return nil, -1
}

// FindSubQuestion returns the sub-question with the given id inside the given
// section and its position, or (nil, -1).
func (p *Paper) FindSubQuestion(sectionID, id string) (*SubQuestion, int) {
	sec, _ := p.FindSection(sectionID)
	if sec == nil {
		return nil, -1
	}
	for i, sq := range sec.SubQuestions {
		if sq.ID == id {
			return sq, i
		}
	}
	return nil, -1
}

// Completion reports the filled fraction of the paper's metadata fields.
func (p *Paper) Completion() float64 {
	fields := []string{
		p.Institution,
		p.ExamName,
		p.Subject,
		p.TotalMarks,
		p.Duration,
		p.Instructions,
	}
	filled := 0
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			filled++
		}
	}
	return float64(filled) / float64(len(fields))
}

// QuestionCount returns the total number of sub-questions across sections.
func (p *Paper) QuestionCount() int {
	total := 0
	for _, sec := range p.Sections {
		total += len(sec.SubQuestions)
	}
	return total
}

// Clone returns a deep copy suitable for snapshotting or staged mutation.
func (p *Paper) Clone() *Paper {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Sections = make([]*Section, len(p.Sections))
	for i, sec := range p.Sections {
		cp.Sections[i] = sec.clone()
	}
	return &cp
}

func (s *Section) clone() *Section {
	cp := *s
	cp.SubQuestions = make([]*SubQuestion, len(s.SubQuestions))
	for i, sq := range s.SubQuestions {
		dup := *sq
		if sq.Marks != nil {
			marks := *sq.Marks
			dup.Marks = &marks
		}
		cp.SubQuestions[i] = &dup
	}
	return &cp
}

// Validate checks structural invariants: at least one section and unique ids
// across the tree.
func (p *Paper) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errMissing("paper id")
	}
	if len(p.Sections) == 0 {
		return errMissing("section list")
	}
	seen := make(map[string]struct{}, len(p.Sections))
	for _, sec := range p.Sections {
		if strings.TrimSpace(sec.ID) == "" {
			return errMissing("section id")
		}
		if _, dup := seen[sec.ID]; dup {
			return errDuplicate("section id " + sec.ID)
		}
		seen[sec.ID] = struct{}{}
		for _, sq := range sec.SubQuestions {
			if strings.TrimSpace(sq.ID) == "" {
				return errMissing("sub-question id")
			}
			if _, dup := seen[sq.ID]; dup {
				return errDuplicate("sub-question id " + sq.ID)
			}
			seen[sq.ID] = struct{}{}
		}
	}
	return nil
}

type structureError struct {
	reason string
}

func (e structureError) Error() string { return e.reason }

func errMissing(what string) error   { return structureError{reason: "missing " + what} }
func errDuplicate(what string) error { return structureError{reason: "duplicate " + what} }
