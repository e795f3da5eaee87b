package portable

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"paperforge/internal/locale"
	"paperforge/internal/paper"
)

// FormatMarker identifies a paperforge document envelope.
const FormatMarker = "paperforge/paper"

// FormatVersion is the current envelope version. Bump it when the portable
// shape changes; Decode rejects versions it does not know.
const FormatVersion = 1

// ErrMalformed indicates the portable form is structurally unusable.
var ErrMalformed = errors.New("malformed document")

type envelope struct {
	Format  string    `json:"format"`
	Version int       `json:"version"`
	Paper   paperJSON `json:"paper"`
}

type paperJSON struct {
	ID           string        `json:"id"`
	Locale       string        `json:"locale"`
	Institution  string        `json:"institution,omitempty"`
	ExamName     string        `json:"exam_name,omitempty"`
	Subject      string        `json:"subject,omitempty"`
	TotalMarks   string        `json:"total_marks,omitempty"`
	Duration     string        `json:"duration,omitempty"`
	Instructions string        `json:"instructions,omitempty"`
	Sections     []sectionJSON `json:"sections"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
}

type sectionJSON struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	TitleOverride bool              `json:"title_override,omitempty"`
	SubQuestions  []subQuestionJSON `json:"sub_questions"`
}

type subQuestionJSON struct {
	ID               string `json:"id"`
	Label            string `json:"label"`
	Heading          string `json:"heading,omitempty"`
	Body             string `json:"body,omitempty"`
	Marks            *int   `json:"marks,omitempty"`
	HeadingAfterBody bool   `json:"heading_after_body,omitempty"`
	Kind             string `json:"kind,omitempty"`
}

// Encode serializes a paper into its portable envelope.
func Encode(p *paper.Paper) ([]byte, error) {
	if p == nil {
		return nil, errors.New("paper is nil")
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("encode paper: %w", err)
	}

	doc := paperJSON{
		ID:           p.ID,
		Locale:       string(p.Locale),
		Institution:  p.Institution,
		ExamName:     p.ExamName,
		Subject:      p.Subject,
		TotalMarks:   p.TotalMarks,
		Duration:     p.Duration,
		Instructions: p.Instructions,
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	doc.Sections = make([]sectionJSON, 0, len(p.Sections))
	for _, sec := range p.Sections {
		sj := sectionJSON{
			ID:            sec.ID,
			Title:         sec.Title,
			TitleOverride: sec.TitleOverride,
			SubQuestions:  make([]subQuestionJSON, 0, len(sec.SubQuestions)),
		}
		for _, sq := range sec.SubQuestions {
			qj := subQuestionJSON{
				ID:               sq.ID,
				Label:            sq.Label,
				Heading:          sq.Heading,
				Body:             sq.Body,
				HeadingAfterBody: sq.HeadingAfterBody,
				Kind:             sq.Kind,
			}
			if sq.Marks != nil {
				marks := *sq.Marks
				qj.Marks = &marks
			}
			sj.SubQuestions = append(sj.SubQuestions, qj)
		}
		doc.Sections = append(doc.Sections, sj)
	}

	data, err := json.MarshalIndent(envelope{Format: FormatMarker, Version: FormatVersion, Paper: doc}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}
	return data, nil
}

// Decode parses a portable envelope back into a paper. Structural problems
// surface as ErrMalformed; nothing is ever partially applied.
func Decode(data []byte) (*paper.Paper, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: parse envelope: %v", ErrMalformed, err)
	}
	if env.Format != FormatMarker {
		return nil, fmt.Errorf("%w: unexpected format marker %q", ErrMalformed, env.Format)
	}
	if env.Version < 1 || env.Version > FormatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformed, env.Version)
	}

	doc := env.Paper
	loc := locale.Locale(strings.TrimSpace(doc.Locale))
	if !locale.Supported(loc) {
		return nil, fmt.Errorf("%w: unknown locale %q", ErrMalformed, doc.Locale)
	}

	p := &paper.Paper{
		ID:           doc.ID,
		Locale:       loc,
		Institution:  doc.Institution,
		ExamName:     doc.ExamName,
		Subject:      doc.Subject,
		TotalMarks:   doc.TotalMarks,
		Duration:     doc.Duration,
		Instructions: doc.Instructions,
	}
	var err error
	if p.CreatedAt, err = parseTimestamp(doc.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: created_at: %v", ErrMalformed, err)
	}
	if p.UpdatedAt, err = parseTimestamp(doc.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: updated_at: %v", ErrMalformed, err)
	}

	p.Sections = make([]*paper.Section, 0, len(doc.Sections))
	for _, sj := range doc.Sections {
		sec := &paper.Section{
			ID:            sj.ID,
			Title:         sj.Title,
			TitleOverride: sj.TitleOverride,
			SubQuestions:  make([]*paper.SubQuestion, 0, len(sj.SubQuestions)),
		}
		for _, qj := range sj.SubQuestions {
			if qj.Marks != nil && (*qj.Marks < 0 || *qj.Marks > paper.MaxMarks) {
				return nil, fmt.Errorf("%w: marks %d out of range for sub-question %s", ErrMalformed, *qj.Marks, qj.ID)
			}
			sq := &paper.SubQuestion{
				ID:               qj.ID,
				Label:            qj.Label,
				Heading:          qj.Heading,
				Body:             qj.Body,
				HeadingAfterBody: qj.HeadingAfterBody,
				Kind:             qj.Kind,
			}
			if qj.Marks != nil {
				marks := *qj.Marks
				sq.Marks = &marks
			}
			sec.SubQuestions = append(sec.SubQuestions, sq)
		}
		p.Sections = append(p.Sections, sec)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return p, nil
}

func parseTimestamp(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, errors.New("missing timestamp")
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
