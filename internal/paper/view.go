package paper

import (
	"time"

	"paperforge/internal/locale"
)

// PaperView is a read-only projection handed to UI collaborators. Values are
// copied so callers cannot reach back into the live document.
type PaperView struct {
	ID           string
	Locale       locale.Locale
	RTL          bool
	Institution  string
	ExamName     string
	Subject      string
	TotalMarks   string
	Duration     string
	Instructions string
	Completion   float64
	Sections     []SectionView
	UpdatedAt    time.Time
}

// SectionView mirrors a Section without exposing the mutable tree.
type SectionView struct {
	ID           string
	Title        string
	SubQuestions []SubQuestionView
}

// SubQuestionView mirrors a SubQuestion.
type SubQuestionView struct {
	ID               string
	Label            string
	Heading          string
	Body             string
	Marks            *int
	HeadingAfterBody bool
	Kind             string
}

// View builds the read-only projection of the paper.
func (p *Paper) View() PaperView {
	view := PaperView{
		ID:           p.ID,
		Locale:       p.Locale,
		RTL:          locale.RTL(p.Locale),
		Institution:  p.Institution,
		ExamName:     p.ExamName,
		Subject:      p.Subject,
		TotalMarks:   p.TotalMarks,
		Duration:     p.Duration,
		Instructions: p.Instructions,
		Completion:   p.Completion(),
		UpdatedAt:    p.UpdatedAt,
	}
	view.Sections = make([]SectionView, 0, len(p.Sections))
	for _, sec := range p.Sections {
		sv := SectionView{ID: sec.ID, Title: sec.Title}
		sv.SubQuestions = make([]SubQuestionView, 0, len(sec.SubQuestions))
		for _, sq := range sec.SubQuestions {
			qv := SubQuestionView{
				ID:               sq.ID,
				Label:            sq.Label,
				Heading:          sq.Heading,
				Body:             sq.Body,
				HeadingAfterBody: sq.HeadingAfterBody,
				Kind:             sq.Kind,
			}
			if sq.Marks != nil {
				marks := *sq.Marks
				qv.Marks = &marks
			}
			sv.SubQuestions = append(sv.SubQuestions, qv)
		}
		view.Sections = append(view.Sections, sv)
	}
	return view
}
