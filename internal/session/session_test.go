package session_test

import (
	"errors"
	"testing"

	"paperforge/internal/locale"
	"paperforge/internal/paper"
	"paperforge/internal/session"
)

func newSession(t *testing.T) *session.DocumentSession {
	t.Helper()
	return session.NewBlank(locale.English, nil)
}

func sectionIDs(view paper.PaperView) []string {
	ids := make([]string, 0, len(view.Sections))
	for _, sec := range view.Sections {
		ids = append(ids, sec.ID)
	}
	return ids
}

func TestAddSectionBecomesActive(t *testing.T) {
	s := newSession(t)
	id := s.AddSection()
	if id == "" {
		t.Fatal("AddSection returned empty id")
	}
	if s.ActiveSectionID() != id {
		t.Fatalf("active section = %s, want %s", s.ActiveSectionID(), id)
	}
	view := s.ActivePaper()
	if len(view.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(view.Sections))
	}
	if view.Sections[1].Title != "Second Question" {
		t.Fatalf("new section title = %q", view.Sections[1].Title)
	}
}

func TestDeleteLastSectionIsValidationError(t *testing.T) {
	s := newSession(t)
	only := s.ActivePaper().Sections[0].ID
	err := s.DeleteSection(only)
	if !errors.Is(err, session.ErrValidation) {
		t.Fatalf("DeleteSection error = %v, want ErrValidation", err)
	}
	if got := len(s.ActivePaper().Sections); got != 1 {
		t.Fatalf("section count after failed delete = %d", got)
	}
}

func TestDeleteSectionPromotesFirstRemaining(t *testing.T) {
	s := newSession(t)
	first := s.ActivePaper().Sections[0].ID
	second := s.AddSection()
	third := s.AddSection()

	if err := s.DeleteSection(second); err != nil {
		t.Fatalf("DeleteSection failed: %v", err)
	}
	ids := sectionIDs(s.ActivePaper())
	if len(ids) != 2 || ids[0] != first || ids[1] != third {
		t.Fatalf("remaining sections = %v, want [%s %s]", ids, first, third)
	}
	// second was active at deletion time, so the first remaining takes over.
	if s.ActiveSectionID() != first {
		t.Fatalf("active section = %s, want %s", s.ActiveSectionID(), first)
	}
}

func TestDeleteSectionUnknownIDIsNoop(t *testing.T) {
	s := newSession(t)
	s.AddSection()
	if err := s.DeleteSection("missing"); err != nil {
		t.Fatalf("unknown id should be a no-op, got %v", err)
	}
	if got := len(s.ActivePaper().Sections); got != 2 {
		t.Fatalf("section count = %d", got)
	}
}

func TestReorderSectionsPreservesIDSet(t *testing.T) {
	s := newSession(t)
	s.AddSection()
	s.AddSection()
	before := sectionIDs(s.ActivePaper())

	s.ReorderSections(0, 2)
	after := sectionIDs(s.ActivePaper())
	if len(after) != 3 {
		t.Fatalf("section count changed: %v", after)
	}
	if after[0] != before[1] || after[1] != before[2] || after[2] != before[0] {
		t.Fatalf("reorder produced %v from %v", after, before)
	}

	// Titles stay fixed at creation; reorder never re-derives them.
	titles := s.ActivePaper().Sections
	if titles[0].Title != "Second Question" || titles[2].Title != "First Question" {
		t.Fatalf("reorder touched titles: %q, %q", titles[0].Title, titles[2].Title)
	}

	s.ReorderSections(5, 0) // out of range: no-op
	if got := sectionIDs(s.ActivePaper()); got[0] != after[0] {
		t.Fatal("out-of-range reorder mutated the document")
	}
}

func TestAddSubQuestionLabels(t *testing.T) {
	s := newSession(t)
	secID := s.ActiveSectionID()
	a := s.AddSubQuestion(secID, nil)
	b := s.AddSubQuestion(secID, nil)
	if a == "" || b == "" {
		t.Fatal("AddSubQuestion returned empty id")
	}
	view := s.ActivePaper()
	subs := view.Sections[0].SubQuestions
	if subs[0].Label != "(a)" || subs[1].Label != "(b)" {
		t.Fatalf("labels = %q, %q", subs[0].Label, subs[1].Label)
	}
	if s.ActiveSubQuestionID() != b {
		t.Fatalf("active sub-question = %s, want %s", s.ActiveSubQuestionID(), b)
	}
	if got := s.AddSubQuestion("missing", nil); got != "" {
		t.Fatalf("AddSubQuestion on unknown section = %q, want empty", got)
	}
}

func TestSetLocaleRelabelsEverythingAtomically(t *testing.T) {
	s := newSession(t)
	s.AddSection()
	second := s.ActiveSectionID()
	marks := 5
	s.AddSubQuestion(second, &paper.Template{Heading: "Define gravity", Body: "<p>body</p>", Marks: &marks})
	s.AddSubQuestion(second, nil)

	if err := s.SetLocale(locale.Bengali); err != nil {
		t.Fatalf("SetLocale failed: %v", err)
	}
	view := s.ActivePaper()
	if view.Locale != locale.Bengali {
		t.Fatalf("locale = %s", view.Locale)
	}
	subs := view.Sections[1].SubQuestions
	if subs[0].Label != "(ক)" || subs[1].Label != "(খ)" {
		t.Fatalf("labels after relocale = %q, %q", subs[0].Label, subs[1].Label)
	}
	if subs[0].Heading != "Define gravity" || subs[0].Body != "<p>body</p>" || *subs[0].Marks != 5 {
		t.Fatal("SetLocale touched content beyond labels")
	}
	if view.Sections[0].Title != "প্রথম প্রশ্ন" {
		t.Fatalf("section title after relocale = %q", view.Sections[0].Title)
	}
}

func TestSetLocaleUnsupportedLeavesDocumentUntouched(t *testing.T) {
	s := newSession(t)
	s.AddSubQuestion(s.ActiveSectionID(), nil)
	before := s.Snapshot()

	err := s.SetLocale("xx")
	if !errors.Is(err, session.ErrValidation) {
		t.Fatalf("SetLocale error = %v, want ErrValidation", err)
	}
	after := s.Snapshot()
	if after.Locale != before.Locale {
		t.Fatal("failed SetLocale changed the locale")
	}
	if after.Sections[0].SubQuestions[0].Label != before.Sections[0].SubQuestions[0].Label {
		t.Fatal("failed SetLocale changed a label")
	}
}

func TestSetLocaleKeepsOverriddenTitles(t *testing.T) {
	s := newSession(t)
	secID := s.ActiveSectionID()
	title := "Grammar"
	s.UpdateSection(secID, session.SectionUpdate{Title: &title})

	if err := s.SetLocale(locale.Hindi); err != nil {
		t.Fatalf("SetLocale failed: %v", err)
	}
	if got := s.ActivePaper().Sections[0].Title; got != "Grammar" {
		t.Fatalf("overridden title after relocale = %q", got)
	}
}

func TestReorderSubQuestionsKeepsLabels(t *testing.T) {
	s := newSession(t)
	secID := s.ActiveSectionID()
	a := s.AddSubQuestion(secID, nil)
	b := s.AddSubQuestion(secID, nil)
	c := s.AddSubQuestion(secID, nil)

	s.ReorderSubQuestions(secID, 0, 2)
	subs := s.ActivePaper().Sections[0].SubQuestions
	if subs[0].ID != b || subs[1].ID != c || subs[2].ID != a {
		t.Fatalf("order after move = [%s %s %s]", subs[0].ID, subs[1].ID, subs[2].ID)
	}
	// Labels travel with their sub-questions; gaps are accepted until an
	// explicit relabel.
	if subs[2].Label != "(a)" || subs[0].Label != "(b)" {
		t.Fatalf("labels after move = %q, %q, %q", subs[0].Label, subs[1].Label, subs[2].Label)
	}

	s.RelabelSubQuestions(secID)
	subs = s.ActivePaper().Sections[0].SubQuestions
	if subs[0].Label != "(a)" || subs[1].Label != "(b)" || subs[2].Label != "(c)" {
		t.Fatalf("labels after relabel = %q, %q, %q", subs[0].Label, subs[1].Label, subs[2].Label)
	}
}

func TestUpdateSubQuestionFields(t *testing.T) {
	s := newSession(t)
	secID := s.ActiveSectionID()
	id := s.AddSubQuestion(secID, nil)

	heading := "Explain"
	marks := 12
	after := true
	if err := s.UpdateSubQuestion(secID, id, session.SubQuestionUpdate{
		Heading:          &heading,
		Marks:            &marks,
		HeadingAfterBody: &after,
	}); err != nil {
		t.Fatalf("UpdateSubQuestion failed: %v", err)
	}
	sq := s.ActivePaper().Sections[0].SubQuestions[0]
	if sq.Heading != "Explain" || *sq.Marks != 12 || !sq.HeadingAfterBody {
		t.Fatalf("unexpected sub-question state: %#v", sq)
	}

	bad := 150
	err := s.UpdateSubQuestion(secID, id, session.SubQuestionUpdate{Marks: &bad})
	if !errors.Is(err, session.ErrValidation) {
		t.Fatalf("out-of-range marks error = %v, want ErrValidation", err)
	}
	if got := *s.ActivePaper().Sections[0].SubQuestions[0].Marks; got != 12 {
		t.Fatalf("marks after rejected update = %d", got)
	}

	if err := s.UpdateSubQuestion(secID, "missing", session.SubQuestionUpdate{Heading: &heading}); err != nil {
		t.Fatalf("unknown id should be a no-op, got %v", err)
	}
}

func TestDeleteSubQuestionHasNoLastGuard(t *testing.T) {
	s := newSession(t)
	secID := s.ActiveSectionID()
	id := s.AddSubQuestion(secID, nil)
	s.DeleteSubQuestion(secID, id)
	if got := len(s.ActivePaper().Sections[0].SubQuestions); got != 0 {
		t.Fatalf("sub-question count = %d, want 0", got)
	}
	if s.ActiveSubQuestionID() != "" {
		t.Fatal("selection still points at the deleted sub-question")
	}
	s.DeleteSubQuestion(secID, "missing") // no-op
}

func TestMutationHooksFire(t *testing.T) {
	s := newSession(t)
	fired := 0
	s.OnMutation(func() { fired++ })

	s.AddSection()
	s.AddSubQuestion(s.ActiveSectionID(), nil)
	name := "Midterm"
	s.UpdateMetadata(session.MetadataUpdate{ExamName: &name})

	if fired != 3 {
		t.Fatalf("hook fired %d times, want 3", fired)
	}
}

func TestImportPortableReplacesDocument(t *testing.T) {
	s := newSession(t)
	s.AddSubQuestion(s.ActiveSectionID(), nil)
	data, err := s.ExportPortable()
	if err != nil {
		t.Fatalf("ExportPortable failed: %v", err)
	}

	other := session.NewBlank(locale.Hindi, nil)
	if err := other.ImportPortable(data); err != nil {
		t.Fatalf("ImportPortable failed: %v", err)
	}
	if other.PaperID() != s.PaperID() {
		t.Fatal("import did not adopt the exported paper")
	}
	if other.ActiveSectionID() != s.ActivePaper().Sections[0].ID {
		t.Fatal("import did not select the first section")
	}

	beforeID := other.PaperID()
	if err := other.ImportPortable([]byte("{broken")); err == nil {
		t.Fatal("expected import failure for malformed payload")
	}
	if other.PaperID() != beforeID {
		t.Fatal("failed import replaced the active document")
	}
}
