package portable_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"paperforge/internal/locale"
	"paperforge/internal/paper"
	"paperforge/internal/portable"
)

func buildPaper(t *testing.T) *paper.Paper {
	t.Helper()
	p := paper.New(locale.Bengali)
	p.Institution = "Dhaka Model School"
	p.ExamName = "Annual Examination"
	p.Subject = "Physics"
	p.TotalMarks = "100"
	p.Duration = "3 hours"
	p.Instructions = "Answer all questions."

	marks := 5
	sec := p.Sections[0]
	sec.SubQuestions = append(sec.SubQuestions,
		paper.NewSubQuestion(0, p.Locale, &paper.Template{Kind: "short", Heading: "সংজ্ঞা দাও", Marks: &marks}),
		paper.NewSubQuestion(1, p.Locale, &paper.Template{Kind: "broad", Body: "<p>ব্যাখ্যা কর</p>", HeadingAfterBody: true}),
	)
	p.Sections = append(p.Sections, paper.NewSection(1, p.Locale))
	return p
}

func TestRoundTrip(t *testing.T) {
	p := buildPaper(t)

	data, err := portable.Encode(p)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := portable.Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !reflect.DeepEqual(p, decoded) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", decoded, p)
	}
}

func TestEncodeIncludesFormatMarker(t *testing.T) {
	data, err := portable.Encode(buildPaper(t))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	var env map[string]any
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if env["format"] != portable.FormatMarker {
		t.Fatalf("format marker = %v", env["format"])
	}
	if env["version"] != float64(portable.FormatVersion) {
		t.Fatalf("version = %v", env["version"])
	}
}

func TestEncodeRejectsInvalidPaper(t *testing.T) {
	p := buildPaper(t)
	p.Sections = nil
	if _, err := portable.Encode(p); err == nil {
		t.Fatal("expected Encode to reject a paper without sections")
	}
}

func TestDecodeMalformed(t *testing.T) {
	base, err := portable.Encode(buildPaper(t))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	corrupt := func(mutate func(env map[string]any)) []byte {
		t.Helper()
		var env map[string]any
		if err := json.Unmarshal(base, &env); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		mutate(env)
		data, err := json.Marshal(env)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return data
	}

	cases := []struct {
		name string
		data []byte
	}{
		{"not json", []byte("{nope")},
		{"wrong marker", corrupt(func(env map[string]any) { env["format"] = "something/else" })},
		{"future version", corrupt(func(env map[string]any) { env["version"] = 99 })},
		{"missing sections", corrupt(func(env map[string]any) {
			env["paper"].(map[string]any)["sections"] = []any{}
		})},
		{"missing paper id", corrupt(func(env map[string]any) {
			env["paper"].(map[string]any)["id"] = ""
		})},
		{"missing section id", corrupt(func(env map[string]any) {
			sections := env["paper"].(map[string]any)["sections"].([]any)
			sections[0].(map[string]any)["id"] = ""
		})},
		{"unknown locale", corrupt(func(env map[string]any) {
			env["paper"].(map[string]any)["locale"] = "xx"
		})},
		{"marks out of range", corrupt(func(env map[string]any) {
			sections := env["paper"].(map[string]any)["sections"].([]any)
			subs := sections[0].(map[string]any)["sub_questions"].([]any)
			subs[0].(map[string]any)["marks"] = 250
		})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := portable.Decode(tc.data); !errors.Is(err, portable.ErrMalformed) {
				t.Fatalf("Decode error = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestDecodeDoesNotTouchInput(t *testing.T) {
	p := buildPaper(t)
	data, err := portable.Encode(p)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	before := p.Clone()

	// Corrupt a required field and attempt a decode; the source paper must be
	// unaffected by the failed attempt.
	bad := []byte(`{"format":"paperforge/paper","version":1,"paper":{"id":"","sections":[]}}`)
	if _, err := portable.Decode(bad); !errors.Is(err, portable.ErrMalformed) {
		t.Fatalf("Decode error = %v, want ErrMalformed", err)
	}
	if !reflect.DeepEqual(before, p) {
		t.Fatal("failed decode mutated an unrelated paper")
	}
	if _, err := portable.Decode(data); err != nil {
		t.Fatalf("valid payload stopped decoding: %v", err)
	}
}
