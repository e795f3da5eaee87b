package locale_test

import (
	"strconv"
	"testing"

	"paperforge/internal/locale"
)

func TestLabelFirstCharacters(t *testing.T) {
	cases := []struct {
		loc      locale.Locale
		index    int
		expected string
	}{
		{locale.English, 0, "(a)"},
		{locale.English, 1, "(b)"},
		{locale.English, 25, "(z)"},
		{locale.Bengali, 0, "(ক)"},
		{locale.Bengali, 1, "(খ)"},
		{locale.Hindi, 0, "(क)"},
		{locale.Hindi, 1, "(ख)"},
		{locale.Arabic, 0, "(أ)"},
	}
	for _, tc := range cases {
		if got := locale.Label(tc.index, tc.loc); got != tc.expected {
			t.Errorf("Label(%d, %s) = %q, want %q", tc.index, tc.loc, got, tc.expected)
		}
	}
}

func TestLabelNumericFallbackPastAlphabet(t *testing.T) {
	for _, loc := range locale.All() {
		for _, index := range []int{200, 1000} {
			want := "(" + strconv.Itoa(index+1) + ")"
			if got := locale.Label(index, loc); got != want {
				t.Errorf("Label(%d, %s) = %q, want numeric fallback %q", index, loc, got, want)
			}
		}
	}
	if got := locale.Label(26, locale.English); got != "(27)" {
		t.Errorf("Label(26, en) = %q, want %q", got, "(27)")
	}
}

func TestLabelTotalAndDeterministic(t *testing.T) {
	for _, loc := range append(locale.All(), locale.Locale("xx")) {
		for index := -1; index < 64; index++ {
			first := locale.Label(index, loc)
			if first == "" {
				t.Fatalf("Label(%d, %s) returned empty label", index, loc)
			}
			if again := locale.Label(index, loc); again != first {
				t.Fatalf("Label(%d, %s) not deterministic: %q then %q", index, loc, first, again)
			}
		}
	}
}

func TestSectionTitleOrdinals(t *testing.T) {
	if got := locale.SectionTitle(0, locale.English); got != "First Question" {
		t.Errorf("SectionTitle(0, en) = %q", got)
	}
	if got := locale.SectionTitle(1, locale.English); got != "Second Question" {
		t.Errorf("SectionTitle(1, en) = %q", got)
	}
	if got := locale.SectionTitle(0, locale.Bengali); got != "প্রথম প্রশ্ন" {
		t.Errorf("SectionTitle(0, bn) = %q", got)
	}
	if got := locale.SectionTitle(0, locale.Arabic); got != "السؤال الأول" {
		t.Errorf("SectionTitle(0, ar) = %q", got)
	}
}

func TestSectionTitleFallbackPastOrdinals(t *testing.T) {
	if got := locale.SectionTitle(10, locale.English); got != "Question 11" {
		t.Errorf("SectionTitle(10, en) = %q, want %q", got, "Question 11")
	}
	if got := locale.SectionTitle(41, locale.Bengali); got != "প্রশ্ন 42" {
		t.Errorf("SectionTitle(41, bn) = %q, want %q", got, "প্রশ্ন 42")
	}
	if got := locale.SectionTitle(3, locale.Locale("xx")); got != "Question 4" {
		t.Errorf("SectionTitle under unknown locale = %q, want %q", got, "Question 4")
	}
}
