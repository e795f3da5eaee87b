package locale

import "strconv"

// Label derives the display label for a sub-question at the given position,
// e.g. "(a)" for English index 0 or "(ক)" for Bengali. Indices past the
// locale's alphabet (and any index under an unknown locale) fall back to the
// numeric form "(n)" so the result is always a printable label.
func Label(index int, loc Locale) string {
	if index < 0 {
		index = 0
	}
	e := lookup(loc)
	if e == nil || index >= e.alphabetLen {
		return "(" + strconv.Itoa(index+1) + ")"
	}
	return "(" + string(e.alphabetBase+rune(index)) + ")"
}

// SectionTitle derives the default title for a section at the given position,
// e.g. "First Question" or "প্রথম প্রশ্ন". Past the ordinal table the title
// falls back to the locale's numbered form ("Question 11").
func SectionTitle(index int, loc Locale) string {
	if index < 0 {
		index = 0
	}
	e := lookup(loc)
	if e == nil {
		return "Question " + strconv.Itoa(index+1)
	}
	if index >= len(e.ordinals) {
		return e.questionWord + " " + strconv.Itoa(index+1)
	}
	if e.rtl {
		// Arabic ordinals follow the noun.
		return e.questionWord + " " + e.ordinals[index]
	}
	return e.ordinals[index] + " " + e.questionWord
}
