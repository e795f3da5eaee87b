// Package locale defines the supported display languages and derives the
// position-dependent labels and titles shown on an exam paper.
//
// Label and SectionTitle are pure functions of (index, locale). Each locale
// declares an alphabet base code point and an explicit alphabet length; indices
// past the bound fall back to a numeric label instead of walking into
// unassigned code points. Ordinal section titles fall back to the locale's
// "Question N" pattern past the ordinal table.
//
// Treat this package as the single source of truth for locale semantics; when
// you add a locale, extend the entry table here and nothing else.
package locale
