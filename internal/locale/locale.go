package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies a supported display language for paper labels and titles.
type Locale string

const (
	English Locale = "en"
	Bengali Locale = "bn"
	Hindi   Locale = "hi"
	Arabic  Locale = "ar"
)

type entry struct {
	code         Locale
	tag          language.Tag
	display      string // Native display name
	rtl          bool
	alphabetBase rune // First label code point
	alphabetLen  int  // Assigned contiguous run from alphabetBase
	ordinals     []string
	questionWord string // Noun joined with the position number past the ordinal table
}

var locales = []entry{
	{
		code:         English,
		tag:          language.English,
		display:      "English",
		alphabetBase: 'a',
		alphabetLen:  26,
		ordinals: []string{
			"First", "Second", "Third", "Fourth", "Fifth",
			"Sixth", "Seventh", "Eighth", "Ninth", "Tenth",
		},
		questionWord: "Question",
	},
	{
		code:         Bengali,
		tag:          language.Bengali,
		display:      "বাংলা",
		alphabetBase: 'ক',
		alphabetLen:  20,
		ordinals: []string{
			"প্রথম", "দ্বিতীয়", "তৃতীয়", "চতুর্থ", "পঞ্চম",
			"ষষ্ঠ", "সপ্তম", "অষ্টম", "নবম", "দশম",
		},
		questionWord: "প্রশ্ন",
	},
	{
		code:         Hindi,
		tag:          language.Hindi,
		display:      "हिन्दी",
		alphabetBase: 'क',
		alphabetLen:  20,
		ordinals: []string{
			"पहला", "दूसरा", "तीसरा", "चौथा", "पाँचवाँ",
			"छठा", "सातवाँ", "आठवाँ", "नौवाँ", "दसवाँ",
		},
		questionWord: "प्रश्न",
	},
	{
		code:         Arabic,
		tag:          language.Arabic,
		display:      "العربية",
		rtl:          true,
		alphabetBase: 'أ',
		alphabetLen:  24,
		ordinals: []string{
			"الأول", "الثاني", "الثالث", "الرابع", "الخامس",
			"السادس", "السابع", "الثامن", "التاسع", "العاشر",
		},
		questionWord: "السؤال",
	},
}

// Index maps built at init time.
var (
	byCode  map[Locale]*entry
	tags    []language.Tag
	matcher language.Matcher
)

func init() {
	byCode = make(map[Locale]*entry, len(locales))
	tags = make([]language.Tag, 0, len(locales))
	for i := range locales {
		e := &locales[i]
		byCode[e.code] = e
		tags = append(tags, e.tag)
	}
	matcher = language.NewMatcher(tags)
}

func lookup(loc Locale) *entry {
	if e, ok := byCode[loc]; ok {
		return e
	}
	return nil
}

// Supported reports whether loc is one of the known locales.
func Supported(loc Locale) bool {
	return lookup(loc) != nil
}

// All returns the supported locales in declaration order.
func All() []Locale {
	out := make([]Locale, 0, len(locales))
	for i := range locales {
		out = append(out, locales[i].code)
	}
	return out
}

// Parse resolves free-form user input ("bn", "bn-BD", "bengali") to a supported
// Locale. Word forms are matched against the English and native display names;
// anything else goes through the BCP 47 matcher so regional variants collapse
// to their base language.
func Parse(value string) (Locale, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	if e := lookup(Locale(strings.ToLower(trimmed))); e != nil {
		return e.code, true
	}
	for i := range locales {
		e := &locales[i]
		if strings.EqualFold(trimmed, e.display) || strings.EqualFold(trimmed, englishName(e.code)) {
			return e.code, true
		}
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return "", false
	}
	_, index, conf := matcher.Match(tag)
	if conf < language.High {
		return "", false
	}
	return locales[index].code, true
}

func englishName(loc Locale) string {
	switch loc {
	case English:
		return "English"
	case Bengali:
		return "Bengali"
	case Hindi:
		return "Hindi"
	case Arabic:
		return "Arabic"
	default:
		return string(loc)
	}
}

// Display returns the native display name for a locale.
func Display(loc Locale) string {
	if e := lookup(loc); e != nil {
		return e.display
	}
	return string(loc)
}

// RTL reports whether the locale's script renders right to left.
func RTL(loc Locale) bool {
	if e := lookup(loc); e != nil {
		return e.rtl
	}
	return false
}
