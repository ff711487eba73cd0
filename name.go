package contactsift

import (
	"regexp"
	"strings"
	"unicode"
)

// namePattern pairs a compiled expression with the index of the capture
// group holding the name (0 means the whole match).
type namePattern struct {
	re    *regexp.Regexp
	group int
}

const nameToken = `[A-Z][a-z]{1,19}`

// Name pattern passes, in order. Contextual patterns run before the
// generic capitalized-sequence fallback so scoring can reward context.
var namePatterns = []namePattern{
	// Professional titles: Dr. Jane Smith, Prof Alan Turing.
	{regexp.MustCompile(`\b(?:Dr|Mr|Mrs|Ms|Prof|Professor|Rev|Sir|Dame)\.?\s+(` + nameToken + `(?:\s+[A-Z]\.?)?(?:\s+` + nameToken + `){1,2})`), 1},
	// Role titles preceding a name: CEO Jane Smith.
	{regexp.MustCompile(`\b(?:CEO|CTO|CFO|COO|Director|Founder|Co-Founder|President|Owner|Manager|Partner)[,:]?\s+(` + nameToken + `(?:\s+` + nameToken + `){1,2})\b`), 1},
	// Contact-intent verbs: contact Jane Smith, ask for John Doe.
	{regexp.MustCompile(`(?i:\b(?:contact|reach|call|email|ask for|speak (?:to|with)))\s+(` + nameToken + `(?:\s+` + nameToken + `){1,2})\b`), 1},
	// About/team/founder framing: founded by Jane Smith.
	{regexp.MustCompile(`(?i:\b(?:founded by|started by|owned by|run by|led by|meet))\s+(` + nameToken + `(?:\s+` + nameToken + `){1,2})\b`), 1},
	// Byline markers: by Jane Smith, Author: Jane Smith.
	{regexp.MustCompile(`(?i:\b(?:by|author|written by|posted by))[:\s]\s*(` + nameToken + `(?:\s+` + nameToken + `){1,2})\b`), 1},
	// Job-title suffixes: Jane Smith, CEO.
	{regexp.MustCompile(`\b(` + nameToken + `(?:\s+` + nameToken + `){1,2}),?\s+(?:CEO|CTO|CFO|COO|Director|Founder|Co-Founder|President|Owner|Manager|Engineer|Officer|Consultant)\b`), 1},
	// Self-introductions: I'm Jane Smith, my name is Jane Smith.
	{regexp.MustCompile(`(?i:\b(?:i'?m|i am|my name is|this is))\s+(` + nameToken + `(?:\s+` + nameToken + `){1,2})\b`), 1},
	// Quote attributions: "..." - Jane Smith, says Jane Smith.
	{regexp.MustCompile(`(?:["\x{201d}]\s*[-\x{2013}\x{2014}]\s*|\bsays\s+)(` + nameToken + `(?:\s+` + nameToken + `){1,2})\b`), 1},
	// Generic fallback: plain two-or-three token capitalized sequences.
	{regexp.MustCompile(`\b` + nameToken + `(?:\s+[A-Z]\.?)?(?:\s+` + nameToken + `){1,2}\b`), 0},
}

// Placeholder full names that appear in demo content.
var namePlaceholders = map[string]bool{
	"john doe":   true,
	"jane doe":   true,
	"jane smith": true,
	"test user":  true,
	"test test":  true,
	"first last": true,
	"full name":  true,
	"your name":  true,
}

// Tokens in a candidate that mark it as filler content.
var namePlaceholderTokens = []string{"lorem", "ipsum", "sample", "dummy", "placeholder", "asdf"}

// Business and navigation phrases the generic fallback mistakes for names.
var businessPhraseWords = map[string]bool{
	"service": true, "services": true, "support": true, "department": true,
	"office": true, "team": true, "staff": true, "group": true,
	"solutions": true, "systems": true, "technologies": true, "company": true,
	"inc": true, "llc": true, "ltd": true, "corp": true, "corporation": true,
	"about": true, "contact": true, "home": true, "page": true, "privacy": true,
	"policy": true, "terms": true, "conditions": true, "copyright": true,
	"rights": true, "reserved": true, "learn": true, "read": true, "more": true,
	"sign": true, "login": true, "register": true, "subscribe": true,
	"follow": true, "menu": true, "search": true, "news": true, "blog": true,
	"media": true, "press": true, "careers": true, "jobs": true, "help": true,
	"faq": true, "customer": true, "tech": true, "sales": true, "marketing": true,
	"please": true, "visit": true, "click": true, "here": true, "welcome": true,
	"thank": true, "thanks": true, "email": true, "phone": true, "call": true,
	"free": true, "shipping": true, "returns": true, "order": true,
	"united": true, "states": true, "york": true, "angeles": true, "francisco": true,
	"street": true, "avenue": true, "suite": true, "monday": true, "friday": true,
	"january": true, "february": true, "september": true, "october": true,
	"november": true, "december": true,
}

var camelBoundaryRe = regexp.MustCompile(`([a-z])([A-Z])`)
var initialRunRe = regexp.MustCompile(`\b([A-Z]\.)([A-Z])`)

// namePatternCandidates runs the ordered pattern passes over text and
// returns raw candidates with surrounding context attached.
func namePatternCandidates(text string) []Candidate {
	if text == "" {
		return nil
	}
	var out []Candidate
	for _, p := range namePatterns {
		for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[2*p.group], loc[2*p.group+1]
			if start < 0 || end < 0 {
				continue
			}
			out = append(out, Candidate{
				Raw:     text[start:end],
				Source:  SourcePattern,
				Context: contextWindow(text, start, end),
			})
		}
	}
	return out
}

// NormalizeName canonicalizes a raw name: whitespace collapsed, camel-case
// boundaries split, initials separated (A.B. becomes A. B.), and each word
// title-cased.
func NormalizeName(raw string) string {
	s := StripWrapperChars(raw)
	s = camelBoundaryRe.ReplaceAllString(s, "$1 $2")
	s = initialRunRe.ReplaceAllString(s, "$1 $2")
	s = CollapseWhitespace(s)

	words := strings.Fields(s)
	for i, w := range words {
		w = titleCaseWord(w)
		// Bare single-letter initials gain a period: Jane M Smith
		// becomes Jane M. Smith.
		if len(w) == 1 && w[0] >= 'A' && w[0] <= 'Z' {
			w += "."
		}
		words[i] = w
	}
	return strings.Join(words, " ")
}

// titleCaseWord uppercases the first letter and any letter following an
// apostrophe or hyphen, lowercasing the rest (O'BRIEN -> O'Brien).
func titleCaseWord(w string) string {
	runes := []rune(w)
	upper := true
	for i, r := range runes {
		if upper && unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
			upper = false
			continue
		}
		if r == '\'' || r == '-' {
			upper = true
			continue
		}
		runes[i] = unicode.ToLower(r)
	}
	return string(runes)
}

// IsValidName reports whether a normalized candidate is structurally a
// personal name: 3-50 characters, at least two parts of 2-20 characters
// each, restricted character set, capitalized parts.
func IsValidName(name string) bool {
	if len(name) < 3 || len(name) > 50 {
		return false
	}

	parts := strings.Fields(name)
	if len(parts) < 2 {
		return false
	}

	for _, part := range parts {
		n := len([]rune(part))
		if n < 2 || n > 20 {
			return false
		}
		for _, r := range part {
			if !unicode.IsLetter(r) && r != ' ' && r != '\'' && r != '.' && r != '-' {
				return false
			}
		}
		runes := []rune(part)
		if !unicode.IsUpper(runes[0]) {
			return false
		}
	}

	return true
}

// IsNameFalsePositive reports whether a structurally valid name is a
// placeholder, a business phrase, or otherwise not a person.
// The name must already be normalized.
func IsNameFalsePositive(name string) bool {
	lower := strings.ToLower(name)

	if namePlaceholders[lower] {
		return true
	}

	for _, token := range namePlaceholderTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}

	parts := strings.Fields(name)
	lowerParts := strings.Fields(lower)
	for _, part := range lowerParts {
		if businessPhraseWords[strings.Trim(part, ".")] {
			return true
		}
	}

	for _, part := range parts {
		for _, r := range part {
			if unicode.IsDigit(r) {
				return true
			}
			if !unicode.IsLetter(r) && r != '\'' && r != '.' && r != '-' {
				return true
			}
		}
		// All-caps tokens (beyond initials) are headings, not names.
		if len([]rune(part)) > 2 && part == strings.ToUpper(part) {
			return true
		}
	}

	// Immediate word repetition: John John.
	for i := 1; i < len(lowerParts); i++ {
		if lowerParts[i] == lowerParts[i-1] {
			return true
		}
	}

	return false
}

// ClassifyName labels a name by its part count.
func ClassifyName(name string) string {
	parts := strings.Fields(name)
	switch {
	case len(parts) <= 1:
		return ClassSingle
	case len(parts) == 3 && isMiddlePart(parts[1]):
		return ClassFullWithMiddle
	default:
		return ClassFull
	}
}

// isMiddlePart reports whether a token looks like a middle name or
// initial (an initial with optional period, or a plain name token).
func isMiddlePart(part string) bool {
	runes := []rune(part)
	if len(runes) == 0 {
		return false
	}
	return unicode.IsUpper(runes[0])
}

// nameParts returns the number of whitespace-separated parts.
func nameParts(name string) int {
	return len(strings.Fields(name))
}

// hasMiddleInitial reports whether the middle token of a three-part name
// is an initial (single letter, optional period).
func hasMiddleInitial(name string) bool {
	parts := strings.Fields(name)
	if len(parts) != 3 {
		return false
	}
	mid := strings.TrimSuffix(parts[1], ".")
	return len([]rune(mid)) == 1
}
