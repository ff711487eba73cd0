package contactsift

import (
	"regexp"
	"strings"
)

// Phone pattern passes, in order. Deliberately broad; precision comes
// from digit-based validation and false-positive filtering.
var phonePatterns = []*regexp.Regexp{
	// International prefix: +CC or 00CC followed by separated groups.
	regexp.MustCompile(`(?:\+|00)[1-9]\d{0,2}[-.\s]?\(?\d{1,4}\)?(?:[-.\s]?\d{2,4}){1,4}`),
	// Parenthesized area code: (XXX) XXX-XXXX.
	regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`),
	// Dash-separated groups (2-4 groups).
	regexp.MustCompile(`\b\d{2,4}(?:-\d{2,4}){1,3}\b`),
	// Dot-separated groups.
	regexp.MustCompile(`\b\d{3}\.\d{3}\.\d{4}\b`),
	// Space-separated groups.
	regexp.MustCompile(`\b\d{3}\s\d{3}\s\d{4}\b`),
	// Bare digit runs; validation rejects the ID-like ones.
	regexp.MustCompile(`\b\d{6,15}\b`),
}

// Date-like shapes commonly matched by the broad phone patterns.
var dateShapeRes = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}[-/]\d{1,2}[-/]\d{1,2}$`), // YYYY-MM-DD
	regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}[-/]\d{4}$`), // MM/DD/YYYY
}

// Known placeholder digit sequences.
var phonePlaceholderDigits = map[string]bool{
	"1234567890":  true,
	"0123456789":  true,
	"12345678901": true,
	"123456789":   true,
	"987654321":   true,
	"9876543210":  true,
}

// Context words indicating the digits are an identifier, not a phone.
var phoneContextStopwords = []string{
	"zip", "postal", "ssn", "social security", "tracking", "order",
	"invoice", "account", "reference", "confirmation", "ticket",
	"serial", "isbn", "ean", "sku", "id:",
}

// Placeholder words in the immediate token around a match.
var phoneTokenStopwords = []string{"test", "sample", "example", "xxx", "placeholder"}

// Toll-free NANP prefixes.
var tollFreePrefixes = map[string]bool{
	"800": true, "833": true, "844": true, "855": true,
	"866": true, "877": true, "888": true,
}

// phonePatternCandidates runs the ordered pattern passes over text and
// returns raw candidates with surrounding context attached.
func phonePatternCandidates(text string) []Candidate {
	if text == "" {
		return nil
	}
	var out []Candidate
	for _, re := range phonePatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			out = append(out, Candidate{
				Raw:     text[loc[0]:loc[1]],
				Source:  SourcePattern,
				Context: contextWindow(text, loc[0], loc[1]),
			})
		}
	}
	return out
}

// digitsOnly strips everything but ASCII digits.
func digitsOnly(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// NormalizePhone reduces a raw match to digits with an optional leading
// plus. A leading 00 international prefix is rewritten as +.
func NormalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	digits := digitsOnly(raw)
	if strings.HasPrefix(raw, "+") {
		return "+" + digits
	}
	if strings.HasPrefix(digits, "00") && len(digits) > 8 {
		return "+" + digits[2:]
	}
	return digits
}

// IsValidPhoneNumber reports whether a raw match plausibly denotes a
// phone number: 7-15 digits, not date-shaped, not an unseparated 8+
// digit run (those are usually IDs), and for North American numbers a
// plausible area code and exchange.
func IsValidPhoneNumber(raw string) bool {
	return validPhone(raw, false)
}

// validPhone implements IsValidPhoneNumber. Structural candidates
// (tel: hrefs, microdata) skip the unseparated-digit-run heuristic,
// since tel targets are legitimately bare digit strings.
func validPhone(raw string, structural bool) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	for _, re := range dateShapeRes {
		if re.MatchString(raw) {
			return false
		}
	}

	digits := digitsOnly(raw)
	if len(digits) < 7 || len(digits) > 15 {
		return false
	}

	// 8+ consecutive digits with no separators at all look like IDs.
	if !structural && len(raw) == len(digits) && len(digits) >= 8 {
		return false
	}

	normalized := NormalizePhone(raw)
	if len(normalized) > 16 { // + and at most 15 digits
		return false
	}

	if nanp, ok := nanpDigits(digits, strings.HasPrefix(normalized, "+")); ok {
		area, exchange := nanp[:3], nanp[3:6]
		if area[0] == '0' || area[0] == '1' {
			return false
		}
		// Exchanges never start with 0.
		if exchange[0] == '0' {
			return false
		}
		// N11 service codes (911, 411, ...) are not diallable area codes.
		if area[1] == '1' && area[2] == '1' {
			return false
		}
	}

	return true
}

// nanpDigits returns the 10 significant digits of a North American
// number, accepting either a bare 10-digit form or 11 digits with a
// leading 1. The plus flag widens acceptance to +1 numbers.
func nanpDigits(digits string, hasPlus bool) (string, bool) {
	switch {
	case len(digits) == 10 && !hasPlus:
		return digits, true
	case len(digits) == 11 && digits[0] == '1':
		return digits[1:], true
	}
	return "", false
}

// IsPhoneFalsePositive reports whether a validated number is placeholder
// content or an identifier judging by its digits and surrounding text.
func IsPhoneFalsePositive(value string, context string) bool {
	digits := digitsOnly(value)

	if phonePlaceholderDigits[digits] {
		return true
	}
	if allSameDigit(digits) {
		return true
	}
	if isSequentialDigits(digits) {
		return true
	}

	// Fictional 555-01XX exchange numbers.
	if nanp, ok := nanpDigits(digits, strings.HasPrefix(value, "+")); ok {
		if nanp[3:6] == "555" && nanp[6:8] == "01" {
			return true
		}
	}

	lower := strings.ToLower(context)
	for _, word := range phoneContextStopwords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	for _, word := range phoneTokenStopwords {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}

func allSameDigit(digits string) bool {
	if digits == "" {
		return false
	}
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

// isSequentialDigits reports whether every step between adjacent digits
// is +1 or every step is -1 (e.g. 1234567, 9876543210).
func isSequentialDigits(digits string) bool {
	if len(digits) < 7 {
		return false
	}
	asc, desc := true, true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[i-1]+1 {
			asc = false
		}
		if digits[i] != digits[i-1]-1 {
			desc = false
		}
	}
	return asc || desc
}

// FormatPhoneNumber renders a normalized number for display: 10-digit US
// numbers as (XXX) XXX-XXXX, 11-digit leading-1 numbers as
// +1 (XXX) XXX-XXXX, longer numbers as +<digits>, and anything else
// unchanged.
func FormatPhoneNumber(value string) string {
	digits := digitsOnly(value)
	switch {
	case len(digits) == 10:
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
	case len(digits) == 11 && digits[0] == '1':
		return "+1 (" + digits[1:4] + ") " + digits[4:7] + "-" + digits[7:]
	case len(digits) > 11:
		return "+" + digits
	}
	return value
}

// ClassifyPhoneType labels a normalized number toll-free, us-local,
// international, or other.
func ClassifyPhoneType(value string) string {
	digits := digitsOnly(value)

	if nanp, ok := nanpDigits(digits, strings.HasPrefix(value, "+")); ok {
		if tollFreePrefixes[nanp[:3]] {
			return ClassTollFree
		}
		return ClassUSLocal
	}
	if strings.HasPrefix(value, "+") {
		return ClassInternational
	}
	return ClassOther
}
