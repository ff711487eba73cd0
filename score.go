package contactsift

import "strings"

// Scoring weights. The exact constants are tuned defaults; the contract
// is the shape: bounded, deterministic, monotonic in each signal.
const (
	scoreFloor = 0.1
	scoreCeil  = 1.0

	emailBase = 0.5
	phoneBase = 0.5
	nameBase  = 0.45
)

// URL path segments that signal a contact-bearing page.
var contactIntentURLWords = []string{"contact", "about", "team", "staff", "people", "impressum", "imprint"}

// Words near a match that signal contact intent.
var contactIntentContextWords = []string{"contact", "email", "e-mail", "reach", "write to", "get in touch"}

// Words near a match that signal a phone listing.
var phoneIntentContextWords = []string{"call", "phone", "tel", "mobile", "cell", "dial", "reach us"}

// clampConfidence bounds a raw score to [0.1, 1.0]. Scores outside the
// range are a programming error upstream; clamping degrades instead of
// failing the extraction pass.
func clampConfidence(score float64) float64 {
	if score < scoreFloor {
		return scoreFloor
	}
	if score > scoreCeil {
		return scoreCeil
	}
	return score
}

// sourceBonus rewards structural origins. Values from markup semantics
// are at least as trustworthy as freetext matches.
func sourceBonus(src Source) float64 {
	switch src {
	case SourceMailto, SourceTel:
		return 0.2
	case SourceStructured:
		return 0.15
	case SourceMeta:
		return 0.1
	case SourceSocial:
		return 0.05
	}
	return 0
}

// urlContactSignal reports whether the source URL suggests a contact page.
func urlContactSignal(sourceURL string) bool {
	lower := strings.ToLower(sourceURL)
	for _, w := range contactIntentURLWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// scoreEmail computes the confidence of a validated email candidate.
// Pure function of the candidate and its document context.
func scoreEmail(c Candidate, value string, sourceURL string) float64 {
	score := emailBase
	score += sourceBonus(c.Source)

	if urlContactSignal(sourceURL) {
		score += 0.1
	}
	if containsAny(strings.ToLower(c.Context), contactIntentContextWords) {
		score += 0.05
	}

	local, _, _ := strings.Cut(value, "@")
	for _, prefix := range businessLocalParts {
		if local == prefix {
			// Generic role addresses are real but less specific than a
			// person's own address.
			score -= 0.05
			break
		}
	}
	if strings.Contains(strings.Trim(local, "."), ".") {
		// first.last local parts look like a person.
		score += 0.05
	}

	// A deliberately obfuscated address is a strong signal the owner
	// considers it real and harvest-worthy.
	if NormalizeEmail(c.Raw) != strings.ToLower(strings.TrimSpace(c.Raw)) {
		score += 0.05
	}

	return clampConfidence(score)
}

// scorePhone computes the confidence of a validated phone candidate.
func scorePhone(c Candidate, value string, sourceURL string) float64 {
	score := phoneBase
	score += sourceBonus(c.Source)

	switch ClassifyPhoneType(value) {
	case ClassUSLocal:
		score += 0.1
	case ClassTollFree, ClassInternational:
		score += 0.05
	}

	// Separator characters indicate a number formatted for humans.
	if strings.ContainsAny(c.Raw, "()-. ") {
		score += 0.05
	}

	if containsAny(strings.ToLower(c.Context), phoneIntentContextWords) {
		score += 0.1
	}
	if urlContactSignal(sourceURL) {
		score += 0.05
	}

	return clampConfidence(score)
}

// scoreName computes the confidence of a validated name candidate.
func scoreName(c Candidate, value string, sourceURL string) float64 {
	score := nameBase
	score += sourceBonus(c.Source)

	parts := nameParts(value)
	switch {
	case parts == 2 || parts == 3:
		score += 0.15
	case parts == 1 || parts > 3:
		score -= 0.2
	}

	if consistentCapitalization(value) {
		score += 0.1
	}
	if hasMiddleInitial(value) {
		score += 0.05
	}

	compact := len(strings.ReplaceAll(value, " ", ""))
	if compact < 4 || compact > 30 {
		score -= 0.15
	}

	if urlContactSignal(sourceURL) {
		score += 0.05
	}

	return clampConfidence(score)
}

// consistentCapitalization reports whether every part is a capital
// letter followed by lowercase (initials allowed).
func consistentCapitalization(name string) bool {
	for _, part := range strings.Fields(name) {
		trimmed := strings.TrimSuffix(part, ".")
		if len(trimmed) == 1 {
			if trimmed[0] < 'A' || trimmed[0] > 'Z' {
				return false
			}
			continue
		}
		runes := []rune(part)
		if runes[0] < 'A' || runes[0] > 'Z' {
			return false
		}
		for i := 1; i < len(runes); i++ {
			// Interior capitals are fine after ' or - (O'Brien, Smith-Jones).
			if runes[i] >= 'A' && runes[i] <= 'Z' && runes[i-1] != '\'' && runes[i-1] != '-' {
				return false
			}
		}
	}
	return true
}
