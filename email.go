package contactsift

import (
	"regexp"
	"strings"
)

// Email pattern passes, in order. Broad de-obfuscation-aware patterns run
// after the plain forms; precision comes from the validation stage.
var emailPatterns = []*regexp.Regexp{
	// RFC 5322 approximation for the local part with a strict domain shape.
	regexp.MustCompile("[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+"),
	// Simplified common case.
	regexp.MustCompile(`\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`),
	// Bracket/parenthesis obfuscation: user [at] domain [dot] tld.
	regexp.MustCompile(`(?i)[a-zA-Z0-9._%+-]+\s*(?:\[\s*at\s*\]|\(\s*at\s*\)|\{\s*at\s*\})\s*[a-zA-Z0-9.-]+\s*(?:\[\s*dot\s*\]|\(\s*dot\s*\)|\{\s*dot\s*\})\s*[a-zA-Z]{2,}`),
	// Fully spelled out: user at domain dot tld.
	regexp.MustCompile(`(?i)\b[a-zA-Z0-9._%+-]+\s+at\s+[a-zA-Z0-9-]+(?:\s+dot\s+[a-zA-Z0-9-]+)*\s+dot\s+[a-zA-Z]{2,}\b`),
	// HTML entity obfuscation: user&#64;domain&#46;tld.
	regexp.MustCompile(`[a-zA-Z0-9._%+-]+(?:&#0*64;|&at;)[a-zA-Z0-9.-]*(?:&#0*46;|&dot;|\.)[a-zA-Z0-9.&#;-]*[a-zA-Z]{2,}`),
	// Injected spaces around @ and dots.
	regexp.MustCompile(`[a-zA-Z0-9._%+-]+\s*@\s*[a-zA-Z0-9-]+(?:\s*\.\s*[a-zA-Z0-9-]+)*\s*\.\s*[a-zA-Z]{2,}`),
}

// Exact placeholder addresses never worth reporting.
var emailPlaceholders = map[string]bool{
	"example@example.com": true,
	"test@test.com":       true,
	"test@example.com":    true,
	"user@example.com":    true,
	"email@example.com":   true,
	"name@example.com":    true,
	"admin@example.com":   true,
	"info@example.com":    true,
	"john@doe.com":        true,
	"jane@doe.com":        true,
	"foo@bar.com":         true,
	"a@b.c":               true,
	"your@email.com":      true,
	"you@example.com":     true,
	"someone@example.com": true,
	"email@address.com":   true,
	"mail@mail.com":       true,
}

// Domains that only ever appear in placeholder content.
var placeholderEmailDomains = map[string]bool{
	"example.com":     true,
	"example.org":     true,
	"example.net":     true,
	"test.com":        true,
	"domain.com":      true,
	"email.com":       true,
	"yoursite.com":    true,
	"yourdomain.com":  true,
	"yourcompany.com": true,
	"mysite.com":      true,
	"website.com":     true,
	"site.com":        true,
	"localhost":       true,
	"localhost.com":   true,
	"sentry.io":       true,
	"wixpress.com":    true,
}

// Tokens that mark a local part or domain as filler content.
var placeholderEmailTokens = []string{
	"lorem", "ipsum", "sample", "dummy", "placeholder", "changeme",
	"yourname", "your-name", "your_email", "youremail", "firstname",
	"lastname", "fname", "lname", "username", "somebody",
	"asdf", "qwerty", "temp@", "@temp",
}

// Automated-sender local parts that are not human contacts.
var automatedLocalParts = []string{
	"no-reply", "noreply", "no_reply", "donotreply", "do-not-reply",
	"bounce", "bounces", "mailer-daemon", "postmaster", "unsubscribe",
	"notifications", "alerts", "automated",
}

// TLDs reserved for testing and documentation (RFC 2606).
var invalidTLDs = map[string]bool{
	"test":      true,
	"local":     true,
	"invalid":   true,
	"example":   true,
	"localhost": true,
}

// Consumer webmail domains used for business/personal classification.
var personalEmailDomains = map[string]bool{
	"gmail.com":      true,
	"googlemail.com": true,
	"yahoo.com":      true,
	"yahoo.co.uk":    true,
	"hotmail.com":    true,
	"hotmail.co.uk":  true,
	"outlook.com":    true,
	"live.com":       true,
	"msn.com":        true,
	"aol.com":        true,
	"icloud.com":     true,
	"me.com":         true,
	"mac.com":        true,
	"protonmail.com": true,
	"proton.me":      true,
	"gmx.com":        true,
	"gmx.net":        true,
	"mail.com":       true,
	"yandex.com":     true,
	"yandex.ru":      true,
	"zoho.com":       true,
	"fastmail.com":   true,
	"hey.com":        true,
}

// Role-based local parts that mark an address as a business contact point.
var businessLocalParts = []string{
	"info", "contact", "sales", "support", "hello", "office", "admin",
	"enquiries", "inquiries", "team", "hr", "jobs", "careers", "press",
	"media", "marketing", "billing", "accounts", "help", "service",
	"bookings", "reservations", "orders",
}

// emailPatternCandidates runs the ordered pattern passes over text and
// returns raw candidates with surrounding context attached.
func emailPatternCandidates(text string) []Candidate {
	if text == "" {
		return nil
	}
	var out []Candidate
	for _, re := range emailPatterns {
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

// contextWindow returns up to 60 characters of text on each side of a
// match, for use as a scoring signal.
func contextWindow(text string, start, end int) string {
	const window = 60
	lo := start - window
	if lo < 0 {
		lo = 0
	}
	hi := end + window
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:hi]
}

// NormalizeEmail cleans a raw email candidate: wrapper characters are
// stripped, obfuscation is reversed, trailing punctuation is dropped, and
// the result is lowercased.
func NormalizeEmail(raw string) string {
	s := StripWrapperChars(raw)
	s = Deobfuscate(s)
	s = strings.Trim(s, ".,;:()[]")
	return strings.ToLower(s)
}

// IsValidEmail reports whether the address is structurally valid: exactly
// one @, non-empty local and domain parts, a dotted domain with no
// leading/trailing/double dots, and an overall length of at most 254.
func IsValidEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	at := strings.Count(email, "@")
	if at != 1 {
		return false
	}
	local, domain, _ := strings.Cut(email, "@")
	if local == "" || domain == "" {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	if strings.Contains(email, "..") {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}
	return true
}

// IsValidEmailDomain reports whether the domain part of an address looks
// like a real mail domain: length 3-255, an alphabetic TLD of 2-6
// characters, and no malformed dot sequences.
func IsValidEmailDomain(domain string) bool {
	if len(domain) < 3 || len(domain) > 255 {
		return false
	}
	if strings.Contains(domain, "..") {
		return false
	}
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" {
			return false
		}
	}
	tld := labels[len(labels)-1]
	if len(tld) < 2 || len(tld) > 6 {
		return false
	}
	for _, r := range tld {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// IsEmailFalsePositive reports whether a structurally valid address is a
// placeholder, an automated sender, or otherwise not a real contact.
// The address must already be normalized (lowercased).
func IsEmailFalsePositive(email string) bool {
	if emailPlaceholders[email] {
		return true
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return true
	}

	if placeholderEmailDomains[domain] {
		return true
	}

	tld := domain[strings.LastIndex(domain, ".")+1:]
	if invalidTLDs[tld] {
		return true
	}

	for _, token := range placeholderEmailTokens {
		if strings.Contains(email, token) {
			return true
		}
	}

	for _, prefix := range automatedLocalParts {
		if local == prefix || strings.HasPrefix(local, prefix+".") || strings.HasPrefix(local, prefix+"+") || strings.HasPrefix(local, prefix+"-") {
			return true
		}
	}

	// Malformed-looking addresses: bare single-character local parts,
	// long repeated character runs, or script-injection characters that
	// survived the pattern stage.
	if len(local) < 2 {
		return true
	}
	if hasRepeatedRun(email) {
		return true
	}
	if strings.ContainsAny(email, `<>"'`) {
		return true
	}

	return false
}

// hasRepeatedRun reports whether s contains a run of 5 or more identical
// consecutive characters.
func hasRepeatedRun(s string) bool {
	run := 1
	for i := 1; i < len(s); i++ {
		if s[i] != s[i-1] {
			run = 1
			continue
		}
		run++
		if run >= 5 {
			return true
		}
	}
	return false
}

// ClassifyEmail labels an address business or personal. Consumer webmail
// domains are personal; role-based local parts and unrecognized custom
// domains are business.
func ClassifyEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return ClassBusiness
	}
	for _, prefix := range businessLocalParts {
		if local == prefix || strings.HasPrefix(local, prefix+".") || strings.HasPrefix(local, prefix+"-") {
			return ClassBusiness
		}
	}
	if personalEmailDomains[domain] {
		return ClassPersonal
	}
	return ClassBusiness
}
