package contactsift

import (
	"regexp"
	"strings"
	"unicode"
)

// Obfuscation markers that hide the @ and . of an email address in
// scraped text. Entity forms cover both decimal escapes and the named
// variants occasionally emitted by mangled templating.
var (
	obfuscatedAtRe  = regexp.MustCompile(`(?i)\s*(?:\[\s*at\s*\]|\(\s*at\s*\)|\{\s*at\s*\}|&#0*64;|&at;|\s+at\s+)\s*`)
	obfuscatedDotRe = regexp.MustCompile(`(?i)\s*(?:\[\s*dot\s*\]|\(\s*dot\s*\)|\{\s*dot\s*\}|&#0*46;|&dot;|\s+dot\s+)\s*`)

	spacedAtRe  = regexp.MustCompile(`\s*@\s*`)
	spacedDotRe = regexp.MustCompile(`\s*\.\s*`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CollapseWhitespace reduces runs of whitespace and newlines to a single
// space and trims leading/trailing whitespace.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// StripWrapperChars removes angle brackets and non-printable characters
// anywhere in the token, and quotes only at its edges (e.g.
// "<info@firm.org>" or '"Jane Smith"'). Interior apostrophes are kept:
// they are part of names like O'Brien.
func StripWrapperChars(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case '<', '>':
			continue
		}
		if r != ' ' && !unicode.IsPrint(r) {
			continue
		}
		sb.WriteRune(r)
	}
	out := strings.TrimSpace(sb.String())
	out = strings.Trim(out, "\"'`")
	return strings.TrimSpace(out)
}

// Deobfuscate replaces textual obfuscation markers with the characters
// they hide ([at], (at), " at ", &#64; become @; the dot variants become
// .) and collapses injected whitespace around @ and dots.
//
// Deobfuscate is idempotent: applying it twice yields the same result as
// applying it once. It is intended for candidate substrings, not whole
// documents, since " at " and " dot " are replaced unconditionally.
func Deobfuscate(s string) string {
	s = obfuscatedAtRe.ReplaceAllString(s, "@")
	s = obfuscatedDotRe.ReplaceAllString(s, ".")
	s = spacedAtRe.ReplaceAllString(s, "@")
	s = spacedDotRe.ReplaceAllString(s, ".")
	return strings.TrimSpace(s)
}
