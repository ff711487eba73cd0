package contactsift

// StructuredSource generates contact candidates from HTML markup
// semantics: mailto:/tel: hrefs, JSON-LD, microdata, meta tags, and
// profile URLs. It complements the engine's freetext pattern passes.
//
// Implementations return raw candidates; structural validation,
// false-positive filtering, and scoring remain the engine's job.
type StructuredSource interface {
	// EmailCandidates extracts email candidates from HTML markup.
	EmailCandidates(html string) ([]Candidate, error)

	// PhoneCandidates extracts phone candidates from HTML markup.
	PhoneCandidates(html string) ([]Candidate, error)

	// NameCandidates extracts personal-name candidates from HTML markup.
	NameCandidates(html string) ([]Candidate, error)
}
