package mock

import "github.com/contactsift/contactsift"

var _ contactsift.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of contactsift.TextExtractor.
type TextExtractor struct {
	TextFn func(html string) (string, string, error)
}

func (e *TextExtractor) Text(html string) (string, string, error) {
	return e.TextFn(html)
}

var _ contactsift.StructuredSource = (*StructuredSource)(nil)

// StructuredSource is a mock implementation of contactsift.StructuredSource.
type StructuredSource struct {
	EmailCandidatesFn func(html string) ([]contactsift.Candidate, error)
	PhoneCandidatesFn func(html string) ([]contactsift.Candidate, error)
	NameCandidatesFn  func(html string) ([]contactsift.Candidate, error)
}

func (s *StructuredSource) EmailCandidates(html string) ([]contactsift.Candidate, error) {
	return s.EmailCandidatesFn(html)
}

func (s *StructuredSource) PhoneCandidates(html string) ([]contactsift.Candidate, error) {
	return s.PhoneCandidatesFn(html)
}

func (s *StructuredSource) NameCandidates(html string) ([]contactsift.Candidate, error) {
	return s.NameCandidatesFn(html)
}
