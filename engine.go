package contactsift

import (
	"sort"
	"strings"
	"time"
)

// Engine turns raw document text/HTML into ranked, validated, scored
// contact records. It performs pure computation with no I/O and no
// shared mutable state, so a single Engine is safe for concurrent use
// on independent documents.
type Engine struct {
	// Structured generates candidates from HTML markup semantics.
	// Optional; when nil only freetext pattern passes run.
	Structured StructuredSource

	// Options configures which kinds run, validation, dedup, and caps.
	Options Options

	// Now supplies record timestamps. Defaults to time.Now in UTC.
	// Timestamps are metadata only and never influence scoring.
	Now func() time.Time
}

// NewEngine returns an Engine with default options and the given
// structured source (nil disables HTML-aware extraction).
func NewEngine(structured StructuredSource) *Engine {
	return &Engine{
		Structured: structured,
		Options:    DefaultOptions(),
	}
}

func (e *Engine) timestamp() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now().UTC()
}

// Extract runs all enabled extractors over one document and returns the
// per-kind ranked lists. It never fails: malformed input yields empty
// lists.
func (e *Engine) Extract(doc Document) *Result {
	res := &Result{
		Emails: []ContactRecord{},
		Phones: []ContactRecord{},
		Names:  []ContactRecord{},
	}
	if e.Options.Emails {
		res.Emails = e.ExtractEmails(doc.Text, doc.HTML, doc.URL)
	}
	if e.Options.Phones {
		res.Phones = e.ExtractPhones(doc.Text, doc.HTML, doc.URL)
	}
	if e.Options.Names {
		res.Names = e.ExtractNames(doc.Text, doc.HTML, doc.URL)
	}
	return res
}

// ExtractEmails returns a ranked list of validated email records found
// in text and optional HTML, capped at the configured email cap.
func (e *Engine) ExtractEmails(text, html, sourceURL string) []ContactRecord {
	cands := emailPatternCandidates(text)
	if html != "" && e.Structured != nil {
		if sc, err := e.Structured.EmailCandidates(html); err == nil {
			cands = append(cands, sc...)
		}
	}

	ts := e.timestamp()
	records := []ContactRecord{}
	seen := make(map[string]bool)

	for _, c := range cands {
		value := NormalizeEmail(candidateValue(c))
		if value == "" {
			continue
		}

		if e.Options.Validate {
			if !IsValidEmail(value) {
				continue
			}
			_, domain, _ := strings.Cut(value, "@")
			if !IsValidEmailDomain(domain) {
				continue
			}
			if IsEmailFalsePositive(value) {
				continue
			}
		}

		if e.Options.Dedupe {
			if seen[value] {
				continue
			}
			seen[value] = true
		}

		records = append(records, ContactRecord{
			Kind:           KindEmail,
			Value:          value,
			DisplayValue:   value,
			Confidence:     scoreEmail(c, value, sourceURL),
			Classification: ClassifyEmail(value),
			Source:         c.Source,
			SourceURL:      sourceURL,
			DiscoveredAt:   ts,
		})
	}

	sortByConfidence(records)
	return truncate(records, e.Options.emailCap())
}

// ExtractPhones returns a ranked list of validated phone records found
// in text and optional HTML, capped at the configured phone cap.
func (e *Engine) ExtractPhones(text, html, sourceURL string) []ContactRecord {
	cands := phonePatternCandidates(text)
	if html != "" && e.Structured != nil {
		if sc, err := e.Structured.PhoneCandidates(html); err == nil {
			cands = append(cands, sc...)
		}
	}

	ts := e.timestamp()
	records := []ContactRecord{}
	seen := make(map[string]bool)

	for _, c := range cands {
		raw := candidateValue(c)
		value := NormalizePhone(raw)
		if value == "" {
			continue
		}

		if e.Options.Validate {
			if !validPhone(raw, c.Source.Structural()) {
				continue
			}
			if IsPhoneFalsePositive(value, c.Context) {
				continue
			}
		}

		key := digitsOnly(value)
		if e.Options.Dedupe {
			if seen[key] {
				continue
			}
			seen[key] = true
		}

		records = append(records, ContactRecord{
			Kind:           KindPhone,
			Value:          value,
			DisplayValue:   FormatPhoneNumber(value),
			Confidence:     scorePhone(c, value, sourceURL),
			Classification: ClassifyPhoneType(value),
			Source:         c.Source,
			SourceURL:      sourceURL,
			DiscoveredAt:   ts,
		})
	}

	sortByConfidence(records)
	return truncate(records, e.Options.phoneCap())
}

// ExtractNames returns a ranked list of validated personal-name records
// found in text and optional HTML, capped at the configured name cap.
// Ties are broken by preferring more name parts, then lexical order.
func (e *Engine) ExtractNames(text, html, sourceURL string) []ContactRecord {
	cands := namePatternCandidates(text)
	if html != "" && e.Structured != nil {
		if sc, err := e.Structured.NameCandidates(html); err == nil {
			cands = append(cands, sc...)
		}
	}

	ts := e.timestamp()
	records := []ContactRecord{}
	seen := make(map[string]bool)

	for _, c := range cands {
		value := NormalizeName(candidateValue(c))
		if value == "" {
			continue
		}

		if e.Options.Validate {
			if !IsValidName(value) {
				continue
			}
			if IsNameFalsePositive(value) {
				continue
			}
		}

		key := strings.ToLower(value)
		if e.Options.Dedupe {
			if seen[key] {
				continue
			}
			seen[key] = true
		}

		records = append(records, ContactRecord{
			Kind:           KindName,
			Value:          value,
			DisplayValue:   value,
			Confidence:     scoreName(c, value, sourceURL),
			Classification: ClassifyName(value),
			Source:         c.Source,
			SourceURL:      sourceURL,
			DiscoveredAt:   ts,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Confidence != records[j].Confidence {
			return records[i].Confidence > records[j].Confidence
		}
		pi, pj := nameParts(records[i].Value), nameParts(records[j].Value)
		if pi != pj {
			return pi > pj
		}
		return records[i].Value < records[j].Value
	})
	return truncate(records, e.Options.nameCap())
}

// candidateValue prefers an already-normalized structural value over the
// raw match.
func candidateValue(c Candidate) string {
	if c.Value != "" {
		return c.Value
	}
	return c.Raw
}

// sortByConfidence orders records by confidence descending; equal scores
// keep first-seen order for determinism.
func sortByConfidence(records []ContactRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Confidence > records[j].Confidence
	})
}

func truncate(records []ContactRecord, limit int) []ContactRecord {
	if len(records) > limit {
		return records[:limit]
	}
	return records
}
