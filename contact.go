package contactsift

import (
	"context"
	"strings"
	"time"
)

// Kind identifies the type of contact value a record holds.
type Kind string

// Contact kinds.
const (
	KindEmail Kind = "email"
	KindPhone Kind = "phone"
	KindName  Kind = "name"
)

// Source identifies the extraction method that produced a candidate.
// Structural sources (markup semantics) are generally more trustworthy
// than freetext pattern matches and score at least as high.
type Source string

// Candidate sources.
const (
	SourcePattern    Source = "pattern"    // freetext regular expression match
	SourceMailto     Source = "mailto"     // mailto: href target
	SourceTel        Source = "tel"        // tel: href target
	SourceStructured Source = "structured" // JSON-LD / microdata
	SourceMeta       Source = "meta"       // meta tag content
	SourceSocial     Source = "social"     // social profile URL segment
)

// Structural reports whether the source derives from markup semantics
// rather than freetext pattern matching.
func (s Source) Structural() bool {
	switch s {
	case SourceMailto, SourceTel, SourceStructured, SourceMeta, SourceSocial:
		return true
	}
	return false
}

// Classification values for ContactRecord.Classification.
const (
	ClassBusiness = "business"
	ClassPersonal = "personal"

	ClassUSLocal       = "us-local"
	ClassTollFree      = "toll-free"
	ClassInternational = "international"
	ClassOther         = "other"

	ClassSingle         = "single"
	ClassFull           = "full"
	ClassFullWithMiddle = "full_with_middle"
)

// Candidate is a raw match produced by a pattern or structural rule.
// It has not yet been validated; most candidates are discarded.
type Candidate struct {
	// Raw is the matched substring before cleanup.
	Raw string

	// Value is the canonicalized form (lowercased email, digit-normalized
	// phone, title-cased name).
	Value string

	// Source records which extraction method produced the candidate.
	// Retained through scoring; structural sources earn a bonus.
	Source Source

	// Context is the text surrounding the match, used as a scoring signal.
	Context string
}

// ContactRecord is a validated, scored, classified contact entry ready
// for aggregation and export. Records are immutable once created.
type ContactRecord struct {
	ID             string    `json:"id"`
	Kind           Kind      `json:"kind"`
	Value          string    `json:"value"`
	DisplayValue   string    `json:"displayValue"`
	Confidence     float64   `json:"confidence"`
	Classification string    `json:"classification"`
	Source         Source    `json:"source"`
	SourceURL      string    `json:"sourceUrl"`
	DiscoveredAt   time.Time `json:"discoveredAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *ContactRecord) Validate() error {
	switch r.Kind {
	case KindEmail, KindPhone, KindName:
	default:
		return Errorf(EINVALID, "unknown contact kind %q", r.Kind)
	}
	if r.Value == "" {
		return Errorf(EINVALID, "contact value required")
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return Errorf(EINVALID, "confidence %v out of range [0,1]", r.Confidence)
	}
	return nil
}

// DedupKey returns the canonical key used for deduplication: emails and
// names compare case-insensitively (names with internal whitespace
// collapsed), phones compare by digits only.
func (r *ContactRecord) DedupKey() string {
	switch r.Kind {
	case KindPhone:
		return digitsOnly(r.Value)
	case KindName:
		return strings.ToLower(CollapseWhitespace(r.Value))
	default:
		return strings.ToLower(r.Value)
	}
}

// Document is one unit of input to the extraction engine: the raw text
// and (optionally) HTML of a single fetched page.
type Document struct {
	URL   string
	Title string
	HTML  string
	Text  string
}

// Result holds the ranked contact lists extracted from one document.
type Result struct {
	Emails []ContactRecord
	Phones []ContactRecord
	Names  []ContactRecord
}

// Total returns the number of records across all kinds.
func (r *Result) Total() int {
	return len(r.Emails) + len(r.Phones) + len(r.Names)
}

// ContactFilter represents a filter for FindContacts.
type ContactFilter struct {
	Kind      *Kind   `json:"kind"`
	SourceURL *string `json:"sourceUrl"`
	Domain    *string `json:"domain"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ContactService represents a service for persisting contact records.
type ContactService interface {
	// UpsertContact stores a record, keyed by (kind, dedup key, source
	// domain). An existing record is replaced only if the new record has
	// strictly higher confidence.
	UpsertContact(ctx context.Context, rec *ContactRecord) error

	// FindContacts retrieves records matching the filter, ordered by
	// confidence descending.
	FindContacts(ctx context.Context, filter ContactFilter) ([]*ContactRecord, error)

	// DeleteContactsByDomain removes all records discovered on a domain.
	DeleteContactsByDomain(ctx context.Context, domain string) error
}
