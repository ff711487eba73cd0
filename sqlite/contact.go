package sqlite

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/contactsift/contactsift"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ contactsift.ContactService = (*ContactService)(nil)

// ContactService implements contactsift.ContactService using SQLite.
type ContactService struct {
	db *DB
}

// NewContactService creates a new ContactService.
func NewContactService(db *DB) *ContactService {
	return &ContactService{db: db}
}

// Domain extracts the registrable host from a source URL, used as part
// of the storage key so the same address found on two sites stays two
// rows.
func Domain(sourceURL string) string {
	u, err := url.Parse(sourceURL)
	if err != nil || u.Host == "" {
		return sourceURL
	}
	return strings.TrimPrefix(strings.ToLower(u.Host), "www.")
}

// UpsertContact stores a record keyed by (kind, dedup key, domain).
// An existing record is replaced only if the new record has strictly
// higher confidence.
func (s *ContactService) UpsertContact(ctx context.Context, rec *contactsift.ContactRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.DiscoveredAt.IsZero() {
		rec.DiscoveredAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contacts (id, kind, dedup_key, value, display_value, confidence, classification, source, source_url, domain, discovered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (kind, dedup_key, domain) DO UPDATE SET
			value = excluded.value,
			display_value = excluded.display_value,
			confidence = excluded.confidence,
			classification = excluded.classification,
			source = excluded.source,
			source_url = excluded.source_url,
			discovered_at = excluded.discovered_at
		WHERE excluded.confidence > contacts.confidence
	`, rec.ID, string(rec.Kind), rec.DedupKey(), rec.Value, rec.DisplayValue, rec.Confidence,
		rec.Classification, string(rec.Source), rec.SourceURL, Domain(rec.SourceURL),
		rec.DiscoveredAt.Format(time.RFC3339))

	return err
}

// FindContacts retrieves records matching the filter, ordered by
// confidence descending.
func (s *ContactService) FindContacts(ctx context.Context, filter contactsift.ContactFilter) ([]*contactsift.ContactRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, kind, value, display_value, confidence, classification, source, source_url, discovered_at FROM contacts WHERE 1=1")

	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, string(*filter.Kind))
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Domain != nil {
		query.WriteString(" AND domain = ?")
		args = append(args, *filter.Domain)
	}

	query.WriteString(" ORDER BY confidence DESC, value ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*contactsift.ContactRecord
	for rows.Next() {
		var rec contactsift.ContactRecord
		var kind, source, discoveredAt string

		if err := rows.Scan(&rec.ID, &kind, &rec.Value, &rec.DisplayValue, &rec.Confidence,
			&rec.Classification, &source, &rec.SourceURL, &discoveredAt); err != nil {
			return nil, err
		}

		rec.Kind = contactsift.Kind(kind)
		rec.Source = contactsift.Source(source)
		rec.DiscoveredAt, err = time.Parse(time.RFC3339, discoveredAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse discovered_at: %w", err)
		}

		records = append(records, &rec)
	}

	return records, rows.Err()
}

// DeleteContactsByDomain removes all records discovered on a domain.
func (s *ContactService) DeleteContactsByDomain(ctx context.Context, domain string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM contacts WHERE domain = ?", domain)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return contactsift.Errorf(contactsift.ENOTFOUND, "no contacts for domain %q", domain)
	}
	return nil
}
