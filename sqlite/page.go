package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/contactsift/contactsift"
)

// Compile-time interface verification.
var _ contactsift.PageLedger = (*PageLedger)(nil)

// PageLedger implements contactsift.PageLedger using SQLite. It stores
// one xxHash per scanned URL so re-scans can skip unchanged pages.
type PageLedger struct {
	db *DB
}

// NewPageLedger creates a new PageLedger.
func NewPageLedger(db *DB) *PageLedger {
	return &PageLedger{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// Unchanged reports whether the page at url was previously scanned with
// identical content.
func (l *PageLedger) Unchanged(ctx context.Context, url string, html string) (bool, error) {
	var stored string
	err := l.db.QueryRowContext(ctx, "SELECT content_hash FROM pages WHERE url = ?", url).Scan(&stored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored == hashContent(html), nil
}

// MarkScanned records the page's current content hash.
func (l *PageLedger) MarkScanned(ctx context.Context, url string, html string) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO pages (url, content_hash, scanned_at)
		VALUES (?, ?, ?)
		ON CONFLICT (url) DO UPDATE SET
			content_hash = excluded.content_hash,
			scanned_at = excluded.scanned_at
	`, url, hashContent(html), time.Now().UTC().Format(time.RFC3339))
	return err
}
