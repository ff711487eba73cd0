package contactsift

import "context"

// PageLedger records content hashes of scanned pages so that unchanged
// pages can be skipped on re-scan.
type PageLedger interface {
	// Unchanged reports whether the page at url was previously scanned
	// with identical content.
	Unchanged(ctx context.Context, url string, html string) (bool, error)

	// MarkScanned records the page's current content hash.
	MarkScanned(ctx context.Context, url string, html string) error
}
