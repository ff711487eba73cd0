package mock

import (
	"context"

	"github.com/contactsift/contactsift"
)

var _ contactsift.PageLedger = (*PageLedger)(nil)

// PageLedger is a mock implementation of contactsift.PageLedger.
type PageLedger struct {
	UnchangedFn   func(ctx context.Context, url string, html string) (bool, error)
	MarkScannedFn func(ctx context.Context, url string, html string) error
}

func (l *PageLedger) Unchanged(ctx context.Context, url string, html string) (bool, error) {
	return l.UnchangedFn(ctx, url, html)
}

func (l *PageLedger) MarkScanned(ctx context.Context, url string, html string) error {
	return l.MarkScannedFn(ctx, url, html)
}
