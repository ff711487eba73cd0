package slog_test

import (
	"context"
	"testing"
	"time"

	"github.com/contactsift/contactsift"
	"github.com/contactsift/contactsift/mock"
	siftslog "github.com/contactsift/contactsift/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingContactService(t *testing.T) {
	t.Parallel()

	t.Run("logs upserts with kind and value", func(t *testing.T) {
		t.Parallel()

		inner := &mock.ContactService{
			UpsertContactFn: func(ctx context.Context, rec *contactsift.ContactRecord) error {
				return nil
			},
		}
		logger, buf := newTestLogger()

		s := siftslog.NewLoggingContactService(inner, logger)
		err := s.UpsertContact(context.Background(), &contactsift.ContactRecord{
			Kind:         contactsift.KindEmail,
			Value:        "sales@acme.com",
			Confidence:   0.8,
			Source:       contactsift.SourcePattern,
			SourceURL:    "https://acme.com/contact",
			DiscoveredAt: time.Now(),
		})

		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, "upsert contact")
		assert.Contains(t, out, "kind=email")
		assert.Contains(t, out, "value=sales@acme.com")
	})

	t.Run("logs find results with a count", func(t *testing.T) {
		t.Parallel()

		inner := &mock.ContactService{
			FindContactsFn: func(ctx context.Context, filter contactsift.ContactFilter) ([]*contactsift.ContactRecord, error) {
				return []*contactsift.ContactRecord{{}, {}}, nil
			},
		}
		logger, buf := newTestLogger()

		s := siftslog.NewLoggingContactService(inner, logger)
		recs, err := s.FindContacts(context.Background(), contactsift.ContactFilter{})

		require.NoError(t, err)
		assert.Len(t, recs, 2)
		out := buf.String()
		assert.Contains(t, out, "find contacts")
		assert.Contains(t, out, "count=2")
	})

	t.Run("logs deletes with the domain", func(t *testing.T) {
		t.Parallel()

		inner := &mock.ContactService{
			DeleteContactsByDomainFn: func(ctx context.Context, domain string) error {
				return nil
			},
		}
		logger, buf := newTestLogger()

		s := siftslog.NewLoggingContactService(inner, logger)
		require.NoError(t, s.DeleteContactsByDomain(context.Background(), "acme.com"))

		out := buf.String()
		assert.Contains(t, out, "delete contacts")
		assert.Contains(t, out, "domain=acme.com")
	})
}
