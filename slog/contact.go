package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/contactsift/contactsift"
)

// Ensure LoggingContactService implements contactsift.ContactService.
var _ contactsift.ContactService = (*LoggingContactService)(nil)

// LoggingContactService wraps a ContactService with debug logging.
type LoggingContactService struct {
	next   contactsift.ContactService
	logger *slog.Logger
}

// NewLoggingContactService creates a new LoggingContactService.
func NewLoggingContactService(next contactsift.ContactService, logger *slog.Logger) *LoggingContactService {
	return &LoggingContactService{next: next, logger: logger}
}

// UpsertContact delegates to the wrapped service and logs the operation.
func (s *LoggingContactService) UpsertContact(ctx context.Context, rec *contactsift.ContactRecord) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("upsert contact",
			"kind", string(rec.Kind),
			"value", rec.Value,
			"confidence", rec.Confidence,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpsertContact(ctx, rec)
}

// FindContacts delegates to the wrapped service and logs the operation.
func (s *LoggingContactService) FindContacts(ctx context.Context, filter contactsift.ContactFilter) (recs []*contactsift.ContactRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find contacts",
			"count", len(recs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindContacts(ctx, filter)
}

// DeleteContactsByDomain delegates to the wrapped service and logs the operation.
func (s *LoggingContactService) DeleteContactsByDomain(ctx context.Context, domain string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete contacts",
			"domain", domain,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteContactsByDomain(ctx, domain)
}
