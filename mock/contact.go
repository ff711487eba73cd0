package mock

import (
	"context"

	"github.com/contactsift/contactsift"
)

var _ contactsift.ContactService = (*ContactService)(nil)

// ContactService is a mock implementation of contactsift.ContactService.
type ContactService struct {
	UpsertContactFn          func(ctx context.Context, rec *contactsift.ContactRecord) error
	FindContactsFn           func(ctx context.Context, filter contactsift.ContactFilter) ([]*contactsift.ContactRecord, error)
	DeleteContactsByDomainFn func(ctx context.Context, domain string) error
}

func (s *ContactService) UpsertContact(ctx context.Context, rec *contactsift.ContactRecord) error {
	return s.UpsertContactFn(ctx, rec)
}

func (s *ContactService) FindContacts(ctx context.Context, filter contactsift.ContactFilter) ([]*contactsift.ContactRecord, error) {
	return s.FindContactsFn(ctx, filter)
}

func (s *ContactService) DeleteContactsByDomain(ctx context.Context, domain string) error {
	return s.DeleteContactsByDomainFn(ctx, domain)
}
