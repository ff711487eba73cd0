package main

import (
	"fmt"

	"github.com/contactsift/contactsift"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := contactsift.ContactFilter{Limit: c.Limit}
	if c.Domain != "" {
		filter.Domain = &c.Domain
	}
	if c.Kind != "" {
		kind := contactsift.Kind(c.Kind)
		switch kind {
		case contactsift.KindEmail, contactsift.KindPhone, contactsift.KindName:
			filter.Kind = &kind
		default:
			fmt.Fprintf(deps.Stderr, "error: unknown kind %q (want email, phone, or name)\n", c.Kind)
			return contactsift.Errorf(contactsift.EINVALID, "unknown kind %q", c.Kind)
		}
	}

	contacts, err := deps.Contacts.FindContacts(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contactsift.ErrorMessage(err))
		return err
	}

	if len(contacts) == 0 {
		fmt.Fprintln(deps.Stdout, "No contacts found. Use 'contactsift scan' to scan a site.")
		return nil
	}

	for _, rec := range contacts {
		fmt.Fprintf(deps.Stdout, "%-5s  %.2f  %-14s  %s\n",
			rec.Kind, rec.Confidence, rec.Classification, rec.DisplayValue)
	}

	return nil
}
