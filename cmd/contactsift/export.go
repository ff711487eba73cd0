package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/contactsift/contactsift"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter := contactsift.ContactFilter{}
	if c.Domain != "" {
		filter.Domain = &c.Domain
	}

	contacts, err := deps.Contacts.FindContacts(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contactsift.ErrorMessage(err))
		return err
	}

	switch c.Format {
	case "csv":
		w := csv.NewWriter(deps.Stdout)
		if err := w.Write([]string{"kind", "value", "display_value", "confidence", "classification", "source", "source_url", "discovered_at"}); err != nil {
			return err
		}
		for _, rec := range contacts {
			row := []string{
				string(rec.Kind),
				rec.Value,
				rec.DisplayValue,
				fmt.Sprintf("%.2f", rec.Confidence),
				rec.Classification,
				string(rec.Source),
				rec.SourceURL,
				rec.DiscoveredAt.Format(time.RFC3339),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	default:
		if contacts == nil {
			contacts = []*contactsift.ContactRecord{}
		}
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(contacts)
	}
}
