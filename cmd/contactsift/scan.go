package main

import (
	"fmt"
	"regexp"

	"github.com/contactsift/contactsift"
	"github.com/contactsift/contactsift/scan"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	// Compile filters to URLFilter (validates regex patterns early)
	var urlFilter *contactsift.URLFilter
	if len(c.Filter) > 0 {
		urlFilter = &contactsift.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
	}

	// Preview mode: show URLs without scanning
	if c.Preview {
		urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL, urlFilter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", contactsift.ErrorMessage(err))
			return err
		}
		for _, u := range urls {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	progress := func(event scan.ProgressEvent) {
		switch event.Type {
		case scan.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d URLs\n", event.Total)
		case scan.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case scan.ProgressFinished:
			// Summary printed after scan completes
		}
	}

	result, err := deps.Scanner.ScanSite(deps.Ctx, c.URL, urlFilter, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error scanning: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Scanned %d pages (%d unchanged, %d failed)\n",
		result.Scanned, result.Skipped, result.Failed)
	fmt.Fprintf(deps.Stdout, "  Found %d emails, %d phones, %d names (%d saved)\n",
		len(result.Contacts.Emails), len(result.Contacts.Phones), len(result.Contacts.Names), result.Saved)

	return nil
}
