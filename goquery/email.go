package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/contactsift/contactsift"
)

// Inline script assignments like email: "x@y.com" or var mail = 'x@y.com'.
var scriptEmailRe = regexp.MustCompile(`(?i)(?:email|e-mail|mail|contact)\s*[:=]\s*["']([^"'\s]+@[^"'\s]+\.[a-zA-Z]{2,})["']`)

// Meta tags whose content may hold an email address.
var emailMetaSelectors = []string{
	`meta[property="og:email"]`,
	`meta[property="business:contact_data:email"]`,
	`meta[name="email"]`,
	`meta[itemprop="email"]`,
}

// EmailCandidates extracts email candidates from HTML markup: mailto:
// hrefs, data attributes and inline script assignments, JSON-LD, meta
// tags, and microdata.
func (s *Source) EmailCandidates(html string) ([]contactsift.Candidate, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	var cands []contactsift.Candidate

	doc.Find(`a[href^="mailto:"]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		target := hrefTarget(href, "mailto:")
		if target == "" {
			return
		}
		cands = append(cands, contactsift.Candidate{
			Raw:     target,
			Source:  contactsift.SourceMailto,
			Context: strings.TrimSpace(sel.Text()),
		})
	})

	doc.Find(`[data-email]`).Each(func(_ int, sel *goquery.Selection) {
		if v, ok := sel.Attr("data-email"); ok && v != "" {
			cands = append(cands, contactsift.Candidate{
				Raw:    v,
				Source: contactsift.SourceStructured,
			})
		}
	})

	doc.Find(`script:not([type="application/ld+json"])`).Each(func(_ int, sel *goquery.Selection) {
		for _, m := range scriptEmailRe.FindAllStringSubmatch(sel.Text(), -1) {
			cands = append(cands, contactsift.Candidate{
				Raw:    m[1],
				Source: contactsift.SourceStructured,
			})
		}
	})

	for _, thing := range jsonLDThings(doc) {
		if thing.Email != "" {
			cands = append(cands, contactsift.Candidate{
				Raw:    thing.Email,
				Source: contactsift.SourceStructured,
			})
		}
	}

	for _, selector := range emailMetaSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			if content, ok := sel.Attr("content"); ok && content != "" {
				cands = append(cands, contactsift.Candidate{
					Raw:    content,
					Source: contactsift.SourceMeta,
				})
			}
		})
	}

	doc.Find(`[itemprop="email"]`).Each(func(_ int, sel *goquery.Selection) {
		value, ok := sel.Attr("content")
		if !ok || value == "" {
			value = strings.TrimSpace(sel.Text())
		}
		if value == "" {
			return
		}
		cands = append(cands, contactsift.Candidate{
			Raw:    value,
			Source: contactsift.SourceStructured,
		})
	})

	return cands, nil
}
