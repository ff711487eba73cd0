package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/contactsift/contactsift"
)

// Meta tags whose content may hold a phone number.
var phoneMetaSelectors = []string{
	`meta[property="business:contact_data:phone_number"]`,
	`meta[property="og:phone_number"]`,
	`meta[name="telephone"]`,
}

// PhoneCandidates extracts phone candidates from HTML markup: tel:
// hrefs, microdata, JSON-LD, and meta tags.
func (s *Source) PhoneCandidates(html string) ([]contactsift.Candidate, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	var cands []contactsift.Candidate

	doc.Find(`a[href^="tel:"]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		target := hrefTarget(href, "tel:")
		if target == "" {
			return
		}
		cands = append(cands, contactsift.Candidate{
			Raw:     target,
			Source:  contactsift.SourceTel,
			Context: strings.TrimSpace(sel.Text()),
		})
	})

	doc.Find(`[itemprop="telephone"]`).Each(func(_ int, sel *goquery.Selection) {
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

	for _, thing := range jsonLDThings(doc) {
		if thing.Telephone != "" {
			cands = append(cands, contactsift.Candidate{
				Raw:    thing.Telephone,
				Source: contactsift.SourceStructured,
			})
		}
	}

	for _, selector := range phoneMetaSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			if content, ok := sel.Attr("content"); ok && content != "" {
				cands = append(cands, contactsift.Candidate{
					Raw:    content,
					Source: contactsift.SourceMeta,
				})
			}
		})
	}

	return cands, nil
}
