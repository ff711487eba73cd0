// Package goquery implements HTML-aware contact candidate generation
// using CSS selectors. It mines markup semantics (mailto:/tel: hrefs,
// JSON-LD, microdata, meta tags, profile URLs) that freetext pattern
// matching cannot see.
package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/contactsift/contactsift"
)

// Ensure Source implements contactsift.StructuredSource at compile time.
var _ contactsift.StructuredSource = (*Source)(nil)

// Source generates contact candidates from HTML markup.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, contactsift.Errorf(contactsift.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// schemaThing is the subset of Schema.org JSON-LD fields the extractors
// read. Unknown fields are ignored.
type schemaThing struct {
	Type       string
	Name       string
	GivenName  string
	FamilyName string
	Email      string
	Telephone  string
}

// jsonLDThings parses every application/ld+json script in the document
// and returns the flattened things found, including nested objects and
// @graph members. Malformed JSON-LD blocks are skipped.
func jsonLDThings(doc *goquery.Document) []schemaThing {
	var things []schemaThing
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var raw any
		if err := json.Unmarshal([]byte(sel.Text()), &raw); err != nil {
			return
		}
		walkJSONLD(raw, &things)
	})
	return things
}

func walkJSONLD(node any, out *[]schemaThing) {
	switch v := node.(type) {
	case []any:
		for _, item := range v {
			walkJSONLD(item, out)
		}
	case map[string]any:
		thing := schemaThing{
			Type:       jsonString(v["@type"]),
			Name:       jsonString(v["name"]),
			GivenName:  jsonString(v["givenName"]),
			FamilyName: jsonString(v["familyName"]),
			Email:      jsonString(v["email"]),
			Telephone:  jsonString(v["telephone"]),
		}
		if thing != (schemaThing{}) {
			*out = append(*out, thing)
		}
		for _, child := range v {
			switch child.(type) {
			case map[string]any, []any:
				walkJSONLD(child, out)
			}
		}
	}
}

// jsonString extracts a string from a JSON-LD value that may be a bare
// string or a list of strings.
func jsonString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case []any:
		for _, item := range s {
			if str, ok := item.(string); ok {
				return strings.TrimSpace(str)
			}
		}
	}
	return ""
}

// isPersonType reports whether a Schema.org @type denotes a person.
func isPersonType(t string) bool {
	return strings.EqualFold(t, "Person")
}

// hrefTarget strips the scheme prefix and any query string from an href
// like "mailto:info@firm.org?subject=Hi".
func hrefTarget(href, scheme string) string {
	target := strings.TrimPrefix(href, scheme)
	if i := strings.IndexByte(target, '?'); i >= 0 {
		target = target[:i]
	}
	return strings.TrimSpace(target)
}
