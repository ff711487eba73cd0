package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/contactsift/contactsift"
)

// Meta tags whose content may hold an author or person name.
var nameMetaSelectors = []string{
	`meta[name="author"]`,
	`meta[property="article:author"]`,
	`meta[property="og:article:author"]`,
	`meta[name="twitter:creator"]`,
}

// Class/id fragments that mark elements holding a person's name.
var personClassRe = regexp.MustCompile(`(?i)\b(?:author|byline|person|team-member|staff|founder|contact-name)\b`)

// LinkedIn profile URLs; the slug doubles as a name candidate.
var linkedinSlugRe = regexp.MustCompile(`linkedin\.com/in/([a-zA-Z][a-zA-Z0-9_-]+)`)

// Twitter/X profile URLs. Handles are 2-15 word characters; reserved
// paths (intent, share, search, ...) are filtered separately.
var twitterHandleRe = regexp.MustCompile(`\b(?:twitter|x)\.com/@?([A-Za-z_][A-Za-z0-9_]{1,14})(?:[/?#]|$)`)

// Twitter/X paths that are site features, not profiles.
var twitterReservedPaths = map[string]bool{
	"intent":   true,
	"share":    true,
	"search":   true,
	"hashtag":  true,
	"home":     true,
	"explore":  true,
	"settings": true,
	"privacy":  true,
	"tos":      true,
	"i":        true,
}

var trailingSlugIDRe = regexp.MustCompile(`[-_]\w*\d\w*$`)

// NameCandidates extracts personal-name candidates from HTML markup:
// JSON-LD Person entries, author meta tags, Person-scoped microdata,
// class/id heuristics, and social profile URL slugs.
func (s *Source) NameCandidates(html string) ([]contactsift.Candidate, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	var cands []contactsift.Candidate

	for _, thing := range jsonLDThings(doc) {
		if !isPersonType(thing.Type) {
			continue
		}
		value := thing.Name
		if value == "" && thing.GivenName != "" && thing.FamilyName != "" {
			value = thing.GivenName + " " + thing.FamilyName
		}
		if value == "" {
			continue
		}
		cands = append(cands, contactsift.Candidate{
			Raw:    value,
			Source: contactsift.SourceStructured,
		})
	}

	for _, selector := range nameMetaSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			if content, ok := sel.Attr("content"); ok && content != "" {
				cands = append(cands, contactsift.Candidate{
					Raw:    content,
					Source: contactsift.SourceMeta,
				})
			}
		})
	}

	// Profile meta pairs: og/profile first_name + last_name.
	first := metaContent(doc, `meta[property="profile:first_name"], meta[property="og:profile:first_name"]`)
	last := metaContent(doc, `meta[property="profile:last_name"], meta[property="og:profile:last_name"]`)
	if first != "" && last != "" {
		cands = append(cands, contactsift.Candidate{
			Raw:    first + " " + last,
			Source: contactsift.SourceMeta,
		})
	}

	// Microdata names scoped to a Person itemtype; a bare itemprop="name"
	// is usually the page or product name, not a person.
	doc.Find(`[itemscope][itemtype*="Person"]`).Each(func(_ int, scope *goquery.Selection) {
		scope.Find(`[itemprop="name"]`).Each(func(_ int, sel *goquery.Selection) {
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
	})

	doc.Find(`[class],[id]`).Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		id, _ := sel.Attr("id")
		if !personClassRe.MatchString(class) && !personClassRe.MatchString(id) {
			return
		}
		text := strings.TrimSpace(sel.Text())
		// Short direct text only; container nodes carry whole sections.
		if text == "" || len(text) > 60 || strings.Contains(text, "\n") {
			return
		}
		cands = append(cands, contactsift.Candidate{
			Raw:    text,
			Source: contactsift.SourceStructured,
		})
	})

	doc.Find(`a[href*="linkedin.com/in/"]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		m := linkedinSlugRe.FindStringSubmatch(href)
		if m == nil {
			return
		}
		name := slugToName(m[1])
		if name == "" {
			return
		}
		cands = append(cands, contactsift.Candidate{
			Raw:     name,
			Source:  contactsift.SourceSocial,
			Context: strings.TrimSpace(sel.Text()),
		})
	})

	doc.Find(`a[href*="twitter.com/"],a[href*="x.com/"]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		m := twitterHandleRe.FindStringSubmatch(href)
		if m == nil || twitterReservedPaths[strings.ToLower(m[1])] {
			return
		}
		name := slugToName(m[1])
		if name == "" {
			return
		}
		cands = append(cands, contactsift.Candidate{
			Raw:     name,
			Source:  contactsift.SourceSocial,
			Context: strings.TrimSpace(sel.Text()),
		})
	})

	return cands, nil
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

// slugToName converts a profile slug like "jane-m-smith-8a31b2" into
// "jane m smith": a trailing id segment is dropped and separators become
// spaces. Title-casing is left to name normalization.
func slugToName(slug string) string {
	slug = trailingSlugIDRe.ReplaceAllString(slug, "")
	slug = strings.ReplaceAll(slug, "-", " ")
	slug = strings.ReplaceAll(slug, "_", " ")
	return strings.TrimSpace(slug)
}
