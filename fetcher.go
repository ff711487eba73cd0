package contactsift

import "context"

// Fetcher retrieves raw HTML from URLs. The extraction engine treats
// fetching as a replaceable collaborator; implementations may use plain
// HTTP or browser automation.
type Fetcher interface {
	// Fetch retrieves the HTML content from the given URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting. Scans use it to avoid
// hammering a single host while still fanning out across domains.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	Wait(ctx context.Context, domain string) error
}

// TextExtractor derives the plain-text input of the extraction engine
// from raw HTML, stripping boilerplate (nav, footer, sidebar, ads).
type TextExtractor interface {
	// Text returns the main textual content of the page and its title.
	Text(html string) (text string, title string, err error)
}
