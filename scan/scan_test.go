package scan_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/contactsift/contactsift"
	"github.com/contactsift/contactsift/mock"
	"github.com/contactsift/contactsift/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPages = map[string]string{
	"https://acme.com/":        `<html><body><p>Welcome to Acme.</p></body></html>`,
	"https://acme.com/contact": `<html><body><p>Email us at sales@acme.com or call (212) 555-7890.</p></body></html>`,
	"https://acme.com/team":    `<html><body><p>CEO Maria Garcia leads the team.</p></body></html>`,
}

// newTestScanner returns a scanner wired with mocks that serve testPages.
func newTestScanner() *scan.Scanner {
	return &scan.Scanner{
		Sitemaps: &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *contactsift.URLFilter) ([]string, error) {
				return []string{
					"https://acme.com/",
					"https://acme.com/contact",
					"https://acme.com/team",
				}, nil
			},
		},
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				html, ok := testPages[url]
				if !ok {
					return "", errors.New("not found")
				}
				return html, nil
			},
		},
		Texts: &mock.TextExtractor{
			TextFn: func(html string) (string, string, error) {
				return html, "Acme", nil
			},
		},
		Engine:      contactsift.NewEngine(nil),
		RetryDelays: []time.Duration{},
	}
}

func TestScanner_ScanSite(t *testing.T) {
	t.Parallel()

	t.Run("scans every discovered page and aggregates contacts", func(t *testing.T) {
		t.Parallel()

		s := newTestScanner()
		result, err := s.ScanSite(context.Background(), "https://acme.com", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 3, result.Scanned)
		assert.Equal(t, 0, result.Skipped)
		assert.Equal(t, 0, result.Failed)

		require.NotNil(t, result.Contacts)
		require.NotEmpty(t, result.Contacts.Emails)
		assert.Equal(t, "sales@acme.com", result.Contacts.Emails[0].Value)
		require.NotEmpty(t, result.Contacts.Phones)
		assert.Equal(t, "2125557890", result.Contacts.Phones[0].Value)
		require.NotEmpty(t, result.Contacts.Names)
		assert.Equal(t, "Maria Garcia", result.Contacts.Names[0].DisplayValue)
	})

	t.Run("falls back to the base URL when the sitemap is empty", func(t *testing.T) {
		t.Parallel()

		s := newTestScanner()
		s.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *contactsift.URLFilter) ([]string, error) {
				return []string{}, nil
			},
		}

		var fetched []string
		var mu sync.Mutex
		s.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				mu.Lock()
				fetched = append(fetched, url)
				mu.Unlock()
				return testPages["https://acme.com/"], nil
			},
		}

		result, err := s.ScanSite(context.Background(), "https://acme.com", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Scanned)
		assert.Equal(t, []string{"https://acme.com"}, fetched)
	})

	t.Run("deduplicates URLs listed more than once", func(t *testing.T) {
		t.Parallel()

		s := newTestScanner()
		s.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *contactsift.URLFilter) ([]string, error) {
				return []string{
					"https://acme.com/contact",
					"https://acme.com/contact",
					"https://acme.com/team",
				}, nil
			},
		}

		result, err := s.ScanSite(context.Background(), "https://acme.com", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Scanned)
	})

	t.Run("respects the max pages limit", func(t *testing.T) {
		t.Parallel()

		s := newTestScanner()
		s.MaxPages = 1

		result, err := s.ScanSite(context.Background(), "https://acme.com", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Scanned)
	})

	t.Run("applies the prioritize hook before the page cap", func(t *testing.T) {
		t.Parallel()

		s := newTestScanner()
		s.MaxPages = 1
		s.Prioritize = func(urls []string) {
			// Move the contact page to the front.
			for i, u := range urls {
				if u == "https://acme.com/contact" {
					urls[0], urls[i] = urls[i], urls[0]
					return
				}
			}
		}

		result, err := s.ScanSite(context.Background(), "https://acme.com", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Scanned)
		require.NotEmpty(t, result.Contacts.Emails)
		assert.Equal(t, "sales@acme.com", result.Contacts.Emails[0].Value)
	})

	t.Run("counts failed pages without aborting the scan", func(t *testing.T) {
		t.Parallel()

		s := newTestScanner()
		s.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if url == "https://acme.com/team" {
					return "", errors.New("connection reset")
				}
				return testPages[url], nil
			},
		}

		result, err := s.ScanSite(context.Background(), "https://acme.com", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Scanned)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("skips pages the ledger reports unchanged", func(t *testing.T) {
		t.Parallel()

		var marked []string
		var mu sync.Mutex
		s := newTestScanner()
		s.Pages = &mock.PageLedger{
			UnchangedFn: func(ctx context.Context, url, html string) (bool, error) {
				return url == "https://acme.com/", nil
			},
			MarkScannedFn: func(ctx context.Context, url, html string) error {
				mu.Lock()
				marked = append(marked, url)
				mu.Unlock()
				return nil
			},
		}

		result, err := s.ScanSite(context.Background(), "https://acme.com", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Scanned)
		assert.Equal(t, 1, result.Skipped)
		assert.Len(t, marked, 2, "skipped pages are not re-marked")
	})

	t.Run("persists aggregated contacts through the contact service", func(t *testing.T) {
		t.Parallel()

		var saved []*contactsift.ContactRecord
		s := newTestScanner()
		s.Contacts = &mock.ContactService{
			UpsertContactFn: func(ctx context.Context, rec *contactsift.ContactRecord) error {
				saved = append(saved, rec)
				return nil
			},
		}

		result, err := s.ScanSite(context.Background(), "https://acme.com", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, result.Contacts.Total(), result.Saved)
		assert.Len(t, saved, result.Saved)
	})

	t.Run("counts contacts that fail to persist as failures", func(t *testing.T) {
		t.Parallel()

		s := newTestScanner()
		s.Contacts = &mock.ContactService{
			UpsertContactFn: func(ctx context.Context, rec *contactsift.ContactRecord) error {
				if rec.Kind == contactsift.KindEmail {
					return errors.New("disk full")
				}
				return nil
			},
		}

		result, err := s.ScanSite(context.Background(), "https://acme.com", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, result.Contacts.Total()-len(result.Contacts.Emails), result.Saved)
		assert.Equal(t, len(result.Contacts.Emails), result.Failed)
	})

	t.Run("waits on the rate limiter per page host", func(t *testing.T) {
		t.Parallel()

		var hosts []string
		var mu sync.Mutex
		s := newTestScanner()
		s.RateLimiter = &mock.DomainLimiter{
			WaitFn: func(ctx context.Context, domain string) error {
				mu.Lock()
				hosts = append(hosts, domain)
				mu.Unlock()
				return nil
			},
		}

		result, err := s.ScanSite(context.Background(), "https://acme.com", nil, nil)

		require.NoError(t, err)
		require.Len(t, hosts, 3)
		for _, h := range hosts {
			assert.Equal(t, "acme.com", h)
		}
		assert.Equal(t, 3, result.Scanned)
	})

	t.Run("returns an error when sitemap discovery fails", func(t *testing.T) {
		t.Parallel()

		s := newTestScanner()
		s.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *contactsift.URLFilter) ([]string, error) {
				return nil, errors.New("robots.txt unreachable")
			},
		}

		_, err := s.ScanSite(context.Background(), "https://acme.com", nil, nil)
		require.Error(t, err)
	})

	t.Run("reports progress events in order", func(t *testing.T) {
		t.Parallel()

		s := newTestScanner()
		s.Concurrency = 1

		var events []scan.ProgressEvent
		result, err := s.ScanSite(context.Background(), "https://acme.com", nil, func(ev scan.ProgressEvent) {
			events = append(events, ev)
		})

		require.NoError(t, err)
		require.Len(t, events, 5, "started + one per page + finished")

		assert.Equal(t, scan.ProgressStarted, events[0].Type)
		assert.Equal(t, 3, events[0].Total)

		for i, ev := range events[1:4] {
			assert.Equal(t, scan.ProgressCompleted, ev.Type)
			assert.Equal(t, i+1, ev.Completed)
			assert.NotEmpty(t, ev.URL)
		}

		last := events[len(events)-1]
		assert.Equal(t, scan.ProgressFinished, last.Type)
		assert.Equal(t, 3, last.Completed)
		assert.Equal(t, 3, result.Scanned)
	})
}
