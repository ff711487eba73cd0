// Package scan provides contact scanning orchestration.
// It coordinates sitemap discovery, fetching, text derivation, contact
// extraction, and storage for entire websites.
package scan

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/contactsift/contactsift"
	"github.com/contactsift/contactsift/bloom"
	"golang.org/x/sync/errgroup"
)

// Bloom filter sizing for the per-scan seen-URL set.
const (
	seenExpectedURLs      = 10000
	seenFalsePositiveRate = 0.01
)

// Scanner orchestrates contact extraction across a website.
type Scanner struct {
	Sitemaps    contactsift.SitemapService
	Fetcher     contactsift.Fetcher
	Texts       contactsift.TextExtractor
	Engine      *contactsift.Engine
	Pages       contactsift.PageLedger     // optional; skips unchanged pages when set
	Contacts    contactsift.ContactService // optional; persists results when set
	RateLimiter contactsift.DomainLimiter  // optional
	Prioritize  func(urls []string)        // optional reordering of discovered URLs
	Concurrency int
	MaxPages    int
	RetryDelays []time.Duration
}

// Result holds the outcome of a scan operation.
type Result struct {
	Scanned  int
	Skipped  int
	Failed   int
	Saved    int
	Contacts *contactsift.Result
}

// ProgressEvent reports progress during a scan operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scan progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	position int
	url      string
	contacts *contactsift.Result
	skipped  bool
	err      error
}

// ScanSite discovers the site's pages and extracts contacts from each.
// The progress callback, if provided, receives events as scanning proceeds.
func (s *Scanner) ScanSite(ctx context.Context, baseURL string, filter *contactsift.URLFilter, progress ProgressFunc) (*Result, error) {
	urls, err := s.Sitemaps.DiscoverURLs(ctx, baseURL, filter)
	if err != nil {
		return nil, fmt.Errorf("sitemap discovery: %w", err)
	}

	// A site without a sitemap still has its landing page.
	if len(urls) == 0 {
		urls = []string{baseURL}
	}

	// Drop URLs already queued in this scan. Sitemap indexes on large
	// sites routinely list the same page under several child sitemaps.
	visited := bloom.NewFilter(seenExpectedURLs, seenFalsePositiveRate)
	unique := urls[:0]
	for _, u := range urls {
		if visited.Seen(u) {
			continue
		}
		visited.Add(u)
		unique = append(unique, u)
	}
	urls = unique

	if s.Prioritize != nil {
		s.Prioritize(urls)
	}
	if s.MaxPages > 0 && len(urls) > s.MaxPages {
		urls = urls[:s.MaxPages]
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	resultCh := make(chan pageResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			i, u := i, u
			g.Go(func() error {
				result := s.processURL(gctx, i, u)
				resultCh <- result
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	agg := contactsift.NewAggregator()
	var result Result

	for pr := range resultCh {
		completed.Add(1)

		switch {
		case pr.err != nil:
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       pr.url,
					Error:     pr.err,
				})
			}
		case pr.skipped:
			result.Skipped++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressSkipped,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       pr.url,
				})
			}
		default:
			result.Scanned++
			agg.AddResult(pr.contacts)
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       pr.url,
				})
			}
		}
	}

	result.Contacts = agg.Result()

	if s.Contacts != nil {
		for _, rec := range allRecords(result.Contacts) {
			rec := rec
			if err := s.Contacts.UpsertContact(ctx, &rec); err != nil {
				result.Failed++
				continue
			}
			result.Saved++
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &result, nil
}

// processURL fetches a single page and extracts its contacts.
func (s *Scanner) processURL(ctx context.Context, position int, pageURL string) pageResult {
	result := pageResult{
		position: position,
		url:      pageURL,
	}

	if s.RateLimiter != nil {
		parsed, err := url.Parse(pageURL)
		if err != nil {
			result.err = fmt.Errorf("invalid url: %w", err)
			return result
		}
		if err := s.RateLimiter.Wait(ctx, parsed.Host); err != nil {
			result.err = err
			return result
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultBackoff()
	}
	html, err := FetchWithBackoff(ctx, pageURL, s.Fetcher.Fetch, delays)
	if err != nil {
		result.err = err
		return result
	}

	if s.Pages != nil {
		unchanged, err := s.Pages.Unchanged(ctx, pageURL, html)
		if err == nil && unchanged {
			result.skipped = true
			return result
		}
	}

	text, title, err := s.Texts.Text(html)
	if err != nil {
		result.err = err
		return result
	}

	result.contacts = s.Engine.Extract(contactsift.Document{
		URL:   pageURL,
		Title: title,
		HTML:  html,
		Text:  text,
	})

	if s.Pages != nil {
		_ = s.Pages.MarkScanned(ctx, pageURL, html)
	}

	return result
}

// allRecords flattens a result into a single slice for persistence.
func allRecords(res *contactsift.Result) []contactsift.ContactRecord {
	records := make([]contactsift.ContactRecord, 0, len(res.Emails)+len(res.Phones)+len(res.Names))
	records = append(records, res.Emails...)
	records = append(records, res.Phones...)
	records = append(records, res.Names...)
	return records
}
