package mock

import (
	"context"

	"github.com/contactsift/contactsift"
)

var _ contactsift.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of contactsift.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *contactsift.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *contactsift.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
