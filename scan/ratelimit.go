package scan

import (
	"context"
	"sync"

	"github.com/contactsift/contactsift"
	"golang.org/x/time/rate"
)

var _ contactsift.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter throttles requests per target domain so a scan stays
// polite: each domain gets its own token bucket with a burst of one,
// and unrelated domains never wait on each other.
type DomainLimiter struct {
	perSecond float64

	mu       sync.Mutex
	byDomain map[string]*rate.Limiter
}

// NewDomainLimiter returns a limiter allowing rps requests per second
// to any single domain.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		perSecond: rps,
		byDomain:  make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to the domain is allowed, or until the
// context is done.
func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.limiterFor(domain).Wait(ctx)
}

func (l *DomainLimiter) limiterFor(domain string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.byDomain[domain]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(l.perSecond), 1)
		l.byDomain[domain] = lim
	}
	return lim
}
