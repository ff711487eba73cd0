// Package bloom tracks visited URLs probabilistically. A scan over a
// large sitemap queues tens of thousands of URLs; a Bloom filter answers
// "already queued?" in constant space at the cost of occasional false
// positives (a page wrongly skipped), which a contact scan tolerates.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is a set of visited URLs. The zero value is not usable; use
// NewFilter.
type Filter struct {
	set *bloom.BloomFilter
}

// NewFilter sizes a filter for n expected URLs at the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{set: bloom.NewWithEstimates(n, fpRate)}
}

// Add records a URL as visited.
func (f *Filter) Add(url string) {
	f.set.AddString(url)
}

// Seen reports whether a URL was (probably) added before. A true result
// may be a false positive; a false result is definitive.
func (f *Filter) Seen(url string) bool {
	return f.set.TestString(url)
}

// ApproxItems estimates how many distinct URLs have been added.
func (f *Filter) ApproxItems() uint {
	return uint(f.set.ApproximatedSize())
}
