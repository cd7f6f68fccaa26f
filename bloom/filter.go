// Package bloom remembers which sentences a run has already considered,
// using a Bloom filter.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is a probabilistic set of strings. Membership tests may report
// false positives but never false negatives. It is not safe for
// concurrent use.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// TestAndAdd reports whether s might have been added before, and records it.
func (f *Filter) TestAndAdd(s string) bool {
	return f.f.TestAndAddString(s)
}
