package filter

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// falsePositiveRate is the Bloom prefilter target. A Bloom hit is always
// confirmed against the exact set, so this only affects speed.
const falsePositiveRate = 0.01

// WordFilter holds a set of lowercased words to filter out. Lookups go
// through a Bloom filter first and fall back to the exact set on a hit.
// A WordFilter is read-only after construction and safe for concurrent use.
type WordFilter struct {
	filteredWords map[string]struct{}
	prefilter     *bloom.BloomFilter
}

// NewWordFilter creates a WordFilter over words. Matching is case-insensitive.
func NewWordFilter(words []string) *WordFilter {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}

	n := uint(len(set))
	if n == 0 {
		n = 1
	}
	bf := bloom.NewWithEstimates(n, falsePositiveRate)
	for w := range set {
		bf.AddString(w)
	}

	return &WordFilter{
		filteredWords: set,
		prefilter:     bf,
	}
}

// IsFiltered reports whether token is one of the filtered words.
func (wf *WordFilter) IsFiltered(token string) bool {
	token = strings.ToLower(token)
	if !wf.prefilter.TestString(token) {
		return false
	}
	_, ok := wf.filteredWords[token]
	return ok
}

// GetFilteredCount returns the number of distinct words in the filter.
func (wf *WordFilter) GetFilteredCount() int {
	return len(wf.filteredWords)
}
