package pipeline

import "sort"

// Ranked is a list of entries in non-increasing count order.
type Ranked []Entry

// Rank keeps the entries whose count is strictly greater than min and sorts
// them by count descending. Equal counts keep their relative input order.
func Rank(entries []Entry, min int) Ranked {
	ranked := make(Ranked, 0, len(entries))
	for _, e := range entries {
		if e.Count > min {
			ranked = append(ranked, e)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// RankCounter ranks the entries of c.
func RankCounter(c *Counter, min int) Ranked {
	return Rank(c.Entries(), min)
}

// Top returns at most n leading entries. A non-positive n returns all of them.
func (r Ranked) Top(n int) Ranked {
	if n <= 0 || n >= len(r) {
		return r
	}
	return r[:n]
}

// Keys returns the keys in rank order.
func (r Ranked) Keys() []string {
	keys := make([]string, len(r))
	for i, e := range r {
		keys[i] = e.Key
	}
	return keys
}

// Values returns the counts in rank order.
func (r Ranked) Values() []int {
	values := make([]int, len(r))
	for i, e := range r {
		values[i] = e.Count
	}
	return values
}

// Get returns the count for key and whether it is present.
func (r Ranked) Get(key string) (int, bool) {
	for _, e := range r {
		if e.Key == key {
			return e.Count, true
		}
	}
	return 0, false
}
