package pipeline

// Entry pairs a key (word or author name) with its count.
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
}

// Counter is a multiset of keys that remembers the order in which each key
// was first seen. A Counter never holds a zero count.
type Counter struct {
	index   map[string]int
	entries []Entry
}

// NewCounter creates an empty Counter.
func NewCounter() *Counter {
	return &Counter{index: make(map[string]int)}
}

// CountKeys counts every key in keys.
func CountKeys(keys []string) *Counter {
	c := NewCounter()
	c.Increment(keys...)
	return c
}

// Increment adds one occurrence for each key.
func (c *Counter) Increment(keys ...string) {
	for _, key := range keys {
		c.Add(key, 1)
	}
}

// Add adds n to key's count. Non-positive n is ignored.
func (c *Counter) Add(key string, n int) {
	if n <= 0 {
		return
	}
	c.entries[c.slot(key)].Count += n
}

// slot returns the index of key's entry, creating a zero entry if needed.
// Callers must not leave zero entries behind; see compact.
func (c *Counter) slot(key string) int {
	if i, ok := c.index[key]; ok {
		return i
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, Entry{Key: key})
	return len(c.entries) - 1
}

// compact returns a Counter without zero entries, keeping first-seen order.
func (c *Counter) compact() *Counter {
	out := NewCounter()
	for _, e := range c.entries {
		out.Add(e.Key, e.Count)
	}
	return out
}

// GetCount returns the count for key, zero if absent.
func (c *Counter) GetCount(key string) int {
	if i, ok := c.index[key]; ok {
		return c.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct keys.
func (c *Counter) Len() int {
	return len(c.entries)
}

// Total returns the sum of all counts.
func (c *Counter) Total() int {
	total := 0
	for _, e := range c.entries {
		total += e.Count
	}
	return total
}

// Entries returns the entries in first-seen order.
func (c *Counter) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Counts returns the counts as a plain map.
func (c *Counter) Counts() map[string]int {
	snapshot := make(map[string]int, len(c.entries))
	for _, e := range c.entries {
		snapshot[e.Key] = e.Count
	}
	return snapshot
}
