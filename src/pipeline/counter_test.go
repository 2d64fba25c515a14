package pipeline

import (
	"reflect"
	"testing"
)

func TestCounterCounts(t *testing.T) {
	c := CountKeys([]string{"hello", "world", "hello", "test"})

	if count := c.GetCount("hello"); count != 2 {
		t.Errorf("Expected 'hello' count to be 2, got %d", count)
	}
	if count := c.GetCount("world"); count != 1 {
		t.Errorf("Expected 'world' count to be 1, got %d", count)
	}
	if count := c.GetCount("missing"); count != 0 {
		t.Errorf("Expected 'missing' count to be 0, got %d", count)
	}
	if c.Len() != 3 {
		t.Errorf("Expected 3 distinct keys, got %d", c.Len())
	}
	if c.Total() != 4 {
		t.Errorf("Expected total 4, got %d", c.Total())
	}
}

func TestCounterFirstSeenOrder(t *testing.T) {
	c := CountKeys([]string{"b", "a", "b", "c", "a"})
	expected := []Entry{{"b", 2}, {"a", 2}, {"c", 1}}
	if !reflect.DeepEqual(c.Entries(), expected) {
		t.Errorf("Expected %v, got %v", expected, c.Entries())
	}
}

// TestCounterOrderInsensitive checks that the same multiset in a different
// order yields the same mapping.
func TestCounterOrderInsensitive(t *testing.T) {
	a := CountKeys([]string{"x", "y", "x", "z"})
	b := CountKeys([]string{"z", "x", "y", "x"})
	if !reflect.DeepEqual(a.Counts(), b.Counts()) {
		t.Errorf("Expected equal mappings, got %v and %v", a.Counts(), b.Counts())
	}
}

func TestCounterNeverHoldsZero(t *testing.T) {
	c := NewCounter()
	c.Add("zero", 0)
	c.Add("negative", -3)
	c.Add("positive", 2)

	if c.Len() != 1 {
		t.Errorf("Expected only 'positive' to be stored, got %v", c.Counts())
	}
	for key, count := range c.Counts() {
		if count <= 0 {
			t.Errorf("Expected positive count for %s, got %d", key, count)
		}
	}
}

func TestCounterEntriesIsCopy(t *testing.T) {
	c := CountKeys([]string{"a"})
	entries := c.Entries()
	entries[0].Count = 100
	if c.GetCount("a") != 1 {
		t.Errorf("Expected counter to be unaffected, got %d", c.GetCount("a"))
	}
}
