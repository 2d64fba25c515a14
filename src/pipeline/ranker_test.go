package pipeline

import (
	"reflect"
	"testing"
)

func TestRankDescendingStable(t *testing.T) {
	entries := []Entry{
		{"a", 3},
		{"b", 5},
		{"c", 3},
		{"d", 1},
		{"e", 5},
	}

	got := Rank(entries, 0)
	expected := Ranked{{"b", 5}, {"e", 5}, {"a", 3}, {"c", 3}, {"d", 1}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRankThresholdIsStrict(t *testing.T) {
	entries := []Entry{{"at", 10}, {"above", 11}, {"below", 9}}

	got := Rank(entries, 10)
	expected := Ranked{{"above", 11}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRankProperties(t *testing.T) {
	c := CountKeys([]string{
		"p", "q", "p", "r", "s", "p", "q", "t", "t", "t", "t", "u",
	})
	for _, min := range []int{0, 1, 2, 3, 10} {
		ranked := RankCounter(c, min)

		for i, e := range ranked {
			if e.Count <= min {
				t.Errorf("min=%d: entry %v does not exceed threshold", min, e)
			}
			if i > 0 && ranked[i-1].Count < e.Count {
				t.Errorf("min=%d: order broken at %d: %v before %v", min, i, ranked[i-1], e)
			}
		}

		// Every qualifying entry is present.
		qualifying := 0
		for _, count := range c.Counts() {
			if count > min {
				qualifying++
			}
		}
		if len(ranked) != qualifying {
			t.Errorf("min=%d: expected %d entries, got %d", min, qualifying, len(ranked))
		}
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	entries := []Entry{{"a", 1}, {"b", 2}}
	Rank(entries, 0)
	if entries[0].Key != "a" || entries[1].Key != "b" {
		t.Errorf("Expected input order to be preserved, got %v", entries)
	}
}

func TestRankedHelpers(t *testing.T) {
	r := Ranked{{"a", 9}, {"b", 7}, {"c", 4}}

	if got := r.Top(2); !reflect.DeepEqual(got, Ranked{{"a", 9}, {"b", 7}}) {
		t.Errorf("Expected top 2, got %v", got)
	}
	if got := r.Top(10); len(got) != 3 {
		t.Errorf("Expected Top beyond length to return all, got %v", got)
	}
	if got := r.Top(0); len(got) != 3 {
		t.Errorf("Expected Top(0) to return all, got %v", got)
	}
	if !reflect.DeepEqual(r.Keys(), []string{"a", "b", "c"}) {
		t.Errorf("Unexpected keys %v", r.Keys())
	}
	if !reflect.DeepEqual(r.Values(), []int{9, 7, 4}) {
		t.Errorf("Unexpected values %v", r.Values())
	}
	if v, ok := r.Get("b"); !ok || v != 7 {
		t.Errorf("Expected b=7, got %d (%v)", v, ok)
	}
	if _, ok := r.Get("z"); ok {
		t.Error("Expected z to be absent")
	}
}
