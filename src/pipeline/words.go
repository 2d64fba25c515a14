package pipeline

import (
	"tweet-stats/src/filter"
	"tweet-stats/src/tweets"
)

// WordFrequency tokenizes every text and ranks the words whose count is
// greater than min.
func WordFrequency(texts []string, min int) Ranked {
	c := NewCounter()
	for _, text := range texts {
		c.Increment(Tokenize(text)...)
	}
	return RankCounter(c, min)
}

// UserWordFrequency ranks the words used by the given authors. Authors match
// exactly. Words equal to any author name in the table (case-insensitive) are
// skipped so that mentions of accounts do not dominate. No threshold applies.
func UserWordFrequency(t *tweets.Table, authors []string) Ranked {
	wanted := make(map[string]struct{}, len(authors))
	for _, a := range authors {
		wanted[a] = struct{}{}
	}
	names := filter.NewWordFilter(t.Authors())

	c := NewCounter()
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		if _, ok := wanted[row.UserName]; !ok {
			continue
		}
		for _, word := range Tokenize(row.Text) {
			if names.IsFiltered(word) {
				continue
			}
			c.Increment(word)
		}
	}
	return RankCounter(c, 0)
}
