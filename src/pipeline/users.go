package pipeline

import (
	"strings"

	"tweet-stats/src/tweets"
)

// UserFrequency ranks authors by number of posts, keeping counts above min.
func UserFrequency(t *tweets.Table, min int) Ranked {
	return RankCounter(CountKeys(t.Authors()), min)
}

// KeywordAuthorCounts counts, per author, the rows whose text contains
// keyword as a plain case-sensitive substring. Authors without a match are
// absent. An empty keyword matches every row.
func KeywordAuthorCounts(t *tweets.Table, keyword string) *Counter {
	c := NewCounter()
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		if strings.Contains(row.Text, keyword) {
			c.Increment(row.UserName)
		}
	}
	return c
}

// UsersByKeyword ranks authors by how many of their posts mention keyword.
func UsersByKeyword(t *tweets.Table, keyword string, min int) Ranked {
	return RankCounter(KeywordAuthorCounts(t, keyword), min)
}
