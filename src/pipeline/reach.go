package pipeline

import "tweet-stats/src/tweets"

// ReachCounts adds each row's follower count to its author's total. An author
// who posts N times contributes N follower counts: this is total exposure
// across posts, not a unique-follower count.
func ReachCounts(t *tweets.Table) *Counter {
	c := NewCounter()
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		// slot keeps first-seen order even when the first row has no followers.
		c.entries[c.slot(row.UserName)].Count += row.UserFollowers
	}
	return c.compact()
}

// UserReach ranks authors by cumulative reach, keeping totals above min.
func UserReach(t *tweets.Table, min int) Ranked {
	return RankCounter(ReachCounts(t), min)
}
