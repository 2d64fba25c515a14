package pipeline

import "tweet-stats/src/tweets"

// Summary holds corpus-wide totals.
type Summary struct {
	RowCount           int `json:"row_count" yaml:"row_count"`
	TotalFavorites     int `json:"total_favorites" yaml:"total_favorites"`
	TotalRetweets      int `json:"total_retweets" yaml:"total_retweets"`
	DistinctAuthors    int `json:"distinct_authors" yaml:"distinct_authors"`
	TotalFollowerReach int `json:"total_follower_reach" yaml:"total_follower_reach"`
}

// Summarize computes the corpus totals. Follower reach counts an author's
// followers once per post.
func Summarize(t *tweets.Table) Summary {
	s := Summary{RowCount: t.Len()}
	authors := make(map[string]struct{})
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		s.TotalFavorites += row.FavoriteCount
		s.TotalRetweets += row.RetweetCount
		s.TotalFollowerReach += row.UserFollowers
		authors[row.UserName] = struct{}{}
	}
	s.DistinctAuthors = len(authors)
	return s
}
