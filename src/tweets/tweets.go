package tweets

// Tweet is one ingested post. Tweets are never modified after ingestion.
type Tweet struct {
	Text          string `json:"text" yaml:"text"`
	FavoriteCount int    `json:"favorite_count" yaml:"favorite_count"`
	RetweetCount  int    `json:"retweet_count" yaml:"retweet_count"`
	UserName      string `json:"user_name" yaml:"user_name"`
	UserFollowers int    `json:"user_followers" yaml:"user_followers"`
}

// Table is the tabular view over an ordered set of tweets.
// Column i of every accessor refers to the same tweet.
type Table struct {
	rows []Tweet
}

// NewTable builds a Table from rows. The rows are copied so later changes
// to the caller's slice are not visible through the table.
func NewTable(rows []Tweet) *Table {
	copied := make([]Tweet, len(rows))
	copy(copied, rows)
	return &Table{rows: copied}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the tweet at index i.
func (t *Table) Row(i int) Tweet {
	return t.rows[i]
}

// Rows returns a copy of all rows in order.
func (t *Table) Rows() []Tweet {
	out := make([]Tweet, len(t.rows))
	copy(out, t.rows)
	return out
}

// Texts returns the text column.
func (t *Table) Texts() []string {
	out := make([]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = row.Text
	}
	return out
}

// Authors returns the author name column.
func (t *Table) Authors() []string {
	out := make([]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = row.UserName
	}
	return out
}

// Favorites returns the favorite_count column.
func (t *Table) Favorites() []int {
	out := make([]int, len(t.rows))
	for i, row := range t.rows {
		out[i] = row.FavoriteCount
	}
	return out
}

// Retweets returns the retweet_count column.
func (t *Table) Retweets() []int {
	out := make([]int, len(t.rows))
	for i, row := range t.rows {
		out[i] = row.RetweetCount
	}
	return out
}

// Followers returns the author follower count column.
func (t *Table) Followers() []int {
	out := make([]int, len(t.rows))
	for i, row := range t.rows {
		out[i] = row.UserFollowers
	}
	return out
}
