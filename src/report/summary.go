package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"tweet-stats/src/pipeline"
)

// PrintSummary writes the key statistics block.
func PrintSummary(w io.Writer, s pipeline.Summary) {
	fmt.Fprintln(w, "*********** Key Statistics ***********")
	fmt.Fprintf(w, "Number of Tweets: %s\n", humanize.Comma(int64(s.RowCount)))
	fmt.Fprintf(w, "Number of Favorites: %s\n", humanize.Comma(int64(s.TotalFavorites)))
	fmt.Fprintf(w, "Number of Retweets: %s\n", humanize.Comma(int64(s.TotalRetweets)))
	fmt.Fprintf(w, "Number of Distinct Users: %s\n", humanize.Comma(int64(s.DistinctAuthors)))
	fmt.Fprintf(w, "First-Order Reach (Followers of Users): %s\n", humanize.Comma(int64(s.TotalFollowerReach)))
	fmt.Fprintln(w, "**************************************")
}
