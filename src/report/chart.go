package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"tweet-stats/src/pipeline"
)

const (
	// DefaultTopN is how many entries a chart shows.
	DefaultTopN = 25
	// DefaultWidth is the bar length of the largest value.
	DefaultWidth = 60
)

// ChartOptions controls bar chart layout. Zero fields take the defaults.
type ChartOptions struct {
	TopN  int
	Width int
}

func (o ChartOptions) withDefaults() ChartOptions {
	if o.TopN <= 0 {
		o.TopN = DefaultTopN
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	return o
}

// BarChart draws a horizontal bar chart of the leading entries of ranked,
// largest first, and returns the values and keys it plotted so callers can
// feed them into a follow-up analysis.
func BarChart(w io.Writer, ranked pipeline.Ranked, title, xAxis string, opts ChartOptions) ([]int, []string) {
	opts = opts.withDefaults()
	shown := ranked.Top(opts.TopN)
	values := shown.Values()
	keys := shown.Keys()

	fmt.Fprintf(w, "\n%s\n", title)
	if len(shown) == 0 {
		fmt.Fprintln(w, "(no entries above threshold)")
		return values, keys
	}

	labelWidth := 0
	maxValue := 0
	for _, e := range shown {
		// %*s pads by runes.
		if n := utf8.RuneCountInString(e.Key); n > labelWidth {
			labelWidth = n
		}
		if e.Count > maxValue {
			maxValue = e.Count
		}
	}

	for _, e := range shown {
		fmt.Fprintf(w, "%*s |%s %s\n", labelWidth, e.Key, bar(e.Count, maxValue, opts.Width), humanize.Comma(int64(e.Count)))
	}
	// X axis
	fmt.Fprintf(w, "%*s +%s\n", labelWidth, "", strings.Repeat("-", opts.Width))
	fmt.Fprintf(w, "%*s  %s (max %s)\n", labelWidth, "", xAxis, humanize.Comma(int64(maxValue)))

	return values, keys
}

// bar scales value against max. Any positive value gets at least one cell.
func bar(value, max, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := int(float64(value) / float64(max) * float64(width))
	if n < 1 {
		n = 1
	}
	return strings.Repeat("#", n)
}
