package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the command line application. Analysis output goes to out.
func newApp(out io.Writer) *cli.App {
	r := &runner{out: out}

	return &cli.App{
		Name:   "tweet-stats",
		Usage:  "rank words, authors and reach across a corpus of tweets",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to YAML config file", EnvVars: []string{"TWEET_STATS_CONFIG"}},
			&cli.StringSliceFlag{Name: "input", Aliases: []string{"i"}, Usage: "line-delimited JSON tweet file or glob (repeatable, .gz allowed)"},
			&cli.StringFlag{Name: "source", Usage: "record source: file or amqp"},
			&cli.StringFlag{Name: "keyword", Aliases: []string{"k"}, Usage: "substring for the keyword author ranking"},
			&cli.StringFlag{Name: "output-dir", Usage: "write every ranked result as CSV into this directory"},
			&cli.StringFlag{Name: "format", Usage: "output format: text or yaml"},
			&cli.StringFlag{Name: "log-dir", Usage: "directory for pipeline.log (stderr when empty)"},
			&cli.IntFlag{Name: "top", Usage: "entries per chart"},
			&cli.IntFlag{Name: "min-word-count", Usage: "words must appear more often than this"},
			&cli.IntFlag{Name: "min-user-count", Usage: "authors must post more often than this"},
			&cli.IntFlag{Name: "min-reach-count", Usage: "authors must reach more than this"},
			&cli.IntFlag{Name: "min-keyword-count", Usage: "authors must mention the keyword more often than this"},
		},
		After:  r.close,
		Action: r.action(r.all),
		Commands: []*cli.Command{
			{Name: "all", Usage: "run every analysis in sequence (default)", Action: r.action(r.all)},
			{Name: "summary", Usage: "print corpus key statistics", Action: r.action(r.summary)},
			{Name: "words", Usage: "rank frequent words", Action: r.action(r.words)},
			{Name: "users", Usage: "rank authors by number of posts", Action: r.action(r.users)},
			{Name: "reach", Usage: "rank authors by cumulative follower reach", Action: r.action(r.reach)},
			{Name: "top-user-words", Usage: "rank words used by the top authors by reach", Action: r.action(r.topUserWords)},
			{Name: "keyword", Usage: "rank authors by posts mentioning the keyword", Action: r.action(r.keyword)},
		},
	}
}
