package main

import (
	"tweet-stats/src/pipeline"
	"tweet-stats/src/report"
)

// all runs the full sequence: summary, words, authors, reach, the words of
// the top authors by reach, and the keyword ranking.
func (r *runner) all() error {
	steps := []func() error{
		r.summary,
		r.words,
		r.users,
		func() error {
			return r.userWords(r.rankReach())
		},
		r.keyword,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) summary() error {
	s := pipeline.Summarize(r.table)
	r.results.Summary = &s
	r.logger.Info("Summary computed",
		"rows", s.RowCount,
		"favorites", s.TotalFavorites,
		"retweets", s.TotalRetweets,
		"distinct_authors", s.DistinctAuthors,
		"follower_reach", s.TotalFollowerReach)
	if r.cfg.Format == formatText {
		report.PrintSummary(r.out, s)
	}
	return nil
}

func (r *runner) words() error {
	r.emit(report.Section{
		Name:       "word_frequency",
		Title:      "Top Words in Tweet Text",
		KeyLabel:   "word",
		ValueLabel: "Word Prevalence",
		Entries:    pipeline.WordFrequency(r.table.Texts(), r.cfg.Thresholds.MinWordCount),
	})
	return nil
}

func (r *runner) users() error {
	r.emit(report.Section{
		Name:       "user_frequency",
		Title:      "Number of Tweets by User",
		KeyLabel:   "author",
		ValueLabel: "Number of Tweets",
		Entries:    pipeline.UserFrequency(r.table, r.cfg.Thresholds.MinUserCount),
	})
	return nil
}

// rankReach emits the reach ranking and returns the plotted authors.
func (r *runner) rankReach() []string {
	return r.emit(report.Section{
		Name:       "user_reach",
		Title:      "Reach by User",
		KeyLabel:   "author",
		ValueLabel: "Reach (# of Followers x # of Tweets)",
		Entries:    pipeline.UserReach(r.table, r.cfg.Thresholds.MinReachCount),
	})
}

func (r *runner) reach() error {
	r.rankReach()
	return nil
}

func (r *runner) userWords(authors []string) error {
	r.logger.Debug("Ranking words for top authors", "authors", len(authors))
	r.emit(report.Section{
		Name:       "top_user_words",
		Title:      "Top Words for Top Users",
		KeyLabel:   "word",
		ValueLabel: "Word Prevalence",
		Entries:    pipeline.UserWordFrequency(r.table, authors),
	})
	return nil
}

// topUserWords picks the top authors by reach without drawing their chart.
func (r *runner) topUserWords() error {
	reach := pipeline.UserReach(r.table, r.cfg.Thresholds.MinReachCount)
	return r.userWords(reach.Top(r.cfg.Chart.TopN).Keys())
}

func (r *runner) keyword() error {
	r.emit(report.Section{
		Name:       "users_by_keyword",
		Title:      "Top Users for Word: " + r.cfg.Keyword,
		KeyLabel:   "author",
		ValueLabel: "Tweet Count",
		Entries:    pipeline.UsersByKeyword(r.table, r.cfg.Keyword, r.cfg.Thresholds.MinKeywordCount),
	})
	return nil
}
