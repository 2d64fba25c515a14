package pipeline

// Thresholds holds the minimum counts each ranked analysis must exceed.
// Filtering is strict: a count equal to the threshold is dropped.
type Thresholds struct {
	MinWordCount    int `yaml:"min_word_count"`
	MinUserCount    int `yaml:"min_user_count"`
	MinReachCount   int `yaml:"min_reach_count"`
	MinKeywordCount int `yaml:"min_keyword_count"`
}

// DefaultThresholds returns the stock thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinWordCount:    25,
		MinUserCount:    10,
		MinReachCount:   10,
		MinKeywordCount: 0,
	}
}
