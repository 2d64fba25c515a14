package pipeline

import (
	"regexp"
	"strings"
)

const (
	// MinWordLen and MaxWordLen bound the words the tokenizer keeps.
	MinWordLen = 8
	MaxWordLen = 15
)

var (
	// wordRun matches a maximal run of Unicode letters, digits and underscores.
	wordRun     = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	wordPattern = regexp.MustCompile(`^[a-z]{8,15}$`)
)

// Tokenize lowercases text and returns, in order of appearance, every word
// run made only of MinWordLen to MaxWordLen ASCII letters. A run is bounded by
// anything that is not a letter, digit or underscore, so accented letters,
// digits and underscores all belong to the run and disqualify it.
func Tokenize(text string) []string {
	var words []string
	for _, run := range wordRun.FindAllString(strings.ToLower(text), -1) {
		if wordPattern.MatchString(run) {
			words = append(words, run)
		}
	}
	return words
}
