package ingest

import (
	"encoding/json"
	"errors"
	"fmt"

	"tweet-stats/src/tweets"
)

// rawTweet mirrors the subset of the tweet JSON the analyses need. Pointer
// fields distinguish an absent or null attribute from a zero value.
type rawTweet struct {
	Text          *string  `json:"text"`
	FavoriteCount *int     `json:"favorite_count"`
	RetweetCount  *int     `json:"retweet_count"`
	User          *rawUser `json:"user"`
}

type rawUser struct {
	ScreenName     *string `json:"screen_name"`
	FollowersCount *int    `json:"followers_count"`
}

// DecodeTweet decodes one JSON record. A missing attribute or a negative
// count yields a *SchemaError; malformed JSON yields an ErrIngestion.
// Source and Line are left for the caller to fill in.
func DecodeTweet(data []byte) (tweets.Tweet, error) {
	var raw rawTweet
	if err := json.Unmarshal(data, &raw); err != nil {
		return tweets.Tweet{}, fmt.Errorf("%w: malformed record: %v", ErrIngestion, err)
	}

	if raw.Text == nil {
		return tweets.Tweet{}, &SchemaError{Field: "text", Reason: "is missing"}
	}
	if raw.FavoriteCount == nil {
		return tweets.Tweet{}, &SchemaError{Field: "favorite_count", Reason: "is missing"}
	}
	if raw.RetweetCount == nil {
		return tweets.Tweet{}, &SchemaError{Field: "retweet_count", Reason: "is missing"}
	}
	if raw.User == nil {
		return tweets.Tweet{}, &SchemaError{Field: "user", Reason: "is missing"}
	}
	if raw.User.ScreenName == nil {
		return tweets.Tweet{}, &SchemaError{Field: "user.screen_name", Reason: "is missing"}
	}
	if raw.User.FollowersCount == nil {
		return tweets.Tweet{}, &SchemaError{Field: "user.followers_count", Reason: "is missing"}
	}

	counts := []struct {
		field string
		value int
	}{
		{"favorite_count", *raw.FavoriteCount},
		{"retweet_count", *raw.RetweetCount},
		{"user.followers_count", *raw.User.FollowersCount},
	}
	for _, c := range counts {
		if c.value < 0 {
			return tweets.Tweet{}, &SchemaError{Field: c.field, Reason: fmt.Sprintf("must be non-negative, got %d", c.value)}
		}
	}

	return tweets.Tweet{
		Text:          *raw.Text,
		FavoriteCount: *raw.FavoriteCount,
		RetweetCount:  *raw.RetweetCount,
		UserName:      *raw.User.ScreenName,
		UserFollowers: *raw.User.FollowersCount,
	}, nil
}

// locate fills the position of a SchemaError, or wraps any other error with it.
func locate(err error, source string, line int) error {
	var se *SchemaError
	if errors.As(err, &se) {
		se.Source = source
		se.Line = line
		return se
	}
	return fmt.Errorf("%s:%d: %w", source, line, err)
}

// DecodeMessages decodes a batch of message bodies, one record per body.
// The first failure aborts the batch.
func DecodeMessages(bodies [][]byte, source string) ([]tweets.Tweet, error) {
	rows := make([]tweets.Tweet, 0, len(bodies))
	for i, body := range bodies {
		tweet, err := DecodeTweet(body)
		if err != nil {
			return nil, locate(err, source, i+1)
		}
		rows = append(rows, tweet)
	}
	return rows, nil
}
