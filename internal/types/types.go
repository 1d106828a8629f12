package types

import "time"

// Post is a single upstream post reduced to what scoring needs.
type Post struct {
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"text"`
}

// ScoredPost is a Post with its compound sentiment and the ticker it was
// fetched for.
type ScoredPost struct {
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"text"`
	Compound  float64   `json:"compound"`
	Ticker    string    `json:"ticker"`
}

// HourlyAggregate is the mean compound score of one ticker within one UTC
// hour bucket.
type HourlyAggregate struct {
	Ticker       string    `json:"ticker"`
	Hour         time.Time `json:"hour"`
	MeanCompound float64   `json:"mean_compound"`
	Count        int       `json:"count"`
}
