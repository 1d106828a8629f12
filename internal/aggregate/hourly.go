package aggregate

import (
	"sort"
	"time"

	"social-sentiment-dashboard/internal/types"
)

// HourBucket floors ts to the start of its UTC hour,
// e.g. 2024-01-01T14:37:00Z -> 2024-01-01T14:00:00Z.
func HourBucket(ts time.Time) time.Time {
	return ts.UTC().Truncate(time.Hour)
}

type bucketKey struct {
	ticker string
	hour   int64
}

// Hourly groups rows by (ticker, hour bucket) and averages the compound
// score in each group. Every non-empty bucket is reported, whatever its size.
// The result is sorted by ticker, then hour, and is identical for any
// permutation of rows.
func Hourly(rows []types.ScoredPost) []types.HourlyAggregate {
	if len(rows) == 0 {
		return nil
	}

	buckets := make(map[bucketKey][]float64)
	for _, r := range rows {
		k := bucketKey{ticker: r.Ticker, hour: HourBucket(r.Timestamp).Unix()}
		buckets[k] = append(buckets[k], r.Compound)
	}

	out := make([]types.HourlyAggregate, 0, len(buckets))
	for k, scores := range buckets {
		out = append(out, types.HourlyAggregate{
			Ticker:       k.ticker,
			Hour:         time.Unix(k.hour, 0).UTC(),
			MeanCompound: mean(scores),
			Count:        len(scores),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Ticker != out[j].Ticker {
			return out[i].Ticker < out[j].Ticker
		}
		return out[i].Hour.Before(out[j].Hour)
	})
	return out
}

// mean sums in sorted order so float rounding does not depend on input order
func mean(scores []float64) float64 {
	sort.Float64s(scores)
	sum := 0.0
	for _, v := range scores {
		sum += v
	}
	return sum / float64(len(scores))
}
