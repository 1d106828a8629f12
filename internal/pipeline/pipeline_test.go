package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-sentiment-dashboard/internal/metrics"
	"social-sentiment-dashboard/internal/sentiment"
	"social-sentiment-dashboard/internal/types"
)

type stubFetcher struct {
	mu       sync.Mutex
	posts    map[string][]types.Post
	errs     map[string]error
	block    map[string]bool
	calls    []string
	limits   []int
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (f *stubFetcher) Source() string { return "STUB" }

func (f *stubFetcher) Fetch(ctx context.Context, query string, limit int) ([]types.Post, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}

	f.mu.Lock()
	f.calls = append(f.calls, query)
	f.limits = append(f.limits, limit)
	f.mu.Unlock()

	if f.block[query] {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err := f.errs[query]; err != nil {
		return nil, err
	}
	time.Sleep(5 * time.Millisecond)
	return f.posts[query], nil
}

// tableScorer scores by exact text lookup
type tableScorer map[string]float64

func (s tableScorer) Score(posts []types.Post) ([]types.ScoredPost, error) {
	out := make([]types.ScoredPost, 0, len(posts))
	for _, p := range posts {
		c, ok := s[p.Text]
		if !ok {
			return nil, fmt.Errorf("unknown text %q", p.Text)
		}
		out = append(out, types.ScoredPost{Timestamp: p.Timestamp, Text: p.Text, Compound: c})
	}
	return out, nil
}

func at(hh, mm int) time.Time {
	return time.Date(2024, 1, 1, hh, mm, 0, 0, time.UTC)
}

func TestNormalizeTickers(t *testing.T) {
	assert.Equal(t, []string{"TSLA", "NVDA"}, NormalizeTickers("tsla, nvda"))
	assert.Equal(t, []string{"BRKB", "AAPL"}, NormalizeTickers(" brk b ,aapl,AAPL"))
	assert.Empty(t, NormalizeTickers(" , "))
	assert.Empty(t, NormalizeTickers(""))
	assert.Equal(t, []string{"TSLA"}, NormalizeTickers("tsla,TSLA, Tsla"))
	assert.Equal(t, []string{"TSLAX"}, NormalizeTickers("\ttsla x\n"))
}

func TestNormalizeLimit(t *testing.T) {
	cases := map[int]int{
		-5:  60,
		0:   60,
		1:   20,
		20:  20,
		24:  20,
		25:  30,
		60:  60,
		99:  100,
		100: 100,
		500: 100,
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeLimit(in), "limit %d", in)
	}
}

func TestRunHourlyMeanForTwoTickers(t *testing.T) {
	f := &stubFetcher{posts: map[string][]types.Post{
		"TSLA": {
			{Timestamp: at(14, 5), Text: "a"},
			{Timestamp: at(14, 30), Text: "b"},
			{Timestamp: at(14, 59), Text: "c"},
		},
		"NVDA": {
			{Timestamp: at(15, 1), Text: "d"},
		},
	}}
	scorer := tableScorer{"a": 0.5, "b": -0.2, "c": 0.3, "d": -0.4}

	res, err := New(f, scorer, Options{}).Run(context.Background(), "tsla, nvda", 60)
	require.NoError(t, err)

	assert.Equal(t, StateAggregated, res.State)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, []string{"TSLA", "NVDA"}, res.Tickers)
	assert.Equal(t, []string{"TSLA", "NVDA"}, f.calls)
	assert.Equal(t, []int{60, 60}, f.limits)

	require.Len(t, res.Posts, 4)
	for _, p := range res.Posts[:3] {
		assert.Equal(t, "TSLA", p.Ticker)
	}
	assert.Equal(t, "NVDA", res.Posts[3].Ticker)

	require.Len(t, res.Hourly, 2)
	nvda, tsla := res.Hourly[0], res.Hourly[1]
	assert.Equal(t, "NVDA", nvda.Ticker)
	assert.Equal(t, at(15, 0), nvda.Hour)
	assert.InDelta(t, -0.4, nvda.MeanCompound, 1e-9)

	assert.Equal(t, "TSLA", tsla.Ticker)
	assert.Equal(t, at(14, 0), tsla.Hour)
	assert.Equal(t, 3, tsla.Count)
	assert.InDelta(t, 0.2, tsla.MeanCompound, 1e-9)
}

func TestRunBlankTickersSkipsNetwork(t *testing.T) {
	before := testutil.ToFloat64(metrics.RunsTotal.WithLabelValues("no_data"))

	f := &stubFetcher{}
	res, err := New(f, tableScorer{}, Options{}).Run(context.Background(), " , ", 60)
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.RunsTotal.WithLabelValues("no_data")))

	assert.Equal(t, StateNoData, res.State)
	assert.Empty(t, f.calls)
	assert.Empty(t, res.Hourly)
}

func TestRunAllEmptyIsNoData(t *testing.T) {
	f := &stubFetcher{posts: map[string][]types.Post{}}
	res, err := New(f, tableScorer{}, Options{}).Run(context.Background(), "TSLA,NVDA", 60)
	require.NoError(t, err)

	assert.Equal(t, StateNoData, res.State)
	assert.Empty(t, res.Posts)
	assert.Empty(t, res.Hourly)
	require.Len(t, res.Skipped, 2)
	assert.Equal(t, "no posts", res.Skipped[0].Reason)
}

func TestRunFetchFailureSkipsTicker(t *testing.T) {
	f := &stubFetcher{
		posts: map[string][]types.Post{"NVDA": {{Timestamp: at(9, 0), Text: "d"}}},
		errs:  map[string]error{"TSLA": errors.New("HTTP 429")},
	}
	res, err := New(f, tableScorer{"d": 0.1}, Options{}).Run(context.Background(), "TSLA,NVDA", 60)
	require.NoError(t, err)

	assert.Equal(t, StateAggregated, res.State)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "TSLA", res.Skipped[0].Ticker)
	assert.Contains(t, res.Skipped[0].Reason, "429")
	require.Len(t, res.Posts, 1)
	assert.Equal(t, "NVDA", res.Posts[0].Ticker)
}

func TestRunFetchTimeoutCountsAsEmpty(t *testing.T) {
	f := &stubFetcher{block: map[string]bool{"TSLA": true}}
	res, err := New(f, tableScorer{}, Options{FetchTimeout: 20 * time.Millisecond}).
		Run(context.Background(), "TSLA", 60)
	require.NoError(t, err)

	assert.Equal(t, StateNoData, res.State)
	require.Len(t, res.Skipped, 1)
	assert.Contains(t, res.Skipped[0].Reason, context.DeadlineExceeded.Error())
}

func TestRunScoringErrorSkipsTicker(t *testing.T) {
	f := &stubFetcher{posts: map[string][]types.Post{
		"TSLA": {{Timestamp: at(9, 0), Text: "unscorable"}},
		"NVDA": {{Timestamp: at(9, 15), Text: "d"}},
	}}
	res, err := New(f, tableScorer{"d": 0.3}, Options{}).Run(context.Background(), "TSLA,NVDA", 60)
	require.NoError(t, err)

	assert.Equal(t, StateAggregated, res.State)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "TSLA", res.Skipped[0].Ticker)
	assert.Contains(t, res.Skipped[0].Reason, "unknown text")
	require.Len(t, res.Posts, 1)
	assert.Equal(t, "NVDA", res.Posts[0].Ticker)
}

func TestRunMalformedPostWithRealScorer(t *testing.T) {
	f := &stubFetcher{posts: map[string][]types.Post{
		"TSLA": {{Timestamp: at(9, 0), Text: "bad \xff bytes"}},
		"NVDA": {{Timestamp: at(9, 0), Text: "Great quarter, stock is soaring!"}},
	}}
	scorer := sentiment.NewScorer(sentiment.NewAnalyzer())

	res, err := New(f, scorer, Options{}).Run(context.Background(), "TSLA,NVDA", 60)
	require.NoError(t, err)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "TSLA", res.Skipped[0].Ticker)
	assert.Contains(t, res.Skipped[0].Reason, sentiment.ErrMalformedPost.Error())
	require.Len(t, res.Hourly, 1)
	assert.Equal(t, "NVDA", res.Hourly[0].Ticker)
}

func TestRunAllTickersMalformedIsNoData(t *testing.T) {
	f := &stubFetcher{posts: map[string][]types.Post{
		"TSLA": {{Timestamp: at(9, 0), Text: "bad \xff bytes"}},
	}}
	scorer := sentiment.NewScorer(sentiment.NewAnalyzer())

	res, err := New(f, scorer, Options{}).Run(context.Background(), "TSLA", 60)
	require.NoError(t, err)
	assert.Equal(t, StateNoData, res.State)
	assert.Empty(t, res.Posts)
}

func TestNewResetsLimitsWithDefaultOutOfRange(t *testing.T) {
	cases := map[string]Limits{
		"zero default":  {Min: 20, Max: 100, Step: 10},
		"default above": {Min: 20, Max: 100, Step: 10, Default: 500},
		"default below": {Min: 20, Max: 100, Step: 10, Default: 10},
	}
	for name, l := range cases {
		t.Run(name, func(t *testing.T) {
			p := New(&stubFetcher{}, tableScorer{}, Options{Limits: l})
			assert.Equal(t, DefaultLimits(), p.Limits())
			assert.Equal(t, 60, p.Limits().Normalize(0))
		})
	}

	custom := Limits{Min: 10, Max: 50, Step: 5, Default: 25}
	assert.Equal(t, custom, New(&stubFetcher{}, tableScorer{}, Options{Limits: custom}).Limits())
}

func TestRunCancelledContextAborts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &stubFetcher{}
	_, err := New(f, tableScorer{}, Options{}).Run(ctx, "TSLA", 60)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, f.calls)
}

func TestRunConcurrentKeepsTickerOrder(t *testing.T) {
	posts := map[string][]types.Post{}
	scorer := tableScorer{}
	tickers := []string{"AAA", "BBB", "CCC", "DDD", "EEE", "FFF"}
	for i, tk := range tickers {
		text := "post " + tk
		posts[tk] = []types.Post{{Timestamp: at(10, i), Text: text}}
		scorer[text] = 0.1 * float64(i)
	}
	f := &stubFetcher{posts: posts}

	res, err := New(f, scorer, Options{Concurrency: 3}).Run(context.Background(), "aaa,bbb,ccc,ddd,eee,fff", 60)
	require.NoError(t, err)

	require.Len(t, res.Posts, len(tickers))
	for i, tk := range tickers {
		assert.Equal(t, tk, res.Posts[i].Ticker)
	}
	assert.LessOrEqual(t, f.peak.Load(), int32(3))
	assert.Len(t, f.calls, len(tickers))
}

func TestRunSequentialByDefault(t *testing.T) {
	f := &stubFetcher{posts: map[string][]types.Post{}}
	_, err := New(f, tableScorer{}, Options{}).Run(context.Background(), "A1,B2,C3", 60)
	require.NoError(t, err)
	assert.Equal(t, int32(1), f.peak.Load())
}

func TestRunNormalizesLimit(t *testing.T) {
	f := &stubFetcher{posts: map[string][]types.Post{}}
	res, err := New(f, tableScorer{}, Options{}).Run(context.Background(), "TSLA", 7)
	require.NoError(t, err)
	assert.Equal(t, 20, res.Limit)
	assert.Equal(t, []int{20}, f.limits)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "no_data", StateNoData.String())
	assert.Equal(t, "aggregated", StateAggregated.String())
	assert.Equal(t, "unknown", State(99).String())
}

func TestRunStampsStartFromClock(t *testing.T) {
	start := time.Date(2024, 5, 6, 7, 8, 9, 0, time.FixedZone("X", 3600))
	clock := clockwork.NewFakeClockAt(start)

	res, err := New(&stubFetcher{}, tableScorer{}, Options{Clock: clock}).Run(context.Background(), "TSLA", 60)
	require.NoError(t, err)
	assert.Equal(t, start.UTC(), res.StartedAt)
	assert.Equal(t, time.UTC, res.StartedAt.Location())
}
