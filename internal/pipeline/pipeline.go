package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"social-sentiment-dashboard/internal/aggregate"
	"social-sentiment-dashboard/internal/interfaces"
	"social-sentiment-dashboard/internal/logger"
	"social-sentiment-dashboard/internal/metrics"
	"social-sentiment-dashboard/internal/types"
)

// ErrNoData is returned by callers that need an error for the no-data path
var ErrNoData = errors.New("no posts found")

// Skip records a ticker that contributed no posts
type Skip struct {
	Ticker string `json:"ticker"`
	Reason string `json:"reason"`
}

// Result is the outcome of one run
type Result struct {
	RunID     string                  `json:"run_id"`
	State     State                   `json:"state"`
	Tickers   []string                `json:"tickers"`
	Limit     int                     `json:"limit"`
	Posts     []types.ScoredPost      `json:"posts"`
	Hourly    []types.HourlyAggregate `json:"hourly"`
	Skipped   []Skip                  `json:"skipped,omitempty"`
	StartedAt time.Time               `json:"started_at"`
}

// Options tunes a Pipeline
type Options struct {
	// FetchTimeout bounds each ticker's fetch
	FetchTimeout time.Duration
	// Concurrency is the number of tickers fetched at once; 1 is sequential
	Concurrency int
	Limits      Limits
	Clock       clockwork.Clock
}

func (o *Options) applyDefaults() {
	if o.FetchTimeout <= 0 {
		o.FetchTimeout = 15 * time.Second
	}
	if o.Concurrency < 1 {
		o.Concurrency = 1
	}
	l := o.Limits
	if l.Step <= 0 || l.Min <= 0 || l.Max < l.Min || l.Default < l.Min || l.Default > l.Max {
		o.Limits = DefaultLimits()
	}
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
}

// Pipeline runs fetch -> score -> aggregate for a ticker list
type Pipeline struct {
	fetcher interfaces.PostFetcher
	scorer  interfaces.PostScorer
	opts    Options
}

func New(fetcher interfaces.PostFetcher, scorer interfaces.PostScorer, opts Options) *Pipeline {
	opts.applyDefaults()
	return &Pipeline{
		fetcher: fetcher,
		scorer:  scorer,
		opts:    opts,
	}
}

// Limits returns the slider bounds the pipeline normalizes against
func (p *Pipeline) Limits() Limits {
	return p.opts.Limits
}

type fetchOutcome struct {
	posts []types.Post
	err   error
}

// Run normalizes the inputs and executes one run. A nil error with State
// StateNoData means nothing was found. Fetch and scoring failures only skip
// their ticker; cancellation of ctx aborts the run.
func (p *Pipeline) Run(ctx context.Context, rawTickers string, limit int) (*Result, error) {
	res := &Result{
		RunID:     uuid.NewString(),
		State:     StateIdle,
		Tickers:   NormalizeTickers(rawTickers),
		Limit:     p.opts.Limits.Normalize(limit),
		StartedAt: p.opts.Clock.Now().UTC(),
	}

	op := logger.StartOperation(ctx, "pipeline.Run",
		"run_id", res.RunID,
		"tickers", len(res.Tickers),
		"limit", res.Limit)
	ctx = op.Context()

	if len(res.Tickers) == 0 {
		p.transition(ctx, res, StateNoData, "reason", "empty ticker list")
		metrics.RunsTotal.WithLabelValues(StateNoData.String()).Inc()
		op.End("state", res.State.String())
		return res, nil
	}

	p.transition(ctx, res, StateFetching)
	outcomes, err := p.fetchAll(ctx, res.Tickers, res.Limit)
	if err != nil {
		metrics.RunsTotal.WithLabelValues("error").Inc()
		op.EndWithError(err)
		return nil, err
	}

	p.transition(ctx, res, StateScoring)
	for i, ticker := range res.Tickers {
		out := outcomes[i]
		if out.err != nil {
			res.Skipped = append(res.Skipped, Skip{Ticker: ticker, Reason: out.err.Error()})
			continue
		}
		if len(out.posts) == 0 {
			res.Skipped = append(res.Skipped, Skip{Ticker: ticker, Reason: "no posts"})
			continue
		}

		rows, err := p.scorer.Score(out.posts)
		if err != nil {
			logger.WarnWithErr(ctx, "Scoring failed, skipping ticker", err, "ticker", ticker)
			res.Skipped = append(res.Skipped, Skip{Ticker: ticker, Reason: err.Error()})
			continue
		}
		for j := range rows {
			rows[j].Ticker = ticker
		}
		res.Posts = append(res.Posts, rows...)
	}

	if len(res.Posts) == 0 {
		p.transition(ctx, res, StateNoData, "skipped", len(res.Skipped))
		metrics.RunsTotal.WithLabelValues(StateNoData.String()).Inc()
		op.End("state", res.State.String())
		return res, nil
	}

	p.transition(ctx, res, StateAggregating, "posts", len(res.Posts))
	res.Hourly = aggregate.Hourly(res.Posts)
	p.transition(ctx, res, StateAggregated, "buckets", len(res.Hourly))

	metrics.RunsTotal.WithLabelValues(StateAggregated.String()).Inc()
	op.End("state", res.State.String(), "posts", len(res.Posts), "skipped", len(res.Skipped))
	return res, nil
}

// fetchAll fetches every ticker, at most Concurrency at a time, and returns
// outcomes indexed like tickers. Only cancellation of ctx is an error.
func (p *Pipeline) fetchAll(ctx context.Context, tickers []string, limit int) ([]fetchOutcome, error) {
	outcomes := make([]fetchOutcome, len(tickers))

	var g errgroup.Group
	g.SetLimit(p.opts.Concurrency)
	for i, ticker := range tickers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = fetchOutcome{err: err}
				return nil
			}
			fctx, cancel := context.WithTimeout(ctx, p.opts.FetchTimeout)
			defer cancel()

			posts, err := p.fetcher.Fetch(fctx, ticker, limit)
			if err != nil {
				logger.Debug(ctx, "Skipping ticker after fetch failure",
					"ticker", ticker,
					"source", p.fetcher.Source(),
					"error", err.Error())
			}
			outcomes[i] = fetchOutcome{posts: posts, err: err}
			return nil
		})
	}
	// workers record failures in outcomes and never return an error
	g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}
	return outcomes, nil
}

func (p *Pipeline) transition(ctx context.Context, res *Result, to State, fields ...any) {
	logger.Transition(ctx, res.RunID, res.State.String(), to.String(), fields...)
	res.State = to
}

// MarkRendered records that an aggregated result was displayed
func (r *Result) MarkRendered(ctx context.Context) {
	if r.State != StateAggregated {
		return
	}
	logger.Transition(ctx, r.RunID, r.State.String(), StateRendered.String())
	r.State = StateRendered
}
