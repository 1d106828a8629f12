package feedobs

import (
	"context"
	"time"

	"social-sentiment-dashboard/internal/interfaces"
	"social-sentiment-dashboard/internal/logger"
	"social-sentiment-dashboard/internal/metrics"
	"social-sentiment-dashboard/internal/trace"
	"social-sentiment-dashboard/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// observableFetcher wraps a PostFetcher with logging, tracing and metrics
type observableFetcher struct {
	inner interfaces.PostFetcher
}

var _ interfaces.PostFetcher = (*observableFetcher)(nil)

// Wrap wraps a PostFetcher with observability middleware
func Wrap(fetcher interfaces.PostFetcher) interfaces.PostFetcher {
	return &observableFetcher{inner: fetcher}
}

func (o *observableFetcher) Source() string { return o.inner.Source() }

func (o *observableFetcher) Fetch(ctx context.Context, query string, limit int) ([]types.Post, error) {
	source := o.inner.Source()
	ctx, span := trace.StartSpan(ctx, "feed.Fetch")
	defer span.End()
	span.SetAttributes(
		attribute.String("source", source),
		attribute.String("query", query),
		attribute.Int("limit", limit),
	)

	start := time.Now()
	posts, err := o.inner.Fetch(ctx, query, limit)
	duration := time.Since(start)
	metrics.FetchDuration.WithLabelValues(source).Observe(duration.Seconds())

	if err != nil {
		metrics.FetchesTotal.WithLabelValues(source, "error").Inc()
		logger.WarnWithErr(ctx, "Fetch failed", err,
			"source", source,
			"query", query,
			"duration_ms", duration.Milliseconds(),
		)
		return nil, err
	}

	status := "ok"
	if len(posts) == 0 {
		status = "empty"
	}
	metrics.FetchesTotal.WithLabelValues(source, status).Inc()
	span.SetAttributes(attribute.Int("posts", len(posts)))

	logger.Info(ctx, "Fetch completed",
		"source", source,
		"query", query,
		"limit", limit,
		"posts", len(posts),
		"duration_ms", duration.Milliseconds(),
	)
	return posts, nil
}
