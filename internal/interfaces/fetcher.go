package interfaces

import (
	"context"

	"social-sentiment-dashboard/internal/types"
)

// PostFetcher retrieves recent public posts matching a query.
type PostFetcher interface {
	// Fetch issues a single upstream request for query and returns at most
	// limit posts. Posts without a timestamp or text are never returned.
	// Any failure is returned as an error; callers treat it as zero posts.
	Fetch(ctx context.Context, query string, limit int) ([]types.Post, error)

	// Source names the upstream strategy (e.g. "RSS", "JSON").
	Source() string
}
