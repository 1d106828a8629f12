package interfaces

import "social-sentiment-dashboard/internal/types"

// PostScorer turns posts into scored rows, one per post.
type PostScorer interface {
	Score(posts []types.Post) ([]types.ScoredPost, error)
}
