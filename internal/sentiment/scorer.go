package sentiment

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"social-sentiment-dashboard/internal/interfaces"
	"social-sentiment-dashboard/internal/metrics"
	"social-sentiment-dashboard/internal/types"
)

// ErrMalformedPost means a post reached the scorer without usable text,
// which only happens when a fetcher breaks its contract.
var ErrMalformedPost = errors.New("malformed post")

// Scorer maps posts to compound scores with an injected Analyzer
type Scorer struct {
	analyzer *Analyzer
}

var _ interfaces.PostScorer = (*Scorer)(nil)

// NewScorer creates a scorer around a shared, read-only analyzer
func NewScorer(analyzer *Analyzer) *Scorer {
	return &Scorer{analyzer: analyzer}
}

// Score returns exactly one row per post, in input order, with timestamps in
// UTC. Ticker is left empty for the caller to fill in.
func (s *Scorer) Score(posts []types.Post) ([]types.ScoredPost, error) {
	rows := make([]types.ScoredPost, 0, len(posts))
	for i, p := range posts {
		if !utf8.ValidString(p.Text) {
			return nil, fmt.Errorf("%w: post %d has invalid UTF-8 text", ErrMalformedPost, i)
		}
		if strings.TrimSpace(p.Text) == "" {
			return nil, fmt.Errorf("%w: post %d has empty text", ErrMalformedPost, i)
		}
		if p.Timestamp.IsZero() {
			return nil, fmt.Errorf("%w: post %d has no timestamp", ErrMalformedPost, i)
		}

		rows = append(rows, types.ScoredPost{
			Timestamp: p.Timestamp.UTC(),
			Text:      p.Text,
			Compound:  s.analyzer.PolarityScores(p.Text).Compound,
		})
	}
	metrics.PostsScored.Add(float64(len(rows)))
	return rows, nil
}
