package feed

import (
	"fmt"

	"social-sentiment-dashboard/internal/interfaces"
	"social-sentiment-dashboard/internal/store"
)

// NewFetcher builds the fetch strategy selected by cfg.Fetch.Source
func NewFetcher(cfg *store.Config) (interfaces.PostFetcher, error) {
	switch cfg.Fetch.Source {
	case store.SourceRSS:
		return NewRSSFetcher(cfg.Fetch.BaseURL, cfg.Fetch.UserAgent, cfg.FetchTimeout()), nil
	case store.SourceJSON:
		return NewJSONFetcher(cfg.Fetch.BaseURL, cfg.Fetch.UserAgent, cfg.FetchTimeout()), nil
	default:
		return nil, fmt.Errorf("unsupported fetch source: %s", cfg.Fetch.Source)
	}
}
