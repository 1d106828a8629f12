package feed

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"social-sentiment-dashboard/internal/api"
	"social-sentiment-dashboard/internal/types"
)

// JSONFetcher reads the public JSON search listing
type JSONFetcher struct {
	client    *api.Client
	userAgent string
}

// NewJSONFetcher creates a listing fetcher against baseURL
func NewJSONFetcher(baseURL, userAgent string, timeout time.Duration) *JSONFetcher {
	return &JSONFetcher{
		client: api.NewClient(
			api.WithBaseURL(strings.TrimRight(baseURL, "/")),
			api.WithTimeout(timeout),
			api.WithLogging(true),
		),
		userAgent: userAgent,
	}
}

func (f *JSONFetcher) Source() string { return "JSON" }

type searchListing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title      string  `json:"title"`
				Selftext   string  `json:"selftext"`
				CreatedUTC float64 `json:"created_utc"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

func (f *JSONFetcher) Fetch(ctx context.Context, query string, limit int) ([]types.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, fetchErr(err)
	}
	if strings.TrimSpace(query) == "" {
		return nil, fetchErr(errEmptyQuery)
	}

	v := url.Values{}
	v.Set("q", query)
	v.Set("limit", strconv.Itoa(limit))
	v.Set("sort", "new")
	v.Set("raw_json", "1")

	resp, err := f.client.GET(ctx, "/search.json?"+v.Encode(), api.BrowserHeaders(f.userAgent))
	if err != nil {
		return nil, fetchErr(err)
	}

	var listing searchListing
	if err := resp.ParseJSON(&listing); err != nil {
		return nil, fetchErr(err)
	}

	posts := make([]types.Post, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		if len(posts) >= limit {
			break
		}
		d := child.Data
		if d.CreatedUTC <= 0 {
			continue
		}
		text := postText(d.Title, collapseSpace(d.Selftext))
		if text == "" {
			continue
		}
		sec := int64(d.CreatedUTC)
		nsec := int64((d.CreatedUTC - float64(sec)) * float64(time.Second))
		posts = append(posts, types.Post{
			Timestamp: time.Unix(sec, nsec).UTC(),
			Text:      text,
		})
	}
	return posts, nil
}
