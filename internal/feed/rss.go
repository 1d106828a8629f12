package feed

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"social-sentiment-dashboard/internal/logger"
	"social-sentiment-dashboard/internal/types"
)

// RSSFetcher reads the public search feed (Atom or RSS 2.0)
type RSSFetcher struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
}

// NewRSSFetcher creates a feed fetcher against baseURL (e.g. https://www.reddit.com)
func NewRSSFetcher(baseURL, userAgent string, timeout time.Duration) *RSSFetcher {
	return &RSSFetcher{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		timeout:   timeout,
	}
}

func (f *RSSFetcher) Source() string { return "RSS" }

func (f *RSSFetcher) searchURL(query string, limit int) string {
	v := url.Values{}
	v.Set("q", query)
	v.Set("limit", strconv.Itoa(limit))
	v.Set("sort", "new")
	return f.baseURL + "/search.rss?" + v.Encode()
}

// Fetch performs one feed request and extracts (timestamp, title+body) pairs
func (f *RSSFetcher) Fetch(ctx context.Context, query string, limit int) ([]types.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, fetchErr(err)
	}
	if strings.TrimSpace(query) == "" {
		return nil, fetchErr(errEmptyQuery)
	}

	c := colly.NewCollector(
		colly.MaxDepth(1),
		colly.Async(false),
	)
	c.SetRequestTimeout(f.requestTimeout(ctx))

	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
			return
		}
		r.Headers.Set("User-Agent", f.userAgent)
		r.Headers.Set("Accept", "application/atom+xml, application/rss+xml, application/xml;q=0.9")
	})

	var parseErr error
	c.OnResponse(func(r *colly.Response) {
		ct := strings.ToLower(r.Headers.Get("Content-Type"))
		if !strings.Contains(ct, "xml") {
			parseErr = fmt.Errorf("unexpected content type %q", ct)
		}
	})

	var (
		posts   []types.Post
		dropped int
	)
	c.OnXML("//entry | //item", func(e *colly.XMLElement) {
		if len(posts) >= limit {
			return
		}

		ts, ok := parseTimestamp(e.ChildText("published"), e.ChildText("updated"), e.ChildText("pubDate"))
		if !ok {
			dropped++
			return
		}

		body := e.ChildText("content")
		if body == "" {
			body = e.ChildText("summary")
		}
		if body == "" {
			body = e.ChildText("description")
		}

		text := postText(e.ChildText("title"), htmlToText(body))
		if text == "" {
			dropped++
			return
		}

		posts = append(posts, types.Post{Timestamp: ts, Text: text})
	})

	var visitErr error
	c.OnError(func(r *colly.Response, err error) {
		visitErr = err
	})

	target := f.searchURL(query, limit)
	if err := c.Visit(target); err != nil {
		return nil, fetchErr(fmt.Errorf("visit %s: %w", target, err))
	}
	c.Wait()

	if visitErr != nil {
		return nil, fetchErr(visitErr)
	}
	if parseErr != nil {
		return nil, fetchErr(parseErr)
	}
	if err := ctx.Err(); err != nil {
		return nil, fetchErr(err)
	}

	if dropped > 0 {
		logger.Debug(ctx, "Dropped feed entries without timestamp or text", "query", query, "dropped", dropped)
	}
	return posts, nil
}

// requestTimeout bounds the colly request by the fetcher timeout and the
// context deadline, whichever is sooner.
func (f *RSSFetcher) requestTimeout(ctx context.Context) time.Duration {
	timeout := f.timeout
	if dl, ok := ctx.Deadline(); ok {
		if rem := time.Until(dl); rem > 0 && (timeout <= 0 || rem < timeout) {
			timeout = rem
		}
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return timeout
}
