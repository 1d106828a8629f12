package feed

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ErrFetchFailed wraps every network, status or parse failure of a fetch.
var ErrFetchFailed = errors.New("fetch failed")

var errEmptyQuery = errors.New("empty query")

func fetchErr(err error) error {
	return fmt.Errorf("%w: %w", ErrFetchFailed, err)
}

var timestampLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2006-01-02T15:04:05",
}

// parseTimestamp returns the first candidate that parses, in UTC
func parseTimestamp(candidates ...string) (time.Time, bool) {
	for _, raw := range candidates {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, raw); err == nil {
				return ts.UTC(), true
			}
		}
	}
	return time.Time{}, false
}

// htmlToText reduces an HTML fragment to its visible text. Reddit feed
// bodies carry a "submitted by /u/... [link] [comments]" footer table which
// is kept; it is short and sentiment-neutral.
func htmlToText(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return collapseSpace(fragment)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return collapseSpace(fragment)
	}
	doc.Find("script, style").Remove()
	var parts []string
	var walk func(*goquery.Selection)
	walk = func(sel *goquery.Selection) {
		sel.Contents().Each(func(_ int, child *goquery.Selection) {
			if goquery.NodeName(child) == "#text" {
				parts = append(parts, child.Text())
				return
			}
			walk(child)
		})
	}
	walk(doc.Find("body"))
	return collapseSpace(strings.Join(parts, " "))
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// postText joins a title and a body the way the dashboard displays them
func postText(title, body string) string {
	title = collapseSpace(title)
	body = strings.TrimSpace(body)
	switch {
	case title == "":
		return body
	case body == "":
		return title
	default:
		return title + " " + body
	}
}
