package export

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"social-sentiment-dashboard/internal/types"
)

// ContentType of the exported file
const ContentType = "text/csv; charset=utf-8"

// Row is one scored post as displayed and exported. Values are preformatted
// so the dashboard table and the CSV cannot drift apart.
type Row struct {
	Timestamp string `csv:"timestamp"`
	Text      string `csv:"text"`
	Compound  string `csv:"compound"`
	Ticker    string `csv:"ticker"`
}

// Header is the CSV header, in column order
var Header = []string{"timestamp", "text", "compound", "ticker"}

// Rows formats scored posts for display and export, preserving order
func Rows(posts []types.ScoredPost) []Row {
	rows := make([]Row, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, Row{
			Timestamp: p.Timestamp.UTC().Format(time.RFC3339),
			Text:      p.Text,
			Compound:  strconv.FormatFloat(p.Compound, 'f', 4, 64),
			Ticker:    p.Ticker,
		})
	}
	return rows
}

// CSV renders rows as UTF-8, comma-delimited CSV with a header row.
// Identical input always yields identical bytes.
func CSV(rows []Row) ([]byte, error) {
	if len(rows) == 0 {
		return []byte(headerLine()), nil
	}
	var buf bytes.Buffer
	if err := gocsv.Marshal(rows, &buf); err != nil {
		return nil, fmt.Errorf("marshal csv: %w", err)
	}
	return buf.Bytes(), nil
}

func headerLine() string {
	return strings.Join(Header, ",") + "\n"
}
