package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-sentiment-dashboard/internal/types"
)

func samplePosts() []types.ScoredPost {
	ist := time.FixedZone("IST", 19800)
	return []types.ScoredPost{
		{Timestamp: time.Date(2024, 1, 1, 14, 37, 0, 0, time.UTC), Text: "Great quarter, stock is soaring!", Compound: 0.8356, Ticker: "TSLA"},
		{Timestamp: time.Date(2024, 1, 1, 20, 10, 0, 0, ist), Text: `Said "sell", then bought`, Compound: -0.1, Ticker: "NVDA"},
		{Timestamp: time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC), Text: "multi\nline ünïcode", Compound: 0, Ticker: "GME"},
	}
}

func TestRowsFormatting(t *testing.T) {
	rows := Rows(samplePosts())
	require.Len(t, rows, 3)

	assert.Equal(t, Row{Timestamp: "2024-01-01T14:37:00Z", Text: "Great quarter, stock is soaring!", Compound: "0.8356", Ticker: "TSLA"}, rows[0])
	assert.Equal(t, "2024-01-01T14:40:00Z", rows[1].Timestamp)
	assert.Equal(t, "-0.1000", rows[1].Compound)
	assert.Equal(t, "0.0000", rows[2].Compound)
}

func TestCSVHasHeaderAndAllRows(t *testing.T) {
	rows := Rows(samplePosts())
	out, err := CSV(rows)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, Header, records[0])
	for i, row := range rows {
		assert.Equal(t, []string{row.Timestamp, row.Text, row.Compound, row.Ticker}, records[i+1])
	}
}

func TestCSVIsIdempotent(t *testing.T) {
	first, err := CSV(Rows(samplePosts()))
	require.NoError(t, err)
	second, err := CSV(Rows(samplePosts()))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCSVEmptyIsHeaderOnly(t *testing.T) {
	out, err := CSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "timestamp,text,compound,ticker\n", string(out))
}
