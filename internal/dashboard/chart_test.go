package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-sentiment-dashboard/internal/types"
)

func hour(h int) time.Time {
	return time.Date(2024, 1, 1, h, 0, 0, 0, time.UTC)
}

func TestRenderChartEmpty(t *testing.T) {
	assert.Empty(t, string(renderChart(nil, nil)))
}

func TestRenderChartSeriesAndAxis(t *testing.T) {
	rows := []types.HourlyAggregate{
		{Ticker: "TSLA", Hour: hour(14), MeanCompound: 0.2, Count: 3},
		{Ticker: "TSLA", Hour: hour(15), MeanCompound: -0.5, Count: 1},
		{Ticker: "NVDA", Hour: hour(15), MeanCompound: 1, Count: 2},
	}
	svg := string(renderChart(rows, []string{"TSLA", "NVDA"}))

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Equal(t, 1, strings.Count(svg, "<polyline"))
	assert.Equal(t, 3, strings.Count(svg, "<circle"))
	assert.Contains(t, svg, ">TSLA</text>")
	assert.Contains(t, svg, ">NVDA</text>")
	assert.Contains(t, svg, "01-01 14:00")
	assert.Contains(t, svg, ">-1.0</text>")
	assert.Contains(t, svg, ">1.0</text>")
}

func TestRenderChartEscapesTicker(t *testing.T) {
	rows := []types.HourlyAggregate{{Ticker: "<B>", Hour: hour(1), MeanCompound: 0, Count: 1}}
	svg := string(renderChart(rows, []string{"<B>"}))
	assert.NotContains(t, svg, "<B>")
	assert.Contains(t, svg, "&lt;B&gt;")
}

func TestChartScale(t *testing.T) {
	sc := chartScale{start: hour(0), end: hour(10)}
	assert.InDelta(t, float64(marginLeft), sc.x(hour(0)), 1e-9)
	assert.InDelta(t, float64(chartWidth-marginRight), sc.x(hour(10)), 1e-9)
	assert.InDelta(t, float64(marginTop), sc.y(1), 1e-9)
	assert.InDelta(t, float64(chartHeight-marginBottom), sc.y(-1), 1e-9)
	assert.Equal(t, sc.y(1), sc.y(3))

	single := chartScale{start: hour(4), end: hour(4)}
	mid := float64(marginLeft) + float64(chartWidth-marginLeft-marginRight)/2
	assert.InDelta(t, mid, single.x(hour(4)), 1e-9)
}

func TestGroupSeriesFollowsTickerOrder(t *testing.T) {
	rows := []types.HourlyAggregate{
		{Ticker: "AAA", Hour: hour(2)},
		{Ticker: "ZZZ", Hour: hour(3)},
		{Ticker: "ZZZ", Hour: hour(1)},
	}
	got := groupSeries(rows, []string{"ZZZ", "AAA"})
	require.Len(t, got, 2)
	assert.Equal(t, "ZZZ", got[0].ticker)
	assert.Equal(t, hour(1), got[0].points[0].Hour)
	assert.Equal(t, "AAA", got[1].ticker)
	assert.NotEqual(t, got[0].color, got[1].color)
}

func TestXLabelsCapped(t *testing.T) {
	hours := make(map[int64]time.Time)
	for h := 0; h < 24; h++ {
		hours[hour(h).Unix()] = hour(h)
	}
	labels := xLabels(hours)
	assert.LessOrEqual(t, len(labels), maxXLabels)
	assert.Equal(t, hour(0), labels[0])
}
