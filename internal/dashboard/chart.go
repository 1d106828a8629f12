package dashboard

import (
	"fmt"
	"html"
	"html/template"
	"sort"
	"strings"
	"time"

	"social-sentiment-dashboard/internal/types"
)

const (
	chartWidth   = 860
	chartHeight  = 340
	marginLeft   = 56
	marginRight  = 120
	marginTop    = 20
	marginBottom = 48
	maxXLabels   = 8
)

var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

type series struct {
	ticker string
	color  string
	points []types.HourlyAggregate
}

// groupSeries splits aggregates into one time-ordered series per ticker,
// with tickers in first-seen order of the requested list.
func groupSeries(rows []types.HourlyAggregate, tickers []string) []series {
	byTicker := make(map[string][]types.HourlyAggregate)
	for _, r := range rows {
		byTicker[r.Ticker] = append(byTicker[r.Ticker], r)
	}

	order := make([]string, 0, len(byTicker))
	seen := make(map[string]bool)
	for _, t := range tickers {
		if _, ok := byTicker[t]; ok && !seen[t] {
			order = append(order, t)
			seen[t] = true
		}
	}
	var rest []string
	for t := range byTicker {
		if !seen[t] {
			rest = append(rest, t)
		}
	}
	sort.Strings(rest)
	order = append(order, rest...)

	out := make([]series, 0, len(order))
	for i, t := range order {
		pts := byTicker[t]
		sort.Slice(pts, func(a, b int) bool { return pts[a].Hour.Before(pts[b].Hour) })
		out = append(out, series{ticker: t, color: palette[i%len(palette)], points: pts})
	}
	return out
}

type chartScale struct {
	start, end time.Time
}

func (s chartScale) x(t time.Time) float64 {
	plotW := float64(chartWidth - marginLeft - marginRight)
	span := s.end.Sub(s.start)
	if span <= 0 {
		return float64(marginLeft) + plotW/2
	}
	return float64(marginLeft) + plotW*float64(t.Sub(s.start))/float64(span)
}

// y maps a compound score on the fixed [-1, 1] axis
func (s chartScale) y(v float64) float64 {
	plotH := float64(chartHeight - marginTop - marginBottom)
	v = max(-1, min(1, v))
	return float64(marginTop) + plotH*(1-v)/2
}

// renderChart draws average compound per hour as an inline SVG line chart,
// one line per ticker with a marker at every bucket.
func renderChart(rows []types.HourlyAggregate, tickers []string) template.HTML {
	if len(rows) == 0 {
		return ""
	}

	sc := chartScale{start: rows[0].Hour, end: rows[0].Hour}
	hours := make(map[int64]time.Time)
	for _, r := range rows {
		if r.Hour.Before(sc.start) {
			sc.start = r.Hour
		}
		if r.Hour.After(sc.end) {
			sc.end = r.Hour
		}
		hours[r.Hour.Unix()] = r.Hour
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg class="chart" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" role="img" aria-label="Average sentiment over time">`,
		chartWidth, chartHeight)

	left, right := float64(marginLeft), float64(chartWidth-marginRight)
	for _, v := range []float64{-1, -0.5, 0, 0.5, 1} {
		y := sc.y(v)
		stroke := "#e5e5e5"
		if v == 0 {
			stroke = "#888"
		}
		fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`, left, y, right, y, stroke)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="11" text-anchor="end" dominant-baseline="middle">%.1f</text>`,
			left-6, y, v)
	}

	for _, h := range xLabels(hours) {
		x := sc.x(h)
		fmt.Fprintf(&b, `<text x="%.1f" y="%d" font-size="11" text-anchor="middle">%s</text>`,
			x, chartHeight-marginBottom+18, h.Format("01-02 15:04"))
	}
	fmt.Fprintf(&b, `<text x="%.1f" y="%d" font-size="12" text-anchor="middle">Hour (UTC)</text>`,
		(left+right)/2, chartHeight-8)
	fmt.Fprintf(&b, `<text x="14" y="%.1f" font-size="12" text-anchor="middle" transform="rotate(-90 14 %.1f)">Avg compound</text>`,
		sc.y(0), sc.y(0))

	for i, s := range groupSeries(rows, tickers) {
		name := html.EscapeString(s.ticker)
		pts := make([]string, 0, len(s.points))
		for _, p := range s.points {
			pts = append(pts, fmt.Sprintf("%.1f,%.1f", sc.x(p.Hour), sc.y(p.MeanCompound)))
		}
		if len(pts) > 1 {
			fmt.Fprintf(&b, `<polyline fill="none" stroke="%s" stroke-width="2" points="%s"/>`, s.color, strings.Join(pts, " "))
		}
		for _, p := range s.points {
			fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="3.5" fill="%s"><title>%s %s: %.4f (n=%d)</title></circle>`,
				sc.x(p.Hour), sc.y(p.MeanCompound), s.color, name, p.Hour.Format(time.RFC3339), p.MeanCompound, p.Count)
		}

		ly := float64(marginTop + 8 + i*18)
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="12" height="12" fill="%s"/>`, right+14, ly-6, s.color)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="12" dominant-baseline="middle">%s</text>`, right+32, ly, name)
	}

	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

// xLabels picks at most maxXLabels evenly spaced hours to label
func xLabels(hours map[int64]time.Time) []time.Time {
	all := make([]time.Time, 0, len(hours))
	for _, h := range hours {
		all = append(all, h)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Before(all[j]) })
	if len(all) <= maxXLabels {
		return all
	}
	step := (len(all) + maxXLabels - 1) / maxXLabels
	var out []time.Time
	for i := 0; i < len(all); i += step {
		out = append(out, all[i])
	}
	return out
}
