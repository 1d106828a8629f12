package pipeline

import "strings"

// NormalizeTickers splits a comma-separated list, strips all whitespace,
// upper-cases, and drops empty and repeated entries (first one wins).
func NormalizeTickers(raw string) []string {
	var tickers []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		t := strings.ToUpper(strings.Join(strings.Fields(part), ""))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tickers = append(tickers, t)
	}
	return tickers
}

// Limits bounds the posts-per-ticker slider
type Limits struct {
	Min     int
	Max     int
	Step    int
	Default int
}

// DefaultLimits mirrors the dashboard slider: 20-100, step 10, default 60
func DefaultLimits() Limits {
	return Limits{Min: 20, Max: 100, Step: 10, Default: 60}
}

// Normalize maps any requested limit onto a slider position: non-positive
// values take the default, others are clamped and snapped to the nearest step.
func (l Limits) Normalize(n int) int {
	if n <= 0 {
		return l.Default
	}
	if n < l.Min {
		n = l.Min
	}
	if n > l.Max {
		n = l.Max
	}
	if l.Step > 0 {
		steps := (n - l.Min + l.Step/2) / l.Step
		n = l.Min + steps*l.Step
		if n > l.Max {
			n -= l.Step
		}
	}
	return n
}

// NormalizeLimit normalizes n against the default slider bounds
func NormalizeLimit(n int) int {
	return DefaultLimits().Normalize(n)
}
