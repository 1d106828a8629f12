package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounterVecMetrics(t *testing.T) {
	tests := []struct {
		name    string
		metric  *prometheus.CounterVec
		labels  prometheus.Labels
		incBy   int
		wantVal float64
	}{
		{
			name:    "runs by outcome",
			metric:  RunsTotal,
			labels:  prometheus.Labels{"outcome": "aggregated"},
			incBy:   3,
			wantVal: 3,
		},
		{
			name:    "fetches by source and status",
			metric:  FetchesTotal,
			labels:  prometheus.Labels{"source": "RSS", "status": "error"},
			incBy:   2,
			wantVal: 2,
		},
		{
			name:    "http requests by route and status",
			metric:  HTTPRequestsTotal,
			labels:  prometheus.Labels{"route": "/run", "status": "200"},
			incBy:   1,
			wantVal: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.metric.Reset()
			for i := 0; i < tt.incBy; i++ {
				tt.metric.With(tt.labels).Inc()
			}
			assert.Equal(t, tt.wantVal, testutil.ToFloat64(tt.metric.With(tt.labels)))
		})
	}
}

func TestHistogramsCollect(t *testing.T) {
	FetchDuration.WithLabelValues("JSON").Observe(0.3)
	HTTPRequestDuration.WithLabelValues("/healthz").Observe(0.001)

	assert.Positive(t, testutil.CollectAndCount(FetchDuration))
	assert.Positive(t, testutil.CollectAndCount(HTTPRequestDuration))
}
