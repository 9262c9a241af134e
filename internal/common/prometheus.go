package common

import "github.com/prometheus/client_golang/prometheus"

const (
	HTTPRequestTotal            = "http_requests_total"
	HTTPRequestDurationSeconds  = "http_request_duration_seconds"
	ChimeAPICallTotal           = "chime_api_calls_total"
	ChimeAPICallDurationSeconds = "chime_api_call_duration_seconds"
)

var (
	PromCounters = map[string]*prometheus.CounterVec{
		HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: HTTPRequestTotal,
			Help: "Count of all HTTP requests",
		}, []string{"path", "status_code"}),
		ChimeAPICallTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: ChimeAPICallTotal,
			Help: "Count of all calls to the Chime API",
		}, []string{"operation", "status"}),
	}

	PromHistograms = map[string]*prometheus.HistogramVec{
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: HTTPRequestDurationSeconds,
			Help: "Duration of all HTTP requests",
		}, []string{"path", "status_code"}),
		ChimeAPICallDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    ChimeAPICallDurationSeconds,
			Help:    "Duration of calls to the Chime API",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
	}
)
