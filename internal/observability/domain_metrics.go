package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	queriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "querypen_queries_total",
			Help: "Total number of SQL statements executed against the sandbox database.",
		},
	)
	queryErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "querypen_query_errors_total",
			Help: "Total number of SQL executions that returned an error.",
		},
	)
	queryDurationMs = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "querypen_query_duration_ms",
			Help:    "SQL execution latency in milliseconds.",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		},
	)
	modelRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "querypen_model_requests_total",
			Help: "Total number of language model completion requests.",
		},
	)
	modelErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "querypen_model_errors_total",
			Help: "Total number of failed language model completion requests.",
		},
	)
	modelLatencyMs = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "querypen_model_latency_ms",
			Help:    "Language model completion latency in milliseconds.",
			Buckets: []float64{100, 250, 500, 1000, 2500, 5000, 10000, 20000, 30000},
		},
	)
	chatTurnsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "querypen_chat_turns_total",
			Help: "Total number of completed chat turns.",
		},
	)
	chatExtractionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "querypen_chat_sql_extractions_total",
			Help: "Total number of chat turns containing an executable SQL span.",
		},
	)
	chatAbsorbedFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "querypen_chat_absorbed_failures_total",
			Help: "Total number of SQL execution failures folded into chat replies.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		queriesTotal,
		queryErrorsTotal,
		queryDurationMs,
		modelRequestsTotal,
		modelErrorsTotal,
		modelLatencyMs,
		chatTurnsTotal,
		chatExtractionsTotal,
		chatAbsorbedFailuresTotal,
	)
}

func ObserveQuery(elapsed time.Duration, failed bool) {
	queriesTotal.Inc()
	if failed {
		queryErrorsTotal.Inc()
	}
	queryDurationMs.Observe(float64(elapsed.Milliseconds()))
}

func ObserveModelCall(elapsed time.Duration, failed bool) {
	modelRequestsTotal.Inc()
	if failed {
		modelErrorsTotal.Inc()
	}
	modelLatencyMs.Observe(float64(elapsed.Milliseconds()))
}

func ObserveChatTurn(extracted, absorbedFailure bool) {
	chatTurnsTotal.Inc()
	if extracted {
		chatExtractionsTotal.Inc()
	}
	if absorbedFailure {
		chatAbsorbedFailuresTotal.Inc()
	}
}
