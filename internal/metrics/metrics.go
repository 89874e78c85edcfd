package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_queries_total",
			Help: "Total number of answered queries by primary table, domain and language",
		},
		[]string{"table", "domain", "language"},
	)

	CompletionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_completion_failures_total",
			Help: "Total number of failed completion calls by error kind",
		},
		[]string{"kind"},
	)

	CompletionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "assistant_completion_duration_seconds",
			Help: "Duration of answer production in seconds",
		},
		[]string{"path"}, // "live" or "mock"
	)

	OutOfDomainTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assistant_out_of_domain_total",
			Help: "Total number of queries rejected as out of domain",
		},
	)
)
