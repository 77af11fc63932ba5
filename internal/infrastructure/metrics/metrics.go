package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits counts classification cache hits, labelled by input kind.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grievai",
		Name:      "classification_cache_hits_total",
		Help:      "Number of classification requests served from the cache.",
	}, []string{"kind"})

	// CacheMisses counts classification cache misses, labelled by input kind.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grievai",
		Name:      "classification_cache_misses_total",
		Help:      "Number of classification requests that required model inference.",
	}, []string{"kind"})

	// ClassifyDuration observes end-to-end classifier invocation latency.
	ClassifyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "grievai",
		Name:      "classification_duration_seconds",
		Help:      "Latency of zero-shot classifier invocations.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
	}, []string{"kind"})

	// ClassifyTimeouts counts classifier invocations that hit the deadline.
	ClassifyTimeouts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grievai",
		Name:      "classification_timeouts_total",
		Help:      "Number of classifier invocations that exceeded the configured timeout.",
	}, []string{"kind"})
)
