package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	itemsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fba_scanner",
		Subsystem: "pipeline",
		Name:      "items_total",
		Help:      "Catalog items processed by outcome.",
	}, []string{"outcome"})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fba_scanner",
		Subsystem: "pipeline",
		Name:      "run_duration_seconds",
		Help:      "Duration of one catalog run.",
		Buckets:   prometheus.ExponentialBuckets(30, 2, 8),
	})

	postsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fba_scanner",
		Subsystem: "poster",
		Name:      "posts_total",
		Help:      "Deal posts by sender and result.",
	}, []string{"sender", "result"})
)
