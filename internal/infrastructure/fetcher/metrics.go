package fetcher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultResponse       = "response"
	resultTransportError = "transport_error"
)

var attempts = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Namespace: "fba_scanner",
	Subsystem: "fetcher",
	Name:      "attempts_total",
	Help:      "HTTP attempts by method and result.",
}, []string{"method", "result"})
