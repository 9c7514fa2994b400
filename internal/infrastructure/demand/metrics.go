package demand

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultFound   = "found"
	resultMissing = "missing"
	resultError   = "error"
)

//nolint:gochecknoglobals
var (
	pagesInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "fba_scanner",
		Subsystem: "demand",
		Name:      "pages_in_flight",
		Help:      "Browser pages currently open.",
	})

	lookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fba_scanner",
		Subsystem: "demand",
		Name:      "lookups_total",
		Help:      "Sales lookups by result.",
	}, []string{"result"})
)
