package backend

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "gaunghar",
	Name:      "backend_request_duration_seconds",
	Help:      "Latency of calls to the remote admin backend.",
	Buckets:   prometheus.DefBuckets,
}, []string{"endpoint", "flag", "outcome"})

func observe(endpoint, flag, outcome string, d time.Duration) {
	requestDuration.WithLabelValues(endpoint, flag, outcome).Observe(d.Seconds())
}
