package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus builds the registry served on the metrics port. Besides the
// runtime collectors it exposes motivly_build_info{version} fixed at 1, so
// dashboards can tell deploys apart.
func SetupPrometheus(version string, extra ...prometheus.Collector) *prometheus.Registry {
	if version == "" {
		version = "unknown"
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: "motivly"}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   "motivly",
			Name:        "build_info",
			Help:        "Always 1, labelled with the running version.",
			ConstLabels: prometheus.Labels{"version": version},
		}, func() float64 { return 1 }),
	)
	reg.MustRegister(extra...)

	return reg
}
