package captures

import (
	"traffic-dashboard/internal/shared/metrics"
)

const (
	resultDecoded = "decoded"
	resultSkipped = "skipped"
)

var (
	metricCapturePacketsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCapture,
			Name:      "packets_total",
			Help:      "Frames read from the packet source, by decode result.",
		},
		[]string{metrics.FieldResult},
	)

	metricCaptureRestartsTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCapture,
			Name:      "restarts_total",
			Help:      "Times the packet source was reopened after a failure.",
		},
	)

	metricCaptureUp = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCapture,
			Name:      "up",
			Help:      "1 while a packet source is open and being read.",
		},
	)
)
