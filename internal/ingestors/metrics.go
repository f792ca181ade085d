package ingestors

import (
	"traffic-dashboard/internal/shared/metrics"
)

var (
	metricJSONDataIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "json_data_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricJSONDataIngestedBytes = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "json_data_ingested_bytes_total",
		},
	)
)
