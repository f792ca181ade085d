package aggregators

import (
	"traffic-dashboard/internal/shared/metrics"
)

const (
	resultAccepted     = "accepted"
	resultDegenerate   = "degenerate"
	resultUnattributed = "unattributed"
)

// metricPacketsTotal counts packets offered to the aggregator by outcome:
//   - accepted: credited to a client bucket
//   - degenerate: length <= 0
//   - unattributed: neither endpoint (or both endpoints) is the designated server
var (
	metricPacketsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "packets_total",
		},
		[]string{metrics.FieldResult},
	)
	metricBytesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "bytes_total",
		},
		[]string{metrics.FieldDirection},
	)
	metricWindowsPrunedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "windows_pruned_total",
		},
	)
	metricStoreWindows = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "store_windows",
		},
	)
	metricStoreBuckets = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "store_buckets",
		},
	)
)
