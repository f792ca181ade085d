package streams

import (
	"traffic-dashboard/internal/shared/metrics"
)

var (
	streamPackets              = "packets"
	metricPacketPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "packet_published_total",
		},
		[]string{"stream_id", metrics.FieldResult},
	)

	metricPacketConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "packet_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)

const (
	resultPublished = "published"
	resultCancelled = "cancelled"
)
