package streams

import (
	"context"

	"traffic-dashboard/internal/events"
)

// PacketProducer hands decoded packets from the capture loop to the consumer
// workers.
//
// Packets are partitioned by their flow key (the sorted pair of endpoint
// addresses), so both directions of one conversation travel through the same
// partition and reach the aggregator in capture order. Different flows are
// consumed in parallel.
//
//go:generate mockgen -source=packet_producer.go -destination=./mocks/packet_producer_mock.go -package=mocks
type PacketProducer interface {
	Produce(ctx context.Context, event *events.PacketCapturedEvent) error
}

type packetProducer struct {
	queue *PartitionedQueue[events.PacketCapturedEvent]
}

func NewPacketProducer(queue *PartitionedQueue[events.PacketCapturedEvent]) PacketProducer {
	return &packetProducer{
		queue: queue,
	}
}

// Produce blocks while the target partition is full, which backs pressure up
// into the capture handle instead of growing memory.
func (producer *packetProducer) Produce(ctx context.Context, event *events.PacketCapturedEvent) error {
	if err := producer.queue.Publish(ctx, event.FlowKey(), *event); err != nil {
		metricPacketPublishedTotal.WithLabelValues(streamPackets, resultCancelled).Inc()
		return err
	}
	metricPacketPublishedTotal.WithLabelValues(streamPackets, resultPublished).Inc()
	return nil
}
