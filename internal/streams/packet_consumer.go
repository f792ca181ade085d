package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"

	"traffic-dashboard/internal/aggregators"
	"traffic-dashboard/internal/events"
	"traffic-dashboard/internal/shared/loggers"
	"traffic-dashboard/internal/shared/metrics"
	"traffic-dashboard/internal/shared/svcerrors"
)

// PacketConsumer drains the packet stream into the aggregator.
type PacketConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type packetConsumer struct {
	queue      *PartitionedQueue[events.PacketCapturedEvent]
	aggregator aggregators.TrafficAggregator

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewPacketConsumer(queue *PartitionedQueue[events.PacketCapturedEvent], aggregator aggregators.TrafficAggregator, logger loggers.Logger) PacketConsumer {
	return &packetConsumer{
		queue:      queue,
		aggregator: aggregator,
		stopCh:     make(chan struct{}),
		logger:     logger,
	}
}

// Start spawns 1 worker goroutine per partition.
func (consumer *packetConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.Partition(partitionIndex)
		workerCtx := consumer.logger.With().
			Str(loggers.FieldPartitionId, strconv.Itoa(partitionIndex)).
			Logger().WithContext(ctx)

		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(workerCtx, ch)
		}()
	}
}

// Stop signals the workers, lets them drain whatever is already buffered and
// waits for them to exit.
func (consumer *packetConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *packetConsumer) runPartitionWorker(ctx context.Context, ch <-chan events.PacketCapturedEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			consumer.drain(ctx, ch)
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(ctx, &event)
		}
	}
}

func (consumer *packetConsumer) drain(ctx context.Context, ch <-chan events.PacketCapturedEvent) {
	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(ctx, &event)
		default:
			return
		}
	}
}

func (consumer *packetConsumer) handle(ctx context.Context, event *events.PacketCapturedEvent) {
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricPacketConsumedTotal.WithLabelValues(streamPackets, svcErr.Code).Inc()
		}
	}()

	consumer.aggregator.Ingest(ctx, event)
	metricPacketConsumedTotal.WithLabelValues(streamPackets, metrics.ValueNoError).Inc()
}
