package streams

import (
	"context"
	"encoding/binary"
	"hash/fnv"
	"sync"
)

const (
	defaultNumPartitions = 8
	defaultBuffer        = 1024
)

// PartitionedQueue fans messages out to a fixed set of buffered channels.
// Messages with the same partition key always land on the same channel, so a
// single reader per partition sees them in publish order.
type PartitionedQueue[T any] struct {
	partitions []chan T
	closeOnce  sync.Once
}

// NewPartitionedQueue builds a queue with numPartitions channels of the given
// buffer. Non-positive values fall back to the defaults.
func NewPartitionedQueue[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	if numPartitions <= 0 {
		numPartitions = defaultNumPartitions
	}
	if buffer < 0 {
		buffer = defaultBuffer
	}
	channels := make([]chan T, numPartitions)
	for i := range channels {
		channels[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: channels}
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// Partition exposes the receive side of one lane.
func (queue *PartitionedQueue[T]) Partition(idx int) <-chan T { return queue.partitions[idx] }

// Depth is the number of buffered messages across all partitions.
func (queue *PartitionedQueue[T]) Depth() int {
	depth := 0
	for _, ch := range queue.partitions {
		depth += len(ch)
	}
	return depth
}

// Publish blocks until the message is buffered or ctx is done.
// Publishing after Close panics, like sending on a closed channel.
func (queue *PartitionedQueue[T]) Publish(ctx context.Context, partitionKey string, msg T) error {
	idx := partitionIndex(partitionKey, len(queue.partitions))
	select {
	case queue.partitions[idx] <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes every partition. Readers drain what is left and then observe
// the closed channel. Safe to call more than once.
func (queue *PartitionedQueue[T]) Close() {
	queue.closeOnce.Do(func() {
		for _, ch := range queue.partitions {
			close(ch)
		}
	})
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	sum := hash.Sum(nil)
	v := binary.LittleEndian.Uint32(sum)
	return int(v % uint32(n))
}
