package captures

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"traffic-dashboard/internal/shared/loggers"
	"traffic-dashboard/internal/streams"

	"github.com/cenkalti/backoff/v5"
)

type SupervisorConfig struct {
	BackoffInitial time.Duration
	BackoffMax     time.Duration
	// StopAtEnd ends supervision when the source is exhausted (file replay)
	// instead of treating it as a failure. A replay that already produced
	// packets is never reopened.
	StopAtEnd bool
}

// Supervisor keeps a packet source open and feeds decoded packets to the
// stream. A failing source is closed, backed off exponentially (capped at
// BackoffMax) and reopened until Stop is called.
type Supervisor interface {
	Start(ctx context.Context)
	Stop()
	// Done is closed once supervision has ended.
	Done() <-chan struct{}
}

type supervisor struct {
	opener   SourceOpener
	decoder  PacketDecoder
	producer streams.PacketProducer
	cfg      SupervisorConfig
	logger   loggers.Logger

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewSupervisor(opener SourceOpener, decoder PacketDecoder, producer streams.PacketProducer, cfg SupervisorConfig, logger loggers.Logger) Supervisor {
	return &supervisor{
		opener:   opener,
		decoder:  decoder,
		producer: producer,
		cfg:      cfg,
		logger:   logger.With().Str(loggers.FieldSource, opener.Describe()).Logger(),
		cancel:   func() {},
		done:     make(chan struct{}),
	}
}

// Start launches the capture loop. Calls after the first, or after Stop, are no-ops.
func (s *supervisor) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	ctx, s.cancel = context.WithCancel(ctx)
	ctx = s.logger.WithContext(ctx)
	go func() {
		defer close(s.done)
		s.run(ctx)
	}()
}

// Stop cancels supervision and waits for the capture loop to exit.
func (s *supervisor) Stop() {
	s.mu.Lock()
	if !s.started {
		s.started = true
		close(s.done)
	}
	cancel := s.cancel
	s.mu.Unlock()

	cancel()
	<-s.done
}

func (s *supervisor) Done() <-chan struct{} { return s.done }

func (s *supervisor) run(ctx context.Context) {
	logger := loggers.Ctx(ctx)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.cfg.BackoffInitial
	b.MaxInterval = s.cfg.BackoffMax

	for attempt := 1; ; attempt++ {
		captured, err := s.captureOnce(ctx)
		if ctx.Err() != nil {
			logger.Info().Int(loggers.FieldPackets, captured).Msg("capture stopped")
			return
		}
		if s.cfg.StopAtEnd {
			if errors.Is(err, io.EOF) {
				logger.Info().Int(loggers.FieldPackets, captured).Msg("capture source exhausted")
				return
			}
			// reopening a replay restarts it from the first record
			if captured > 0 {
				logger.Error().Err(err).Int(loggers.FieldPackets, captured).Msg("capture replay aborted")
				return
			}
		}
		if captured > 0 {
			b.Reset()
		}

		wait := b.NextBackOff()
		metricCaptureRestartsTotal.Inc()
		logger.Warn().
			Err(err).
			Int(loggers.FieldAttempt, attempt).
			Dur(loggers.FieldBackoff, wait).
			Msg("capture failed, backing off before reopening")

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Info().Msg("capture stopped")
			return
		case <-timer.C:
		}
	}
}

// captureOnce opens the source and pumps it until it fails, ends or ctx is
// cancelled. It returns the number of packets handed to the producer.
func (s *supervisor) captureOnce(ctx context.Context) (int, error) {
	source, err := s.opener.Open(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOpenSource, err)
	}
	defer func() {
		metricCaptureUp.Set(0)
		if err := source.Close(); err != nil {
			loggers.Ctx(ctx).Debug().Err(err).Msg("failed to close packet source")
		}
	}()

	metricCaptureUp.Set(1)
	loggers.Ctx(ctx).Info().Msg("capture started")

	captured := 0
	for ctx.Err() == nil {
		packet, err := source.NextPacket()
		switch {
		case err == nil:
		case errors.Is(err, ErrReadTimeout):
			continue
		case errors.Is(err, io.EOF):
			return captured, io.EOF
		default:
			return captured, fmt.Errorf("%w: %w", ErrReadSource, err)
		}

		event, err := s.decoder.Decode(packet)
		if err != nil {
			metricCapturePacketsTotal.WithLabelValues(resultSkipped).Inc()
			continue
		}
		metricCapturePacketsTotal.WithLabelValues(resultDecoded).Inc()

		if err := s.producer.Produce(ctx, event); err != nil {
			return captured, fmt.Errorf("%w: %w", ErrProduce, err)
		}
		captured++
	}
	return captured, nil
}
