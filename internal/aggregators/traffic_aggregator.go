package aggregators

import (
	"context"
	"fmt"
	"math"
	"net"
	"sort"
	"strings"
	"sync"
	"time"

	"traffic-dashboard/internal/events"
	"traffic-dashboard/internal/models"
	"traffic-dashboard/internal/shared/loggers"
)

const fallbackProtocol = "OTHER"

// Config fixes the designated server and the window geometry for the
// lifetime of an aggregator.
type Config struct {
	ServerIP         string
	WindowSeconds    int
	RetentionSeconds int
}

// TrafficAggregator buckets packets into tumbling windows per client of the
// designated server and answers point-in-time queries over them.
//
// Ingestion prunes with the packet timestamp as "now" (stream time), while
// Summary defaults its range and prunes with the wall clock. Replayed traffic
// therefore ages out relative to the replay, not to the host clock.
//
//go:generate mockgen -source=traffic_aggregator.go -destination=./mocks/traffic_aggregator_mock.go -package=mocks
type TrafficAggregator interface {
	// Ingest attributes one packet to a client bucket. Packets that cannot be
	// attributed or have no length are dropped without error.
	Ingest(ctx context.Context, event *events.PacketCapturedEvent)
	// Summary returns one bin per (window, client) with fromTs <= window <= toTs,
	// ordered by window. Nil bounds default to the retention range ending now.
	Summary(ctx context.Context, fromTs, toTs *int64) []models.SummaryBin
	// Drilldown returns the protocol breakdown of one bucket, or false when the
	// window or client is not present.
	Drilldown(ctx context.Context, ts int64, clientIP string) (*models.Drilldown, bool)
	// Stats reports the current store size.
	Stats() models.StoreStats
}

// Option customizes a trafficAggregator.
type Option func(*trafficAggregator)

// WithClock replaces the wall clock used by Summary.
func WithClock(now func() time.Time) Option {
	return func(a *trafficAggregator) {
		a.now = now
	}
}

type trafficAggregator struct {
	serverIP  string
	window    models.WindowSeconds
	retention int64
	now       func() time.Time

	// mu guards windows and buckets. Nothing inside the critical section
	// blocks or does I/O.
	mu      sync.Mutex
	windows map[int64]map[string]*models.ClientBucket
	buckets int
}

func NewTrafficAggregator(cfg Config, opts ...Option) (TrafficAggregator, error) {
	serverIP := strings.TrimSpace(cfg.ServerIP)
	if serverIP == "" {
		return nil, fmt.Errorf("%w: server IP is required", ErrInvalidConfig)
	}
	parsedIP := net.ParseIP(serverIP)
	if parsedIP == nil {
		return nil, fmt.Errorf("%w: server IP %q is not an IP address", ErrInvalidConfig, serverIP)
	}
	// match the decoder's net.IP.String() form
	serverIP = parsedIP.String()
	window, err := models.NewWindowSeconds(cfg.WindowSeconds)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.RetentionSeconds <= 0 {
		return nil, fmt.Errorf("%w: retention seconds must be positive, got %d", ErrInvalidConfig, cfg.RetentionSeconds)
	}

	a := &trafficAggregator{
		serverIP:  serverIP,
		window:    window,
		retention: int64(cfg.RetentionSeconds),
		now:       time.Now,
		windows:   make(map[int64]map[string]*models.ClientBucket),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func (a *trafficAggregator) Ingest(ctx context.Context, event *events.PacketCapturedEvent) {
	if event == nil || event.Length <= 0 {
		metricPacketsTotal.WithLabelValues(resultDegenerate).Inc()
		return
	}

	direction, clientIP, ok := a.attribute(event.SrcIP, event.DstIP)
	if !ok {
		metricPacketsTotal.WithLabelValues(resultUnattributed).Inc()
		return
	}

	protocol := normalizeProtocol(event.Protocol)
	windowKey := a.window.Key(event.Timestamp)
	length := uint64(event.Length)

	a.mu.Lock()
	bucket := a.getOrCreateBucket(a.getOrCreateWindow(windowKey), clientIP)
	bucket.Accumulate(direction, protocol, length)
	prunedWindows := a.prune(event.Timestamp)
	windows, buckets := len(a.windows), a.buckets
	a.mu.Unlock()

	metricPacketsTotal.WithLabelValues(resultAccepted).Inc()
	metricBytesTotal.WithLabelValues(string(direction)).Add(float64(length))
	a.observePrune(ctx, prunedWindows, windows, buckets)
}

func (a *trafficAggregator) Summary(ctx context.Context, fromTs, toTs *int64) []models.SummaryBin {
	now := a.now().Unix()
	upper := now
	if toTs != nil {
		upper = *toTs
	}
	lower := now - a.retention
	if fromTs != nil {
		lower = *fromTs
	}

	bins := []models.SummaryBin{}

	a.mu.Lock()
	prunedWindows := a.prune(float64(upper))
	windows, buckets := len(a.windows), a.buckets

	keys := make([]int64, 0, len(a.windows))
	for key := range a.windows {
		if key >= lower && key <= upper {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, key := range keys {
		clients := a.windows[key]
		start := len(bins)
		for clientIP, bucket := range clients {
			bins = append(bins, models.SummaryBin{
				Ts:       key,
				ClientIP: clientIP,
				InBytes:  bucket.InBytes,
				OutBytes: bucket.OutBytes,
			})
		}
		sortByClient(bins[start:])
	}
	a.mu.Unlock()

	a.observePrune(ctx, prunedWindows, windows, buckets)
	return bins
}

func (a *trafficAggregator) Drilldown(ctx context.Context, ts int64, clientIP string) (*models.Drilldown, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	clients, ok := a.windows[ts]
	if !ok {
		return nil, false
	}
	bucket, ok := clients[clientIP]
	if !ok {
		return nil, false
	}

	items := make([]models.DrilldownItem, 0, len(bucket.Protocols))
	for protocol, counters := range bucket.Protocols {
		items = append(items, models.DrilldownItem{
			Protocol: protocol,
			InBytes:  counters.InBytes,
			OutBytes: counters.OutBytes,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Protocol < items[j].Protocol })

	return &models.Drilldown{Ts: ts, ClientIP: clientIP, Items: items}, true
}

func (a *trafficAggregator) Stats() models.StoreStats {
	a.mu.Lock()
	defer a.mu.Unlock()

	stats := models.StoreStats{Windows: len(a.windows), Buckets: a.buckets}
	first := true
	for key := range a.windows {
		if first || key < stats.OldestKey {
			stats.OldestKey = key
		}
		if first || key > stats.NewestKey {
			stats.NewestKey = key
		}
		first = false
	}
	return stats
}

// attribute decides direction and client relative to the designated server.
// Packets between two other hosts, or from the server to itself, are not ours.
func (a *trafficAggregator) attribute(srcIP, dstIP string) (models.Direction, string, bool) {
	toServer := dstIP == a.serverIP
	fromServer := srcIP == a.serverIP
	switch {
	case toServer && fromServer:
		return "", "", false
	case toServer:
		return models.DirectionIn, srcIP, true
	case fromServer:
		return models.DirectionOut, dstIP, true
	default:
		return "", "", false
	}
}

// getOrCreateWindow must be called with mu held.
func (a *trafficAggregator) getOrCreateWindow(key int64) map[string]*models.ClientBucket {
	clients, ok := a.windows[key]
	if !ok {
		clients = make(map[string]*models.ClientBucket)
		a.windows[key] = clients
	}
	return clients
}

// getOrCreateBucket must be called with mu held.
func (a *trafficAggregator) getOrCreateBucket(clients map[string]*models.ClientBucket, clientIP string) *models.ClientBucket {
	bucket, ok := clients[clientIP]
	if !ok {
		bucket = models.NewClientBucket()
		clients[clientIP] = bucket
		a.buckets++
	}
	return bucket
}

// prune drops every window older than reference - retention and returns how
// many were removed. Must be called with mu held.
func (a *trafficAggregator) prune(reference float64) int {
	cutoff := int64(math.Floor(reference)) - a.retention

	removed := 0
	for key, clients := range a.windows {
		if key < cutoff {
			a.buckets -= len(clients)
			delete(a.windows, key)
			removed++
		}
	}
	return removed
}

func (a *trafficAggregator) observePrune(ctx context.Context, prunedWindows, windows, buckets int) {
	metricStoreWindows.Set(float64(windows))
	metricStoreBuckets.Set(float64(buckets))
	if prunedWindows == 0 {
		return
	}
	metricWindowsPrunedTotal.Add(float64(prunedWindows))
	loggers.Ctx(ctx).Debug().
		Int("pruned_windows", prunedWindows).
		Int("windows", windows).
		Int("buckets", buckets).
		Msg("retention pruned old windows")
}

func normalizeProtocol(raw string) string {
	label := strings.ToUpper(strings.TrimSpace(raw))
	if label == "" {
		return fallbackProtocol
	}
	return label
}

func sortByClient(bins []models.SummaryBin) {
	sort.Slice(bins, func(i, j int) bool { return bins[i].ClientIP < bins[j].ClientIP })
}
