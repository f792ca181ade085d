package aggregators

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"traffic-dashboard/internal/events"
	"traffic-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testServerIP = "10.50.0.10"
	baseTs       = int64(1_700_000_000) // multiple of 5, 10 and 60
)

func newTestAggregator(t *testing.T, window, retention int, now int64) TrafficAggregator {
	t.Helper()

	agg, err := NewTrafficAggregator(
		Config{ServerIP: testServerIP, WindowSeconds: window, RetentionSeconds: retention},
		WithClock(func() time.Time { return time.Unix(now, 0) }),
	)
	require.NoError(t, err)
	return agg
}

func packet(ts float64, src, dst string, length int, protocol string) *events.PacketCapturedEvent {
	return &events.PacketCapturedEvent{Timestamp: ts, SrcIP: src, DstIP: dst, Length: length, Protocol: protocol}
}

func ptr(v int64) *int64 { return &v }

func TestNewTrafficAggregator_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing server ip", cfg: Config{WindowSeconds: 5, RetentionSeconds: 300}},
		{name: "server ip not an address", cfg: Config{ServerIP: "backend", WindowSeconds: 5, RetentionSeconds: 300}},
		{name: "zero window", cfg: Config{ServerIP: testServerIP, WindowSeconds: 0, RetentionSeconds: 300}},
		{name: "negative window", cfg: Config{ServerIP: testServerIP, WindowSeconds: -5, RetentionSeconds: 300}},
		{name: "zero retention", cfg: Config{ServerIP: testServerIP, WindowSeconds: 5, RetentionSeconds: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			agg, err := NewTrafficAggregator(tt.cfg)
			assert.Nil(t, agg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestIngest_BinsPacketsByWindow(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t, 10, 300, baseTs+20)
	ctx := context.Background()

	agg.Ingest(ctx, packet(float64(baseTs)+0.4, "192.168.0.10", testServerIP, 100, "HTTP"))
	agg.Ingest(ctx, packet(float64(baseTs)+8.9, "192.168.0.10", testServerIP, 50, "HTTP"))

	summary := agg.Summary(ctx, nil, nil)
	require.Len(t, summary, 1)
	assert.Equal(t, models.SummaryBin{Ts: baseTs, ClientIP: "192.168.0.10", InBytes: 150, OutBytes: 0}, summary[0])
}

func TestIngest_SplitsDirections(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t, 5, 300, baseTs)
	ctx := context.Background()

	agg.Ingest(ctx, packet(float64(baseTs), "192.168.0.20", testServerIP, 200, "HTTP"))
	agg.Ingest(ctx, packet(float64(baseTs), testServerIP, "192.168.0.20", 120, "HTTP"))

	summary := agg.Summary(ctx, nil, nil)
	require.Len(t, summary, 1)
	assert.Equal(t, uint64(200), summary[0].InBytes)
	assert.Equal(t, uint64(120), summary[0].OutBytes)

	drilldown, ok := agg.Drilldown(ctx, baseTs, "192.168.0.20")
	require.True(t, ok)
	assert.Equal(t, []models.DrilldownItem{{Protocol: "HTTP", InBytes: 200, OutBytes: 120}}, drilldown.Items)
}

func TestIngest_MatchesServerIPInCanonicalForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		configured string
		seen       string
	}{
		{name: "uppercase ipv6", configured: "2001:DB8::1", seen: "2001:db8::1"},
		{name: "expanded ipv6", configured: "2001:0db8:0000:0000:0000:0000:0000:0001", seen: "2001:db8::1"},
		{name: "padded ipv4", configured: " 10.50.0.10 ", seen: "10.50.0.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			agg, err := NewTrafficAggregator(
				Config{ServerIP: tt.configured, WindowSeconds: 5, RetentionSeconds: 300},
				WithClock(func() time.Time { return time.Unix(baseTs, 0) }),
			)
			require.NoError(t, err)
			ctx := context.Background()

			agg.Ingest(ctx, packet(float64(baseTs), "2001:db8::20", tt.seen, 90, "TCP"))
			agg.Ingest(ctx, packet(float64(baseTs), tt.seen, "192.168.0.20", 40, "TCP"))

			assert.Equal(t, 2, agg.Stats().Buckets)
		})
	}
}

func TestDrilldown_ContainsProtocolTotals(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t, 5, 300, baseTs)
	ctx := context.Background()

	agg.Ingest(ctx, packet(float64(baseTs), "192.168.0.30", testServerIP, 300, "HTTP"))
	agg.Ingest(ctx, packet(float64(baseTs), testServerIP, "192.168.0.30", 50, "UDP"))

	summary := agg.Summary(ctx, nil, nil)
	require.Len(t, summary, 1)

	drilldown, ok := agg.Drilldown(ctx, summary[0].Ts, "192.168.0.30")
	require.True(t, ok)
	assert.Equal(t, &models.Drilldown{
		Ts:       baseTs,
		ClientIP: "192.168.0.30",
		Items: []models.DrilldownItem{
			{Protocol: "HTTP", InBytes: 300, OutBytes: 0},
			{Protocol: "UDP", InBytes: 0, OutBytes: 50},
		},
	}, drilldown)
}

func TestDrilldown_SumsMatchSummaryForEveryBin(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t, 5, 300, baseTs+60)
	ctx := context.Background()

	protocols := []string{"HTTP", "DNS", "FTP", "HTTPS/TLS", "UDP", "ICMP"}
	clients := []string{"192.168.0.1", "192.168.0.2", "192.168.0.3"}
	for i := 0; i < 300; i++ {
		client := clients[i%len(clients)]
		ts := float64(baseTs) + float64(i%60) + 0.25
		if i%2 == 0 {
			agg.Ingest(ctx, packet(ts, client, testServerIP, 40+i, protocols[i%len(protocols)]))
		} else {
			agg.Ingest(ctx, packet(ts, testServerIP, client, 60+i, protocols[(i/2)%len(protocols)]))
		}
	}

	summary := agg.Summary(ctx, ptr(baseTs), ptr(baseTs+60))
	require.NotEmpty(t, summary)

	for _, bin := range summary {
		drilldown, ok := agg.Drilldown(ctx, bin.Ts, bin.ClientIP)
		require.True(t, ok, "bin %d/%s", bin.Ts, bin.ClientIP)

		var in, out uint64
		for _, item := range drilldown.Items {
			in += item.InBytes
			out += item.OutBytes
		}
		assert.Equal(t, bin.InBytes, in, "in bytes for %d/%s", bin.Ts, bin.ClientIP)
		assert.Equal(t, bin.OutBytes, out, "out bytes for %d/%s", bin.Ts, bin.ClientIP)
	}
}

func TestDrilldown_NotFound(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t, 5, 300, baseTs)
	ctx := context.Background()
	agg.Ingest(ctx, packet(float64(baseTs), "192.168.0.30", testServerIP, 300, "HTTP"))

	tests := []struct {
		name     string
		ts       int64
		clientIP string
	}{
		{name: "unknown window", ts: baseTs + 5, clientIP: "192.168.0.30"},
		{name: "not a window start", ts: baseTs + 1, clientIP: "192.168.0.30"},
		{name: "unknown client", ts: baseTs, clientIP: "192.168.0.31"},
		{name: "client match is exact", ts: baseTs, clientIP: " 192.168.0.30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drilldown, ok := agg.Drilldown(ctx, tt.ts, tt.clientIP)
			assert.False(t, ok)
			assert.Nil(t, drilldown)
		})
	}
}

func TestIngest_PrunesWithPacketTime(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t, 5, 5, baseTs)
	ctx := context.Background()

	agg.Ingest(ctx, packet(float64(baseTs-10), "192.168.0.40", testServerIP, 100, "HTTP"))
	assert.Equal(t, 1, agg.Stats().Windows)

	agg.Ingest(ctx, packet(float64(baseTs), "192.168.0.41", testServerIP, 100, "HTTP"))

	summary := agg.Summary(ctx, ptr(0), ptr(baseTs))
	require.Len(t, summary, 1)
	assert.Equal(t, "192.168.0.41", summary[0].ClientIP)
	for _, bin := range summary {
		assert.GreaterOrEqual(t, bin.Ts, baseTs-5)
	}

	_, ok := agg.Drilldown(ctx, baseTs-10, "192.168.0.40")
	assert.False(t, ok)
}

func TestIngest_KeepsWindowAtCutoff(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t, 5, 10, baseTs)
	ctx := context.Background()

	agg.Ingest(ctx, packet(float64(baseTs-10), "192.168.0.40", testServerIP, 100, "HTTP"))
	agg.Ingest(ctx, packet(float64(baseTs)+0.9, "192.168.0.41", testServerIP, 100, "HTTP"))

	// cutoff = floor(baseTs+0.9) - 10 = baseTs-10, which is not < cutoff
	stats := agg.Stats()
	assert.Equal(t, 2, stats.Windows)
	assert.Equal(t, baseTs-10, stats.OldestKey)
	assert.Equal(t, baseTs, stats.NewestKey)
}

func TestSummary_PrunesWithWallClock(t *testing.T) {
	t.Parallel()

	// stream time says the packet is current; the wall clock says it is stale
	agg := newTestAggregator(t, 5, 300, baseTs)
	ctx := context.Background()

	agg.Ingest(ctx, packet(float64(baseTs-400), "192.168.0.50", testServerIP, 100, "HTTP"))
	require.Equal(t, 1, agg.Stats().Windows)

	summary := agg.Summary(ctx, nil, nil)
	assert.Empty(t, summary)
	assert.Equal(t, 0, agg.Stats().Windows)
}

func TestSummary_ExplicitRangeStillPrunesAgainstUpperBound(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t, 5, 30, baseTs)
	ctx := context.Background()

	agg.Ingest(ctx, packet(float64(baseTs-100), "192.168.0.50", testServerIP, 100, "HTTP"))
	agg.Ingest(ctx, packet(float64(baseTs), "192.168.0.51", testServerIP, 100, "HTTP"))

	// Ingest at baseTs already pruned baseTs-100 (cutoff baseTs-30).
	summary := agg.Summary(ctx, ptr(0), ptr(baseTs+1000))
	require.Len(t, summary, 0, "to_ts=baseTs+1000 prunes everything older than baseTs+970")
	assert.Equal(t, 0, agg.Stats().Windows)
}

func TestSummary_RangeIsInclusiveAndSorted(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t, 5, 300, baseTs+100)
	ctx := context.Background()

	for _, offset := range []int64{30, 0, 15, 5, 20} {
		agg.Ingest(ctx, packet(float64(baseTs+offset), "192.168.0.9", testServerIP, 10, "TCP"))
		agg.Ingest(ctx, packet(float64(baseTs+offset), "192.168.0.1", testServerIP, 20, "TCP"))
	}

	summary := agg.Summary(ctx, ptr(baseTs+5), ptr(baseTs+20))
	got := make([]string, 0, len(summary))
	for _, bin := range summary {
		got = append(got, fmt.Sprintf("%d/%s", bin.Ts-baseTs, bin.ClientIP))
	}
	assert.Equal(t, []string{
		"5/192.168.0.1", "5/192.168.0.9",
		"15/192.168.0.1", "15/192.168.0.9",
		"20/192.168.0.1", "20/192.168.0.9",
	}, got)
}

func TestSummary_EmptyStoreReturnsEmptySlice(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t, 5, 300, baseTs)

	summary := agg.Summary(context.Background(), nil, nil)
	assert.NotNil(t, summary)
	assert.Empty(t, summary)
}

func TestIngest_DiscardsUnattributablePackets(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t, 5, 300, baseTs)
	ctx := context.Background()

	agg.Ingest(ctx, packet(float64(baseTs), testServerIP, testServerIP, 100, "TCP"))
	agg.Ingest(ctx, packet(float64(baseTs), "192.168.0.1", "192.168.0.2", 100, "TCP"))
	agg.Ingest(ctx, packet(float64(baseTs), "", "", 100, "TCP"))

	assert.Equal(t, models.StoreStats{}, agg.Stats())
	assert.Empty(t, agg.Summary(ctx, nil, nil))
}

func TestIngest_DiscardsDegeneratePackets(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t, 5, 300, baseTs)
	ctx := context.Background()

	agg.Ingest(ctx, packet(float64(baseTs), "192.168.0.1", testServerIP, 0, "TCP"))
	agg.Ingest(ctx, packet(float64(baseTs), "192.168.0.1", testServerIP, -60, "TCP"))
	agg.Ingest(ctx, nil)

	assert.Equal(t, models.StoreStats{}, agg.Stats())
}

func TestIngest_NormalizesProtocolLabel(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t, 5, 300, baseTs)
	ctx := context.Background()

	agg.Ingest(ctx, packet(float64(baseTs), "192.168.0.1", testServerIP, 10, "http"))
	agg.Ingest(ctx, packet(float64(baseTs), "192.168.0.1", testServerIP, 5, "HTTP"))
	agg.Ingest(ctx, packet(float64(baseTs), "192.168.0.1", testServerIP, 7, ""))

	drilldown, ok := agg.Drilldown(ctx, baseTs, "192.168.0.1")
	require.True(t, ok)
	assert.Equal(t, []models.DrilldownItem{
		{Protocol: "HTTP", InBytes: 15},
		{Protocol: "OTHER", InBytes: 7},
	}, drilldown.Items)
}

func TestDrilldown_ReturnsCopies(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t, 5, 300, baseTs)
	ctx := context.Background()
	agg.Ingest(ctx, packet(float64(baseTs), "192.168.0.1", testServerIP, 10, "DNS"))

	first, ok := agg.Drilldown(ctx, baseTs, "192.168.0.1")
	require.True(t, ok)
	first.Items[0].InBytes = 999

	second, ok := agg.Drilldown(ctx, baseTs, "192.168.0.1")
	require.True(t, ok)
	assert.Equal(t, uint64(10), second.Items[0].InBytes)
}

func TestIngest_ConcurrentDisjointBuckets(t *testing.T) {
	t.Parallel()

	const workers = 32
	agg := newTestAggregator(t, 5, 300, baseTs+60)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			client := fmt.Sprintf("192.168.1.%d", i)
			ts := float64(baseTs + int64(i%4)*5)
			agg.Ingest(ctx, packet(ts, client, testServerIP, 100+i, "TCP"))
		}(i)
	}
	wg.Wait()

	summary := agg.Summary(ctx, ptr(baseTs), ptr(baseTs+60))
	require.Len(t, summary, workers)

	seen := make(map[string]uint64, workers)
	for _, bin := range summary {
		seen[bin.ClientIP] = bin.InBytes
	}
	for i := 0; i < workers; i++ {
		assert.Equal(t, uint64(100+i), seen[fmt.Sprintf("192.168.1.%d", i)])
	}
}

func TestIngest_ConcurrentSameBucket(t *testing.T) {
	t.Parallel()

	const (
		workers    = 16
		perWorker  = 500
		packetSize = 64
	)
	agg := newTestAggregator(t, 5, 300, baseTs)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				if i%2 == 0 {
					agg.Ingest(ctx, packet(float64(baseTs)+0.5, "192.168.0.7", testServerIP, packetSize, "HTTP"))
				} else {
					agg.Ingest(ctx, packet(float64(baseTs)+1.5, testServerIP, "192.168.0.7", packetSize, "HTTP"))
				}
			}
		}(i)
	}

	// readers run alongside writers
	var readers sync.WaitGroup
	for i := 0; i < 4; i++ {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for j := 0; j < 50; j++ {
				_ = agg.Summary(ctx, nil, nil)
				_, _ = agg.Drilldown(ctx, baseTs, "192.168.0.7")
			}
		}()
	}
	wg.Wait()
	readers.Wait()

	expected := uint64(workers / 2 * perWorker * packetSize)
	summary := agg.Summary(ctx, nil, nil)
	require.Len(t, summary, 1)
	assert.Equal(t, expected, summary[0].InBytes)
	assert.Equal(t, expected, summary[0].OutBytes)

	drilldown, ok := agg.Drilldown(ctx, baseTs, "192.168.0.7")
	require.True(t, ok)
	assert.Equal(t, []models.DrilldownItem{{Protocol: "HTTP", InBytes: expected, OutBytes: expected}}, drilldown.Items)
}

func TestStats_TracksBucketsAcrossPrune(t *testing.T) {
	t.Parallel()

	agg := newTestAggregator(t, 5, 10, baseTs)
	ctx := context.Background()

	agg.Ingest(ctx, packet(float64(baseTs-20), "192.168.0.1", testServerIP, 1, "TCP"))
	agg.Ingest(ctx, packet(float64(baseTs-20), "192.168.0.2", testServerIP, 1, "TCP"))
	assert.Equal(t, models.StoreStats{Windows: 1, Buckets: 2, OldestKey: baseTs - 20, NewestKey: baseTs - 20}, agg.Stats())

	agg.Ingest(ctx, packet(float64(baseTs), "192.168.0.3", testServerIP, 1, "TCP"))
	assert.Equal(t, models.StoreStats{Windows: 1, Buckets: 1, OldestKey: baseTs, NewestKey: baseTs}, agg.Stats())
}
