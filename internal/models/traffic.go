package models

// Direction is relative to the designated server: "in" is client to server,
// "out" is server to client.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// DirectionalBytes is a pair of byte counters split by direction.
type DirectionalBytes struct {
	InBytes  uint64 `json:"in_bytes"`
	OutBytes uint64 `json:"out_bytes"`
}

// Add credits length bytes to exactly one direction.
func (d *DirectionalBytes) Add(direction Direction, length uint64) {
	switch direction {
	case DirectionIn:
		d.InBytes += length
	case DirectionOut:
		d.OutBytes += length
	}
}

// ClientBucket accumulates traffic for one (window key, client IP) pair.
// Totals and per-protocol counters are always updated together.
type ClientBucket struct {
	DirectionalBytes
	Protocols map[string]*DirectionalBytes
}

func NewClientBucket() *ClientBucket {
	return &ClientBucket{Protocols: make(map[string]*DirectionalBytes)}
}

// Accumulate adds one packet to the bucket totals and to its protocol entry.
func (b *ClientBucket) Accumulate(direction Direction, protocol string, length uint64) {
	b.DirectionalBytes.Add(direction, length)
	b.protocol(protocol).Add(direction, length)
}

// protocol returns the counters for label, inserting a zeroed entry on first use.
func (b *ClientBucket) protocol(label string) *DirectionalBytes {
	counters, ok := b.Protocols[label]
	if !ok {
		counters = &DirectionalBytes{}
		b.Protocols[label] = counters
	}
	return counters
}

// SummaryBin is one (window, client) row of a summary query.
type SummaryBin struct {
	Ts       int64  `json:"ts"`
	ClientIP string `json:"client_ip"`
	InBytes  uint64 `json:"in_bytes"`
	OutBytes uint64 `json:"out_bytes"`
}

// DrilldownItem is the per-protocol breakdown of a client bucket.
type DrilldownItem struct {
	Protocol string `json:"protocol"`
	InBytes  uint64 `json:"in_bytes"`
	OutBytes uint64 `json:"out_bytes"`
}

// Drilldown is the protocol detail of a single (window, client) bucket.
type Drilldown struct {
	Ts       int64           `json:"ts"`
	ClientIP string          `json:"client_ip"`
	Items    []DrilldownItem `json:"items"`
}

// StoreStats describes the current size of the in-memory store.
type StoreStats struct {
	Windows   int   `json:"windows"`
	Buckets   int   `json:"buckets"`
	OldestKey int64 `json:"oldest_key,omitempty"`
	NewestKey int64 `json:"newest_key,omitempty"`
}

// HealthStatus is the liveness report of the service.
type HealthStatus struct {
	OK  bool  `json:"ok"`
	Now int64 `json:"now"`
	StoreStats
}
