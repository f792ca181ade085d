// Package livecapture opens network interfaces through libpcap. It is kept
// apart from captures so that everything else builds without cgo.
package livecapture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"traffic-dashboard/internal/captures"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"
)

// readTimeout bounds each blocking read so the supervisor can observe
// cancellation between packets.
const readTimeout = 250 * time.Millisecond

type Config struct {
	Iface       string
	SnapshotLen int
	Promiscuous bool
	BPFFilter   string
}

type liveOpener struct {
	cfg Config
}

func NewLiveOpener(cfg Config) captures.SourceOpener {
	return &liveOpener{cfg: cfg}
}

func (o *liveOpener) Describe() string { return o.cfg.Iface }

func (o *liveOpener) Open(_ context.Context) (captures.PacketSource, error) {
	handle, err := pcap.OpenLive(o.cfg.Iface, int32(o.cfg.SnapshotLen), o.cfg.Promiscuous, readTimeout)
	if err != nil {
		return nil, err
	}
	if o.cfg.BPFFilter != "" {
		if err := handle.SetBPFFilter(o.cfg.BPFFilter); err != nil {
			handle.Close()
			return nil, fmt.Errorf("set bpf filter %q: %w", o.cfg.BPFFilter, err)
		}
	}

	return &liveSource{
		handle:  handle,
		packets: gopacket.NewPacketSource(handle, handle.LinkType()),
	}, nil
}

type liveSource struct {
	handle  *pcap.Handle
	packets *gopacket.PacketSource
}

func (s *liveSource) NextPacket() (gopacket.Packet, error) {
	packet, err := s.packets.NextPacket()
	if errors.Is(err, pcap.NextErrorTimeoutExpired) {
		return nil, captures.ErrReadTimeout
	}
	return packet, err
}

func (s *liveSource) Close() error {
	s.handle.Close()
	return nil
}
