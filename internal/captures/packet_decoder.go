package captures

import (
	"bytes"
	"time"

	"traffic-dashboard/internal/classifiers"
	"traffic-dashboard/internal/events"
	"traffic-dashboard/internal/models"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

var httpPrefixes = [][]byte{
	[]byte("GET "), []byte("POST "), []byte("PUT "), []byte("HEAD "), []byte("DELETE "),
	[]byte("OPTIONS "), []byte("PATCH "), []byte("CONNECT "), []byte("TRACE "),
	[]byte("HTTP/1."), []byte("HTTP/2"),
}

// PacketDecoder turns a captured frame into the event consumed by the aggregator.
type PacketDecoder interface {
	Decode(packet gopacket.Packet) (*events.PacketCapturedEvent, error)
}

type packetDecoder struct {
	now func() time.Time
}

func NewPacketDecoder() PacketDecoder {
	return &packetDecoder{now: time.Now}
}

// Decode reads addresses from the IP header, ports and framing from the
// transport layer, and labels the packet with classifiers.Classify. Only the
// first bytes of the transport payload are looked at.
func (d *packetDecoder) Decode(packet gopacket.Packet) (*events.PacketCapturedEvent, error) {
	var srcIP, dstIP string
	switch network := packet.NetworkLayer().(type) {
	case *layers.IPv4:
		srcIP, dstIP = network.SrcIP.String(), network.DstIP.String()
	case *layers.IPv6:
		srcIP, dstIP = network.SrcIP.String(), network.DstIP.String()
	default:
		return nil, ErrNoNetworkLayer
	}

	var fields models.DecodedFields
	var payload []byte
	switch transport := packet.TransportLayer().(type) {
	case *layers.TCP:
		fields.Transport = models.TransportTCP
		fields.SrcPort, fields.DstPort = uint16(transport.SrcPort), uint16(transport.DstPort)
		payload = transport.LayerPayload()
	case *layers.UDP:
		fields.Transport = models.TransportUDP
		fields.SrcPort, fields.DstPort = uint16(transport.SrcPort), uint16(transport.DstPort)
	default:
		if packet.Layer(layers.LayerTypeICMPv4) != nil || packet.Layer(layers.LayerTypeICMPv6) != nil {
			fields.Transport = models.TransportICMP
		}
	}
	fields.Framing = detectFraming(packet, fields.Transport, payload)

	timestamp := d.now()
	length := len(packet.Data())
	if meta := packet.Metadata(); meta != nil {
		if !meta.Timestamp.IsZero() {
			timestamp = meta.Timestamp
		}
		if meta.Length > 0 {
			length = meta.Length
		}
	}

	return &events.PacketCapturedEvent{
		Timestamp: float64(timestamp.UnixNano()) / float64(time.Second),
		SrcIP:     srcIP,
		DstIP:     dstIP,
		Length:    length,
		Protocol:  classifiers.Classify(fields),
	}, nil
}

func detectFraming(packet gopacket.Packet, transport models.Transport, payload []byte) models.Framing {
	switch {
	case packet.Layer(layers.LayerTypeDNS) != nil:
		return models.FramingDNS
	case packet.Layer(layers.LayerTypeTLS) != nil:
		return models.FramingTLS
	case transport != models.TransportTCP:
		return models.FramingNone
	case looksLikeTLSRecord(payload):
		return models.FramingTLS
	case looksLikeHTTP(payload):
		return models.FramingHTTP
	default:
		return models.FramingNone
	}
}

// looksLikeTLSRecord matches a TLS record header: content type 20..23 and a
// 3.x protocol version.
func looksLikeTLSRecord(payload []byte) bool {
	if len(payload) < 5 {
		return false
	}
	return payload[0] >= 0x14 && payload[0] <= 0x17 && payload[1] == 0x03 && payload[2] <= 0x04
}

func looksLikeHTTP(payload []byte) bool {
	for _, prefix := range httpPrefixes {
		if bytes.HasPrefix(payload, prefix) {
			return true
		}
	}
	return false
}
