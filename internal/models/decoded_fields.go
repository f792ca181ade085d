package models

// Transport is the layer-4 protocol observed by the capture decoder.
type Transport uint8

const (
	TransportUnknown Transport = iota
	TransportTCP
	TransportUDP
	TransportICMP
)

// Framing is an application-layer protocol recognized directly from the
// packet rather than inferred from ports.
type Framing uint8

const (
	FramingNone Framing = iota
	FramingHTTP
	FramingFTP
	FramingFTPData
	FramingDNS
	FramingTLS
)

// DecodedFields is what the capture decoder hands to the protocol classifier.
type DecodedFields struct {
	Transport Transport
	SrcPort   uint16
	DstPort   uint16
	Framing   Framing
}
