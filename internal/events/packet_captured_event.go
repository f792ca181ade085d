package events

// PacketCapturedEvent is one decoded packet as delivered by the capture
// collaborator. It carries only the fields the aggregator needs; frames that
// could not be decoded never become events.
//
// Example JSON:
//
//	{
//	  "timestamp": 1735409000.123456,
//	  "src_ip": "192.168.0.20",
//	  "dst_ip": "10.50.0.10",
//	  "length": 1514,
//	  "protocol": "HTTPS/TLS"
//	}
//
// In this example the destination is the designated server, so the 1514 bytes
// are credited as inbound traffic of client 192.168.0.20 in the window that
// contains the timestamp.
type PacketCapturedEvent struct {
	Timestamp float64 `json:"timestamp"` // seconds since epoch
	SrcIP     string  `json:"src_ip"`
	DstIP     string  `json:"dst_ip"`
	Length    int     `json:"length"`
	Protocol  string  `json:"protocol"`
}

// FlowKey orders the two endpoints so both directions of a conversation share a key.
func (e *PacketCapturedEvent) FlowKey() string {
	if e.SrcIP < e.DstIP {
		return e.SrcIP + "|" + e.DstIP
	}
	return e.DstIP + "|" + e.SrcIP
}
