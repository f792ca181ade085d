package classifiers

import (
	"traffic-dashboard/internal/models"
)

// Canonical protocol labels stored by the aggregator.
const (
	LabelHTTP  = "HTTP"
	LabelFTP   = "FTP"
	LabelDNS   = "DNS"
	LabelTLS   = "HTTPS/TLS"
	LabelTCP   = "TCP"
	LabelUDP   = "UDP"
	LabelICMP  = "ICMP"
	LabelOther = "OTHER"
)

const (
	portFTPData = 20
	portFTP     = 21
	portDNS     = 53
	portHTTP    = 80
	portHTTPS   = 443

	// passive-mode FTP data range of the monitored server
	portFTPPassiveLow  = 30000
	portFTPPassiveHigh = 30009
)

var framingLabels = map[models.Framing]string{
	models.FramingHTTP:    LabelHTTP,
	models.FramingFTP:     LabelFTP,
	models.FramingFTPData: LabelFTP,
	models.FramingDNS:     LabelDNS,
	models.FramingTLS:     LabelTLS,
}

// Classify maps decoded packet fields to a protocol label. Recognized framing
// wins over port inference; the result is never empty.
func Classify(fields models.DecodedFields) string {
	if label, ok := framingLabels[fields.Framing]; ok {
		return label
	}

	switch fields.Transport {
	case models.TransportTCP:
		return classifyTCP(fields.SrcPort, fields.DstPort)
	case models.TransportUDP:
		if eitherPort(fields, portDNS) {
			return LabelDNS
		}
		return LabelUDP
	case models.TransportICMP:
		return LabelICMP
	default:
		return LabelOther
	}
}

func classifyTCP(src, dst uint16) string {
	fields := models.DecodedFields{SrcPort: src, DstPort: dst}
	switch {
	case isFTPPort(src) || isFTPPort(dst):
		return LabelFTP
	case eitherPort(fields, portHTTP):
		return LabelHTTP
	case eitherPort(fields, portHTTPS):
		return LabelTLS
	case eitherPort(fields, portDNS):
		return LabelDNS
	default:
		return LabelTCP
	}
}

func isFTPPort(port uint16) bool {
	return port == portFTP || port == portFTPData || (port >= portFTPPassiveLow && port <= portFTPPassiveHigh)
}

func eitherPort(fields models.DecodedFields, port uint16) bool {
	return fields.SrcPort == port || fields.DstPort == port
}
