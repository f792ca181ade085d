package classifiers

import (
	"testing"

	"traffic-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fields   models.DecodedFields
		expected string
	}{
		{
			name:     "http framing",
			fields:   models.DecodedFields{Transport: models.TransportTCP, SrcPort: 51000, DstPort: 8080, Framing: models.FramingHTTP},
			expected: LabelHTTP,
		},
		{
			name:     "ftp-data framing maps to FTP",
			fields:   models.DecodedFields{Transport: models.TransportTCP, SrcPort: 51000, DstPort: 40000, Framing: models.FramingFTPData},
			expected: LabelFTP,
		},
		{
			name:     "tls framing on non-standard port",
			fields:   models.DecodedFields{Transport: models.TransportTCP, SrcPort: 51000, DstPort: 8443, Framing: models.FramingTLS},
			expected: LabelTLS,
		},
		{
			name:     "framing beats port inference",
			fields:   models.DecodedFields{Transport: models.TransportTCP, SrcPort: 51000, DstPort: 21, Framing: models.FramingHTTP},
			expected: LabelHTTP,
		},
		{
			name:     "dns framing over tcp",
			fields:   models.DecodedFields{Transport: models.TransportTCP, SrcPort: 51000, DstPort: 5353, Framing: models.FramingDNS},
			expected: LabelDNS,
		},
		{
			name:     "tcp port 21",
			fields:   models.DecodedFields{Transport: models.TransportTCP, SrcPort: 51000, DstPort: 21},
			expected: LabelFTP,
		},
		{
			name:     "tcp port 20 on source side",
			fields:   models.DecodedFields{Transport: models.TransportTCP, SrcPort: 20, DstPort: 51000},
			expected: LabelFTP,
		},
		{
			name:     "passive range lower bound",
			fields:   models.DecodedFields{Transport: models.TransportTCP, SrcPort: 51000, DstPort: 30000},
			expected: LabelFTP,
		},
		{
			name:     "passive range upper bound",
			fields:   models.DecodedFields{Transport: models.TransportTCP, SrcPort: 30009, DstPort: 51000},
			expected: LabelFTP,
		},
		{
			name:     "just outside passive range",
			fields:   models.DecodedFields{Transport: models.TransportTCP, SrcPort: 30010, DstPort: 51000},
			expected: LabelTCP,
		},
		{
			name:     "ftp beats http when both ports match",
			fields:   models.DecodedFields{Transport: models.TransportTCP, SrcPort: 80, DstPort: 21},
			expected: LabelFTP,
		},
		{
			name:     "tcp port 80",
			fields:   models.DecodedFields{Transport: models.TransportTCP, SrcPort: 80, DstPort: 51000},
			expected: LabelHTTP,
		},
		{
			name:     "tcp port 443",
			fields:   models.DecodedFields{Transport: models.TransportTCP, SrcPort: 51000, DstPort: 443},
			expected: LabelTLS,
		},
		{
			name:     "tcp port 53",
			fields:   models.DecodedFields{Transport: models.TransportTCP, SrcPort: 51000, DstPort: 53},
			expected: LabelDNS,
		},
		{
			name:     "plain tcp",
			fields:   models.DecodedFields{Transport: models.TransportTCP, SrcPort: 51000, DstPort: 5432},
			expected: LabelTCP,
		},
		{
			name:     "udp dns",
			fields:   models.DecodedFields{Transport: models.TransportUDP, SrcPort: 53, DstPort: 40000},
			expected: LabelDNS,
		},
		{
			name:     "udp ignores ftp ports",
			fields:   models.DecodedFields{Transport: models.TransportUDP, SrcPort: 21, DstPort: 40000},
			expected: LabelUDP,
		},
		{
			name:     "plain udp",
			fields:   models.DecodedFields{Transport: models.TransportUDP, SrcPort: 5000, DstPort: 5001},
			expected: LabelUDP,
		},
		{
			name:     "icmp",
			fields:   models.DecodedFields{Transport: models.TransportICMP},
			expected: LabelICMP,
		},
		{
			name:     "unknown transport",
			fields:   models.DecodedFields{},
			expected: LabelOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Classify(tt.fields))
		})
	}
}

func TestClassify_IsDeterministic(t *testing.T) {
	t.Parallel()

	fields := models.DecodedFields{Transport: models.TransportTCP, SrcPort: 30005, DstPort: 443}
	first := Classify(fields)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Classify(fields))
	}
	assert.Equal(t, LabelFTP, first)
}
