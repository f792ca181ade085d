package captures

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePcap(t *testing.T, packets ...gopacket.Packet) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "replay.pcap")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	writer := pcapgo.NewWriter(f)
	require.NoError(t, writer.WriteFileHeader(65536, layers.LinkTypeEthernet))
	for i, packet := range packets {
		data := packet.Data()
		ci := gopacket.CaptureInfo{
			Timestamp:     time.Unix(1_700_000_000+int64(i), 0),
			CaptureLength: len(data),
			Length:        len(data),
		}
		require.NoError(t, writer.WritePacket(ci, data))
	}
	return path
}

func TestFileOpener_ReplaysPcap(t *testing.T) {
	t.Parallel()

	path := writePcap(t,
		tcpPacket(t, 51000, 80, []byte("GET / HTTP/1.1\r\n\r\n")),
		udpPacket(t, 51000, 5000, []byte("hello")),
	)

	source, err := NewFileOpener(path).Open(context.Background())
	require.NoError(t, err)
	defer source.Close()

	decoder := NewPacketDecoder()
	var protocols []string
	var timestamps []float64
	for {
		packet, err := source.NextPacket()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		event, err := decoder.Decode(packet)
		require.NoError(t, err)
		protocols = append(protocols, event.Protocol)
		timestamps = append(timestamps, event.Timestamp)
	}

	assert.Equal(t, []string{"HTTP", "UDP"}, protocols)
	assert.Equal(t, []float64{1_700_000_000, 1_700_000_001}, timestamps)
}

// truncatePcap cuts the last bytes off the final record, as a capture
// interrupted mid-write leaves it.
func truncatePcap(t *testing.T, path string, cut int64) {
	t.Helper()

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, os.Truncate(path, info.Size()-cut))
}

func TestFileOpener_TruncatedTailEndsReplay(t *testing.T) {
	t.Parallel()

	path := writePcap(t,
		tcpPacket(t, 51000, 443, []byte{0x16, 0x03, 0x01, 0x00, 0x05, 1, 2, 3, 4, 5}),
		tcpPacket(t, 51000, 443, []byte{0x17, 0x03, 0x03, 0x00, 0x04, 1, 2, 3, 4}),
	)
	truncatePcap(t, path, 3)

	source, err := NewFileOpener(path).Open(context.Background())
	require.NoError(t, err)
	defer source.Close()

	_, err = source.NextPacket()
	require.NoError(t, err)

	_, err = source.NextPacket()
	assert.ErrorIs(t, err, io.EOF)
}

func TestFileOpener_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.pcap")
	require.NoError(t, os.WriteFile(garbage, []byte("definitely not a capture file"), 0o644))
	short := filepath.Join(dir, "short.pcap")
	require.NoError(t, os.WriteFile(short, []byte{0xd4}, 0o644))

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.pcap")},
		{name: "unknown magic", path: garbage},
		{name: "truncated header", path: short},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opener := NewFileOpener(tt.path)
			source, err := opener.Open(context.Background())
			assert.Error(t, err)
			assert.Nil(t, source)
			assert.Equal(t, tt.path, opener.Describe())
		})
	}
}
