package captures

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcapgo"
)

// PacketSource yields captured frames one at a time. NextPacket returns
// io.EOF when the source is exhausted and ErrReadTimeout when a live source
// saw no traffic within its read timeout.
type PacketSource interface {
	NextPacket() (gopacket.Packet, error)
	Close() error
}

// SourceOpener opens a fresh PacketSource. The supervisor calls it again
// after every failure.
type SourceOpener interface {
	Open(ctx context.Context) (PacketSource, error)
	// Describe names the source for logs (interface or file path).
	Describe() string
}

var pcapngMagic = []byte{0x0a, 0x0d, 0x0d, 0x0a}

type fileOpener struct {
	path string
}

// NewFileOpener replays a pcap or pcapng capture file.
func NewFileOpener(path string) SourceOpener {
	return &fileOpener{path: path}
}

func (o *fileOpener) Describe() string { return o.path }

func (o *fileOpener) Open(_ context.Context) (PacketSource, error) {
	file, err := os.Open(o.path)
	if err != nil {
		return nil, err
	}

	reader := bufio.NewReader(file)
	magic, err := reader.Peek(len(pcapngMagic))
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("read capture header of %s: %w", o.path, err)
	}

	var packets *gopacket.PacketSource
	if string(magic) == string(pcapngMagic) {
		ngReader, err := pcapgo.NewNgReader(reader, pcapgo.DefaultNgReaderOptions)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("open pcapng %s: %w", o.path, err)
		}
		packets = gopacket.NewPacketSource(ngReader, ngReader.LinkType())
	} else {
		pcapReader, err := pcapgo.NewReader(reader)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("open pcap %s: %w", o.path, err)
		}
		packets = gopacket.NewPacketSource(pcapReader, pcapReader.LinkType())
	}

	return &fileSource{file: file, packets: packets}, nil
}

type fileSource struct {
	file    *os.File
	packets *gopacket.PacketSource
}

// NextPacket reports a record cut short at the end of the file as io.EOF.
func (s *fileSource) NextPacket() (gopacket.Packet, error) {
	packet, err := s.packets.NextPacket()
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, io.EOF
	}
	return packet, err
}

func (s *fileSource) Close() error {
	return s.file.Close()
}
