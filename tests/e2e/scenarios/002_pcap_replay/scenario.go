package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

// ### Start - fixed configs (no change)
const (
	windowSeconds = 5
	windowCount   = 4
	packetsPerDir = 25
)

var clientIPs = []string{"10.20.0.11", "10.20.0.12", "10.20.0.13"}

// ### End - fixed configs

type expectedBin struct {
	Ts       int64  `json:"ts"`
	ClientIP string `json:"client_ip"`
	InBytes  uint64 `json:"in_bytes"`
	OutBytes uint64 `json:"out_bytes"`
}

type expectation struct {
	FromTs int64         `json:"from_ts"`
	ToTs   int64         `json:"to_ts"`
	Bins   []expectedBin `json:"bins"`
}

// main runs the e2e scenario: 002_pcap_replay
//
// Generate mode writes a capture of HTTPS traffic between three clients and the
// monitored server, plus the summary it should produce. Point the server at it
// with capture.mode=file, then run verify mode within the retention period.
//
//	go run ./tests/e2e/scenarios/002_pcap_replay -mode generate -out .tmp/replay
//	TRAFFIC_CAPTURE_MODE=file TRAFFIC_CAPTURE_PCAP_FILE=.tmp/replay/replay.pcap \
//	  TRAFFIC_MONITOR_SERVER_IP=10.20.0.1 go run ./cmd/server
//	go run ./tests/e2e/scenarios/002_pcap_replay -mode verify -out .tmp/replay
func main() {
	mode := flag.String("mode", "generate", "generate or verify")
	out := flag.String("out", ".tmp/replay", "directory for replay.pcap and expected.json")
	baseURL := flag.String("api", "http://localhost:8000", "dashboard base URL")
	serverIP := flag.String("server-ip", "10.20.0.1", "monitored server address")
	flag.Parse()

	var err error
	switch *mode {
	case "generate":
		err = generate(*out, *serverIP)
	case "verify":
		err = verify(*out, *baseURL)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func generate(outDir, serverIP string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(outDir + "/replay.pcap")
	if err != nil {
		return err
	}
	defer f.Close()

	w := pcapgo.NewWriter(f)
	if err := w.WriteFileHeader(65535, layers.LinkTypeEthernet); err != nil {
		return err
	}

	// windows end just before now so the default summary range still covers them
	base := (time.Now().Unix()/windowSeconds - windowCount) * windowSeconds
	var bins []expectedBin

	for win := 0; win < windowCount; win++ {
		windowKey := base + int64(win*windowSeconds)
		for c, client := range clientIPs {
			bin := &expectedBin{Ts: windowKey, ClientIP: client}
			for i := 0; i < packetsPerDir; i++ {
				ts := time.Unix(windowKey, int64(i)*int64(time.Second)*windowSeconds/packetsPerDir)

				n, err := writePacket(w, ts, client, serverIP, 50000+uint16(c), 443, 40+i)
				if err != nil {
					return err
				}
				bin.InBytes += uint64(n)

				n, err = writePacket(w, ts, serverIP, client, 443, 50000+uint16(c), 600+7*i)
				if err != nil {
					return err
				}
				bin.OutBytes += uint64(n)
			}
			bins = append(bins, *bin)
		}
	}

	exp := expectation{FromTs: base, ToTs: base + int64((windowCount-1)*windowSeconds), Bins: bins}
	data, err := json.MarshalIndent(exp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %d bins across %d windows to %s\n", len(bins), windowCount, outDir)
	return os.WriteFile(outDir+"/expected.json", data, 0o644)
}

func writePacket(w *pcapgo.Writer, ts time.Time, src, dst string, srcPort, dstPort uint16, payloadLen int) (int, error) {
	payload := make([]byte, payloadLen)
	// TLS application data record header
	payload[0], payload[1], payload[2] = 0x17, 0x03, 0x03
	payload[3], payload[4] = byte((payloadLen-5)>>8), byte(payloadLen-5)

	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x02, 0, 0, 0, 0, 1},
		DstMAC:       net.HardwareAddr{0x02, 0, 0, 0, 0, 2},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolTCP,
		SrcIP:    net.ParseIP(src).To4(),
		DstIP:    net.ParseIP(dst).To4(),
	}
	tcp := &layers.TCP{SrcPort: layers.TCPPort(srcPort), DstPort: layers.TCPPort(dstPort), ACK: true, PSH: true, Window: 4096}
	if err := tcp.SetNetworkLayerForChecksum(ip); err != nil {
		return 0, err
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	if err := gopacket.SerializeLayers(buf, opts, eth, ip, tcp, gopacket.Payload(payload)); err != nil {
		return 0, err
	}

	data := buf.Bytes()
	ci := gopacket.CaptureInfo{Timestamp: ts, CaptureLength: len(data), Length: len(data)}
	return len(data), w.WritePacket(ci, data)
}

func verify(outDir, baseURL string) error {
	data, err := os.ReadFile(outDir + "/expected.json")
	if err != nil {
		return err
	}
	var exp expectation
	if err := json.Unmarshal(data, &exp); err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/summary?from_ts=%d&to_ts=%d", baseURL, exp.FromTs, exp.ToTs)
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("summary returned status %d", resp.StatusCode)
	}

	var got struct {
		Bins []expectedBin `json:"bins"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		return err
	}

	actual := make(map[string]expectedBin, len(got.Bins))
	for _, bin := range got.Bins {
		actual[fmt.Sprintf("%d/%s", bin.Ts, bin.ClientIP)] = bin
	}

	mismatches := 0
	for _, want := range exp.Bins {
		key := fmt.Sprintf("%d/%s", want.Ts, want.ClientIP)
		if have, ok := actual[key]; !ok || have != want {
			mismatches++
			fmt.Fprintf(os.Stderr, "MISMATCH %s: want %+v, got %+v\n", key, want, have)
		}
	}
	fmt.Printf("Checked %d bins, %d mismatches\n", len(exp.Bins), mismatches)
	if mismatches > 0 || len(got.Bins) != len(exp.Bins) {
		return fmt.Errorf("summary does not match replay (%d bins returned, %d expected)", len(got.Bins), len(exp.Bins))
	}
	return nil
}
