package captures

import "errors"

var (
	// ErrNoNetworkLayer marks frames without an IPv4/IPv6 header (ARP, LLDP, ...).
	ErrNoNetworkLayer = errors.New("frame has no IP layer")

	// ErrReadTimeout is returned by live sources when no packet arrived within
	// the read timeout. It is not a failure.
	ErrReadTimeout = errors.New("capture read timeout")

	ErrOpenSource = errors.New("failed to open packet source")
	ErrReadSource = errors.New("failed to read packet source")
	ErrProduce    = errors.New("failed to hand packet to stream")
)
