package scan

import (
	"context"
	"errors"
	"net"
	"strconv"
	"syscall"
	"time"
)

// PortState classifies the outcome of a single connect probe.
type PortState uint8

const (
	// PortOpen means the TCP handshake completed.
	PortOpen PortState = iota
	// PortClosed means the peer actively refused the connection.
	PortClosed
	// PortFiltered means no definitive response arrived within the timeout,
	// or the probe failed in a way indistinguishable from a dropped packet.
	PortFiltered
)

func (s PortState) String() string {
	switch s {
	case PortOpen:
		return "OPEN"
	case PortClosed:
		return "CLOSED"
	default:
		return "FILTERED"
	}
}

// Dialer abstracts the transport so tests can inject deterministic fakes.
// *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// ConnectProbe performs one bounded-time TCP connection attempt per port.
// It never retries; retry policy, if any, belongs to the scanner.
type ConnectProbe struct {
	dialer  Dialer
	timeout time.Duration
}

func NewConnectProbe(timeout time.Duration) *ConnectProbe {
	return &ConnectProbe{
		dialer:  &net.Dialer{},
		timeout: timeout,
	}
}

// Probe attempts one connection to the target port and classifies the
// outcome. On success the socket is closed immediately; no data is
// exchanged. A non-nil error is returned only for systemic faults that
// make probing impossible, never for per-port outcomes.
func (p *ConnectProbe) Probe(ctx context.Context, ip net.IP, port int) (PortState, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	addr := net.JoinHostPort(ip.String(), strconv.Itoa(port))
	conn, err := p.dialer.DialContext(ctx, "tcp", addr)
	if err == nil {
		_ = conn.Close()
		return PortOpen, nil
	}
	return classifyDialError(err)
}

// classifyDialError folds connection failures into port states. Refusal is
// the only failure that confirms a peer; timeouts, unreachable networks and
// all other transport errors are indistinguishable from a silently dropped
// probe and map to FILTERED. Descriptor exhaustion means no socket can be
// created at all and is escalated to the scanner instead of classified.
func classifyDialError(err error) (PortState, error) {
	if errors.Is(err, syscall.EMFILE) || errors.Is(err, syscall.ENFILE) {
		return PortFiltered, err
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return PortClosed, nil
	}
	return PortFiltered, nil
}
