package scan

import (
	"context"
	"fmt"
	"net"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/phayes/freeport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	net.Conn
}

func (fakeConn) Close() error { return nil }

// stubDialer always produces the configured error, or a successful
// connection when err is nil.
type stubDialer struct {
	err error
}

func (d *stubDialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	if d.err != nil {
		return nil, d.err
	}
	return fakeConn{}, nil
}

func refusedErr() error {
	return &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}
}

func unreachableErr() error {
	return &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ENETUNREACH)}
}

func exhaustedErr() error {
	return &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("socket", syscall.EMFILE)}
}

func TestProbeClassification(t *testing.T) {
	tests := []struct {
		name      string
		dialErr   error
		wantState PortState
		wantFault bool
	}{
		{
			name:      "handshake completed",
			dialErr:   nil,
			wantState: PortOpen,
		},
		{
			name:      "connection refused",
			dialErr:   refusedErr(),
			wantState: PortClosed,
		},
		{
			name:      "timeout",
			dialErr:   os.ErrDeadlineExceeded,
			wantState: PortFiltered,
		},
		{
			name:      "network unreachable",
			dialErr:   unreachableErr(),
			wantState: PortFiltered,
		},
		{
			name:      "descriptor exhaustion",
			dialErr:   exhaustedErr(),
			wantState: PortFiltered,
			wantFault: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := NewConnectProbe(time.Second)
			probe.dialer = &stubDialer{err: tt.dialErr}

			state, err := probe.Probe(context.Background(), net.ParseIP("10.0.0.1"), 80)

			if tt.wantFault {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantState, state)
		})
	}
}

func TestProbeLoopback(t *testing.T) {
	openPort, err := freeport.GetFreePort()
	require.Nil(t, err)

	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", openPort))
	require.Nil(t, err)
	defer listener.Close()

	probe := NewConnectProbe(time.Second)

	state, err := probe.Probe(context.Background(), net.ParseIP("127.0.0.1"), openPort)
	require.NoError(t, err)
	assert.Equal(t, PortOpen, state)

	closedPort, err := freeport.GetFreePort()
	require.Nil(t, err)

	state, err = probe.Probe(context.Background(), net.ParseIP("127.0.0.1"), closedPort)
	require.NoError(t, err)
	assert.Equal(t, PortClosed, state)
}
