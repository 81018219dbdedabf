package output

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knockscan/knock/scan"
)

func sampleReport() *scan.Report {
	return &scan.Report{
		Target: scan.Target{Host: "scanme.local", IP: net.ParseIP("10.0.0.5")},
		Results: []scan.Result{
			{Port: 22, State: scan.PortOpen, Service: "ssh"},
			{Port: 23, State: scan.PortClosed},
			{Port: 24, State: scan.PortFiltered},
		},
		OpenCount:     1,
		ClosedCount:   1,
		FilteredCount: 1,
		Elapsed:       42 * time.Millisecond,
	}
}

func TestFileWritesReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	err := NewFile(path).Write(sampleReport())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "22/tcp")
	assert.Contains(t, text, "OPEN")
	assert.Contains(t, text, "ssh")
	assert.Contains(t, text, "1 open, 1 closed, 1 filtered in 42ms")
}

func TestFileCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "nested", "report.txt")

	err := NewFile(path).Write(sampleReport())
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestFileWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	// parent path is a regular file, so the destination cannot be created
	err := NewFile(filepath.Join(blocker, "report.txt")).Write(sampleReport())
	require.Error(t, err)

	var sinkErr *SinkWriteError
	require.ErrorAs(t, err, &sinkErr)
	assert.Contains(t, sinkErr.Dest, "report.txt")
}
