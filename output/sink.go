package output

import (
	"fmt"

	"github.com/knockscan/knock/scan"
)

// Sink persists a finalized scan report. A sink failure never alters or
// retries the scan itself; the in-memory report stays intact.
type Sink interface {
	Write(report *scan.Report) error
}

// SinkWriteError indicates a sink failed to persist the report.
type SinkWriteError struct {
	Dest string
	Err  error
}

func (e *SinkWriteError) Error() string {
	return fmt.Sprintf("cannot write report to %s: %s", e.Dest, e.Err)
}

func (e *SinkWriteError) Unwrap() error {
	return e.Err
}
