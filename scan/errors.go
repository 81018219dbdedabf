package scan

import "fmt"

// InvalidRangeError indicates a malformed or out-of-bounds port range.
// It is raised before any probe is dispatched.
type InvalidRangeError struct {
	Start  int
	End    int
	Reason string
}

func (e *InvalidRangeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid port range: %s", e.Reason)
	}
	return fmt.Sprintf("invalid port range %d-%d: must satisfy 1 <= start <= end <= 65535", e.Start, e.End)
}

// ResolutionError indicates the target host could not be resolved to an
// address. Resolution is never retried.
type ResolutionError struct {
	Host string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve target '%s': %s", e.Host, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// SchedulerFaultError indicates a systemic inability to probe at all, such
// as file descriptor exhaustion preventing socket creation. Per-port
// refusals and timeouts are classifications, never faults. Report holds
// whatever results had been collected when the scan was aborted.
type SchedulerFaultError struct {
	Err    error
	Report *Report
}

func (e *SchedulerFaultError) Error() string {
	return fmt.Sprintf("scan aborted: %s", e.Err)
}

func (e *SchedulerFaultError) Unwrap() error {
	return e.Err
}
