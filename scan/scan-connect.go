package scan

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

const (
	// DefaultWorkers bounds in-flight probes when the caller does not choose.
	DefaultWorkers = 100
	// DefaultTimeout is the per-attempt connect timeout when the caller does
	// not choose.
	DefaultTimeout = time.Second
)

// ConnectScanner runs one connect probe per port in a range against a
// single target, with at most `workers` probes in flight at once. Each
// scanner instance owns its own state; independent scans can run
// concurrently.
type ConnectScanner struct {
	target  Target
	ports   PortRange
	probe   *ConnectProbe
	workers int
	sem     *semaphore.Weighted
}

func NewConnectScanner(target Target, ports PortRange, workers int, timeout time.Duration) *ConnectScanner {
	if workers < 1 {
		workers = 1
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ConnectScanner{
		target:  target,
		ports:   ports,
		probe:   NewConnectProbe(timeout),
		workers: workers,
		sem:     semaphore.NewWeighted(int64(workers)),
	}
}

// Scan probes every port in the range and blocks until the report is
// finalized. Dispatch follows ascending port order; completion order is
// unconstrained. Cancelling ctx (or its deadline expiring) stops dispatch
// and abandons in-flight probes: their classifications are discarded and
// the report covers only probes that had already completed. Cancellation
// is not an error. A *SchedulerFaultError is returned only when probing
// becomes systemically impossible; it carries the partial report.
func (s *ConnectScanner) Scan(ctx context.Context) (*Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	col := newCollector(s.target)

	resultChan := make(chan Result)
	doneChan := make(chan struct{})

	go func() {
		for result := range resultChan {
			col.add(result)
		}
		close(doneChan)
	}()

	log.Debugf("scanning %d ports on %s with %d workers", s.ports.Len(), s.target, s.workers)

	var (
		wg      sync.WaitGroup
		faultMu sync.Mutex
		fault   error
	)

	for port := s.ports.Start; port <= s.ports.End; port++ {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			// cancelled or past the deadline: stop dispatching
			break
		}

		wg.Add(1)
		go func(port int) {
			defer wg.Done()
			defer s.sem.Release(1)

			state, err := s.probe.Probe(ctx, s.target.IP, port)
			if err != nil {
				faultMu.Lock()
				if fault == nil {
					fault = err
				}
				faultMu.Unlock()
				cancel()
				return
			}

			if ctx.Err() != nil {
				// abandoned probe: classification discarded
				return
			}

			result := Result{Port: port, State: state}
			if state == PortOpen {
				result.Service = ServiceName(port)
			}

			select {
			case resultChan <- result:
			case <-ctx.Done():
			}
		}(port)
	}

	wg.Wait()
	close(resultChan)
	<-doneChan

	report := col.finalize()
	log.Debugf("scan of %s finished in %s: %d open, %d closed, %d filtered",
		s.target, report.Elapsed, report.OpenCount, report.ClosedCount, report.FilteredCount)

	if fault != nil {
		return nil, &SchedulerFaultError{Err: fault, Report: report}
	}
	return report, nil
}
