package scan

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Result is the classification of a single port. Service is set only for
// open ports; closed and filtered ports confirmed no reachable service.
type Result struct {
	Port    int
	State   PortState
	Service string
}

// Report is the finalized outcome of one scan: at most one result per port,
// sorted ascending, with per-state tallies. A completed scan covers every
// port in the range; a cancelled scan covers only probes that finished
// before cancellation.
type Report struct {
	Target        Target
	Results       []Result
	OpenCount     int
	ClosedCount   int
	FilteredCount int
	Elapsed       time.Duration
}

func (r *Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Scan results for %s\n\n", r.Target)
	fmt.Fprintf(&b, "%s%s%s\n", pad("PORT", 12), pad("STATE", 10), "SERVICE")

	for _, result := range r.Results {
		fmt.Fprintf(&b, "%s%s%s\n",
			pad(fmt.Sprintf("%d/tcp", result.Port), 12),
			pad(result.State.String(), 10),
			result.Service,
		)
	}

	fmt.Fprintf(&b, "\n%d open, %d closed, %d filtered in %s\n",
		r.OpenCount, r.ClosedCount, r.FilteredCount, r.Elapsed)

	return b.String()
}

func pad(input string, length int) string {
	for len(input) < length {
		input += " "
	}
	return input
}

// collector accumulates results as probes complete, in arbitrary arrival
// order, keyed by port so a port can never be recorded twice. finalize is
// the only way results leave the collector.
type collector struct {
	target  Target
	started time.Time

	mu      sync.Mutex
	results map[int]Result
}

func newCollector(target Target) *collector {
	return &collector{
		target:  target,
		started: time.Now(),
		results: make(map[int]Result),
	}
}

func (c *collector) add(result Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.results[result.Port]; ok {
		return
	}
	c.results[result.Port] = result
}

func (c *collector) finalize() *Report {
	c.mu.Lock()
	defer c.mu.Unlock()

	report := &Report{
		Target:  c.target,
		Results: make([]Result, 0, len(c.results)),
		Elapsed: time.Since(c.started),
	}

	for _, result := range c.results {
		report.Results = append(report.Results, result)
		switch result.State {
		case PortOpen:
			report.OpenCount++
		case PortClosed:
			report.ClosedCount++
		case PortFiltered:
			report.FilteredCount++
		}
	}

	sort.Slice(report.Results, func(i, j int) bool {
		return report.Results[i].Port < report.Results[j].Port
	})

	return report
}
