package scan

import (
	"strconv"
	"strings"
)

// DefaultPortRange covers the full TCP port space.
var DefaultPortRange = PortRange{Start: 1, End: 65535}

// PortRange is an inclusive pair of port bounds. It holds no mutable state;
// the same range can be walked any number of times.
type PortRange struct {
	Start int
	End   int
}

// NewPortRange validates bounds and returns the range, or an
// *InvalidRangeError if start > end or either bound falls outside 1-65535.
func NewPortRange(start, end int) (PortRange, error) {
	if start < 1 || end > 65535 || start > end {
		return PortRange{}, &InvalidRangeError{Start: start, End: end}
	}
	return PortRange{Start: start, End: end}, nil
}

// ParsePortRange parses a selection of the form "80" or "1-1024". An empty
// selection yields DefaultPortRange.
func ParsePortRange(selection string) (PortRange, error) {
	selection = strings.TrimSpace(selection)
	if selection == "" {
		return DefaultPortRange, nil
	}

	if strings.Contains(selection, "-") {
		parts := strings.SplitN(selection, "-", 2)
		start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return PortRange{}, &InvalidRangeError{Reason: "invalid port number: '" + parts[0] + "'"}
		}
		end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return PortRange{}, &InvalidRangeError{Reason: "invalid port number: '" + parts[1] + "'"}
		}
		return NewPortRange(start, end)
	}

	port, err := strconv.Atoi(selection)
	if err != nil {
		return PortRange{}, &InvalidRangeError{Reason: "invalid port number: '" + selection + "'"}
	}
	return NewPortRange(port, port)
}

// Len returns the number of ports covered by the range.
func (r PortRange) Len() int {
	return r.End - r.Start + 1
}

// Ports materializes the ascending port sequence.
func (r PortRange) Ports() []int {
	ports := make([]int, 0, r.Len())
	for port := r.Start; port <= r.End; port++ {
		ports = append(ports, port)
	}
	return ports
}
