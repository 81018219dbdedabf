package scan

import (
	"net"

	"github.com/pkg/errors"
)

// Target is a resolved scan destination. It keeps the host string the
// caller supplied alongside the address resolution produced, and is
// immutable once built.
type Target struct {
	Host string
	IP   net.IP
}

func (t Target) String() string {
	if t.Host == t.IP.String() {
		return t.Host
	}
	return t.Host + " (" + t.IP.String() + ")"
}

// ResolveTarget turns a host name or IP literal into a Target. Host names
// are resolved once, preferring an IPv4 address when one exists. Failures
// surface as *ResolutionError and are not retried.
func ResolveTarget(host string) (Target, error) {
	if ip := net.ParseIP(host); ip != nil {
		return Target{Host: host, IP: ip}, nil
	}

	ips, err := net.LookupIP(host)
	if err != nil {
		return Target{}, &ResolutionError{Host: host, Err: errors.Wrap(err, "lookup")}
	}
	if len(ips) == 0 {
		return Target{}, &ResolutionError{Host: host, Err: errors.New("no addresses found")}
	}

	for _, ip := range ips {
		if ip.To4() != nil {
			return Target{Host: host, IP: ip}, nil
		}
	}
	return Target{Host: host, IP: ips[0]}, nil
}
