package scan

// ServiceUnknown is the label assigned to open ports with no well-known
// service registration.
const ServiceUnknown = "unknown"

// ServiceName returns the well-known service label for a port, or
// ServiceUnknown when the port has no registration. The lookup is purely
// static; no network interaction takes place.
func ServiceName(port int) string {
	if s, ok := knownPorts[port]; ok {
		return s
	}
	return ServiceUnknown
}
