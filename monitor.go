package deadline

import "github.com/osmike/deadline/internal/monitoring"

// DefaultMonitor is an in-memory Monitoring implementation keeping the
// latest state snapshot of every wait, keyed by wait ID. It is intended for
// tests and debugging; production users can plug in their own backend.
type DefaultMonitor = monitoring.Monitor

// NewDefaultMonitor creates an empty in-memory monitor.
func NewDefaultMonitor() *DefaultMonitor {
	return monitoring.New()
}
