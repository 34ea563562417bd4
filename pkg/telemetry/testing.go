// ABOUTME: No-op telemetry constructors for tests that exercise real components with telemetry off

package telemetry

// NewForTesting returns a no-op telemetry instance for use in tests.
func NewForTesting() Telemetry {
	return NewNoop()
}
