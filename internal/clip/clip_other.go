//go:build !darwin && !windows && !linux

package clip

// New returns a no-op provider suitable for headless containers.
func New() Provider {
	return &headlessProvider{}
}
