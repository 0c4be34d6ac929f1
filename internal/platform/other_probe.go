//go:build !linux && !windows

package platform

// UnsupportedProbe is used where no native query is wired (macOS relies on the shell)
type UnsupportedProbe struct{}

// NewMonitorProbe creates the MonitorProbe for platforms without a native query
func NewMonitorProbe() MonitorProbe {
	return UnsupportedProbe{}
}

func (UnsupportedProbe) MonitorSize() (int, int, error) {
	return 0, 0, ErrProbeUnavailable
}
