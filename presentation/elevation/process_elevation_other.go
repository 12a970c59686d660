//go:build !unix

package elevation

type ProcessElevationImpl struct{}

func NewProcessElevation() ProcessElevation {
	return &ProcessElevationImpl{}
}

// IsElevated is always false: changing hardware addresses is only supported on Unix-like systems.
func (p *ProcessElevationImpl) IsElevated() bool {
	return false
}

func (p *ProcessElevationImpl) Hint() string {
	return "run on a Unix-like system as root"
}
