//go:build unix

package elevation

import (
	"fmt"

	"golang.org/x/sys/unix"

	"macchanger/domain/app"
)

// ProcessElevationImpl implements ProcessElevation on Unix-like systems.
type ProcessElevationImpl struct{}

func NewProcessElevation() ProcessElevation {
	return &ProcessElevationImpl{}
}

// IsElevated returns true if the effective user is root.
func (p *ProcessElevationImpl) IsElevated() bool {
	return unix.Geteuid() == 0
}

func (p *ProcessElevationImpl) Hint() string {
	return fmt.Sprintf("Try: sudo %s -i <interface> ...", app.Name)
}
