package changer

import (
	"io"
	"os"

	"macchanger/application/workflow"
	"macchanger/domain/mac"
	"macchanger/infrastructure/PAL/exec_commander"
	"macchanger/infrastructure/PAL/link"
	"macchanger/presentation/elevation"
)

// Dependencies are the host-facing collaborators of a Runner.
type Dependencies struct {
	Commander exec_commander.Commander
	Lister    link.Lister
	Elevation elevation.ProcessElevation
	Random    workflow.RandomSource
	Stdout    io.Writer
	Stderr    io.Writer
}

// NewDefaultDependencies talks to the real host.
func NewDefaultDependencies() Dependencies {
	return Dependencies{
		Commander: exec_commander.NewExecCommander(),
		Lister:    link.NewLister(),
		Elevation: elevation.NewProcessElevation(),
		Random:    mac.Random,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
}
