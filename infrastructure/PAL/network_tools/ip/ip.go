package ip

import (
	"fmt"

	"macchanger/infrastructure/PAL/exec_commander"
)

// Wrapper is a wrapper around ip command from the iproute2 tool collection
type Wrapper struct {
	commander exec_commander.Commander
}

func NewWrapper(commander exec_commander.Commander) Contract {
	return &Wrapper{commander: commander}
}

// LinkShow returns the stdout of `ip link show`. The output is returned even when ip exits non-zero.
func (i *Wrapper) LinkShow(devName string) (string, error) {
	output, err := i.commander.Output(Tool, "link", "show", devName)
	if err != nil {
		return string(output), fmt.Errorf("failed to show link %v: %v", devName, err)
	}

	return string(output), nil
}

// LinkSetDevDown Sets network device status as DOWN
func (i *Wrapper) LinkSetDevDown(devName string) error {
	output, err := i.commander.CombinedOutput(Tool, "link", "set", "dev", devName, "down")
	if err != nil {
		return fmt.Errorf("failed to bring down %v: %v, output: %s", devName, err, output)
	}

	return nil
}

// LinkSetDevAddress Sets the link-layer address of a network device
func (i *Wrapper) LinkSetDevAddress(devName string, address string) error {
	output, err := i.commander.CombinedOutput(Tool, "link", "set", "dev", devName, "address", address)
	if err != nil {
		return fmt.Errorf("failed to set address %v on %v: %v, output: %s", address, devName, err, output)
	}

	return nil
}

// LinkSetDevUp Sets network device status as UP
func (i *Wrapper) LinkSetDevUp(devName string) error {
	output, err := i.commander.CombinedOutput(Tool, "link", "set", "dev", devName, "up")
	if err != nil {
		return fmt.Errorf("failed to bring up %v: %v, output: %s", devName, err, output)
	}

	return nil
}
