package ifconfig

import (
	"fmt"

	"macchanger/infrastructure/PAL/exec_commander"
)

type Wrapper struct {
	commander exec_commander.Commander
}

func NewWrapper(commander exec_commander.Commander) Contract {
	return &Wrapper{commander: commander}
}

func (w *Wrapper) Show(ifName string) (string, error) {
	out, err := w.commander.Output(Tool, ifName)
	if err != nil {
		return string(out), fmt.Errorf("ifconfig %s failed: %w", ifName, err)
	}
	return string(out), nil
}

func (w *Wrapper) Down(ifName string) error {
	if out, err := w.commander.CombinedOutput(Tool, ifName, "down"); err != nil {
		return fmt.Errorf("failed to bring down %s: %v (%s)", ifName, err, out)
	}
	return nil
}

func (w *Wrapper) SetHardwareAddress(ifName, address string) error {
	args := append([]string{ifName}, hardwareAddressArgs(address)...)
	if out, err := w.commander.CombinedOutput(Tool, args...); err != nil {
		return fmt.Errorf("failed to set hardware address on %s: %v (%s)", ifName, err, out)
	}
	return nil
}

func (w *Wrapper) Up(ifName string) error {
	if out, err := w.commander.CombinedOutput(Tool, ifName, "up"); err != nil {
		return fmt.Errorf("failed to bring up %s: %v (%s)", ifName, err, out)
	}
	return nil
}
