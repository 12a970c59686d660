package link

import (
	"regexp"

	"macchanger/domain/mac"
	"macchanger/infrastructure/PAL/network_tools/ifconfig"
)

var anyAddressPattern = regexp.MustCompile(`[0-9A-Fa-f]{2}(?::[0-9A-Fa-f]{2}){5}`)

type ifconfigBackend struct {
	ifconfig ifconfig.Contract
}

// NewIfconfigBackend is the fallback backend for hosts without iproute2.
func NewIfconfigBackend(wrapper ifconfig.Contract) Backend {
	return &ifconfigBackend{ifconfig: wrapper}
}

func (b *ifconfigBackend) Tool() string {
	return ifconfig.Tool
}

// CurrentAddress takes the first six-octet pattern in the output.
func (b *ifconfigBackend) CurrentAddress(ifName string) (mac.Address, bool) {
	output, _ := b.ifconfig.Show(ifName)
	match := anyAddressPattern.FindString(output)
	if match == "" {
		return mac.Address{}, false
	}

	address, err := mac.Parse(match)
	if err != nil {
		return mac.Address{}, false
	}
	return address, true
}

func (b *ifconfigBackend) Down(ifName string) error {
	return b.ifconfig.Down(ifName)
}

func (b *ifconfigBackend) SetAddress(ifName string, address mac.Address) error {
	return b.ifconfig.SetHardwareAddress(ifName, address.String())
}

func (b *ifconfigBackend) Up(ifName string) error {
	return b.ifconfig.Up(ifName)
}
