package link

import (
	"regexp"

	"macchanger/domain/mac"
	"macchanger/infrastructure/PAL/network_tools/ip"
)

var ipEtherPattern = regexp.MustCompile(`link/ether\s+([0-9a-fA-F:]+)`)

type ipBackend struct {
	ip ip.Contract
}

// NewIPBackend is the primary backend, driven by iproute2.
func NewIPBackend(wrapper ip.Contract) Backend {
	return &ipBackend{ip: wrapper}
}

func (b *ipBackend) Tool() string {
	return ip.Tool
}

func (b *ipBackend) CurrentAddress(ifName string) (mac.Address, bool) {
	output, _ := b.ip.LinkShow(ifName)
	match := ipEtherPattern.FindStringSubmatch(output)
	if match == nil {
		return mac.Address{}, false
	}

	address, err := mac.Parse(match[1])
	if err != nil {
		return mac.Address{}, false
	}
	return address, true
}

func (b *ipBackend) Down(ifName string) error {
	return b.ip.LinkSetDevDown(ifName)
}

func (b *ipBackend) SetAddress(ifName string, address mac.Address) error {
	return b.ip.LinkSetDevAddress(ifName, address.String())
}

func (b *ipBackend) Up(ifName string) error {
	return b.ip.LinkSetDevUp(ifName)
}
