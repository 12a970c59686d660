package mac

import (
	"fmt"
	"net"
	"regexp"
	"strings"
)

// Size is the number of octets in an Ethernet hardware address.
const Size = 6

const (
	multicastBit           = 0x01
	locallyAdministeredBit = 0x02
)

var canonicalPattern = regexp.MustCompile(`^([0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2}$`)

// Address is an immutable 48-bit link-layer address.
type Address [Size]byte

// Parse accepts only the colon-separated six-octet form, e.g. 00:1a:2b:3c:4d:5e.
func Parse(text string) (Address, error) {
	if !canonicalPattern.MatchString(text) {
		return Address{}, NewInvalidFormat(text)
	}

	hw, err := net.ParseMAC(text)
	if err != nil || len(hw) != Size {
		return Address{}, NewInvalidFormat(text)
	}

	var a Address
	copy(a[:], hw)
	return a, nil
}

// MustParse is like Parse but panics on malformed input. Intended for tests and constants.
func MustParse(text string) Address {
	a, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return a
}

// FromHardwareAddr converts a net.HardwareAddr, rejecting anything that is not 6 octets long.
func FromHardwareAddr(hw net.HardwareAddr) (Address, error) {
	if len(hw) != Size {
		return Address{}, NewInvalidFormat(hw.String())
	}
	var a Address
	copy(a[:], hw)
	return a, nil
}

// String returns the canonical uppercase form.
func (a Address) String() string {
	return strings.ToUpper(fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", a[0], a[1], a[2], a[3], a[4], a[5]))
}

func (a Address) HardwareAddr() net.HardwareAddr {
	hw := make(net.HardwareAddr, Size)
	copy(hw, a[:])
	return hw
}

func (a Address) Equal(other Address) bool {
	return a == other
}

func (a Address) IsLocallyAdministered() bool {
	return a[0]&locallyAdministeredBit != 0
}

func (a Address) IsMulticast() bool {
	return a[0]&multicastBit != 0
}
