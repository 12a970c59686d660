//go:build !(darwin || dragonfly || freebsd || netbsd || openbsd)

package ifconfig

// net-tools ifconfig expects the hardware class before the address.
func hardwareAddressArgs(address string) []string {
	return []string{"hw", "ether", address}
}
