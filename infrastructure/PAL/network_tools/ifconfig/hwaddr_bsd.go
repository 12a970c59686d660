//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package ifconfig

// BSD-derived ifconfig takes the link address via the "ether" keyword.
func hardwareAddressArgs(address string) []string {
	return []string{"ether", address}
}
