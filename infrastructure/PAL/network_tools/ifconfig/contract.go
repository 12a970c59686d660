package ifconfig

// Tool is the executable name of the net-tools / BSD interface configurator.
const Tool = "ifconfig"

type Contract interface {
	Show(ifName string) (string, error)
	Down(ifName string) error
	SetHardwareAddress(ifName, address string) error
	Up(ifName string) error
}
