package ip

// Tool is the executable name of the iproute2 utility.
const Tool = "ip"

type Contract interface {
	LinkShow(devName string) (string, error)
	LinkSetDevDown(devName string) error
	LinkSetDevAddress(devName string, address string) error
	LinkSetDevUp(devName string) error
}
