package link

// Lister enumerates the network interfaces known to the OS.
type Lister interface {
	Interfaces() ([]string, error)
}
