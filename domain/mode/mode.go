package mode

type Mode int

const (
	Unknown Mode = iota
	// Change saves the current address and sets a new one
	Change
	// Restore sets the previously saved address
	Restore
	// ListBackups prints the saved addresses
	ListBackups
	// Version used to lookup version
	Version
)

func (m Mode) String() string {
	switch m {
	case Change:
		return "change"
	case Restore:
		return "restore"
	case ListBackups:
		return "list-backups"
	case Version:
		return "version"
	default:
		return "unknown"
	}
}
