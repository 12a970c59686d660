package workflow

import "macchanger/domain/mac"

type InterfaceQuery interface {
	HasInterface(ifName string) (bool, error)
	CurrentAddress(ifName string) (mac.Address, error)
}

type InterfaceMutator interface {
	Apply(ifName string, address mac.Address) error
}

type BackupStore interface {
	Save(ifName string, address mac.Address) error
	Load(ifName string) (mac.Address, bool)
}

// Reporter prints user-facing status lines.
type Reporter interface {
	Progress(format string, args ...any)
	Success(format string, args ...any)
}

// RandomSource produces a fresh target address for random mode.
type RandomSource func() (mac.Address, error)
