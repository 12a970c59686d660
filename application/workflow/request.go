package workflow

import "macchanger/domain/mode"

// Request is one invocation: an interface plus what to do with it.
type Request struct {
	Interface string
	// Address is the explicit target text, consulted only in mode.Change without Random.
	Address string
	Random  bool
	Restore bool
}

// Mode resolves the operation; restore wins over change.
func (r Request) Mode() mode.Mode {
	if r.Restore {
		return mode.Restore
	}
	return mode.Change
}
