package interface_mutator

import (
	"github.com/sirupsen/logrus"

	"macchanger/domain/failure"
	"macchanger/domain/mac"
	"macchanger/infrastructure/PAL/link"
)

// AddressReader re-reads an interface after the change.
type AddressReader interface {
	CurrentAddress(ifName string) (mac.Address, error)
}

type Mutator struct {
	provider *link.Provider
	reader   AddressReader
	logger   logrus.FieldLogger
}

func NewMutator(provider *link.Provider, reader AddressReader, logger logrus.FieldLogger) *Mutator {
	return &Mutator{
		provider: provider,
		reader:   reader,
		logger:   logger,
	}
}

// Apply brings the interface down, sets the address and brings it back up. Step results are
// not inspected; success is decided by reading the address back. A mismatch leaves the
// interface as the steps left it.
func (m *Mutator) Apply(ifName string, address mac.Address) error {
	backend, err := m.provider.Preferred()
	if err != nil {
		return err
	}

	log := m.logger.WithFields(logrus.Fields{
		"interface": ifName,
		"backend":   backend.Tool(),
		"address":   address.String(),
	})
	log.Info("changing MAC address")

	steps := []func() error{
		func() error { return backend.Down(ifName) },
		func() error { return backend.SetAddress(ifName, address) },
		func() error { return backend.Up(ifName) },
	}
	for _, step := range steps {
		if stepErr := step(); stepErr != nil {
			log.WithError(stepErr).Debug("step reported an error")
		}
	}

	observed, readErr := m.reader.CurrentAddress(ifName)
	if readErr != nil {
		log.WithError(readErr).Warn("could not verify address")
		return failure.NewApplyFailure(ifName, address.String(), "")
	}
	if !observed.Equal(address) {
		return failure.NewApplyFailure(ifName, address.String(), observed.String())
	}

	return nil
}
