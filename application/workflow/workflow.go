package workflow

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"macchanger/domain/failure"
	"macchanger/domain/mac"
	"macchanger/domain/mode"
)

const invalidFormatHint = "Invalid MAC format. Use format like 00:1a:2b:3c:4d:5e"

type Workflow struct {
	query    InterfaceQuery
	mutator  InterfaceMutator
	store    BackupStore
	random   RandomSource
	reporter Reporter
	logger   logrus.FieldLogger
}

func NewWorkflow(
	query InterfaceQuery,
	mutator InterfaceMutator,
	store BackupStore,
	random RandomSource,
	reporter Reporter,
	logger logrus.FieldLogger,
) *Workflow {
	return &Workflow{
		query:    query,
		mutator:  mutator,
		store:    store,
		random:   random,
		reporter: reporter,
		logger:   logger,
	}
}

// Run executes exactly one of restore or change.
func (w *Workflow) Run(request Request) error {
	switch request.Mode() {
	case mode.Restore:
		return w.Restore(request.Interface)
	default:
		return w.Change(request)
	}
}

// Change saves the current address and applies the requested one.
func (w *Workflow) Change(request Request) error {
	ifName := request.Interface
	log := w.logger.WithField("interface", ifName)

	exists, listErr := w.query.HasInterface(ifName)
	if listErr != nil {
		log.WithError(listErr).Warn("interface enumeration failed")
		return failure.NewInterfaceNotFound(ifName)
	}
	if !exists {
		return failure.NewInterfaceNotFound(ifName)
	}

	current, queryErr := w.query.CurrentAddress(ifName)
	if queryErr != nil {
		return failure.NewQueryFailure(ifName, queryErr)
	}
	log.WithField("address", current.String()).Debug("current address")

	if saveErr := w.store.Save(ifName, current); saveErr != nil {
		return saveErr
	}
	w.reporter.Success("Original MAC %s saved for %s", current, ifName)

	target, targetErr := w.resolveTarget(request)
	if targetErr != nil {
		return targetErr
	}

	if applyErr := w.apply(ifName, target); applyErr != nil {
		return applyErr
	}
	w.reporter.Success("MAC successfully changed to %s", target)
	return nil
}

// Restore applies the saved original address. It does not require the interface to
// currently report an address.
func (w *Workflow) Restore(ifName string) error {
	original, ok := w.store.Load(ifName)
	if !ok {
		return failure.NewBackupAbsent(ifName)
	}

	if applyErr := w.apply(ifName, original); applyErr != nil {
		return applyErr
	}
	w.reporter.Success("Restored original MAC: %s", original)
	return nil
}

func (w *Workflow) resolveTarget(request Request) (mac.Address, error) {
	if request.Random {
		address, err := w.random()
		if err != nil {
			return mac.Address{}, fmt.Errorf("failed to generate random MAC: %w", err)
		}
		return address, nil
	}

	address, err := mac.Parse(request.Address)
	if err != nil {
		return mac.Address{}, failure.NewUsageError(invalidFormatHint, err)
	}
	return address, nil
}

func (w *Workflow) apply(ifName string, address mac.Address) error {
	w.reporter.Progress("Changing MAC address for %s to %s", ifName, address)
	return w.mutator.Apply(ifName, address)
}
