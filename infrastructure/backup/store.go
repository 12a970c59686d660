package backup

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"

	"macchanger/domain/failure"
	"macchanger/domain/mac"
)

// Store keeps original addresses in a single JSON document. Every save is a full
// read-modify-write; concurrent writers are not coordinated.
type Store struct {
	path   string
	logger logrus.FieldLogger
}

func NewStore(path string, logger logrus.FieldLogger) *Store {
	if path == "" {
		path = DefaultFileName
	}
	return &Store{
		path:   path,
		logger: logger,
	}
}

func (s *Store) Path() string {
	return s.path
}

// Save upserts the address for ifName. A missing file is treated as empty, any other read
// problem or a failed write is returned as failure.BackupIOError.
func (s *Store) Save(ifName string, address mac.Address) error {
	record, readErr := newReader(s.path).read()
	if readErr != nil {
		if !errors.Is(readErr, os.ErrNotExist) {
			return failure.NewBackupIOError(s.path, readErr)
		}
		record = Record{}
	}

	record[ifName] = address.String()
	if writeErr := newWriter(s.path).write(record); writeErr != nil {
		return failure.NewBackupIOError(s.path, writeErr)
	}

	s.logger.WithFields(logrus.Fields{
		"interface": ifName,
		"address":   address.String(),
		"path":      s.path,
	}).Debug("saved original address")
	return nil
}

// Load returns the saved address for ifName. Missing, unreadable or corrupt files and
// unparsable entries all count as "no backup".
func (s *Store) Load(ifName string) (mac.Address, bool) {
	record, readErr := newReader(s.path).read()
	if readErr != nil {
		s.logger.WithError(readErr).Debug("no usable backup file")
		return mac.Address{}, false
	}

	text, ok := record[ifName]
	if !ok {
		return mac.Address{}, false
	}

	address, parseErr := mac.Parse(text)
	if parseErr != nil {
		s.logger.WithError(parseErr).WithField("interface", ifName).Warn("ignoring malformed backup entry")
		return mac.Address{}, false
	}
	return address, true
}

// Entries returns a copy of everything saved so far; an unusable file yields an empty record.
func (s *Store) Entries() Record {
	record, readErr := newReader(s.path).read()
	if readErr != nil {
		return Record{}
	}
	return record
}
