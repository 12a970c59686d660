package backup

import (
	"encoding/json"
	"fmt"
	"os"
)

type reader struct {
	path string
}

func newReader(path string) *reader {
	return &reader{
		path: path,
	}
}

// read returns os.ErrNotExist (wrapped) when the file is missing, so callers can tell it from
// a corrupt file.
func (r *reader) read() (Record, error) {
	fileBytes, readFileErr := os.ReadFile(r.path)
	if readFileErr != nil {
		return nil, fmt.Errorf("backup file (%s) is unreadable: %w", r.path, readFileErr)
	}

	record := Record{}
	deserializationErr := json.Unmarshal(fileBytes, &record)
	if deserializationErr != nil {
		return nil, fmt.Errorf("backup file (%s) is invalid: %w", r.path, deserializationErr)
	}
	if record == nil {
		// a literal null document
		record = Record{}
	}

	return record, nil
}
