package backup

import (
	"encoding/json"
	"os"
)

type writer struct {
	path string
}

func newWriter(path string) *writer {
	return &writer{
		path: path,
	}
}

func (w *writer) write(record Record) (err error) {
	jsonContent, jsonContentErr := json.MarshalIndent(record, "", "    ")
	if jsonContentErr != nil {
		return jsonContentErr
	}
	jsonContent = append(jsonContent, '\n')

	file, fileErr := os.OpenFile(w.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if fileErr != nil {
		return fileErr
	}
	defer func(file *os.File) {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}(file)

	_, writeErr := file.Write(jsonContent)
	if writeErr != nil {
		return writeErr
	}

	return nil
}
