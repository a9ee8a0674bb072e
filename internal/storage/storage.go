// Package storage provides atomic JSON file persistence for the record slot.
//
// Writers always replace the whole file via a temp-file-then-rename, so a
// concurrent reader either sees the previous record or the new one, never a
// torn write. No locking is needed on top of that.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// WriteJSON atomically replaces path with the JSON encoding of data.
// The parent directory is created if needed.
func WriteJSON(path string, data any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tempPath := path + ".tmp"

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tempPath, jsonData, 0o600); err != nil {
		return err
	}

	return os.Rename(tempPath, path)
}

// ReadJSON reads JSON from path into dest.
// Returns os.ErrNotExist if the file doesn't exist (caller should handle).
func ReadJSON(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Remove deletes the file at path. A missing file is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
