package archive

import (
	"os"
	"path/filepath"
)

// Locate returns dir/<platform>/<library name> if it exists as a regular file.
func Locate(dir, modelID string, p Platform) (string, error) {
	path := filepath.Join(dir, string(p), LibraryName(modelID, p))
	if err := checkBinary(path); err != nil {
		return "", err
	}
	return path, nil
}

func checkBinary(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return &BinaryNotFoundError{Path: path}
	}
	return nil
}
