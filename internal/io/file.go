package ioutils

import (
	"os"
	"path/filepath"
)

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// WriteFile writes data to path with mode 0644, creating the parent
// directory first. An existing file is truncated.
//
// Example:
//
//	err := WriteFile("/home/user/.config/magnet-calculator/settings.json", data)
func WriteFile(path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
