// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package xos provides extensions to the standard os package.
package xos

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome expands a leading ~ in a path to the user's home directory.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get home directory: %w", err)
	}
	return filepath.Join(homeDir, path[1:]), nil
}

// WriteFileAtomic writes data to the named file via a temporary file and an
// atomic rename, so a reader never observes a partially written file and a
// crashed write never truncates an existing one.
//
// The temporary file is created in the same directory as the target so the
// rename stays on one filesystem.
func WriteFileAtomic(filePath string, data []byte, perm os.FileMode) (retErr error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(filePath), "."+filepath.Base(filePath)+".tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if retErr != nil {
			// Best effort: the rename did not happen, clean up the temporary file.
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()
	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("writing temporary file: %w", err)
	}
	// os.CreateTemp creates the file with 0600, widen to the requested mode.
	if err := tmpFile.Chmod(perm); err != nil {
		return fmt.Errorf("setting temporary file mode: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, filePath); err != nil {
		return fmt.Errorf("renaming temporary file: %w", err)
	}
	return nil
}
