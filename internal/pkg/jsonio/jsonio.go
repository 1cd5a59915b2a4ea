// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package jsonio provides functions for reading and writing JSON files.
//
// All writes go through a temporary file and an atomic rename so published
// artifacts are never observed half-written.
package jsonio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bufdev/fxpages/internal/standard/xos"
)

// ReadFile reads a JSON file into v.
func ReadFile(filePath string, v any) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", filePath, err)
	}
	return nil
}

// WriteFile writes v as compact JSON to a file.
func WriteFile(filePath string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return writeFile(filePath, data)
}

// WriteFileIndent writes v as two-space-indented JSON to a file.
func WriteFileIndent(filePath string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(filePath, data)
}

// *** PRIVATE ***

func writeFile(filePath string, data []byte) error {
	// Append a trailing newline for clean file formatting.
	data = append(data, '\n')
	return xos.WriteFileAtomic(filePath, data, 0o644)
}
