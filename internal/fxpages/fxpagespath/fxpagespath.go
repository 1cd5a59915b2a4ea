// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package fxpagespath derives file paths from the fxpages base and docs
// directories. All artifact naming is defined here so callers don't
// duplicate path construction logic.
//
// The base directory (--dir flag) contains:
//
//	fxpages.yaml                      Config file
//	docs/ (configurable)              Published artifacts
//	docs/currency_rates.json          Full historical dataset
//	docs/latest.json                  Latest-day snapshot
//	docs/metadata.json                Dataset metadata and statistics
package fxpagespath

import "path/filepath"

const (
	// ConfigFileName is the well-known config file name within the base directory.
	ConfigFileName = "fxpages.yaml"
	// DatasetFileName is the full historical dataset file name within the docs directory.
	DatasetFileName = "currency_rates.json"
	// LatestFileName is the latest-day snapshot file name within the docs directory.
	LatestFileName = "latest.json"
	// MetadataFileName is the dataset metadata file name within the docs directory.
	MetadataFileName = "metadata.json"
)

// ConfigFilePath returns the path to the config file within the base directory.
func ConfigFilePath(dirPath string) string {
	return filepath.Join(dirPath, ConfigFileName)
}

// DatasetFilePath returns the path to the full historical dataset within the docs directory.
func DatasetFilePath(docsDirPath string) string {
	return filepath.Join(docsDirPath, DatasetFileName)
}

// LatestFilePath returns the path to the latest-day snapshot within the docs directory.
func LatestFilePath(docsDirPath string) string {
	return filepath.Join(docsDirPath, LatestFileName)
}

// MetadataFilePath returns the path to the dataset metadata within the docs directory.
func MetadataFilePath(docsDirPath string) string {
	return filepath.Join(docsDirPath, MetadataFileName)
}
