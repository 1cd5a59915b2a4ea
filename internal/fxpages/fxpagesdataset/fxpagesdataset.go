// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package fxpagesdataset provides the cumulative historical rate dataset:
// the model persisted as currency_rates.json, the daily merge into it, and
// the derived artifacts (latest snapshot, metadata) published alongside it.
//
// Rate rows are positional: the row for a day is an array of nullable
// numbers aligned index-for-index to the tracked currency list, with an
// explicit null for every currency the day's fetch did not cover. Rows are
// bucketed by zero-padded year ("2026") and month-day ("08-25") keys, so
// key comparisons order as dates.
package fxpagesdataset

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/bufdev/fxpages/internal/fxpages/fxpagespath"
	"github.com/bufdev/fxpages/internal/pkg/jsonio"
	"github.com/bufdev/fxpages/internal/standard/xtime"
)

// BaseCurrency is the fixed base currency all rates are quoted against.
// The rate endpoint URL fixes the base; this is not configurable.
const BaseCurrency = "EUR"

// Dataset is the full historical rate dataset persisted as currency_rates.json.
type Dataset struct {
	// Metadata is the dataset's embedded metadata block.
	Metadata DatasetMetadata `json:"metadata"`
	// Currencies is the tracked currency list, in rate row column order.
	// It is duplicated from Metadata.Currencies for consumer convenience.
	Currencies []string `json:"currencies"`
	// RatesByYear maps zero-padded year keys ("2026") to maps of zero-padded
	// month-day keys ("08-25") to positional rate rows. A nil entry in a row
	// is persisted as JSON null.
	RatesByYear map[string]map[string][]*float64 `json:"rates_by_year"`
}

// DatasetMetadata is the metadata block embedded in the dataset file.
//
// TotalRecords, EarliestDate, and LatestDate are recomputed from RatesByYear
// on every merge, never carried forward.
type DatasetMetadata struct {
	// BaseCurrency is the base currency all rates are quoted against.
	BaseCurrency string `json:"base_currency"`
	// Currencies is the tracked currency list, in rate row column order.
	Currencies []string `json:"currencies"`
	// DataSource is the label describing where the rates come from.
	DataSource string `json:"data_source"`
	// LastUpdated is the RFC 3339 UTC timestamp of the last merge.
	LastUpdated string `json:"last_updated"`
	// TotalRecords is the number of daily rate rows across all years.
	TotalRecords int `json:"total_records"`
	// EarliestDate is the earliest recorded date (YYYY-MM-DD).
	EarliestDate string `json:"earliest_date,omitempty"`
	// LatestDate is the latest recorded date (YYYY-MM-DD).
	LatestDate string `json:"latest_date,omitempty"`
}

// SchemaError is returned when an existing dataset file does not match the
// expected schema or the configured currency list. It is distinct from
// filesystem and fetch errors: a schema mismatch means the file and the
// configuration disagree, and proceeding would corrupt history.
type SchemaError struct {
	// FilePath is the dataset file that failed validation.
	FilePath string
	// Reason describes the schema violation.
	Reason string
}

// Error implements error.
func (s *SchemaError) Error() string {
	return fmt.Sprintf("dataset %s does not match the expected schema: %s", s.FilePath, s.Reason)
}

// NewDataset returns an empty dataset for the given currency list and data
// source label.
func NewDataset(currencies []string, dataSource string) *Dataset {
	return &Dataset{
		Metadata: DatasetMetadata{
			BaseCurrency: BaseCurrency,
			Currencies:   currencies,
			DataSource:   dataSource,
		},
		Currencies:  currencies,
		RatesByYear: make(map[string]map[string][]*float64),
	}
}

// LoadDataset reads and validates an existing dataset file.
//
// Schema violations (currency list mismatch, malformed keys, wrong row
// lengths) are reported as a *SchemaError. A missing file is reported via
// the underlying os error, so callers can use os.IsNotExist.
func LoadDataset(filePath string, currencies []string) (*Dataset, error) {
	dataset := &Dataset{}
	if err := jsonio.ReadFile(filePath, dataset); err != nil {
		return nil, err
	}
	if err := validateDataset(dataset, filePath, currencies); err != nil {
		return nil, err
	}
	return dataset, nil
}

// LoadOrNewDataset loads an existing dataset file, or returns a new empty
// dataset if the file does not exist. Any other load failure is returned.
func LoadOrNewDataset(filePath string, currencies []string, dataSource string) (*Dataset, error) {
	dataset, err := LoadDataset(filePath, currencies)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDataset(currencies, dataSource), nil
		}
		return nil, err
	}
	return dataset, nil
}

// Merge records the fetched rates as the positional row for the given day
// and refreshes the dataset metadata.
//
// A currency with no fetched rate gets a nil (JSON null) entry, preserving
// row alignment. Merging the same day twice overwrites the day's row, so
// reruns are idempotent. TotalRecords, EarliestDate, and LatestDate are
// recomputed from the full structure, and LastUpdated is set from now.
func (d *Dataset) Merge(fetchedRates map[string]float64, today xtime.Date, now time.Time) {
	yearKey := fmt.Sprintf("%04d", today.Year)
	dayKey := fmt.Sprintf("%02d-%02d", today.Month, today.Day)
	row := make([]*float64, len(d.Currencies))
	for i, currency := range d.Currencies {
		if rate, ok := fetchedRates[currency]; ok {
			row[i] = &rate
		}
	}
	if d.RatesByYear == nil {
		d.RatesByYear = make(map[string]map[string][]*float64)
	}
	if d.RatesByYear[yearKey] == nil {
		d.RatesByYear[yearKey] = make(map[string][]*float64)
	}
	d.RatesByYear[yearKey][dayKey] = row
	d.Refresh(now)
}

// Refresh recomputes the record count and date bounds from the rate
// structure and stamps the last-updated time. Merge calls this; it is also
// used when republishing a dataset that was not produced by a merge.
func (d *Dataset) Refresh(now time.Time) {
	totalRecords := 0
	var earliestDate string
	var latestDate string
	for yearKey, days := range d.RatesByYear {
		totalRecords += len(days)
		for dayKey := range days {
			// Zero-padded keys compare lexically in date order.
			date := yearKey + "-" + dayKey
			if earliestDate == "" || date < earliestDate {
				earliestDate = date
			}
			if date > latestDate {
				latestDate = date
			}
		}
	}
	d.Metadata.BaseCurrency = BaseCurrency
	d.Metadata.Currencies = d.Currencies
	d.Metadata.TotalRecords = totalRecords
	d.Metadata.EarliestDate = earliestDate
	d.Metadata.LatestDate = latestDate
	d.Metadata.LastUpdated = now.UTC().Format(time.RFC3339)
}

// WriteArtifacts writes the dataset and its derived views to the docs
// directory: the dataset as compact JSON, the latest snapshot and metadata
// as indented JSON. Returns the derived metadata for reporting.
//
// The snapshot is derived before anything is written, so an empty dataset
// fails without touching any published file. The dataset and snapshot files
// are written before the metadata so its file sizes reflect what was just
// published.
func WriteArtifacts(dataset *Dataset, docsDirPath string, now time.Time) (*Metadata, error) {
	snapshot, err := dataset.DeriveLatestSnapshot(now)
	if err != nil {
		return nil, err
	}
	datasetPath := fxpagespath.DatasetFilePath(docsDirPath)
	if err := jsonio.WriteFile(datasetPath, dataset); err != nil {
		return nil, fmt.Errorf("writing dataset: %w", err)
	}
	latestPath := fxpagespath.LatestFilePath(docsDirPath)
	if err := jsonio.WriteFileIndent(latestPath, snapshot); err != nil {
		return nil, fmt.Errorf("writing latest snapshot: %w", err)
	}
	datasetInfo, err := os.Stat(datasetPath)
	if err != nil {
		return nil, fmt.Errorf("sizing dataset file: %w", err)
	}
	latestInfo, err := os.Stat(latestPath)
	if err != nil {
		return nil, fmt.Errorf("sizing latest snapshot file: %w", err)
	}
	metadata := NewMetadata(dataset, datasetInfo.Size(), latestInfo.Size(), now)
	if err := jsonio.WriteFileIndent(fxpagespath.MetadataFilePath(docsDirPath), metadata); err != nil {
		return nil, fmt.Errorf("writing metadata: %w", err)
	}
	return metadata, nil
}

// *** PRIVATE ***

// validateDataset checks a loaded dataset against the expected schema and
// the configured currency list.
func validateDataset(dataset *Dataset, filePath string, currencies []string) error {
	if !slices.Equal(dataset.Currencies, currencies) {
		return &SchemaError{
			FilePath: filePath,
			Reason:   fmt.Sprintf("dataset tracks currencies %v, configured currencies are %v", dataset.Currencies, currencies),
		}
	}
	if !slices.Equal(dataset.Metadata.Currencies, dataset.Currencies) {
		return &SchemaError{
			FilePath: filePath,
			Reason:   "metadata currency list does not match the top-level currency list",
		}
	}
	if dataset.Metadata.BaseCurrency != BaseCurrency {
		return &SchemaError{
			FilePath: filePath,
			Reason:   fmt.Sprintf("base currency is %q, expected %q", dataset.Metadata.BaseCurrency, BaseCurrency),
		}
	}
	for yearKey, days := range dataset.RatesByYear {
		if !isYearKey(yearKey) {
			return &SchemaError{
				FilePath: filePath,
				Reason:   fmt.Sprintf("invalid year key %q, expected a zero-padded four-digit year", yearKey),
			}
		}
		if len(days) == 0 {
			return &SchemaError{
				FilePath: filePath,
				Reason:   fmt.Sprintf("year %q has no rate rows", yearKey),
			}
		}
		for dayKey, row := range days {
			if _, err := xtime.ParseDate(yearKey + "-" + dayKey); err != nil {
				return &SchemaError{
					FilePath: filePath,
					Reason:   fmt.Sprintf("invalid day key %q in year %q, expected zero-padded MM-DD", dayKey, yearKey),
				}
			}
			if len(row) != len(currencies) {
				return &SchemaError{
					FilePath: filePath,
					Reason:   fmt.Sprintf("rate row for %s-%s has %d entries, expected %d", yearKey, dayKey, len(row), len(currencies)),
				}
			}
		}
	}
	return nil
}

// isYearKey reports whether s is a zero-padded four-digit year.
func isYearKey(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
