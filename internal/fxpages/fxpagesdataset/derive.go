// Copyright 2026 Peter Edge
//
// All rights reserved.

package fxpagesdataset

import (
	"errors"
	"math"
	"time"
)

// LatestSnapshot is the latest-day view published as latest.json.
//
// Unlike the positional dataset rows, rates are keyed by currency code, and
// currencies with a null stored rate are omitted entirely.
type LatestSnapshot struct {
	// Date is the latest recorded date (YYYY-MM-DD).
	Date string `json:"date"`
	// BaseCurrency is the base currency all rates are quoted against.
	BaseCurrency string `json:"base_currency"`
	// Rates maps currency codes to their rate on Date.
	Rates map[string]float64 `json:"rates"`
	// LastUpdated is the RFC 3339 UTC timestamp of the derivation.
	LastUpdated string `json:"last_updated"`
}

// Metadata is the summary view published as metadata.json.
type Metadata struct {
	// BaseCurrency is the base currency all rates are quoted against.
	BaseCurrency string `json:"base_currency"`
	// SupportedCurrencies is the base currency followed by the tracked list.
	SupportedCurrencies []string `json:"supported_currencies"`
	// TotalCurrencies is the length of SupportedCurrencies.
	TotalCurrencies int `json:"total_currencies"`
	// DataSource is the label describing where the rates come from.
	DataSource string `json:"data_source"`
	// LastUpdated is the RFC 3339 UTC timestamp of the derivation.
	LastUpdated string `json:"last_updated"`
	// TotalRecords is the number of daily rate rows across all years.
	TotalRecords int `json:"total_records"`
	// LatestDate is the latest recorded date (YYYY-MM-DD).
	LatestDate string `json:"latest_date"`
	// DateRange is the inclusive recorded date range.
	DateRange DateRange `json:"date_range"`
	// FileSizes reports the on-disk sizes of the published files.
	FileSizes FileSizes `json:"file_sizes"`
}

// DateRange is an inclusive date range in YYYY-MM-DD format.
type DateRange struct {
	// Start is the earliest recorded date.
	Start string `json:"start"`
	// End is the latest recorded date.
	End string `json:"end"`
}

// FileSizes reports published file sizes, rounded to two decimal places.
type FileSizes struct {
	// FullDataMB is the dataset file size in megabytes.
	FullDataMB float64 `json:"full_data_mb"`
	// LatestKB is the snapshot file size in kilobytes.
	LatestKB float64 `json:"latest_kb"`
}

// DeriveLatestSnapshot builds the latest-day view from the most recent rate
// row. Returns an error if the dataset has no recorded days.
func (d *Dataset) DeriveLatestSnapshot(now time.Time) (*LatestSnapshot, error) {
	var latestDate string
	var latestRow []*float64
	for yearKey, days := range d.RatesByYear {
		for dayKey, row := range days {
			// Zero-padded keys compare lexically in date order.
			if date := yearKey + "-" + dayKey; date > latestDate {
				latestDate = date
				latestRow = row
			}
		}
	}
	if latestDate == "" {
		return nil, errors.New("dataset has no rate rows")
	}
	rates := make(map[string]float64, len(d.Currencies))
	for i, currency := range d.Currencies {
		if i < len(latestRow) && latestRow[i] != nil {
			rates[currency] = *latestRow[i]
		}
	}
	return &LatestSnapshot{
		Date:         latestDate,
		BaseCurrency: BaseCurrency,
		Rates:        rates,
		LastUpdated:  now.UTC().Format(time.RFC3339),
	}, nil
}

// NewMetadata builds the summary view from the dataset's refreshed metadata
// and the on-disk sizes of the published dataset and snapshot files.
func NewMetadata(dataset *Dataset, datasetFileSize int64, latestFileSize int64, now time.Time) *Metadata {
	// Config validation guarantees the tracked list never contains the base
	// currency, so prepending it never duplicates.
	supportedCurrencies := make([]string, 0, len(dataset.Currencies)+1)
	supportedCurrencies = append(supportedCurrencies, BaseCurrency)
	supportedCurrencies = append(supportedCurrencies, dataset.Currencies...)
	return &Metadata{
		BaseCurrency:        BaseCurrency,
		SupportedCurrencies: supportedCurrencies,
		TotalCurrencies:     len(supportedCurrencies),
		DataSource:          dataset.Metadata.DataSource,
		LastUpdated:         now.UTC().Format(time.RFC3339),
		TotalRecords:        dataset.Metadata.TotalRecords,
		LatestDate:          dataset.Metadata.LatestDate,
		DateRange: DateRange{
			Start: dataset.Metadata.EarliestDate,
			End:   dataset.Metadata.LatestDate,
		},
		FileSizes: FileSizes{
			FullDataMB: roundTo2(float64(datasetFileSize) / 1024 / 1024),
			LatestKB:   roundTo2(float64(latestFileSize) / 1024),
		},
	}
}

// *** PRIVATE ***

// roundTo2 rounds v to two decimal places.
func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
