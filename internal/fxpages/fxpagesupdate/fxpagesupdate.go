// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package fxpagesupdate provides the daily update orchestrator: fetch the
// latest rates, merge them into the historical dataset, and regenerate the
// published artifacts.
package fxpagesupdate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/bufdev/fxpages/internal/fxpages/fxpagesconfig"
	"github.com/bufdev/fxpages/internal/fxpages/fxpagesdataset"
	"github.com/bufdev/fxpages/internal/fxpages/fxpagespath"
	"github.com/bufdev/fxpages/internal/pkg/exchangerateapi"
	"github.com/bufdev/fxpages/internal/standard/xtime"
)

// sampleCurrencies are logged after a successful fetch as a quick sanity check.
var sampleCurrencies = []string{"USD", "GBP"}

// Updater is the interface for running the daily rate update.
type Updater interface {
	// Update fetches the latest rates and regenerates all published artifacts.
	Update(ctx context.Context) error
}

// UpdaterOption is a functional option for configuring the Updater.
type UpdaterOption func(*updater)

// UpdaterWithNowFunc sets the function used to determine the current time,
// which drives both the merged day and the last-updated timestamps.
func UpdaterWithNowFunc(nowFunc func() time.Time) UpdaterOption {
	return func(u *updater) {
		u.nowFunc = nowFunc
	}
}

// NewUpdater creates a new Updater with all required dependencies.
func NewUpdater(
	logger *slog.Logger,
	config *fxpagesconfig.Config,
	rateClient exchangerateapi.Client,
	options ...UpdaterOption,
) Updater {
	u := &updater{
		logger:     logger,
		config:     config,
		rateClient: rateClient,
		nowFunc:    time.Now,
	}
	for _, option := range options {
		option(u)
	}
	return u
}

// *** PRIVATE ***

type updater struct {
	logger     *slog.Logger
	config     *fxpagesconfig.Config
	rateClient exchangerateapi.Client
	nowFunc    func() time.Time
}

func (u *updater) Update(ctx context.Context) error {
	// Step 1: Create the docs directory if needed.
	docsDirPath := u.config.DocsDirPath
	if err := os.MkdirAll(docsDirPath, 0o755); err != nil {
		return fmt.Errorf("creating docs directory: %w", err)
	}
	u.logger.Info("docs directory ready", "path", docsDirPath)

	// Step 2: Load the existing dataset, or start a new one on first run.
	// Schema mismatches abort here rather than resetting history.
	datasetPath := fxpagespath.DatasetFilePath(docsDirPath)
	dataset, err := fxpagesdataset.LoadOrNewDataset(datasetPath, u.config.Currencies, u.config.DataSource)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}
	u.logger.Info("dataset loaded", "records", dataset.Metadata.TotalRecords)

	// Step 3: Fetch today's rates. Nothing has been written yet, so a failed
	// fetch leaves every published file untouched.
	rates, err := u.rateClient.LatestRates(ctx, u.config.Currencies)
	if err != nil {
		return fmt.Errorf("fetching rates: %w", err)
	}
	u.logger.Info("rates fetched", "count", len(rates), "requested", len(u.config.Currencies))
	for _, currency := range sampleCurrencies {
		if rate, ok := rates[currency]; ok {
			u.logger.Info("sample rate", "currency", currency, "rate", rate)
		}
	}

	// Step 4: Merge today's row.
	now := u.nowFunc()
	dataset.Merge(rates, xtime.TimeToDate(now), now)

	// Step 5: Publish the dataset and its derived artifacts.
	metadata, err := fxpagesdataset.WriteArtifacts(dataset, docsDirPath, now)
	if err != nil {
		return err
	}
	u.logger.Info("update complete",
		"records", metadata.TotalRecords,
		"earliest_date", metadata.DateRange.Start,
		"latest_date", metadata.DateRange.End,
		"full_data_mb", metadata.FileSizes.FullDataMB,
		"latest_kb", metadata.FileSizes.LatestKB,
	)
	return nil
}
