// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package fxpagesbootstrap provides the bootstrap orchestrator: seed the
// docs directory from an existing dataset file, deriving all artifacts
// without fetching anything.
package fxpagesbootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/bufdev/fxpages/internal/fxpages/fxpagesconfig"
	"github.com/bufdev/fxpages/internal/fxpages/fxpagesdataset"
)

// Bootstrapper is the interface for seeding the docs directory.
type Bootstrapper interface {
	// Bootstrap validates the source dataset against the configured currency
	// list and publishes it with its derived artifacts to the docs directory.
	Bootstrap() error
}

// BootstrapperOption is a functional option for configuring the Bootstrapper.
type BootstrapperOption func(*bootstrapper)

// BootstrapperWithNowFunc sets the function used to determine the current
// time, which drives the last-updated timestamps.
func BootstrapperWithNowFunc(nowFunc func() time.Time) BootstrapperOption {
	return func(b *bootstrapper) {
		b.nowFunc = nowFunc
	}
}

// NewBootstrapper creates a new Bootstrapper that seeds from the given
// source dataset file.
func NewBootstrapper(
	logger *slog.Logger,
	config *fxpagesconfig.Config,
	sourceFilePath string,
	options ...BootstrapperOption,
) Bootstrapper {
	b := &bootstrapper{
		logger:         logger,
		config:         config,
		sourceFilePath: sourceFilePath,
		nowFunc:        time.Now,
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// *** PRIVATE ***

type bootstrapper struct {
	logger         *slog.Logger
	config         *fxpagesconfig.Config
	sourceFilePath string
	nowFunc        func() time.Time
}

func (b *bootstrapper) Bootstrap() error {
	// Step 1: Load and validate the source dataset against the configured
	// currency list. A schema mismatch aborts before anything is written.
	dataset, err := fxpagesdataset.LoadDataset(b.sourceFilePath, b.config.Currencies)
	if err != nil {
		return fmt.Errorf("loading source dataset: %w", err)
	}
	b.logger.Info("source dataset loaded", "path", b.sourceFilePath, "records", dataset.Metadata.TotalRecords)

	// Step 2: Recompute the counters. The source may carry stale values if
	// it was assembled by hand or by an older tool.
	now := b.nowFunc()
	dataset.Refresh(now)

	// Step 3: Create the docs directory and publish all artifacts.
	if err := os.MkdirAll(b.config.DocsDirPath, 0o755); err != nil {
		return fmt.Errorf("creating docs directory: %w", err)
	}
	metadata, err := fxpagesdataset.WriteArtifacts(dataset, b.config.DocsDirPath, now)
	if err != nil {
		return err
	}
	b.logger.Info("bootstrap complete",
		"records", metadata.TotalRecords,
		"earliest_date", metadata.DateRange.Start,
		"latest_date", metadata.DateRange.End,
		"path", b.config.DocsDirPath,
	)
	return nil
}
