// Copyright 2026 Peter Edge
//
// All rights reserved.

package fxpagesbootstrap

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bufdev/fxpages/internal/fxpages/fxpagesconfig"
	"github.com/bufdev/fxpages/internal/fxpages/fxpagesdataset"
	"github.com/bufdev/fxpages/internal/fxpages/fxpagespath"
	"github.com/bufdev/fxpages/internal/pkg/jsonio"
	"github.com/bufdev/fxpages/internal/standard/xtime"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.August, 25, 6, 0, 12, 0, time.UTC)

func TestBootstrap(t *testing.T) {
	t.Parallel()
	// Build a source dataset file outside the docs directory.
	sourceFilePath := filepath.Join(t.TempDir(), "seed.json")
	source := fxpagesdataset.NewDataset([]string{"USD", "GBP"}, "test source")
	source.Merge(map[string]float64{"USD": 1.04, "GBP": 0.83}, xtime.Date{Year: 2025, Month: 7, Day: 1}, testNow)
	source.Merge(map[string]float64{"USD": 1.08}, xtime.Date{Year: 2026, Month: 8, Day: 25}, testNow)
	require.NoError(t, jsonio.WriteFile(sourceFilePath, source))

	config := &fxpagesconfig.Config{
		DocsDirPath: filepath.Join(t.TempDir(), "docs"),
		DataSource:  "test source",
		Currencies:  []string{"USD", "GBP"},
	}
	bootstrapper := NewBootstrapper(
		newTestLogger(),
		config,
		sourceFilePath,
		BootstrapperWithNowFunc(func() time.Time { return testNow }),
	)
	require.NoError(t, bootstrapper.Bootstrap())

	// The dataset is republished into the docs directory.
	dataset := &fxpagesdataset.Dataset{}
	require.NoError(t, jsonio.ReadFile(fxpagespath.DatasetFilePath(config.DocsDirPath), dataset))
	require.Equal(t, 2, dataset.Metadata.TotalRecords)
	require.Equal(t, "2025-07-01", dataset.Metadata.EarliestDate)

	// The snapshot reflects the source's maximum-date row.
	snapshot := &fxpagesdataset.LatestSnapshot{}
	require.NoError(t, jsonio.ReadFile(fxpagespath.LatestFilePath(config.DocsDirPath), snapshot))
	require.Equal(t, "2026-08-25", snapshot.Date)
	require.Equal(t, map[string]float64{"USD": 1.08}, snapshot.Rates)

	metadata := &fxpagesdataset.Metadata{}
	require.NoError(t, jsonio.ReadFile(fxpagespath.MetadataFilePath(config.DocsDirPath), metadata))
	require.Equal(t, []string{"EUR", "USD", "GBP"}, metadata.SupportedCurrencies)
	require.Equal(t, 2, metadata.TotalRecords)
}

func TestBootstrapMissingSource(t *testing.T) {
	t.Parallel()
	config := &fxpagesconfig.Config{
		DocsDirPath: filepath.Join(t.TempDir(), "docs"),
		Currencies:  []string{"USD"},
	}
	bootstrapper := NewBootstrapper(newTestLogger(), config, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, bootstrapper.Bootstrap())
	// Nothing was published.
	_, err := os.Stat(config.DocsDirPath)
	require.True(t, os.IsNotExist(err))
}

func TestBootstrapSchemaMismatch(t *testing.T) {
	t.Parallel()
	sourceFilePath := filepath.Join(t.TempDir(), "seed.json")
	source := fxpagesdataset.NewDataset([]string{"USD"}, "test source")
	source.Merge(map[string]float64{"USD": 1.08}, xtime.Date{Year: 2026, Month: 8, Day: 25}, testNow)
	require.NoError(t, jsonio.WriteFile(sourceFilePath, source))

	// The configured list does not match the source dataset.
	config := &fxpagesconfig.Config{
		DocsDirPath: filepath.Join(t.TempDir(), "docs"),
		Currencies:  []string{"USD", "GBP"},
	}
	bootstrapper := NewBootstrapper(newTestLogger(), config, sourceFilePath)
	err := bootstrapper.Bootstrap()
	require.Error(t, err)
	schemaErr := &fxpagesdataset.SchemaError{}
	require.ErrorAs(t, err, &schemaErr)
}

func TestBootstrapEmptySource(t *testing.T) {
	t.Parallel()
	sourceFilePath := filepath.Join(t.TempDir(), "seed.json")
	source := fxpagesdataset.NewDataset([]string{"USD"}, "test source")
	require.NoError(t, jsonio.WriteFile(sourceFilePath, source))

	docsDirPath := filepath.Join(t.TempDir(), "docs")
	config := &fxpagesconfig.Config{
		DocsDirPath: docsDirPath,
		Currencies:  []string{"USD"},
	}
	bootstrapper := NewBootstrapper(newTestLogger(), config, sourceFilePath)
	require.Error(t, bootstrapper.Bootstrap())
	// An empty source has nothing to snapshot, and no artifact is written.
	entries, err := os.ReadDir(docsDirPath)
	require.NoError(t, err)
	require.Empty(t, entries)
}

// *** PRIVATE ***

func newTestLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
