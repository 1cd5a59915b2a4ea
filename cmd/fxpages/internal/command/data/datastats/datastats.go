// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package datastats implements the "data stats" command.
package datastats

import (
	"context"
	"os"
	"strconv"
	"time"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/fxpages/cmd/fxpages/internal/fxpagescmd"
	"github.com/bufdev/fxpages/internal/fxpages/fxpagesconfig"
	"github.com/bufdev/fxpages/internal/fxpages/fxpagesdataset"
	"github.com/bufdev/fxpages/internal/fxpages/fxpagespath"
	"github.com/bufdev/fxpages/internal/pkg/cliio"
	"github.com/spf13/pflag"
)

// formatFlagName is the flag name for the output format.
const formatFlagName = "format"

// NewCommand returns a new data stats command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Display dataset statistics",
		Args:  appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Dir is the base directory containing fxpages.yaml.
	Dir string
	// Format is the output format (table, csv, json).
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Dir, fxpagescmd.DirFlagName, ".", "The fxpages directory containing fxpages.yaml")
	flagSet.StringVar(&f.Format, formatFlagName, "table", "Output format (table, csv, json)")
}

func run(_ context.Context, _ appext.Container, flags *flags) error {
	format, err := cliio.ParseFormat(flags.Format)
	if err != nil {
		return appcmd.NewInvalidArgumentError(err.Error())
	}
	// Read and validate the configuration file from the base directory.
	config, err := fxpagesconfig.ReadConfig(flags.Dir)
	if err != nil {
		return err
	}
	// Load the historical dataset published to the docs directory.
	dataset, err := fxpagescmd.ReadPublishedDataset(config)
	if err != nil {
		return err
	}
	// Compute the summary over the dataset and the published file sizes. The
	// snapshot file may not exist yet if only the dataset was copied in.
	metadata := fxpagesdataset.NewMetadata(
		dataset,
		fileSize(fxpagespath.DatasetFilePath(config.DocsDirPath)),
		fileSize(fxpagespath.LatestFilePath(config.DocsDirPath)),
		time.Now(),
	)
	// Write output in the requested format.
	writer := os.Stdout
	switch format {
	case cliio.FormatTable, cliio.FormatCSV:
		headers := []string{"RECORDS", "CURRENCIES", "EARLIEST", "LATEST", "SOURCE", "FULL_DATA_MB", "LATEST_KB"}
		row := []string{
			strconv.Itoa(metadata.TotalRecords),
			strconv.Itoa(metadata.TotalCurrencies),
			metadata.DateRange.Start,
			metadata.DateRange.End,
			metadata.DataSource,
			strconv.FormatFloat(metadata.FileSizes.FullDataMB, 'f', 2, 64),
			strconv.FormatFloat(metadata.FileSizes.LatestKB, 'f', 2, 64),
		}
		if format == cliio.FormatTable {
			return cliio.WriteTable(writer, headers, [][]string{row})
		}
		return cliio.WriteCSVRecords(writer, [][]string{headers, row})
	case cliio.FormatJSON:
		return cliio.WriteJSON(writer, metadata)
	default:
		return appcmd.NewInvalidArgumentErrorf("unsupported format: %s", format)
	}
}

// fileSize returns the size of the file in bytes, or 0 if it does not exist.
func fileSize(filePath string) int64 {
	info, err := os.Stat(filePath)
	if err != nil {
		return 0
	}
	return info.Size()
}
