// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package datalatest implements the "data latest" command.
package datalatest

import (
	"context"
	"os"
	"strconv"
	"time"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/fxpages/cmd/fxpages/internal/fxpagescmd"
	"github.com/bufdev/fxpages/internal/fxpages/fxpagesconfig"
	"github.com/bufdev/fxpages/internal/pkg/cliio"
	"github.com/spf13/pflag"
)

// formatFlagName is the flag name for the output format.
const formatFlagName = "format"

// NewCommand returns a new data latest command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Display the most recent day of rates",
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
	// Derive the latest-day view from the most recent rate row.
	snapshot, err := dataset.DeriveLatestSnapshot(time.Now())
	if err != nil {
		return err
	}
	// Write output in the requested format.
	writer := os.Stdout
	switch format {
	case cliio.FormatTable, cliio.FormatCSV:
		headers := []string{"CURRENCY", "RATE", "DATE"}
		// Rows follow the dataset column order. Currencies with no rate
		// recorded on the latest date are omitted.
		rows := make([][]string, 0, len(snapshot.Rates))
		for _, currency := range dataset.Currencies {
			rate, ok := snapshot.Rates[currency]
			if !ok {
				continue
			}
			rows = append(rows, []string{
				currency,
				strconv.FormatFloat(rate, 'f', -1, 64),
				snapshot.Date,
			})
		}
		if format == cliio.FormatTable {
			return cliio.WriteTable(writer, headers, rows)
		}
		records := make([][]string, 0, len(rows)+1)
		records = append(records, headers)
		records = append(records, rows...)
		return cliio.WriteCSVRecords(writer, records)
	case cliio.FormatJSON:
		return cliio.WriteJSON(writer, snapshot)
	default:
		return appcmd.NewInvalidArgumentErrorf("unsupported format: %s", format)
	}
}
