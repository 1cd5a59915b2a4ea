// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package debugprobe implements the "debug probe" command for testing API access.
package debugprobe

import (
	"context"
	"fmt"
	"strconv"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/fxpages/cmd/fxpages/internal/fxpagescmd"
	"github.com/bufdev/fxpages/internal/fxpages/fxpagesconfig"
	"github.com/spf13/pflag"
)

// sampleCurrencies are printed individually when present in the response.
var sampleCurrencies = []string{"USD", "GBP"}

// NewCommand returns a new debug probe command for testing API access.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Probe the exchange rate API without writing anything",
		Long: `Probe the exchange rate API without writing anything.

Makes a single API call with the configured URL and currency list and prints
the number of rates returned plus a small sample. Does not touch the dataset
or the docs directory. Useful for checking API availability and that the
configured currencies are actually present in the response.`,
		Args: appcmd.NoArgs,
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
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Dir, fxpagescmd.DirFlagName, ".", "The fxpages directory containing fxpages.yaml")
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	// Read config for the API URL and currency list.
	config, err := fxpagesconfig.ReadConfig(flags.Dir)
	if err != nil {
		return err
	}
	// Make a single API call with the configured currency list.
	logger := container.Logger()
	logger.Info("probing API", "url", config.APIURL, "currencies", len(config.Currencies))
	rateClient := fxpagescmd.NewRateClient(config)
	rates, err := rateClient.LatestRates(ctx, config.Currencies)
	if err != nil {
		return fmt.Errorf("probe failed: %w", err)
	}
	// Print results to stdout.
	if _, err := fmt.Fprintf(container.Stdout(), "rates: %d\n", len(rates)); err != nil {
		return err
	}
	for _, currency := range sampleCurrencies {
		rate, ok := rates[currency]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(container.Stdout(), "%s: %s\n", currency, strconv.FormatFloat(rate, 'f', -1, 64)); err != nil {
			return err
		}
	}
	return nil
}
