// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package update implements the "update" command.
package update

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/fxpages/cmd/fxpages/internal/fxpagescmd"
	"github.com/spf13/pflag"
)

// NewCommand returns a new update command that fetches today's rates and
// regenerates all published artifacts.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Fetch today's rates and regenerate all published artifacts",
		Long: `Fetch today's rates and regenerate all published artifacts.

Makes one GET request to the configured endpoint, merges the returned rates
into the historical dataset as today's row, and rewrites currency_rates.json,
latest.json, and metadata.json in the docs directory. If the fetch fails,
nothing is written and the previously published files stay as they are.

Intended to be run once a day from cron or a CI schedule.`,
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
	// Construct the updater using shared command wiring.
	updater, err := fxpagescmd.NewUpdater(container, flags.Dir)
	if err != nil {
		return err
	}
	return updater.Update(ctx)
}
