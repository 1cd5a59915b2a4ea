// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package bootstrap implements the "bootstrap" command.
package bootstrap

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/fxpages/cmd/fxpages/internal/fxpagescmd"
	"github.com/bufdev/fxpages/internal/fxpages/fxpagesbootstrap"
	"github.com/bufdev/fxpages/internal/fxpages/fxpagesconfig"
	"github.com/spf13/pflag"
)

// sourceFlagName is the flag name for the source dataset file path.
const sourceFlagName = "source"

// NewCommand returns a new bootstrap command that seeds the docs directory
// from an existing dataset file.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Seed the docs directory from an existing dataset file",
		Long: `Seed the docs directory from an existing dataset file.

Validates the source dataset against the configured currency list, copies it
into the docs directory, and derives latest.json and metadata.json from its
contents. No rates are fetched. Useful when standing up a new deployment from
a dataset exported elsewhere.`,
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
	// Source is the path to the source dataset file.
	Source string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Dir, fxpagescmd.DirFlagName, ".", "The fxpages directory containing fxpages.yaml")
	flagSet.StringVar(&f.Source, sourceFlagName, "", "Path to an existing currency_rates.json to seed from (required)")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	if flags.Source == "" {
		return appcmd.NewInvalidArgumentErrorf("--%s is required", sourceFlagName)
	}
	// Read and validate the configuration file from the base directory.
	config, err := fxpagesconfig.ReadConfig(flags.Dir)
	if err != nil {
		return err
	}
	bootstrapper := fxpagesbootstrap.NewBootstrapper(container.Logger(), config, flags.Source)
	return bootstrapper.Bootstrap()
}
