// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package configvalidate implements the "config validate" command.
package configvalidate

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/fxpages/cmd/fxpages/internal/fxpagescmd"
	"github.com/bufdev/fxpages/internal/fxpages/fxpagesconfig"
	"github.com/bufdev/fxpages/internal/fxpages/fxpagespath"
	"github.com/spf13/pflag"
)

// NewCommand returns a new config validate command that validates the configuration file.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Validate the configuration file",
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
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Dir, fxpagescmd.DirFlagName, ".", "The fxpages directory containing fxpages.yaml")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	if err := fxpagesconfig.ValidateConfig(flags.Dir); err != nil {
		return err
	}
	_, err := fmt.Fprintf(container.Stdout(), "%s is valid\n", fxpagespath.ConfigFilePath(flags.Dir))
	return err
}
