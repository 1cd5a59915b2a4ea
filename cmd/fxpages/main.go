// Copyright 2026 Peter Edge
//
// All rights reserved.

package main

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/fxpages/cmd/fxpages/internal/command/bootstrap"
	"github.com/bufdev/fxpages/cmd/fxpages/internal/command/config"
	"github.com/bufdev/fxpages/cmd/fxpages/internal/command/data"
	"github.com/bufdev/fxpages/cmd/fxpages/internal/command/debug"
	"github.com/bufdev/fxpages/cmd/fxpages/internal/command/update"
)

func main() {
	appcmd.Main(context.Background(), newRootCommand("fxpages"))
}

// newRootCommand creates the root fxpages command with all sub-commands.
func newRootCommand(name string) *appcmd.Command {
	builder := appext.NewBuilder(name)
	return &appcmd.Command{
		Use:                 name,
		Short:               "Publish daily exchange rate data as static JSON",
		BindPersistentFlags: builder.BindRoot,
		SubCommands: []*appcmd.Command{
			bootstrap.NewCommand("bootstrap", builder),
			config.NewCommand("config", builder),
			data.NewCommand("data", builder),
			debug.NewCommand("debug", builder),
			update.NewCommand("update", builder),
		},
	}
}
