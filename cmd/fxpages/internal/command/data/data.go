// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package data implements the "data" command group.
package data

import (
	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/fxpages/cmd/fxpages/internal/command/data/datalatest"
	"github.com/bufdev/fxpages/cmd/fxpages/internal/command/data/datastats"
	"github.com/bufdev/fxpages/cmd/fxpages/internal/command/data/datazip"
)

// NewCommand returns a new data command group with dataset inspection and
// archival sub-commands.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	return &appcmd.Command{
		Use:   name,
		Short: "Inspect and archive published data",
		SubCommands: []*appcmd.Command{
			datalatest.NewCommand("latest", builder),
			datastats.NewCommand("stats", builder),
			datazip.NewCommand("zip", builder),
		},
	}
}
