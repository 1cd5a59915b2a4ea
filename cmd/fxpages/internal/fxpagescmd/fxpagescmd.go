// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package fxpagescmd provides shared wiring for fxpages commands that need
// the update pipeline (reading config, constructing the rate client).
package fxpagescmd

import (
	"fmt"
	"net/http"
	"os"

	"buf.build/go/app/appext"
	"github.com/bufdev/fxpages/internal/fxpages/fxpagesconfig"
	"github.com/bufdev/fxpages/internal/fxpages/fxpagesdataset"
	"github.com/bufdev/fxpages/internal/fxpages/fxpagespath"
	"github.com/bufdev/fxpages/internal/fxpages/fxpagesupdate"
	"github.com/bufdev/fxpages/internal/pkg/exchangerateapi"
)

// DirFlagName is the shared flag name for the fxpages base directory.
const DirFlagName = "dir"

// NewUpdater constructs an Updater from the appext container by reading the
// config file from the base directory and creating the rate client.
func NewUpdater(container appext.Container, dirPath string) (fxpagesupdate.Updater, error) {
	// Read and validate the configuration file.
	config, err := fxpagesconfig.ReadConfig(dirPath)
	if err != nil {
		return nil, err
	}
	return fxpagesupdate.NewUpdater(container.Logger(), config, NewRateClient(config)), nil
}

// NewRateClient constructs a rate client with the configured endpoint and timeout.
func NewRateClient(config *fxpagesconfig.Config) exchangerateapi.Client {
	return exchangerateapi.NewClient(
		config.APIURL,
		exchangerateapi.ClientWithHTTPClient(&http.Client{Timeout: config.APITimeout}),
	)
}

// ReadPublishedDataset loads the published dataset from the configured docs
// directory. Returns a clear error message directing users to run
// "fxpages update" if no dataset has been published yet.
func ReadPublishedDataset(config *fxpagesconfig.Config) (*fxpagesdataset.Dataset, error) {
	filePath := fxpagespath.DatasetFilePath(config.DocsDirPath)
	dataset, err := fxpagesdataset.LoadDataset(filePath, config.Currencies)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no dataset found at %s, run \"fxpages update\" to create one", filePath)
		}
		return nil, err
	}
	return dataset, nil
}
