// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package fxpagesconfig provides configuration parsing and validation for fxpages.
//
// Configuration is stored as fxpages.yaml in the base directory (--dir flag).
// Generated artifacts are written to the configured docs directory within it.
package fxpagesconfig

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bufdev/fxpages/internal/fxpages/fxpagesdataset"
	"github.com/bufdev/fxpages/internal/fxpages/fxpagespath"
	"github.com/bufdev/fxpages/internal/standard/xos"
	"gopkg.in/yaml.v3"
)

// defaultDocsDir is the default docs directory name within the base directory.
const defaultDocsDir = "docs"

// defaultDataSource is the default data source label recorded in artifacts.
const defaultDataSource = "European Central Bank via exchangerate-api.com"

// defaultAPIURL is the default rate endpoint. The URL fixes the base currency.
const defaultAPIURL = "https://api.exchangerate-api.com/v4/latest/EUR"

// defaultAPITimeout is the default HTTP timeout for the rate request.
const defaultAPITimeout = 10 * time.Second

// defaultCurrencies is the default tracked currency list, in dataset column order.
var defaultCurrencies = []string{
	"AUD", "CAD", "CHF", "CZK", "DKK", "GBP", "HKD", "HUF", "JPY", "KRW",
	"NOK", "NZD", "PLN", "SEK", "SGD", "USD", "ZAR", "TRY", "IDR", "MYR",
	"PHP", "THB", "RON", "MXN", "CNY", "BRL", "INR", "ILS", "BGN",
}

// configTemplate is the default configuration file template with comments.
// yaml.v3 does not preserve comments, so we hardcode the template string.
const configTemplate = `# The configuration file version.
#
# Required. The only current valid version is v1.
version: v1
# The directory where generated JSON artifacts are written.
#
# Optional. Relative paths are resolved against the base directory
# containing this file. The default suits GitHub Pages publishing.
docs_dir: docs
# The label recorded as the data source in generated artifacts.
#
# Optional.
data_source: European Central Bank via exchangerate-api.com
# The currencies tracked against the EUR base, in dataset column order.
#
# Optional, defaulting to the list below. Stored rate rows are aligned to
# this list positionally, so once a dataset exists, changing the list fails
# validation on the next update instead of silently corrupting history.
currencies:
  - AUD
  - CAD
  - CHF
  - CZK
  - DKK
  - GBP
  - HKD
  - HUF
  - JPY
  - KRW
  - NOK
  - NZD
  - PLN
  - SEK
  - SGD
  - USD
  - ZAR
  - TRY
  - IDR
  - MYR
  - PHP
  - THB
  - RON
  - MXN
  - CNY
  - BRL
  - INR
  - ILS
  - BGN
# Exchange rate API configuration.
#
# Optional.
api:
  # The endpoint returning the latest rates for the EUR base.
  url: https://api.exchangerate-api.com/v4/latest/EUR
  # The HTTP timeout for the rate request (a Go duration string).
  timeout: 10s
`

// ExternalConfig is the YAML-serializable configuration file structure.
type ExternalConfig struct {
	// Version is the configuration file version (must be "v1").
	Version string `yaml:"version"`
	// DocsDir is the directory where generated artifacts are written.
	DocsDir string `yaml:"docs_dir"`
	// DataSource is the data source label recorded in artifacts.
	DataSource string `yaml:"data_source"`
	// Currencies is the tracked currency list, in dataset column order.
	Currencies []string `yaml:"currencies"`
	// API holds the exchange rate API configuration.
	API ExternalAPIConfig `yaml:"api"`
}

// ExternalAPIConfig holds exchange rate API configuration.
type ExternalAPIConfig struct {
	// URL is the endpoint returning the latest rates for the base currency.
	URL string `yaml:"url"`
	// Timeout is the HTTP timeout as a Go duration string (e.g., "10s").
	Timeout string `yaml:"timeout"`
}

// Config is the validated runtime configuration derived from the config file.
type Config struct {
	// DocsDirPath is the resolved absolute or base-relative docs directory path.
	DocsDirPath string
	// DataSource is the data source label recorded in artifacts.
	DataSource string
	// Currencies is the tracked currency list, in dataset column order.
	// It never contains the base currency.
	Currencies []string
	// APIURL is the rate endpoint URL.
	APIURL string
	// APITimeout is the HTTP timeout for the rate request.
	APITimeout time.Duration
}

// NewConfig validates an ExternalConfig and returns a runtime Config.
// Relative docs directories are resolved against the given base directory.
func NewConfig(externalConfig ExternalConfig, dirPath string) (*Config, error) {
	if externalConfig.Version != "v1" {
		return nil, fmt.Errorf("unsupported config version %q, must be v1", externalConfig.Version)
	}
	docsDir := externalConfig.DocsDir
	if docsDir == "" {
		docsDir = defaultDocsDir
	}
	docsDirPath, err := xos.ExpandHome(docsDir)
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(docsDirPath) {
		docsDirPath = filepath.Join(dirPath, docsDirPath)
	}
	dataSource := externalConfig.DataSource
	if dataSource == "" {
		dataSource = defaultDataSource
	}
	currencies := externalConfig.Currencies
	if len(currencies) == 0 {
		currencies = defaultCurrencies
	}
	seen := make(map[string]bool, len(currencies))
	for _, currency := range currencies {
		if !isCurrencyCode(currency) {
			return nil, fmt.Errorf("invalid currency code %q, must be three uppercase letters", currency)
		}
		if currency == fxpagesdataset.BaseCurrency {
			return nil, fmt.Errorf("currencies must not contain the base currency %s", fxpagesdataset.BaseCurrency)
		}
		if seen[currency] {
			return nil, fmt.Errorf("duplicate currency code %q", currency)
		}
		seen[currency] = true
	}
	apiURL := externalConfig.API.URL
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	apiTimeout := defaultAPITimeout
	if externalConfig.API.Timeout != "" {
		apiTimeout, err = time.ParseDuration(externalConfig.API.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid api.timeout: %w", err)
		}
		if apiTimeout <= 0 {
			return nil, fmt.Errorf("api.timeout must be positive, got %s", apiTimeout)
		}
	}
	return &Config{
		DocsDirPath: docsDirPath,
		DataSource:  dataSource,
		Currencies:  currencies,
		APIURL:      apiURL,
		APITimeout:  apiTimeout,
	}, nil
}

// ReadConfig reads and validates the configuration file from the given base directory.
// Returns a clear error message directing users to run "fxpages config init" if the file is missing.
func ReadConfig(dirPath string) (*Config, error) {
	filePath := fxpagespath.ConfigFilePath(dirPath)
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found at %s, run \"fxpages config init\" to create one", filePath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var externalConfig ExternalConfig
	if err := unmarshalYAMLStrict(data, &externalConfig); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
	}
	return NewConfig(externalConfig, dirPath)
}

// InitConfig creates a new configuration file with a documented template.
// Creates the base directory if it does not exist.
// Returns the path to the created file, or an error if the file already exists.
func InitConfig(dirPath string) (string, error) {
	filePath := fxpagespath.ConfigFilePath(dirPath)
	if _, err := os.Stat(filePath); err == nil {
		return "", fmt.Errorf("configuration file already exists: %s", filePath)
	}
	// Create the base directory if it does not exist.
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", fmt.Errorf("creating base directory: %w", err)
	}
	if err := os.WriteFile(filePath, []byte(configTemplate), 0o644); err != nil {
		return "", err
	}
	return filePath, nil
}

// ValidateConfig reads and validates the configuration file from the given base directory.
func ValidateConfig(dirPath string) error {
	_, err := ReadConfig(dirPath)
	return err
}

// *** PRIVATE ***

// isCurrencyCode reports whether s has the shape of an ISO 4217 currency code.
func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// unmarshalYAMLStrict unmarshals the data as YAML with strict field checking.
// If the data length is 0, this is a no-op.
func unmarshalYAMLStrict(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	yamlDecoder := yaml.NewDecoder(bytes.NewReader(data))
	// Reject unknown fields.
	yamlDecoder.KnownFields(true)
	if err := yamlDecoder.Decode(v); err != nil {
		return fmt.Errorf("could not unmarshal as YAML: %w", err)
	}
	return nil
}
