// Copyright 2026 Peter Edge
//
// All rights reserved.

package fxpagesconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInitConfigRoundTrip(t *testing.T) {
	t.Parallel()
	dirPath := t.TempDir()
	filePath, err := InitConfig(dirPath)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dirPath, "fxpages.yaml"), filePath)

	// The generated template parses, validates, and carries the defaults.
	config, err := ReadConfig(dirPath)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dirPath, "docs"), config.DocsDirPath)
	require.Equal(t, "European Central Bank via exchangerate-api.com", config.DataSource)
	require.Len(t, config.Currencies, 29)
	require.Equal(t, "AUD", config.Currencies[0])
	require.Equal(t, "BGN", config.Currencies[28])
	require.NotContains(t, config.Currencies, "EUR")
	require.Equal(t, "https://api.exchangerate-api.com/v4/latest/EUR", config.APIURL)
	require.Equal(t, 10*time.Second, config.APITimeout)

	// A second init must not clobber the existing file.
	_, err = InitConfig(dirPath)
	require.Error(t, err)
}

func TestReadConfigMissing(t *testing.T) {
	t.Parallel()
	_, err := ReadConfig(t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "fxpages config init")
}

func TestReadConfigUnknownField(t *testing.T) {
	t.Parallel()
	dirPath := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dirPath, "fxpages.yaml"),
		[]byte("version: v1\nunknown_field: true\n"),
		0o644,
	))
	_, err := ReadConfig(dirPath)
	require.Error(t, err)
}

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()
	config, err := NewConfig(ExternalConfig{Version: "v1"}, "/base")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/base", "docs"), config.DocsDirPath)
	require.Len(t, config.Currencies, 29)
	require.Equal(t, 10*time.Second, config.APITimeout)
}

func TestNewConfigAbsoluteDocsDir(t *testing.T) {
	t.Parallel()
	config, err := NewConfig(ExternalConfig{Version: "v1", DocsDir: "/srv/site/docs"}, "/base")
	require.NoError(t, err)
	require.Equal(t, "/srv/site/docs", config.DocsDirPath)
}

func TestNewConfigErrors(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		desc           string
		externalConfig ExternalConfig
	}{
		{
			desc:           "missing version",
			externalConfig: ExternalConfig{},
		},
		{
			desc:           "unsupported version",
			externalConfig: ExternalConfig{Version: "v2"},
		},
		{
			desc:           "lowercase currency code",
			externalConfig: ExternalConfig{Version: "v1", Currencies: []string{"usd"}},
		},
		{
			desc:           "short currency code",
			externalConfig: ExternalConfig{Version: "v1", Currencies: []string{"US"}},
		},
		{
			desc:           "duplicate currency code",
			externalConfig: ExternalConfig{Version: "v1", Currencies: []string{"USD", "GBP", "USD"}},
		},
		{
			desc:           "base currency in list",
			externalConfig: ExternalConfig{Version: "v1", Currencies: []string{"USD", "EUR"}},
		},
		{
			desc:           "malformed api timeout",
			externalConfig: ExternalConfig{Version: "v1", API: ExternalAPIConfig{Timeout: "ten seconds"}},
		},
		{
			desc:           "negative api timeout",
			externalConfig: ExternalConfig{Version: "v1", API: ExternalAPIConfig{Timeout: "-5s"}},
		},
	} {
		_, err := NewConfig(test.externalConfig, "/base")
		require.Error(t, err, test.desc)
	}
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()
	dirPath := t.TempDir()
	_, err := InitConfig(dirPath)
	require.NoError(t, err)
	require.NoError(t, ValidateConfig(dirPath))

	require.NoError(t, os.WriteFile(
		filepath.Join(dirPath, "fxpages.yaml"),
		[]byte("version: v9\n"),
		0o644,
	))
	require.Error(t, ValidateConfig(dirPath))
}
