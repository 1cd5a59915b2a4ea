// Copyright 2026 Peter Edge
//
// All rights reserved.

package exchangerateapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLatestRates(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"base":"EUR","date":"2026-08-25","rates":{"USD":1.08,"GBP":0.86,"JPY":163.2,"XYZ":42.0}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	rates, err := client.LatestRates(context.Background(), []string{"USD", "GBP", "CHF"})
	require.NoError(t, err)
	// Only requested codes present in the response come back; CHF is absent
	// from the response and XYZ was not requested.
	require.Equal(t, map[string]float64{"USD": 1.08, "GBP": 0.86}, rates)
}

func TestLatestRatesErrors(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		desc    string
		handler http.HandlerFunc
	}{
		{
			desc: "non-200 status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "service unavailable", http.StatusServiceUnavailable)
			},
		},
		{
			desc: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"rates": broken`))
			},
		},
		{
			desc: "no requested currencies in response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"rates":{"XYZ":42.0}}`))
			},
		},
		{
			desc: "empty rates",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"rates":{}}`))
			},
		},
	} {
		server := httptest.NewServer(test.handler)
		client := NewClient(server.URL)
		_, err := client.LatestRates(context.Background(), []string{"USD", "GBP"})
		require.Error(t, err, test.desc)
		server.Close()
	}
}

func TestLatestRatesContextCanceled(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := NewClient(server.URL)
	_, err := client.LatestRates(ctx, []string{"USD"})
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
}
