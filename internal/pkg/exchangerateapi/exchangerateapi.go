// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package exchangerateapi provides a client for fetching exchange rates from
// the exchangerate-api.com open endpoint.
//
// The open v4 endpoint is free and does not require an API key. The endpoint
// URL fixes the base currency (e.g., .../v4/latest/EUR); one GET returns the
// latest daily rates for every currency the service knows about.
package exchangerateapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// defaultTimeout is the default HTTP client timeout for rate requests.
const defaultTimeout = 10 * time.Second

// Client is the interface for fetching exchange rates.
type Client interface {
	// LatestRates fetches the latest rates for the endpoint's base currency,
	// restricted to the given currency codes.
	//
	// Codes absent from the response are silently dropped; the result may be
	// a strict subset of the request. An empty result is an error.
	LatestRates(ctx context.Context, currencies []string) (map[string]float64, error)
}

// ClientOption is a functional option for configuring the Client.
type ClientOption func(*client)

// ClientWithHTTPClient sets the HTTP client to use for requests.
func ClientWithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new exchange rate client for the given endpoint URL.
func NewClient(url string, options ...ClientOption) Client {
	c := &client{
		url: url,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// *** PRIVATE ***

type client struct {
	url        string
	httpClient *http.Client
}

// latestResponse is the JSON response from the exchangerate-api.com open endpoint.
type latestResponse struct {
	Rates map[string]float64 `json:"rates"`
}

func (c *client) LatestRates(ctx context.Context, currencies []string) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	var latestResp latestResponse
	if err := json.Unmarshal(body, &latestResp); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	// Restrict the response to the requested codes.
	rates := make(map[string]float64, len(currencies))
	for _, currency := range currencies {
		if rate, ok := latestResp.Rates[currency]; ok {
			rates[currency] = rate
		}
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("response from %s contained none of the requested currencies", c.url)
	}
	return rates, nil
}
