package client

import "fmt"

// RatesClient provides fiat conversion rates for display.
type RatesClient interface {
	GetUSDRate(asset string) (string, error)
}

// MockRatesClient serves fixed rates. No network calls are made.
type MockRatesClient struct {
	rates map[string]string
}

// NewMockRatesClient creates a rates client with fixed display rates.
func NewMockRatesClient() *MockRatesClient {
	return &MockRatesClient{
		rates: map[string]string{
			"ETH":  "3500.00",
			"USDC": "1.00",
		},
	}
}

// GetUSDRate returns the fixed USD rate for an asset.
func (c *MockRatesClient) GetUSDRate(asset string) (string, error) {
	rate, ok := c.rates[asset]
	if !ok {
		return "", fmt.Errorf("no rate for asset: %s", asset)
	}
	return rate, nil
}
