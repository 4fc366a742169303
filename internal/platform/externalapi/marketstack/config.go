// Package marketstack provides a client for the Marketstack market data API.
package marketstack

import "time"

// Config holds configuration for the Marketstack API client.
type Config struct {
	APIKey  string        // access key for authentication
	BaseURL string        // base URL for the API (e.g., "https://api.marketstack.com/v2")
	Timeout time.Duration // HTTP request timeout
}
