// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"tradefolio_backend/internal/platform/config"
	"tradefolio_backend/internal/platform/externalapi/marketstack"
	platformhttp "tradefolio_backend/internal/platform/http"
	"tradefolio_backend/internal/shared/ratelimiter"
)

// NewQuoteProvider creates a fully configured Marketstack client with a
// tuned HTTP client and a shared rate limiter.
func NewQuoteProvider(cfg config.Config) *marketstack.Client {
	msCfg := marketstack.Config{
		APIKey:  cfg.MarketstackAPIKey,
		BaseURL: cfg.MarketstackBaseURL,
		Timeout: cfg.MarketstackTimeout,
	}
	httpClient := platformhttp.NewHTTPClient(msCfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(5, time.Second) // free tier allows 5 req/s
	return marketstack.NewClient(msCfg, httpClient, limiter)
}
