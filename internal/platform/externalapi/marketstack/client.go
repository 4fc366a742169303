package marketstack

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tradefolio_backend/internal/feature/portfolio/domain/entity"
	"tradefolio_backend/internal/feature/portfolio/usecase"
	"tradefolio_backend/internal/platform/externalapi/marketstack/dto"
	"tradefolio_backend/internal/shared/ratelimiter"
)

// Client fetches quotes from the Marketstack API. It never returns an error
// to its callers: any upstream failure is absorbed by synthesizing one
// fallback QuoteRecord per requested symbol, so reconciliation never blocks
// on a provider outage. A single request is made per invocation, with no
// retries.
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// Compile-time check that Client implements IntradayQuoteProvider.
var _ usecase.IntradayQuoteProvider = (*Client)(nil)

// NewClient creates a new Client with the given config, HTTP client, and
// rate limiter. limiter may be nil.
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

// FetchEndOfDay returns the latest end-of-day quote for each symbol.
// On upstream failure the result is fully synthetic; on success it carries
// whatever the provider returned, which may omit unknown symbols.
func (c *Client) FetchEndOfDay(ctx context.Context, symbols []string) []entity.QuoteRecord {
	if len(symbols) == 0 {
		return nil
	}

	quotes, err := c.fetch(ctx, "/eod", symbols, nil)
	if err != nil {
		slog.Warn("marketstack eod fetch failed, serving fallback quotes", "error", err, "symbols", len(symbols))
		return c.fallback(symbols)
	}
	return quotes
}

// FetchIntraday returns the latest intraday quote for each symbol, falling
// back to end-of-day data when the intraday endpoint fails (it is not
// available on every plan).
func (c *Client) FetchIntraday(ctx context.Context, symbols []string) []entity.QuoteRecord {
	if len(symbols) == 0 {
		return nil
	}

	quotes, err := c.fetch(ctx, "/intraday", symbols, url.Values{"interval": {"1min"}})
	if err != nil {
		slog.Warn("marketstack intraday fetch failed, falling back to eod", "error", err)
		return c.FetchEndOfDay(ctx, symbols)
	}
	return quotes
}

// fetch performs one request against the given endpoint and normalizes the
// rows into QuoteRecords.
func (c *Client) fetch(ctx context.Context, endpoint string, symbols []string, extra url.Values) ([]entity.QuoteRecord, error) {
	q := url.Values{}
	q.Set("access_key", c.cfg.APIKey)
	q.Set("symbols", strings.Join(symbols, ","))
	q.Set("limit", strconv.Itoa(len(symbols)))
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}

	u := fmt.Sprintf("%s%s?%s", c.cfg.BaseURL, endpoint, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	if c.limiter != nil {
		c.limiter.WaitIfNeeded()
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("marketstack http %d", res.StatusCode)
	}

	var body dto.EndOfDayResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Error != nil {
		return nil, fmt.Errorf("marketstack: %s", body.Error.Message)
	}

	quotes := make([]entity.QuoteRecord, 0, len(body.Data))
	for _, row := range body.Data {
		pct := 0.0
		if row.Open != 0 {
			pct = round2((row.Close - row.Open) / row.Open * 100)
		}
		quotes = append(quotes, entity.QuoteRecord{
			Symbol:        row.Symbol,
			Price:         row.Close,
			Open:          row.Open,
			High:          row.High,
			Low:           row.Low,
			Volume:        int64(row.Volume),
			Date:          asOfDate(row.Date),
			PercentChange: pct,
			IsDown:        pct < 0,
			Source:        entity.SourceLive,
		})
	}
	return quotes, nil
}

// fallback synthesizes one pseudo-random quote per symbol: price in
// [100, 1100), percent change in [-5, +5). The Source field marks these as
// synthetic so callers and tests can tell degraded data from live data.
func (c *Client) fallback(symbols []string) []entity.QuoteRecord {
	today := time.Now().Format("2006-01-02")
	quotes := make([]entity.QuoteRecord, 0, len(symbols))
	for _, sym := range symbols {
		price := round2(rand.Float64()*1000 + 100)
		pct := round2(rand.Float64()*10 - 5)
		quotes = append(quotes, entity.QuoteRecord{
			Symbol:        sym,
			Price:         price,
			Open:          round2(rand.Float64()*1000 + 100),
			High:          round2(rand.Float64()*1000 + 100),
			Low:           round2(rand.Float64()*1000 + 100),
			Volume:        rand.Int64N(1_000_000),
			Date:          today,
			PercentChange: pct,
			IsDown:        pct < 0,
			Source:        entity.SourceSynthetic,
		})
	}
	return quotes
}

// asOfDate truncates a provider timestamp ("2025-08-27T00:00:00+0000") to
// its date part.
func asOfDate(ts string) string {
	if t, err := time.Parse("2006-01-02T15:04:05-0700", ts); err == nil {
		return t.Format("2006-01-02")
	}
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
