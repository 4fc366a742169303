package usecase

import (
	"context"

	"tradefolio_backend/internal/feature/portfolio/domain/entity"
)

// Curated symbol sets for the public market overview. Indian symbols are
// tried first; US symbols serve as the fallback when the provider has no
// data for them.
var (
	overviewPrimarySymbols  = []string{"INFY", "TCS", "RELIANCE", "WIPRO", "HDFCBANK"}
	overviewFallbackSymbols = []string{"AAPL", "MSFT", "GOOGL", "TSLA", "AMZN", "META", "NFLX", "NVDA"}
)

// IntradayQuoteProvider is a QuoteProvider that can also serve intraday
// quotes. Single-stock lookups prefer intraday data for freshness; the
// provider itself degrades to end-of-day when intraday is unavailable.
type IntradayQuoteProvider interface {
	QuoteProvider
	FetchIntraday(ctx context.Context, symbols []string) []entity.QuoteRecord
}

// marketUsecase serves the public, non-user-scoped market endpoints.
type marketUsecase struct {
	quotes IntradayQuoteProvider
}

// NewMarketUsecase creates a new marketUsecase instance.
func NewMarketUsecase(quotes IntradayQuoteProvider) *marketUsecase {
	return &marketUsecase{quotes: quotes}
}

// GetOverview returns quotes for the curated default watchlist.
func (u *marketUsecase) GetOverview(ctx context.Context) []entity.QuoteRecord {
	data := u.quotes.FetchEndOfDay(ctx, overviewPrimarySymbols)
	if len(data) == 0 {
		data = u.quotes.FetchEndOfDay(ctx, overviewFallbackSymbols)
	}
	return data
}

// GetStock returns the quote for a single symbol, or ErrEntryNotFound when
// the provider has no data for it.
func (u *marketUsecase) GetStock(ctx context.Context, symbol string) (*entity.QuoteRecord, error) {
	data := u.quotes.FetchIntraday(ctx, []string{normalizeSymbol(symbol)})
	if len(data) == 0 {
		return nil, ErrEntryNotFound
	}
	return &data[0], nil
}
