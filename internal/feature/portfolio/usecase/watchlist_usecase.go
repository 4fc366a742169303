package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"tradefolio_backend/internal/feature/portfolio/domain/entity"
)

// MsgEmptyWatchlist explains an empty watchlist to new users. An empty
// watchlist is a valid state, not an error.
const MsgEmptyWatchlist = "No stocks in watchlist. Add some stocks to get started!"

// WatchlistRepository abstracts the persistence layer for watchlist entries.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type WatchlistRepository interface {
	// ListByUser returns all entries owned by the user.
	ListByUser(ctx context.Context, userID uint) ([]entity.WatchlistEntry, error)

	// FindByUserAndSymbol returns the entry for the (user, symbol) pair,
	// or ErrEntryNotFound.
	FindByUserAndSymbol(ctx context.Context, userID uint, symbol string) (*entity.WatchlistEntry, error)

	// Create persists a new entry. Returns ErrDuplicateSymbol when the
	// (user, symbol) unique index rejects the insert.
	Create(ctx context.Context, e *entity.WatchlistEntry) error

	// Update replaces alert price and notes in place and returns the updated
	// entry, or ErrEntryNotFound.
	Update(ctx context.Context, userID uint, symbol string, alertPrice *float64, notes *string) (*entity.WatchlistEntry, error)

	// DeleteByUserAndSymbol removes the entry, or returns ErrEntryNotFound.
	DeleteByUserAndSymbol(ctx context.Context, userID uint, symbol string) error
}

// QuoteProvider fetches current quotes for a batch of symbols.
// Implementations never fail: on upstream errors they synthesize one
// fallback record per requested symbol. A successful upstream response may
// still omit symbols the provider does not know.
type QuoteProvider interface {
	FetchEndOfDay(ctx context.Context, symbols []string) []entity.QuoteRecord
}

// WatchlistQuote is a quote joined with the owning user's entry metadata.
type WatchlistQuote struct {
	entity.QuoteRecord
	AlertPrice *float64  `json:"alertPrice,omitempty"`
	Notes      string    `json:"notes"`
	AddedAt    time.Time `json:"addedAt"`
}

// watchlistUsecase merges persisted watchlist entries with provider quotes.
type watchlistUsecase struct {
	entries WatchlistRepository
	quotes  QuoteProvider
}

// NewWatchlistUsecase creates a new watchlistUsecase instance.
func NewWatchlistUsecase(entries WatchlistRepository, quotes QuoteProvider) *watchlistUsecase {
	return &watchlistUsecase{entries: entries, quotes: quotes}
}

// GetUserWatchlist returns the user's watchlist enriched with current quotes.
// The join is quote-driven: a symbol the provider dropped is absent from the
// result. An empty watchlist returns an empty slice with an explanatory
// message and no error.
func (u *watchlistUsecase) GetUserWatchlist(ctx context.Context, userID uint) ([]WatchlistQuote, string, error) {
	items, err := u.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load watchlist: %w", err)
	}
	if len(items) == 0 {
		return []WatchlistQuote{}, MsgEmptyWatchlist, nil
	}

	bySymbol := make(map[string]*entity.WatchlistEntry, len(items))
	symbols := make([]string, 0, len(items))
	for i := range items {
		sym := items[i].Symbol
		if _, ok := bySymbol[sym]; ok {
			continue
		}
		bySymbol[sym] = &items[i]
		symbols = append(symbols, sym)
	}

	// One batch call for the whole symbol set, never one call per symbol.
	quotes := u.quotes.FetchEndOfDay(ctx, symbols)

	out := make([]WatchlistQuote, 0, len(quotes))
	for _, q := range quotes {
		joined := WatchlistQuote{QuoteRecord: q}
		if e, ok := bySymbol[q.Symbol]; ok {
			joined.AlertPrice = e.AlertPrice
			joined.Notes = e.Notes
			joined.AddedAt = e.AddedAt
		}
		out = append(out, joined)
	}
	return out, "", nil
}

// AddToWatchlist creates a new entry for the user. The duplicate check runs
// here first; the storage unique index backs it up.
func (u *watchlistUsecase) AddToWatchlist(ctx context.Context, userID uint, symbol string, alertPrice *float64, notes string) (*entity.WatchlistEntry, error) {
	symbol = normalizeSymbol(symbol)
	if symbol == "" {
		return nil, errors.New("symbol is required")
	}

	if _, err := u.entries.FindByUserAndSymbol(ctx, userID, symbol); err == nil {
		return nil, ErrDuplicateSymbol
	} else if !errors.Is(err, ErrEntryNotFound) {
		return nil, err
	}

	e := &entity.WatchlistEntry{
		UserID:     userID,
		Symbol:     symbol,
		AlertPrice: alertPrice,
		Notes:      notes,
	}
	if err := u.entries.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateWatchlistEntry updates alert price and notes for an existing entry.
func (u *watchlistUsecase) UpdateWatchlistEntry(ctx context.Context, userID uint, symbol string, alertPrice *float64, notes *string) (*entity.WatchlistEntry, error) {
	return u.entries.Update(ctx, userID, normalizeSymbol(symbol), alertPrice, notes)
}

// RemoveFromWatchlist deletes the entry for the (user, symbol) pair.
func (u *watchlistUsecase) RemoveFromWatchlist(ctx context.Context, userID uint, symbol string) error {
	return u.entries.DeleteByUserAndSymbol(ctx, userID, normalizeSymbol(symbol))
}

// normalizeSymbol uppercases and trims a ticker symbol.
func normalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// round2 rounds to two decimal places, the precision of every derived
// monetary field.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
