package usecase

import (
	"context"
	"fmt"

	"tradefolio_backend/internal/feature/portfolio/domain/entity"
)

// Explanatory messages for empty collections. Empty is a valid state.
const (
	MsgEmptyHoldings  = "No holdings found"
	MsgEmptyPositions = "No positions found. Buy some stocks to see them here."
)

// HoldingRepository abstracts the persistence layer for holding lots.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type HoldingRepository interface {
	// ListByUser returns all lots owned by the user.
	ListByUser(ctx context.Context, userID uint) ([]entity.HoldingEntry, error)

	// FindByIDAndUser returns the lot with the given ID when owned by the
	// user, or ErrHoldingNotFound.
	FindByIDAndUser(ctx context.Context, id, userID uint) (*entity.HoldingEntry, error)

	// Create persists a new lot.
	Create(ctx context.Context, h *entity.HoldingEntry) error

	// Update applies the non-nil fields to the lot and returns the updated
	// row, or ErrHoldingNotFound.
	Update(ctx context.Context, id, userID uint, quantity, averagePrice *float64, notes *string) (*entity.HoldingEntry, error)

	// DecrementQuantity atomically subtracts qty from the lot's quantity,
	// guarded by `quantity >= qty` and the owning user. Returns
	// ErrInvalidQuantity when the guard rejects the update (including a
	// concurrent sale that drained the lot first) and ErrHoldingNotFound
	// when the lot does not exist for the user.
	DecrementQuantity(ctx context.Context, id, userID uint, qty float64) error

	// DeleteByIDAndUser removes the lot, or returns ErrHoldingNotFound.
	DeleteByIDAndUser(ctx context.Context, id, userID uint) error
}

// EnrichedHolding is a holding lot priced with a current quote.
type EnrichedHolding struct {
	ID            uint     `json:"id"`
	Symbol        string   `json:"symbol"`
	Quantity      float64  `json:"quantity"`
	AveragePrice  float64  `json:"averagePrice"`
	CurrentPrice  float64  `json:"currentPrice"`
	CurrentValue  float64  `json:"currentValue"`
	PnL           float64  `json:"pnl"`
	PnLPercentage float64  `json:"pnlPercentage"`
	DayChange     float64  `json:"dayChange"`
	IsLoss        bool     `json:"isLoss"`
	Notes         string   `json:"notes"`
}

// PositionView is the positions projection of a holding lot.
type PositionView struct {
	ID           uint    `json:"id"`
	Product      string  `json:"product"`
	Symbol       string  `json:"symbol"`
	Quantity     float64 `json:"quantity"`
	AveragePrice float64 `json:"averagePrice"`
	Price        float64 `json:"price"`
	NetChange    float64 `json:"netChange"`
	DayChange    float64 `json:"dayChange"`
	IsLoss       bool    `json:"isLoss"`
}

// holdingsUsecase reconciles holding lots with provider quotes and applies
// buy/sell mutations.
type holdingsUsecase struct {
	holdings HoldingRepository
	quotes   QuoteProvider
}

// NewHoldingsUsecase creates a new holdingsUsecase instance.
func NewHoldingsUsecase(holdings HoldingRepository, quotes QuoteProvider) *holdingsUsecase {
	return &holdingsUsecase{holdings: holdings, quotes: quotes}
}

// GetUserHoldings returns the user's lots priced with current quotes.
// A lot whose symbol the provider dropped falls back to its own average
// price, so a holding is never priced at zero.
func (u *holdingsUsecase) GetUserHoldings(ctx context.Context, userID uint) ([]EnrichedHolding, string, error) {
	lots, err := u.holdings.ListByUser(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load holdings: %w", err)
	}
	if len(lots) == 0 {
		return []EnrichedHolding{}, MsgEmptyHoldings, nil
	}

	quoteBySymbol := u.fetchQuoteMap(ctx, lots)

	out := make([]EnrichedHolding, 0, len(lots))
	for _, lot := range lots {
		currentPrice := lot.AveragePrice
		dayChange := 0.0
		if q, ok := quoteBySymbol[lot.Symbol]; ok {
			currentPrice = q.Price
			dayChange = q.PercentChange
		}

		currentValue := currentPrice * lot.Quantity
		investment := lot.AveragePrice * lot.Quantity
		pnl := currentValue - investment
		pnlPct := 0.0
		if investment > 0 {
			pnlPct = pnl / investment * 100
		}

		out = append(out, EnrichedHolding{
			ID:            lot.ID,
			Symbol:        lot.Symbol,
			Quantity:      lot.Quantity,
			AveragePrice:  lot.AveragePrice,
			CurrentPrice:  round2(currentPrice),
			CurrentValue:  round2(currentValue),
			PnL:           round2(pnl),
			PnLPercentage: round2(pnlPct),
			DayChange:     dayChange,
			IsLoss:        pnl < 0,
			Notes:         lot.Notes,
		})
	}
	return out, "", nil
}

// GetUserPositions projects the user's lots into the positions view.
func (u *holdingsUsecase) GetUserPositions(ctx context.Context, userID uint) ([]PositionView, string, error) {
	lots, err := u.holdings.ListByUser(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load positions: %w", err)
	}
	if len(lots) == 0 {
		return []PositionView{}, MsgEmptyPositions, nil
	}

	quoteBySymbol := u.fetchQuoteMap(ctx, lots)

	out := make([]PositionView, 0, len(lots))
	for _, lot := range lots {
		price := lot.AveragePrice
		dayChange := 0.0
		if q, ok := quoteBySymbol[lot.Symbol]; ok {
			price = q.Price
			dayChange = q.PercentChange
		}
		net := 0.0
		if lot.AveragePrice > 0 {
			net = round2((price - lot.AveragePrice) / lot.AveragePrice * 100)
		}
		out = append(out, PositionView{
			ID:           lot.ID,
			Product:      "CNC",
			Symbol:       lot.Symbol,
			Quantity:     lot.Quantity,
			AveragePrice: lot.AveragePrice,
			Price:        round2(price),
			NetChange:    net,
			DayChange:    dayChange,
			IsLoss:       net < 0,
		})
	}
	return out, "", nil
}

// RecordPurchase creates a new holding lot. Each purchase is its own lot;
// same-symbol lots are not merged.
func (u *holdingsUsecase) RecordPurchase(ctx context.Context, userID uint, symbol string, quantity, averagePrice float64, notes string) (*entity.HoldingEntry, error) {
	symbol = normalizeSymbol(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	if quantity <= 0 || averagePrice <= 0 {
		return nil, ErrInvalidQuantity
	}

	lot := &entity.HoldingEntry{
		UserID:       userID,
		Symbol:       symbol,
		Quantity:     quantity,
		AveragePrice: averagePrice,
		Notes:        notes,
	}
	if err := u.holdings.Create(ctx, lot); err != nil {
		return nil, err
	}
	return lot, nil
}

// RecordSale decrements a lot's quantity. The decrement is an atomic
// conditional update, so two concurrent sales cannot oversell the lot.
func (u *holdingsUsecase) RecordSale(ctx context.Context, holdingID, userID uint, soldQuantity float64) (*entity.HoldingEntry, error) {
	if soldQuantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	lot, err := u.holdings.FindByIDAndUser(ctx, holdingID, userID)
	if err != nil {
		return nil, err
	}
	if soldQuantity > lot.Quantity {
		return nil, ErrInvalidQuantity
	}

	if err := u.holdings.DecrementQuantity(ctx, holdingID, userID, soldQuantity); err != nil {
		return nil, err
	}
	return u.holdings.FindByIDAndUser(ctx, holdingID, userID)
}

// UpdateHolding applies a partial update to a lot.
func (u *holdingsUsecase) UpdateHolding(ctx context.Context, holdingID, userID uint, quantity, averagePrice *float64, notes *string) (*entity.HoldingEntry, error) {
	if quantity != nil && *quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if averagePrice != nil && *averagePrice < 0 {
		return nil, ErrInvalidQuantity
	}
	return u.holdings.Update(ctx, holdingID, userID, quantity, averagePrice, notes)
}

// DeleteHolding removes a lot from the user's portfolio.
func (u *holdingsUsecase) DeleteHolding(ctx context.Context, holdingID, userID uint) error {
	return u.holdings.DeleteByIDAndUser(ctx, holdingID, userID)
}

// fetchQuoteMap batch-fetches quotes for the distinct symbol set of the lots
// and indexes them by symbol.
func (u *holdingsUsecase) fetchQuoteMap(ctx context.Context, lots []entity.HoldingEntry) map[string]entity.QuoteRecord {
	seen := make(map[string]struct{}, len(lots))
	symbols := make([]string, 0, len(lots))
	for _, lot := range lots {
		if _, ok := seen[lot.Symbol]; ok {
			continue
		}
		seen[lot.Symbol] = struct{}{}
		symbols = append(symbols, lot.Symbol)
	}

	quotes := u.quotes.FetchEndOfDay(ctx, symbols)
	bySymbol := make(map[string]entity.QuoteRecord, len(quotes))
	for _, q := range quotes {
		bySymbol[q.Symbol] = q
	}
	return bySymbol
}
