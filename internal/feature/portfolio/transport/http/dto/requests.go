// Package dto defines data transfer objects for the portfolio feature's HTTP transport layer.
package dto

// AddWatchlistReq is the request body for POST /market/user-watchlist.
type AddWatchlistReq struct {
	Symbol     string   `json:"symbol" binding:"required"`
	AlertPrice *float64 `json:"alertPrice"`
	Notes      string   `json:"notes"`
}

// UpdateWatchlistReq is the request body for PUT /market/user-watchlist/:symbol.
// Nil fields are left unchanged.
type UpdateWatchlistReq struct {
	AlertPrice *float64 `json:"alertPrice"`
	Notes      *string  `json:"notes"`
}

// AddHoldingReq is the request body for POST /market/user-holdings.
type AddHoldingReq struct {
	Symbol       string  `json:"symbol" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	AveragePrice float64 `json:"averagePrice" binding:"required,gt=0"`
	Notes        string  `json:"notes"`
}

// UpdateHoldingReq is the request body for PUT /market/user-holdings/:id.
// Nil fields are left unchanged.
type UpdateHoldingReq struct {
	Quantity     *float64 `json:"quantity"`
	AveragePrice *float64 `json:"averagePrice"`
	Notes        *string  `json:"notes"`
}

// SellHoldingReq is the request body for POST /market/user-holdings/:id/sell.
type SellHoldingReq struct {
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
}
