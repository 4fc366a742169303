// Package entity defines the domain entities for the portfolio feature.
package entity

import "time"

// WatchlistEntry is a user's declared interest in a ticker symbol,
// independent of ownership. A user can hold at most one entry per symbol.
type WatchlistEntry struct {
	// ID is the unique identifier for the entry.
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID references the owning user. Every query is scoped by it.
	UserID uint `gorm:"not null;uniqueIndex:watchlist_user_symbol,priority:1" json:"-"`

	// Symbol is the ticker, stored uppercased.
	Symbol string `gorm:"size:32;not null;uniqueIndex:watchlist_user_symbol,priority:2" json:"symbol"`

	// AlertPrice is an optional price threshold set by the user.
	AlertPrice *float64 `json:"alertPrice,omitempty"`

	// Notes is free-form user text.
	Notes string `gorm:"size:512" json:"notes"`

	// AddedAt is when the symbol was added to the watchlist.
	AddedAt time.Time `gorm:"autoCreateTime" json:"addedAt"`
}
